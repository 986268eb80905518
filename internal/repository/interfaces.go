package repository

import (
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Upsert(email, name, image string) (*models.User, error)
	Update(user *models.User) error
}

// TeamRepositoryInterface defines the interface for team and membership operations
type TeamRepositoryInterface interface {
	CreateWithOwner(team *models.Team, ownerID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByStripeCustomerID(customerID string) (*models.Team, error)
	ListForUser(userID uuid.UUID) ([]models.Team, error)
	ListSubscriptionsEndingBetween(from, to time.Time) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error

	GetMembership(teamID, userID uuid.UUID) (*models.UserTeam, error)
	ListMembers(teamID uuid.UUID) ([]models.UserTeam, error)
	ListAdmins(teamID uuid.UUID) ([]models.User, error)
	AddMember(membership *models.UserTeam) error
	UpdateMemberRole(teamID, userID uuid.UUID, role models.Role) error
	RemoveMember(teamID, userID uuid.UUID) error
	CountMembers(teamID uuid.UUID) (int64, error)
	CountAdmins(teamID uuid.UUID) (int64, error)
}

// InvitationRepositoryInterface defines the interface for invitation operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByToken(token string) (*models.Invitation, error)
	GetByTeamAndEmail(teamID uuid.UUID, email string) (*models.Invitation, error)
	CountPending(teamID uuid.UUID, now time.Time) (int64, error)
	Delete(id uuid.UUID) error
	DeleteExpired(now time.Time) (int64, error)
}

// DocumentFilter narrows document listings
type DocumentFilter struct {
	Query    string
	FolderID *uuid.UUID
	RootOnly bool
}

// DocumentRepositoryInterface defines the interface for document operations
type DocumentRepositoryInterface interface {
	CreateWithVersion(doc *models.Document, version *models.DocumentVersion) error
	GetByID(teamID, id uuid.UUID) (*models.Document, error)
	GetByIDAnyTeam(id uuid.UUID) (*models.Document, error)
	GetTrashed(teamID, id uuid.UUID) (*models.Document, error)
	List(teamID uuid.UUID, filter DocumentFilter, limit, offset int) ([]models.Document, int64, error)
	ListByIDs(teamID uuid.UUID, ids []uuid.UUID) ([]models.Document, error)
	Count(teamID uuid.UUID) (int64, error)
	Update(doc *models.Document) error
	MoveToTrash(teamID, id uuid.UUID) error
	Restore(teamID, id uuid.UUID) error
	ListTrash(teamID uuid.UUID) ([]models.Document, error)
	ListTrashedBefore(cutoff time.Time, limit int) ([]models.Document, error)
	Purge(id uuid.UUID) ([]string, error)
	MoveFolderToRoot(teamID, folderID uuid.UUID) error
	CountLinks(documentIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountViews(documentIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// DocumentVersionRepositoryInterface defines the interface for document version operations
type DocumentVersionRepositoryInterface interface {
	List(documentID uuid.UUID) ([]models.DocumentVersion, error)
	GetPrimary(documentID uuid.UUID) (*models.DocumentVersion, error)
	GetByNumber(documentID uuid.UUID, number int) (*models.DocumentVersion, error)
	NextNumber(documentID uuid.UUID) (int, error)
	AddPrimary(doc *models.Document, version *models.DocumentVersion) error
	Promote(doc *models.Document, version *models.DocumentVersion) error
}

// FolderRepositoryInterface defines the interface for team folder operations
type FolderRepositoryInterface interface {
	Create(folder *models.Folder) error
	GetByID(teamID, id uuid.UUID) (*models.Folder, error)
	GetByPath(teamID uuid.UUID, path string) (*models.Folder, error)
	List(teamID uuid.UUID, parentID *uuid.UUID) ([]models.Folder, error)
	Rename(folder *models.Folder, newName, newPath string) error
	CountChildren(id uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// DataroomRepositoryInterface defines the interface for dataroom operations
type DataroomRepositoryInterface interface {
	Create(dataroom *models.Dataroom) error
	GetByID(teamID, id uuid.UUID) (*models.Dataroom, error)
	GetByIDAnyTeam(id uuid.UUID) (*models.Dataroom, error)
	List(teamID uuid.UUID, limit, offset int) ([]models.Dataroom, int64, error)
	Count(teamID uuid.UUID) (int64, error)
	Update(dataroom *models.Dataroom) error
	Delete(id uuid.UUID) error

	AddDocuments(dataroomID uuid.UUID, folderID *uuid.UUID, documentIDs []uuid.UUID) ([]models.DataroomDocument, error)
	GetDocument(dataroomID, id uuid.UUID) (*models.DataroomDocument, error)
	GetDocumentByDocumentID(dataroomID, documentID uuid.UUID) (*models.DataroomDocument, error)
	ListDocuments(dataroomID uuid.UUID, folderID *uuid.UUID) ([]models.DataroomDocument, error)
	MoveDocument(id uuid.UUID, folderID *uuid.UUID) error
	RemoveDocument(id uuid.UUID) error
	CountDocuments(dataroomID uuid.UUID) (int64, error)
}

// DataroomFolderRepositoryInterface defines the interface for dataroom folder operations
type DataroomFolderRepositoryInterface interface {
	Create(folder *models.DataroomFolder) error
	GetByID(dataroomID, id uuid.UUID) (*models.DataroomFolder, error)
	GetByPath(dataroomID uuid.UUID, path string) (*models.DataroomFolder, error)
	List(dataroomID uuid.UUID, parentID *uuid.UUID) ([]models.DataroomFolder, error)
	Count(dataroomID uuid.UUID) (int64, error)
	Rename(folder *models.DataroomFolder, newName, newPath string) error
	DeleteTree(folder *models.DataroomFolder) error
}

// LinkRepositoryInterface defines the interface for link operations
type LinkRepositoryInterface interface {
	Create(link *models.Link) error
	GetByID(id uuid.UUID) (*models.Link, error)
	GetByTeam(teamID, id uuid.UUID) (*models.Link, error)
	GetByDomainSlug(domain, slug string) (*models.Link, error)
	SlugTaken(domain, slug string, excludeID *uuid.UUID) (bool, error)
	ListByDocument(teamID, documentID uuid.UUID, includeArchived bool) ([]models.Link, error)
	ListByDataroom(teamID, dataroomID uuid.UUID, includeArchived bool) ([]models.Link, error)
	Count(teamID uuid.UUID) (int64, error)
	CountByDataroom(dataroomID uuid.UUID) (int64, error)
	Update(link *models.Link) error
	SetArchived(id uuid.UUID, archived bool) error
	ArchiveByDocument(documentID uuid.UUID) error
	ArchiveByDataroom(dataroomID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// ViewAggregate is the page-view rollup for one view
type ViewAggregate struct {
	ViewID          uuid.UUID
	TotalDurationMs int64
	PagesViewed     int64
}

// PageAggregate is the page-view rollup for one page of a document
type PageAggregate struct {
	PageNumber    int
	AvgDurationMs float64
	Views         int64
}

// DocumentViewTotals summarizes non-archived views of a document
type DocumentViewTotals struct {
	TotalViews      int64
	UniqueViewers   int64
	TotalDownloads  int64
	TotalDurationMs int64
}

// ViewRepositoryInterface defines the interface for view and page view operations
type ViewRepositoryInterface interface {
	Create(view *models.View) error
	GetByID(id uuid.UUID) (*models.View, error)
	GetByTeam(teamID, id uuid.UUID) (*models.View, error)
	MarkDownloaded(id uuid.UUID, at time.Time) error
	SetArchived(id uuid.UUID, archived bool) error
	ListByDocument(teamID, documentID uuid.UUID, limit, offset int) ([]models.View, int64, error)
	ListByViewer(teamID, viewerID uuid.UUID) ([]models.View, error)
	CountByLinks(linkIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByLink(linkID uuid.UUID) (int64, error)
	DocumentTotals(documentID uuid.UUID) (*DocumentViewTotals, error)

	CreatePageView(pageView *models.PageView) error
	AggregateByViews(viewIDs []uuid.UUID) (map[uuid.UUID]ViewAggregate, error)
	AggregateByPage(documentID uuid.UUID) ([]PageAggregate, error)
}

// ViewerRepositoryInterface defines the interface for viewer operations
type ViewerRepositoryInterface interface {
	Upsert(teamID uuid.UUID, email string, verified bool, dataroomID *uuid.UUID) (*models.Viewer, error)
	GetByID(teamID, id uuid.UUID) (*models.Viewer, error)
	List(teamID uuid.UUID, limit, offset int) ([]models.Viewer, int64, error)
}

// WebhookRepositoryInterface defines the interface for webhook and delivery operations
type WebhookRepositoryInterface interface {
	Create(webhook *models.Webhook) error
	GetByID(teamID, id uuid.UUID) (*models.Webhook, error)
	GetByIDAnyTeam(id uuid.UUID) (*models.Webhook, error)
	List(teamID uuid.UUID) ([]models.Webhook, error)
	ListEnabled(teamID uuid.UUID) ([]models.Webhook, error)
	Update(webhook *models.Webhook) error
	Delete(id uuid.UUID) error

	CreateDelivery(delivery *models.WebhookDelivery) error
	GetDelivery(id uuid.UUID) (*models.WebhookDelivery, error)
	UpdateDelivery(delivery *models.WebhookDelivery) error
	ListDeliveries(webhookID uuid.UUID, limit int) ([]models.WebhookDelivery, error)
	ListDueDeliveries(now time.Time, limit int) ([]models.WebhookDelivery, error)
	ClaimDelivery(id uuid.UUID, now time.Time) (bool, error)
}

// NotificationRepositoryInterface defines the interface for notification operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	ListForUser(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(userID, id uuid.UUID, at time.Time) error
	MarkAllRead(userID uuid.UUID, at time.Time) (int64, error)
}

// VerificationTokenRepositoryInterface defines the interface for one-time token operations
type VerificationTokenRepositoryInterface interface {
	Replace(token *models.VerificationToken) error
	Consume(identifier, tokenHash string, now time.Time) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}
