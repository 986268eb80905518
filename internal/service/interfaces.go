package service

import (
	"context"
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	ListTeams(userID uuid.UUID) ([]TeamResponse, error)
	GetTeam(teamID uuid.UUID) (*TeamResponse, error)
	UpdateTeam(teamID, userID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(teamID, userID uuid.UUID) error
	ListMembers(teamID uuid.UUID) ([]MemberResponse, error)
	ChangeMemberRole(teamID, actorID, memberID uuid.UUID, req *ChangeRoleRequest) (*MemberResponse, error)
	RemoveMember(teamID, actorID, memberID uuid.UUID) error
	InviteMember(ctx context.Context, teamID, actorID uuid.UUID, req *InviteMemberRequest) (*InvitationResponse, error)
	AcceptInvitation(userID uuid.UUID, req *AcceptInvitationRequest) (*TeamResponse, error)
	CleanupExpiredInvitations() (int64, error)
	Authorize(teamID, userID uuid.UUID, roles ...models.Role) (*models.UserTeam, error)
}

// UserServiceInterface defines the interface for the signed-in user's profile
type UserServiceInterface interface {
	GetCurrentUser(userID uuid.UUID) (*UserResponse, error)
	UpdateCurrentUser(userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
}

// DocumentServiceInterface defines the interface for document and version service
type DocumentServiceInterface interface {
	Upload(ctx context.Context, teamID, userID uuid.UUID, file *UploadFile, req *UploadDocumentRequest) (*DocumentResponse, error)
	PresignUpload(ctx context.Context, teamID uuid.UUID, req *PresignUploadRequest) (*PresignUploadResponse, error)
	Register(ctx context.Context, teamID, userID uuid.UUID, req *RegisterDocumentRequest) (*DocumentResponse, error)
	List(teamID uuid.UUID, query *ListDocumentsQuery) (*DocumentListResponse, error)
	Get(teamID, id uuid.UUID) (*DocumentDetailResponse, error)
	Update(teamID, id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error)
	Delete(teamID, id uuid.UUID) error
	ListTrash(teamID uuid.UUID) ([]TrashItemResponse, error)
	Restore(teamID, id uuid.UUID) (*DocumentResponse, error)
	Purge(ctx context.Context, teamID, id uuid.UUID) error
	PurgeExpiredTrash(ctx context.Context) (int, error)
	GetDownloadURL(ctx context.Context, teamID, id uuid.UUID) (*DownloadURLResponse, error)
	AddVersion(ctx context.Context, teamID, documentID uuid.UUID, file *UploadFile) (*VersionResponse, error)
	AddVersionFromKey(ctx context.Context, teamID, documentID uuid.UUID, req *RegisterVersionRequest) (*VersionResponse, error)
	ListVersions(teamID, documentID uuid.UUID) ([]VersionResponse, error)
	PromoteVersion(teamID, documentID uuid.UUID, number int) (*VersionResponse, error)
}

// FolderServiceInterface defines the interface for team folder service
type FolderServiceInterface interface {
	Create(teamID uuid.UUID, req *CreateFolderRequest) (*FolderResponse, error)
	List(teamID uuid.UUID, parentID *uuid.UUID) ([]FolderResponse, error)
	Rename(teamID, id uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error)
	Delete(teamID, id uuid.UUID) error
}

// DataroomServiceInterface defines the interface for dataroom service
type DataroomServiceInterface interface {
	Create(ctx context.Context, teamID uuid.UUID, req *CreateDataroomRequest) (*DataroomResponse, error)
	List(teamID uuid.UUID, page, pageSize int) (*DataroomListResponse, error)
	Get(teamID, id uuid.UUID) (*DataroomDetailResponse, error)
	Update(teamID, id uuid.UUID, req *UpdateDataroomRequest) (*DataroomResponse, error)
	Delete(teamID, id uuid.UUID) error
	AddDocuments(teamID, id uuid.UUID, req *AddDataroomDocumentsRequest) ([]DataroomDocumentResponse, error)
	RemoveDocument(teamID, id, dataroomDocumentID uuid.UUID) error
	MoveDocument(teamID, id, dataroomDocumentID uuid.UUID, req *MoveDataroomDocumentRequest) (*DataroomDocumentResponse, error)
	CreateFolder(teamID, id uuid.UUID, req *CreateFolderRequest) (*FolderResponse, error)
	ListFolders(teamID, id uuid.UUID, parentID *uuid.UUID) ([]FolderResponse, error)
	RenameFolder(teamID, id, folderID uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error)
	DeleteFolder(teamID, id, folderID uuid.UUID) error
	ListContents(teamID, id uuid.UUID, folderID *uuid.UUID) (*DataroomContentsResponse, error)
}

// LinkServiceInterface defines the interface for link service
type LinkServiceInterface interface {
	Create(ctx context.Context, teamID, userID uuid.UUID, req *CreateLinkRequest) (*LinkResponse, error)
	ListByDocument(teamID, documentID uuid.UUID, includeArchived bool) ([]LinkResponse, error)
	ListByDataroom(teamID, dataroomID uuid.UUID, includeArchived bool) ([]LinkResponse, error)
	Get(teamID, id uuid.UUID) (*LinkResponse, error)
	Update(teamID, id uuid.UUID, req *UpdateLinkRequest) (*LinkResponse, error)
	Archive(teamID, id uuid.UUID, archived bool) (*LinkResponse, error)
	Delete(teamID, id uuid.UUID) error
	GetPublic(id uuid.UUID) (*PublicLinkResponse, error)
	GetPublicBySlug(domain, slug string) (*PublicLinkResponse, error)
}

// VerificationServiceInterface defines the interface for link email verification
type VerificationServiceInterface interface {
	RequestOTP(ctx context.Context, linkID uuid.UUID, req *RequestOTPRequest) error
	VerifyOTP(linkID uuid.UUID, email, code string) error
	CleanupExpired() (int64, error)
}

// ViewServiceInterface defines the interface for view recording and analytics
type ViewServiceInterface interface {
	RecordView(ctx context.Context, linkID uuid.UUID, req *RecordViewRequest) (*RecordViewResponse, error)
	RecordPageView(viewID uuid.UUID, req *RecordPageViewRequest) error
	Download(ctx context.Context, viewID uuid.UUID, req *DownloadRequest) (*DownloadResult, error)
	ListDocumentViews(teamID, documentID uuid.UUID, page, pageSize int) (*ViewListResponse, error)
	ArchiveView(teamID, viewID uuid.UUID, archived bool) error
	DocumentStats(teamID, documentID uuid.UUID) (*DocumentStatsResponse, error)
	ListViewers(teamID uuid.UUID, page, pageSize int) (*ViewerListResponse, error)
	GetViewer(teamID, viewerID uuid.UUID) (*ViewerDetailResponse, error)
}

// WebhookServiceInterface defines the interface for webhook service
type WebhookServiceInterface interface {
	EventDispatcher
	Create(teamID uuid.UUID, req *CreateWebhookRequest) (*WebhookResponse, error)
	List(teamID uuid.UUID) ([]WebhookResponse, error)
	Get(teamID, id uuid.UUID) (*WebhookResponse, error)
	Update(teamID, id uuid.UUID, req *UpdateWebhookRequest) (*WebhookResponse, error)
	Delete(teamID, id uuid.UUID) error
	ListDeliveries(teamID, id uuid.UUID) ([]DeliveryResponse, error)
	Deliver(ctx context.Context, deliveryID uuid.UUID) error
	RetryDue(ctx context.Context) (int, error)
}

// EventDispatcher fans team events out to subscribed webhooks
type EventDispatcher interface {
	Dispatch(ctx context.Context, teamID uuid.UUID, event string, data interface{})
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Notify(ctx context.Context, teamID, userID uuid.UUID, notificationType models.NotificationType, message string, refs NotificationRefs) (*NotificationResponse, error)
	NotifyView(ctx context.Context, viewID uuid.UUID) error
	List(userID uuid.UUID, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(userID, id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) (int64, error)
	Subscribe(userID uuid.UUID) (<-chan NotificationResponse, func())
}

// BillingServiceInterface defines the interface for billing service
type BillingServiceInterface interface {
	Status(teamID uuid.UUID) (*BillingStatusResponse, error)
	Checkout(ctx context.Context, teamID, userID uuid.UUID, req *CheckoutRequest) (*SessionResponse, error)
	Portal(ctx context.Context, teamID, userID uuid.UUID) (*SessionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	SendRenewalReminders(ctx context.Context, now time.Time) (int, error)
}
