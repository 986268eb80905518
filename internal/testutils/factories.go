package testutils

import (
	"fmt"
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		Name:      "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// Create creates a test Team on the free plan
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Team",
		Plan:      models.PlanFree,
	}
}

// WithPlan sets a custom plan for the team
func (f *TeamFactory) WithPlan(plan models.Plan) *models.Team {
	t := f.Create()
	t.Plan = plan
	return t
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// Create creates a test PDF document in the given team
func (f *DocumentFactory) Create(teamID uuid.UUID) *models.Document {
	id := uuid.New()
	return &models.Document{
		BaseModel:   models.BaseModel{ID: id},
		TeamID:      teamID,
		Name:        "Pitch Deck.pdf",
		Type:        models.DocumentTypePDF,
		ContentType: "application/pdf",
		StorageType: models.StorageTypeS3,
		File:        fmt.Sprintf("%s/%s/pitch-deck.pdf", teamID, id),
		NumPages:    10,
		FileSize:    1024,
	}
}

// PrimaryVersion builds version 1 of the given document
func (f *DocumentFactory) PrimaryVersion(doc *models.Document) *models.DocumentVersion {
	return &models.DocumentVersion{
		DocumentID:    doc.ID,
		VersionNumber: 1,
		File:          doc.File,
		Type:          doc.Type,
		ContentType:   doc.ContentType,
		StorageType:   doc.StorageType,
		NumPages:      doc.NumPages,
		FileSize:      doc.FileSize,
		IsPrimary:     true,
	}
}

// LinkFactory provides methods to create test Link data
type LinkFactory struct{}

// ForDocument creates an open document link
func (f *LinkFactory) ForDocument(teamID, documentID uuid.UUID) *models.Link {
	docID := documentID
	return &models.Link{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		TeamID:             teamID,
		LinkType:           models.LinkTypeDocument,
		DocumentID:         &docID,
		Name:               "Test Link",
		EnableNotification: true,
	}
}

// ForDataroom creates an open dataroom link
func (f *LinkFactory) ForDataroom(teamID, dataroomID uuid.UUID) *models.Link {
	roomID := dataroomID
	return &models.Link{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TeamID:     teamID,
		LinkType:   models.LinkTypeDataroom,
		DataroomID: &roomID,
		Name:       "Dataroom Link",
	}
}

// ViewFactory provides methods to create test View data
type ViewFactory struct{}

// ForLink creates a document view on the given link
func (f *ViewFactory) ForLink(link *models.Link, email string) *models.View {
	return &models.View{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		TeamID:      link.TeamID,
		LinkID:      link.ID,
		DocumentID:  link.DocumentID,
		DataroomID:  link.DataroomID,
		ViewerEmail: email,
		ViewType:    models.ViewTypeDocument,
		ViewedAt:    time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Team     *TeamFactory
	Document *DocumentFactory
	Link     *LinkFactory
	View     *ViewFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     &UserFactory{},
		Team:     &TeamFactory{},
		Document: &DocumentFactory{},
		Link:     &LinkFactory{},
		View:     &ViewFactory{},
	}
}
