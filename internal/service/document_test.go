package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DocumentServiceTestSuite defines the test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockDocumentRepositoryInterface
	mockVersionRepo *mocks.MockDocumentVersionRepositoryInterface
	mockFolderRepo  *mocks.MockFolderRepositoryInterface
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	mockStorage     *mocks.MockStorage
	mockPDF         *mocks.MockProcessor
	mockDispatcher  *mocks.MockEventDispatcher
	documentService *service.DocumentService

	teamID uuid.UUID
	userID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockDocumentVersionRepositoryInterface(suite.ctrl)
	suite.mockFolderRepo = mocks.NewMockFolderRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockStorage = mocks.NewMockStorage(suite.ctrl)
	suite.mockPDF = mocks.NewMockProcessor(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockEventDispatcher(suite.ctrl)

	suite.documentService = service.NewDocumentService(suite.mockRepo, suite.mockVersionRepo, suite.mockFolderRepo, suite.mockTeamRepo,
		suite.mockStorage, suite.mockPDF, suite.mockDispatcher, service.DocumentOptions{
			PresignTTL:     15 * time.Minute,
			MaxUploadSize:  1 << 20,
			TrashRetention: 30 * 24 * time.Hour,
		}, validator.New())

	suite.teamID = uuid.New()
	suite.userID = uuid.New()
	suite.mockStorage.EXPECT().Type().Return(models.StorageTypeS3).AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DocumentServiceTestSuite) pdfFile() *service.UploadFile {
	content := []byte("%PDF-1.7 fake")
	return &service.UploadFile{
		Filename:    "Pitch Deck.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Content:     bytes.NewReader(content),
	}
}

// TestUploadPDF tests that uploads count pages, store the file and create version 1
func (suite *DocumentServiceTestSuite) TestUploadPDF() {
	ctx := context.Background()
	file := suite.pdfFile()

	suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(3), nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)
	suite.mockPDF.EXPECT().PageCount(file.Content).Return(12, nil)
	suite.mockStorage.EXPECT().
		Upload(ctx, gomock.Any(), file.Content, file.Size, "application/pdf").
		DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
			suite.True(strings.HasPrefix(key, suite.teamID.String()+"/"))
			suite.True(strings.HasSuffix(key, ".pdf"))
			return nil
		})
	suite.mockRepo.EXPECT().CreateWithVersion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(doc *models.Document, version *models.DocumentVersion) error {
			suite.Equal(1, version.VersionNumber)
			suite.True(version.IsPrimary)
			suite.Equal(doc.File, version.File)
			doc.ID = uuid.New()
			return nil
		})
	suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventDocumentCreated, gomock.Any())

	resp, err := suite.documentService.Upload(ctx, suite.teamID, suite.userID, file, nil)

	suite.Require().NoError(err)
	suite.Equal("Pitch Deck.pdf", resp.Name)
	suite.Equal(models.DocumentTypePDF, resp.Type)
	suite.Equal(12, resp.NumPages)
	suite.Equal(&suite.userID, resp.OwnerID)
	suite.Equal(models.StorageTypeS3, resp.StorageType)
}

// TestUploadLimitReached tests the document limit of the free plan
func (suite *DocumentServiceTestSuite) TestUploadLimitReached() {
	suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(50), nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)

	_, err := suite.documentService.Upload(context.Background(), suite.teamID, suite.userID, suite.pdfFile(), nil)

	var limitErr *apperrors.LimitExceededError
	suite.Require().True(errors.As(err, &limitErr))
	suite.Equal("documents", limitErr.Resource)
}

// TestUploadRejects tests unsupported and oversized uploads
func (suite *DocumentServiceTestSuite) TestUploadRejects() {
	ctx := context.Background()

	suite.T().Run("Unsupported type", func(t *testing.T) {
		suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(0), nil)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanPro), nil)

		_, err := suite.documentService.Upload(ctx, suite.teamID, suite.userID, &service.UploadFile{
			Filename:    "tool.exe",
			ContentType: "application/x-msdownload",
			Size:        4,
			Content:     bytes.NewReader([]byte("MZ..")),
		}, nil)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Too large", func(t *testing.T) {
		suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(0), nil)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanPro), nil)

		file := suite.pdfFile()
		file.Size = 2 << 20
		_, err := suite.documentService.Upload(ctx, suite.teamID, suite.userID, file, nil)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Unknown folder", func(t *testing.T) {
		folderID := uuid.New()
		suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(0), nil)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanPro), nil)
		suite.mockFolderRepo.EXPECT().GetByID(suite.teamID, folderID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.documentService.Upload(ctx, suite.teamID, suite.userID, suite.pdfFile(), &service.UploadDocumentRequest{FolderID: &folderID})
		assert.Equal(t, apperrors.ErrFolderNotFound, err)
	})
}

// TestRegister tests registering presigned uploads
func (suite *DocumentServiceTestSuite) TestRegister() {
	ctx := context.Background()

	suite.T().Run("Key outside team", func(t *testing.T) {
		_, err := suite.documentService.Register(ctx, suite.teamID, suite.userID, &service.RegisterDocumentRequest{
			Key:         uuid.New().String() + "/x/file.pdf",
			Name:        "file.pdf",
			ContentType: "application/pdf",
		})
		assert.Equal(t, apperrors.ErrStorageKeyOutsideTeam, err)
	})

	suite.T().Run("Counts pages of stored PDF", func(t *testing.T) {
		key := suite.teamID.String() + "/abc/file.pdf"
		suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(0), nil)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanPro), nil)
		suite.mockStorage.EXPECT().Download(ctx, key).Return(io.NopCloser(strings.NewReader("%PDF")), nil)
		suite.mockPDF.EXPECT().PageCount(gomock.Any()).Return(4, nil)
		suite.mockRepo.EXPECT().CreateWithVersion(gomock.Any(), gomock.Any()).Return(nil)
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventDocumentCreated, gomock.Any())

		resp, err := suite.documentService.Register(ctx, suite.teamID, suite.userID, &service.RegisterDocumentRequest{
			Key:         key,
			Name:        "file.pdf",
			ContentType: "application/pdf",
			Size:        4,
		})
		assert.NoError(t, err)
		assert.Equal(t, 4, resp.NumPages)
	})
}

// TestPresignUpload tests presigned upload URLs
func (suite *DocumentServiceTestSuite) TestPresignUpload() {
	ctx := context.Background()
	suite.mockStorage.EXPECT().
		PresignPut(ctx, gomock.Any(), "application/pdf", 15*time.Minute).
		Return("https://s3.example.com/put", nil)

	resp, err := suite.documentService.PresignUpload(ctx, suite.teamID, &service.PresignUploadRequest{
		Filename:    "deck.pdf",
		ContentType: "application/pdf",
	})

	suite.Require().NoError(err)
	suite.Equal("https://s3.example.com/put", resp.URL)
	suite.True(strings.HasPrefix(resp.Key, suite.teamID.String()+"/"))
}

// TestTrashLifecycle tests delete, list trash, restore and purge
func (suite *DocumentServiceTestSuite) TestTrashLifecycle() {
	ctx := context.Background()
	docID := uuid.New()
	deletedAt := time.Now().Add(-time.Hour)

	suite.mockRepo.EXPECT().MoveToTrash(suite.teamID, docID).Return(nil)
	suite.NoError(suite.documentService.Delete(suite.teamID, docID))

	suite.mockRepo.EXPECT().ListTrash(suite.teamID).Return([]models.Document{{
		BaseModel: models.BaseModel{ID: docID},
		TeamID:    suite.teamID,
		Name:      "deck.pdf",
		DeletedAt: gorm.DeletedAt{Time: deletedAt, Valid: true},
	}}, nil)
	items, err := suite.documentService.ListTrash(suite.teamID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(deletedAt.Add(30*24*time.Hour).UTC().Format(time.RFC3339), items[0].PurgeAfter)

	suite.mockRepo.EXPECT().Restore(suite.teamID, docID).Return(nil)
	suite.mockRepo.EXPECT().GetByID(suite.teamID, docID).Return(&models.Document{BaseModel: models.BaseModel{ID: docID}}, nil)
	restored, err := suite.documentService.Restore(suite.teamID, docID)
	suite.Require().NoError(err)
	suite.Equal(docID, restored.ID)

	suite.mockRepo.EXPECT().GetTrashed(suite.teamID, docID).Return(&models.Document{}, nil)
	suite.mockRepo.EXPECT().Purge(docID).Return([]string{"k1", "k2"}, nil)
	suite.mockStorage.EXPECT().Delete(ctx, "k1").Return(nil)
	suite.mockStorage.EXPECT().Delete(ctx, "k2").Return(errors.New("gone"))
	suite.NoError(suite.documentService.Purge(ctx, suite.teamID, docID))
}

// TestPurgeRequiresTrash tests that only trashed documents can be purged
func (suite *DocumentServiceTestSuite) TestPurgeRequiresTrash() {
	docID := uuid.New()
	suite.mockRepo.EXPECT().GetTrashed(suite.teamID, docID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.documentService.Purge(context.Background(), suite.teamID, docID)
	suite.Equal(apperrors.ErrDocumentNotFound, err)
}

// TestPurgeExpiredTrash tests the retention sweep
func (suite *DocumentServiceTestSuite) TestPurgeExpiredTrash() {
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	suite.mockRepo.EXPECT().ListTrashedBefore(gomock.Any(), 100).
		DoAndReturn(func(cutoff time.Time, _ int) ([]models.Document, error) {
			suite.WithinDuration(time.Now().Add(-30*24*time.Hour), cutoff, time.Minute)
			return []models.Document{{BaseModel: models.BaseModel{ID: first}}, {BaseModel: models.BaseModel{ID: second}}}, nil
		})
	suite.mockRepo.EXPECT().Purge(first).Return([]string{"a"}, nil)
	suite.mockRepo.EXPECT().Purge(second).Return(nil, gorm.ErrRecordNotFound)
	suite.mockStorage.EXPECT().Delete(ctx, "a").Return(nil)

	purged, err := suite.documentService.PurgeExpiredTrash(ctx)
	suite.NoError(err)
	suite.Equal(2, purged)
}

// TestVersions tests adding and promoting versions
func (suite *DocumentServiceTestSuite) TestVersions() {
	ctx := context.Background()
	docID := uuid.New()
	doc := &models.Document{BaseModel: models.BaseModel{ID: docID}, TeamID: suite.teamID}

	suite.T().Run("Add version from key", func(t *testing.T) {
		pages := 3
		suite.mockRepo.EXPECT().GetByID(suite.teamID, docID).Return(doc, nil)
		suite.mockVersionRepo.EXPECT().NextNumber(docID).Return(2, nil)
		suite.mockVersionRepo.EXPECT().AddPrimary(doc, gomock.Any()).Return(nil)

		resp, err := suite.documentService.AddVersionFromKey(ctx, suite.teamID, docID, &service.RegisterVersionRequest{
			Key:         suite.teamID.String() + "/v2/deck.pdf",
			ContentType: "application/pdf",
			Size:        10,
			NumPages:    &pages,
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, resp.VersionNumber)
		assert.Equal(t, 3, resp.NumPages)
	})

	suite.T().Run("Promote", func(t *testing.T) {
		version := &models.DocumentVersion{DocumentID: docID, VersionNumber: 1}
		suite.mockRepo.EXPECT().GetByID(suite.teamID, docID).Return(doc, nil)
		suite.mockVersionRepo.EXPECT().GetByNumber(docID, 1).Return(version, nil)
		suite.mockVersionRepo.EXPECT().Promote(doc, version).Return(nil)

		resp, err := suite.documentService.PromoteVersion(suite.teamID, docID, 1)
		assert.NoError(t, err)
		assert.True(t, resp.IsPrimary)
	})

	suite.T().Run("Promote unknown version", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(suite.teamID, docID).Return(doc, nil)
		suite.mockVersionRepo.EXPECT().GetByNumber(docID, 9).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.documentService.PromoteVersion(suite.teamID, docID, 9)
		assert.Equal(t, apperrors.ErrDocumentVersionNotFound, err)
	})
}

// TestListWithCounters tests that listings carry link and view counts
func (suite *DocumentServiceTestSuite) TestListWithCounters() {
	docID := uuid.New()
	suite.mockRepo.EXPECT().List(suite.teamID, gomock.Any(), 20, 0).
		Return([]models.Document{{BaseModel: models.BaseModel{ID: docID}, Name: "a.pdf"}}, int64(1), nil)
	suite.mockRepo.EXPECT().CountLinks([]uuid.UUID{docID}).Return(map[uuid.UUID]int64{docID: 2}, nil)
	suite.mockRepo.EXPECT().CountViews([]uuid.UUID{docID}).Return(map[uuid.UUID]int64{docID: 7}, nil)

	resp, err := suite.documentService.List(suite.teamID, &service.ListDocumentsQuery{Query: "a"})

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Equal(int64(2), resp.Documents[0].LinkCount)
	suite.Equal(int64(7), resp.Documents[0].ViewCount)
}

// TestDocumentServiceTestSuite runs the test suite
func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
