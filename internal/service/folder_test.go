package service_test

import (
	"testing"

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

// FolderServiceTestSuite defines the test suite for FolderService
type FolderServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockFolderRepositoryInterface
	mockDocuments *mocks.MockDocumentRepositoryInterface
	folderService *service.FolderService
	teamID        uuid.UUID
}

// SetupTest sets up the test suite
func (suite *FolderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockFolderRepositoryInterface(suite.ctrl)
	suite.mockDocuments = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.folderService = service.NewFolderService(suite.mockRepo, suite.mockDocuments, validator.New())
	suite.teamID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *FolderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests path derivation and uniqueness
func (suite *FolderServiceTestSuite) TestCreate() {
	suite.T().Run("Root folder", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByPath(suite.teamID, "/q3-board-pack").Return(nil, gorm.ErrRecordNotFound)
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.folderService.Create(suite.teamID, &service.CreateFolderRequest{Name: "Q3 Board Pack!"})
		assert.NoError(t, err)
		assert.Equal(t, "/q3-board-pack", resp.Path)
		assert.Equal(t, "Q3 Board Pack!", resp.Name)
	})

	suite.T().Run("Nested folder", func(t *testing.T) {
		parentID := uuid.New()
		suite.mockRepo.EXPECT().GetByID(suite.teamID, parentID).
			Return(&models.Folder{BaseModel: models.BaseModel{ID: parentID}, Path: "/finance"}, nil)
		suite.mockRepo.EXPECT().GetByPath(suite.teamID, "/finance/reports").Return(nil, gorm.ErrRecordNotFound)
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.folderService.Create(suite.teamID, &service.CreateFolderRequest{Name: "Reports", ParentID: &parentID})
		assert.NoError(t, err)
		assert.Equal(t, "/finance/reports", resp.Path)
		assert.Equal(t, &parentID, resp.ParentID)
	})

	suite.T().Run("Duplicate path", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByPath(suite.teamID, "/finance").Return(&models.Folder{}, nil)

		_, err := suite.folderService.Create(suite.teamID, &service.CreateFolderRequest{Name: "Finance"})
		assert.Equal(t, apperrors.ErrFolderExists, err)
	})
}

// TestRename tests that renames keep the parent path
func (suite *FolderServiceTestSuite) TestRename() {
	id := uuid.New()
	folder := &models.Folder{BaseModel: models.BaseModel{ID: id}, TeamID: suite.teamID, Name: "Reports", Path: "/finance/reports"}
	suite.mockRepo.EXPECT().GetByID(suite.teamID, id).Return(folder, nil)
	suite.mockRepo.EXPECT().GetByPath(suite.teamID, "/finance/archive").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Rename(folder, "Archive", "/finance/archive").
		DoAndReturn(func(f *models.Folder, name, path string) error {
			f.Name, f.Path = name, path
			return nil
		})

	resp, err := suite.folderService.Rename(suite.teamID, id, &service.RenameFolderRequest{Name: "Archive"})

	suite.Require().NoError(err)
	suite.Equal("/finance/archive", resp.Path)
}

// TestDelete tests that only empty folders are deleted and their documents move to the root
func (suite *FolderServiceTestSuite) TestDelete() {
	id := uuid.New()

	suite.T().Run("Has sub-folders", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(suite.teamID, id).Return(&models.Folder{}, nil)
		suite.mockRepo.EXPECT().CountChildren(id).Return(int64(2), nil)

		assert.Equal(t, apperrors.ErrFolderNotEmpty, suite.folderService.Delete(suite.teamID, id))
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(suite.teamID, id).Return(&models.Folder{}, nil)
		suite.mockRepo.EXPECT().CountChildren(id).Return(int64(0), nil)
		suite.mockDocuments.EXPECT().MoveFolderToRoot(suite.teamID, id).Return(nil)
		suite.mockRepo.EXPECT().Delete(id).Return(nil)

		assert.NoError(t, suite.folderService.Delete(suite.teamID, id))
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(suite.teamID, id).Return(nil, gorm.ErrRecordNotFound)

		assert.Equal(t, apperrors.ErrFolderNotFound, suite.folderService.Delete(suite.teamID, id))
	})
}

// TestFolderServiceTestSuite runs the test suite
func TestFolderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FolderServiceTestSuite))
}
