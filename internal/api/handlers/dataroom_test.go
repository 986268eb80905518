package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"papermark-backend/internal/api/handlers"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"
	"papermark-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DataroomHandlerTestSuite defines the test suite for DataroomHandler
type DataroomHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDataroomServiceInterface
	mockLinks   *mocks.MockLinkServiceInterface
	handler     *handlers.DataroomHandler
	httpSuite   *testutils.HTTPTestSuite
	teamID      uuid.UUID
	dataroomID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DataroomHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDataroomServiceInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockLinkServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDataroomHandler(suite.mockService, suite.mockLinks)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.teamID = uuid.New()
	suite.dataroomID = uuid.New()

	datarooms := suite.httpSuite.Router.Group("/api/v1/teams/:teamId/datarooms", authenticateAs(uuid.New()))
	{
		datarooms.POST("", suite.handler.Create)
		datarooms.GET("", suite.handler.List)
		datarooms.GET("/:id", suite.handler.Get)
		datarooms.DELETE("/:id", suite.handler.Delete)
		datarooms.GET("/:id/contents", suite.handler.Contents)
		datarooms.POST("/:id/documents", suite.handler.AddDocuments)
		datarooms.PATCH("/:id/documents/:dataroomDocumentId", suite.handler.MoveDocument)
		datarooms.POST("/:id/folders", suite.handler.CreateFolder)
		datarooms.DELETE("/:id/folders/:folderId", suite.handler.DeleteFolder)
	}
}

// TearDownTest cleans up after each test
func (suite *DataroomHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DataroomHandlerTestSuite) url(format string, args ...interface{}) string {
	return fmt.Sprintf("/api/v1/teams/%s/datarooms", suite.teamID) + fmt.Sprintf(format, args...)
}

func (suite *DataroomHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		req := &service.CreateDataroomRequest{Name: "Series A", Description: "Diligence"}
		suite.mockService.EXPECT().Create(gomock.Any(), suite.teamID, req).Return(&service.DataroomResponse{
			ID:     suite.dataroomID,
			PID:    "dr_abc",
			TeamID: suite.teamID,
			Name:   "Series A",
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(""), req)

		var response service.DataroomResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, suite.dataroomID, response.ID)
		assert.Equal(t, "dr_abc", response.PID)
	})

	suite.T().Run("Plan limit", func(t *testing.T) {
		req := &service.CreateDataroomRequest{Name: "Another"}
		suite.mockService.EXPECT().Create(gomock.Any(), suite.teamID, req).Return(nil, apperrors.ErrDataroomLimit)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(""), req)
		testutils.AssertErrorResponse(t, recorder, http.StatusPaymentRequired, "")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(""), []byte("{"), map[string]string{"Content-Type": "application/json"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *DataroomHandlerTestSuite) TestListAndGet() {
	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().List(suite.teamID, 1, 20).Return(&service.DataroomListResponse{
			Datarooms: []service.DataroomResponse{{ID: suite.dataroomID, Name: "Series A"}},
			Total:     1,
			Page:      1,
			PageSize:  20,
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(""), nil)

		var response service.DataroomListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Datarooms, 1)
	})

	suite.T().Run("Get with counts", func(t *testing.T) {
		suite.mockService.EXPECT().Get(suite.teamID, suite.dataroomID).Return(&service.DataroomDetailResponse{
			DataroomResponse: service.DataroomResponse{ID: suite.dataroomID, Name: "Series A"},
			DocumentCount:    4,
			FolderCount:      2,
			LinkCount:        1,
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/%s", suite.dataroomID), nil)

		var response service.DataroomDetailResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(4), response.DocumentCount)
		assert.Equal(t, int64(2), response.FolderCount)
	})

	suite.T().Run("Get not found", func(t *testing.T) {
		suite.mockService.EXPECT().Get(suite.teamID, suite.dataroomID).Return(nil, apperrors.ErrDataroomNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/%s", suite.dataroomID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/bogus"), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid dataroom ID")
	})
}

func (suite *DataroomHandlerTestSuite) TestDelete() {
	suite.mockService.EXPECT().Delete(suite.teamID, suite.dataroomID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url("/%s", suite.dataroomID), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *DataroomHandlerTestSuite) TestContents() {
	folderID := uuid.New()

	suite.T().Run("Root", func(t *testing.T) {
		suite.mockService.EXPECT().ListContents(suite.teamID, suite.dataroomID, nil).Return(&service.DataroomContentsResponse{
			Folders:   []service.FolderResponse{{ID: folderID, Name: "Legal", Path: "/legal"}},
			Documents: []service.DataroomDocumentResponse{},
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/%s/contents", suite.dataroomID), nil)

		var response service.DataroomContentsResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Nil(t, response.FolderID)
		assert.Len(t, response.Folders, 1)
		assert.Equal(t, "/legal", response.Folders[0].Path)
	})

	suite.T().Run("Folder", func(t *testing.T) {
		suite.mockService.EXPECT().ListContents(suite.teamID, suite.dataroomID, &folderID).Return(&service.DataroomContentsResponse{
			FolderID: &folderID,
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/%s/contents?folder_id=%s", suite.dataroomID, folderID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid folder", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/%s/contents?folder_id=nope", suite.dataroomID), nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *DataroomHandlerTestSuite) TestDocuments() {
	documentID := uuid.New()
	entryID := uuid.New()

	suite.T().Run("Add", func(t *testing.T) {
		req := &service.AddDataroomDocumentsRequest{DocumentIDs: []uuid.UUID{documentID}}
		suite.mockService.EXPECT().AddDocuments(suite.teamID, suite.dataroomID, req).Return([]service.DataroomDocumentResponse{
			{ID: entryID, DataroomID: suite.dataroomID, DocumentID: documentID},
		}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/%s/documents", suite.dataroomID), req)

		var response []service.DataroomDocumentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, documentID, response[0].DocumentID)
	})

	suite.T().Run("Move to missing folder", func(t *testing.T) {
		folderID := uuid.New()
		req := &service.MoveDataroomDocumentRequest{FolderID: &folderID}
		suite.mockService.EXPECT().MoveDocument(suite.teamID, suite.dataroomID, entryID, req).Return(nil, apperrors.ErrDataroomFolderNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, suite.url("/%s/documents/%s", suite.dataroomID, entryID), req)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})
}

func (suite *DataroomHandlerTestSuite) TestFolders() {
	folderID := uuid.New()

	suite.T().Run("Create conflict", func(t *testing.T) {
		req := &service.CreateFolderRequest{Name: "Legal"}
		suite.mockService.EXPECT().CreateFolder(suite.teamID, suite.dataroomID, req).Return(nil, apperrors.ErrDataroomFolderExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/%s/folders", suite.dataroomID), req)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})

	suite.T().Run("Delete non-empty", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteFolder(suite.teamID, suite.dataroomID, folderID).Return(apperrors.ErrFolderNotEmpty)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url("/%s/folders/%s", suite.dataroomID, folderID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "sub-folders")
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteFolder(suite.teamID, suite.dataroomID, folderID).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url("/%s/folders/%s", suite.dataroomID, folderID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestDataroomHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DataroomHandlerTestSuite))
}
