package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"papermark-backend/internal/api/handlers"
	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"
	"papermark-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DocumentHandlerTestSuite defines the test suite for DocumentHandler
type DocumentHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockService  *mocks.MockDocumentServiceInterface
	mockLinks    *mocks.MockLinkServiceInterface
	handler      *handlers.DocumentHandler
	httpSuite    *testutils.HTTPTestSuite
	userID       uuid.UUID
	teamID       uuid.UUID
	maxUploadLen int64
}

// SetupTest sets up the test suite
func (suite *DocumentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDocumentServiceInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockLinkServiceInterface(suite.ctrl)
	suite.maxUploadLen = 1024
	suite.handler = handlers.NewDocumentHandler(suite.mockService, suite.mockLinks, suite.maxUploadLen)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()
	suite.teamID = uuid.New()

	team := suite.httpSuite.Router.Group("/api/v1/teams/:teamId", authenticateAs(suite.userID))
	{
		team.GET("/documents", suite.handler.List)
		team.POST("/documents", suite.handler.Upload)
		team.GET("/documents/:id", suite.handler.Get)
		team.DELETE("/documents/:id", suite.handler.Delete)
		team.GET("/documents/:id/links", suite.handler.ListLinks)
		team.POST("/documents/:id/versions/:version/promote", suite.handler.PromoteVersion)
		team.GET("/trash", suite.handler.ListTrash)
		team.DELETE("/trash/:id", suite.handler.Purge)
	}
}

// TearDownTest cleans up after each test
func (suite *DocumentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DocumentHandlerTestSuite) url(suffix string) string {
	return fmt.Sprintf("/api/v1/teams/%s%s", suite.teamID, suffix)
}

// multipartBody builds an upload form with a "file" part and extra fields
func multipartBody(t *testing.T, filename, contentType string, content []byte, fields map[string]string) ([]byte, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf.Bytes(), writer.FormDataContentType()
}

// TestUpload tests the multipart Upload handler
func (suite *DocumentHandlerTestSuite) TestUpload() {
	suite.T().Run("Success", func(t *testing.T) {
		folderID := uuid.New()
		body, contentType := multipartBody(t, "deck.pdf", "application/pdf", []byte("%PDF-1.7"), map[string]string{
			"name":      "Pitch deck",
			"folder_id": folderID.String(),
		})

		suite.mockService.EXPECT().
			Upload(gomock.Any(), suite.teamID, suite.userID, gomock.Any(), &service.UploadDocumentRequest{Name: "Pitch deck", FolderID: &folderID}).
			DoAndReturn(func(_ context.Context, teamID, _ uuid.UUID, file *service.UploadFile, req *service.UploadDocumentRequest) (*service.DocumentResponse, error) {
				assert.Equal(t, "deck.pdf", file.Filename)
				assert.Equal(t, "application/pdf", file.ContentType)
				assert.Equal(t, int64(8), file.Size)
				content, err := io.ReadAll(file.Content)
				assert.NoError(t, err)
				assert.Equal(t, "%PDF-1.7", string(content))
				return &service.DocumentResponse{ID: uuid.New(), TeamID: teamID, Name: req.Name, Type: models.DocumentTypePDF}, nil
			})

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url("/documents"), body,
			map[string]string{"Content-Type": contentType})

		var response service.DocumentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Pitch deck", response.Name)
	})

	suite.T().Run("Missing file", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/documents"), map[string]string{"name": "x"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "file is required")
	})

	suite.T().Run("Too large", func(t *testing.T) {
		body, contentType := multipartBody(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), 2048), nil)

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url("/documents"), body,
			map[string]string{"Content-Type": contentType})
		assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
	})

	suite.T().Run("Invalid folder", func(t *testing.T) {
		body, contentType := multipartBody(t, "deck.pdf", "application/pdf", []byte("x"), map[string]string{"folder_id": "nope"})

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url("/documents"), body,
			map[string]string{"Content-Type": contentType})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid folder_id")
	})

	suite.T().Run("Plan limit", func(t *testing.T) {
		body, contentType := multipartBody(t, "deck.pdf", "application/pdf", []byte("x"), nil)
		suite.mockService.EXPECT().Upload(gomock.Any(), suite.teamID, suite.userID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrDocumentLimit)

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url("/documents"), body,
			map[string]string{"Content-Type": contentType})
		assert.Equal(t, http.StatusPaymentRequired, recorder.Code)
	})
}

// TestList tests query parsing of the List handler
func (suite *DocumentHandlerTestSuite) TestList() {
	suite.T().Run("Root folder and search", func(t *testing.T) {
		suite.mockService.EXPECT().List(suite.teamID, &service.ListDocumentsQuery{
			Query:    "deck",
			RootOnly: true,
			Page:     1,
			PageSize: 20,
		}).Return(&service.DocumentListResponse{Total: 1, Page: 1, PageSize: 20}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/documents?q=deck&folder_id=root"), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Folder filter", func(t *testing.T) {
		folderID := uuid.New()
		suite.mockService.EXPECT().List(suite.teamID, &service.ListDocumentsQuery{
			FolderID: &folderID,
			Page:     2,
			PageSize: 10,
		}).Return(&service.DocumentListResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			suite.url("/documents?folder_id="+folderID.String()+"&page=2&page_size=10"), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestGetAndDelete tests single document lookups
func (suite *DocumentHandlerTestSuite) TestGetAndDelete() {
	id := uuid.New()

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().Get(suite.teamID, id).Return(nil, apperrors.ErrDocumentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/documents/"+id.String()), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Move to trash", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(suite.teamID, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url("/documents/"+id.String()), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Links include archived", func(t *testing.T) {
		suite.mockLinks.EXPECT().ListByDocument(suite.teamID, id, true).Return([]service.LinkResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/documents/"+id.String()+"/links?include_archived=true"), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestPromoteVersion tests version number parsing
func (suite *DocumentHandlerTestSuite) TestPromoteVersion() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().PromoteVersion(suite.teamID, id, 2).
			Return(&service.VersionResponse{DocumentID: id, VersionNumber: 2}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/documents/"+id.String()+"/versions/2/promote"), nil)

		var response service.VersionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 2, response.VersionNumber)
	})

	suite.T().Run("Invalid number", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/documents/"+id.String()+"/versions/0/promote"), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid version number")
	})
}

// TestTrash tests the trash handlers
func (suite *DocumentHandlerTestSuite) TestTrash() {
	id := uuid.New()

	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().ListTrash(suite.teamID).Return([]service.TrashItemResponse{{
			DocumentResponse: service.DocumentResponse{ID: id, Name: "Old deck"},
			DeletedAt:        "2026-10-01T00:00:00Z",
			PurgeAfter:       "2026-10-31T00:00:00Z",
		}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url("/trash"), nil)

		var response []service.TrashItemResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response, 1)
		assert.Equal(t, "Old deck", response[0].Name)
		assert.Equal(t, "2026-10-31T00:00:00Z", response[0].PurgeAfter)
	})

	suite.T().Run("Purge", func(t *testing.T) {
		suite.mockService.EXPECT().Purge(gomock.Any(), suite.teamID, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url("/trash/"+id.String()), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
