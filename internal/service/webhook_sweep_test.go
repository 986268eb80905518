package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/repository"
	"papermark-backend/internal/service"
	"papermark-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WebhookSweepTestSuite runs the retry sweep against a real database
type WebhookSweepTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.WebhookRepository
}

func (suite *WebhookSweepTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewWebhookRepository(suite.baseTestSuite.DB)
}

func (suite *WebhookSweepTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *WebhookSweepTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestOverlappingSweepsPostOnce tests that two sweeps over the same due delivery post it once
func (suite *WebhookSweepTestSuite) TestOverlappingSweepsPostOnce() {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	webhook := &models.Webhook{
		TeamID:   uuid.New(),
		Name:     "CRM",
		URL:      server.URL,
		Secret:   "whsec_test",
		Triggers: []string{models.EventLinkViewed},
		Enabled:  true,
	}
	suite.Require().NoError(suite.repo.Create(webhook))

	due := time.Now().Add(-time.Minute)
	delivery := &models.WebhookDelivery{
		WebhookID:     webhook.ID,
		Event:         models.EventLinkViewed,
		Payload:       []byte(`{"event":"link.viewed"}`),
		Status:        models.DeliveryStatusPending,
		Attempts:      1,
		NextAttemptAt: &due,
	}
	suite.Require().NoError(suite.repo.CreateDelivery(delivery))

	webhookService := service.NewWebhookService(suite.repo, nil, 5*time.Second, 3, validator.New())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := webhookService.RetryDue(context.Background())
			suite.NoError(err)
		}()
	}
	wg.Wait()

	suite.Equal(int32(1), hits.Load())

	stored, err := suite.repo.GetDelivery(delivery.ID)
	suite.Require().NoError(err)
	suite.Equal(models.DeliveryStatusSucceeded, stored.Status)
	suite.Equal(2, stored.Attempts)
	suite.Nil(stored.NextAttemptAt)
}

func TestWebhookSweepTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookSweepTestSuite))
}
