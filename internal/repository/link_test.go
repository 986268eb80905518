package repository

import (
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// LinkRepositoryTestSuite tests the LinkRepository together with views and viewers
type LinkRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LinkRepository
	viewRepo      *ViewRepository
	viewerRepo    *ViewerRepository
	factories     *testutils.FactorySet
	teamID        uuid.UUID
	documentID    uuid.UUID
}

func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLinkRepository(suite.baseTestSuite.DB)
	suite.viewRepo = NewViewRepository(suite.baseTestSuite.DB)
	suite.viewerRepo = NewViewerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *LinkRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LinkRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.teamID = uuid.New()
	suite.documentID = uuid.New()
}

// TestAllowDenyListsRoundTrip tests the JSON serialized list columns
func (suite *LinkRepositoryTestSuite) TestAllowDenyListsRoundTrip() {
	link := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	link.AllowList = []string{"@acme.com", "bob@example.com"}
	link.DenyList = []string{"eve@acme.com"}
	suite.Require().NoError(suite.repo.Create(link))

	stored, err := suite.repo.GetByTeam(suite.teamID, link.ID)
	suite.NoError(err)
	suite.Equal([]string{"@acme.com", "bob@example.com"}, stored.AllowList)
	suite.Equal([]string{"eve@acme.com"}, stored.DenyList)
}

// TestFalseFlagsPersist tests that disabled gates and notifications are stored as false
func (suite *LinkRepositoryTestSuite) TestFalseFlagsPersist() {
	link := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	link.EmailProtected = false
	link.EnableNotification = false
	suite.Require().NoError(suite.repo.Create(link))

	stored, err := suite.repo.GetByID(link.ID)
	suite.Require().NoError(err)
	suite.False(stored.EmailProtected)
	suite.False(stored.EnableNotification)
	suite.False(stored.RequiresEmail())

	protected := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	protected.EmailProtected = true
	suite.Require().NoError(suite.repo.Create(protected))

	stored, err = suite.repo.GetByID(protected.ID)
	suite.Require().NoError(err)
	suite.True(stored.EmailProtected)
	suite.True(stored.EnableNotification)
}

// TestSlugUniqueness tests slug lookups per domain
func (suite *LinkRepositoryTestSuite) TestSlugUniqueness() {
	slug := "pitch"
	link := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	link.Slug = &slug
	link.DomainSlug = "docs.acme.com"
	suite.Require().NoError(suite.repo.Create(link))

	taken, err := suite.repo.SlugTaken("docs.acme.com", "pitch", nil)
	suite.NoError(err)
	suite.True(taken)

	taken, err = suite.repo.SlugTaken("docs.acme.com", "pitch", &link.ID)
	suite.NoError(err)
	suite.False(taken)

	taken, err = suite.repo.SlugTaken("other.com", "pitch", nil)
	suite.NoError(err)
	suite.False(taken)

	found, err := suite.repo.GetByDomainSlug("docs.acme.com", "pitch")
	suite.NoError(err)
	suite.Equal(link.ID, found.ID)
}

// TestListExcludesArchived tests archived filtering and per-link view counts
func (suite *LinkRepositoryTestSuite) TestListExcludesArchived() {
	active := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	archived := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	suite.Require().NoError(suite.repo.Create(active))
	suite.Require().NoError(suite.repo.Create(archived))
	suite.Require().NoError(suite.repo.SetArchived(archived.ID, true))

	links, err := suite.repo.ListByDocument(suite.teamID, suite.documentID, false)
	suite.NoError(err)
	suite.Len(links, 1)

	links, err = suite.repo.ListByDocument(suite.teamID, suite.documentID, true)
	suite.NoError(err)
	suite.Len(links, 2)

	suite.Require().NoError(suite.viewRepo.Create(suite.factories.View.ForLink(active, "a@acme.com")))
	suite.Require().NoError(suite.viewRepo.Create(suite.factories.View.ForLink(active, "b@acme.com")))
	counts, err := suite.viewRepo.CountByLinks([]uuid.UUID{active.ID, archived.ID})
	suite.NoError(err)
	suite.Equal(int64(2), counts[active.ID])
	suite.Equal(int64(0), counts[archived.ID])
}

// TestArchivedViewCounts tests that archived views leave analytics counts but still block deletion
func (suite *LinkRepositoryTestSuite) TestArchivedViewCounts() {
	link := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	suite.Require().NoError(suite.repo.Create(link))

	kept := suite.factories.View.ForLink(link, "a@acme.com")
	hidden := suite.factories.View.ForLink(link, "b@acme.com")
	suite.Require().NoError(suite.viewRepo.Create(kept))
	suite.Require().NoError(suite.viewRepo.Create(hidden))
	suite.Require().NoError(suite.viewRepo.SetArchived(hidden.ID, true))

	counts, err := suite.viewRepo.CountByLinks([]uuid.UUID{link.ID})
	suite.NoError(err)
	suite.Equal(int64(1), counts[link.ID])

	all, err := suite.viewRepo.CountByLink(link.ID)
	suite.NoError(err)
	suite.Equal(int64(2), all)
}

// TestDocumentTotalsAndPageAggregates tests the analytics rollups
func (suite *LinkRepositoryTestSuite) TestDocumentTotalsAndPageAggregates() {
	link := suite.factories.Link.ForDocument(suite.teamID, suite.documentID)
	suite.Require().NoError(suite.repo.Create(link))

	first := suite.factories.View.ForLink(link, "a@acme.com")
	second := suite.factories.View.ForLink(link, "a@acme.com")
	hidden := suite.factories.View.ForLink(link, "c@acme.com")
	hidden.IsArchived = true
	for _, v := range []*models.View{first, second, hidden} {
		suite.Require().NoError(suite.viewRepo.Create(v))
	}
	suite.Require().NoError(suite.viewRepo.MarkDownloaded(first.ID, time.Now()))

	pages := []models.PageView{
		{ViewID: first.ID, DocumentID: suite.documentID, PageNumber: 1, DurationMs: 1000},
		{ViewID: first.ID, DocumentID: suite.documentID, PageNumber: 2, DurationMs: 3000},
		{ViewID: second.ID, DocumentID: suite.documentID, PageNumber: 1, DurationMs: 3000},
		{ViewID: hidden.ID, DocumentID: suite.documentID, PageNumber: 1, DurationMs: 90000},
	}
	for i := range pages {
		suite.Require().NoError(suite.viewRepo.CreatePageView(&pages[i]))
	}

	totals, err := suite.viewRepo.DocumentTotals(suite.documentID)
	suite.NoError(err)
	suite.Equal(int64(2), totals.TotalViews)
	suite.Equal(int64(1), totals.UniqueViewers)
	suite.Equal(int64(1), totals.TotalDownloads)
	suite.Equal(int64(7000), totals.TotalDurationMs)

	perPage, err := suite.viewRepo.AggregateByPage(suite.documentID)
	suite.NoError(err)
	suite.Len(perPage, 2)
	suite.Equal(1, perPage[0].PageNumber)
	suite.InDelta(2000, perPage[0].AvgDurationMs, 0.01)
	suite.Equal(int64(2), perPage[0].Views)

	perView, err := suite.viewRepo.AggregateByViews([]uuid.UUID{first.ID})
	suite.NoError(err)
	suite.Equal(int64(4000), perView[first.ID].TotalDurationMs)
	suite.Equal(int64(2), perView[first.ID].PagesViewed)
}

// TestViewerUpsert tests that verification sticks once granted
func (suite *LinkRepositoryTestSuite) TestViewerUpsert() {
	first, err := suite.viewerRepo.Upsert(suite.teamID, "Visitor@Acme.com", false, nil)
	suite.NoError(err)
	suite.False(first.Verified)

	second, err := suite.viewerRepo.Upsert(suite.teamID, "visitor@acme.com", true, nil)
	suite.NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.True(second.Verified)

	third, err := suite.viewerRepo.Upsert(suite.teamID, "visitor@acme.com", false, nil)
	suite.NoError(err)
	suite.True(third.Verified)

	viewers, total, err := suite.viewerRepo.List(suite.teamID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(viewers, 1)
}

func TestLinkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LinkRepositoryTestSuite))
}
