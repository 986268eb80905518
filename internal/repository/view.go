package repository

import (
	"database/sql"
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ViewRepository handles database operations for views and page views
type ViewRepository struct {
	db *gorm.DB
}

// Ensure ViewRepository implements ViewRepositoryInterface
var _ ViewRepositoryInterface = (*ViewRepository)(nil)

// NewViewRepository creates a new view repository
func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Create inserts a new view
func (r *ViewRepository) Create(view *models.View) error {
	return r.db.Create(view).Error
}

// GetByID retrieves a view by ID
func (r *ViewRepository) GetByID(id uuid.UUID) (*models.View, error) {
	var view models.View
	if err := r.db.First(&view, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

// GetByTeam retrieves a view of a team
func (r *ViewRepository) GetByTeam(teamID, id uuid.UUID) (*models.View, error) {
	var view models.View
	if err := r.db.First(&view, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

// MarkDownloaded stamps the download time of a view
func (r *ViewRepository) MarkDownloaded(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.View{}).Where("id = ?", id).Update("downloaded_at", at).Error
}

// SetArchived archives or restores a view
func (r *ViewRepository) SetArchived(id uuid.UUID, archived bool) error {
	result := r.db.Model(&models.View{}).Where("id = ?", id).Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByDocument retrieves the views of a document, newest first
func (r *ViewRepository) ListByDocument(teamID, documentID uuid.UUID, limit, offset int) ([]models.View, int64, error) {
	var views []models.View
	var total int64

	query := r.db.Model(&models.View{}).Where("team_id = ? AND document_id = ?", teamID, documentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("viewed_at DESC").Limit(limit).Offset(offset).Find(&views).Error; err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// ListByViewer retrieves the views of a viewer, newest first
func (r *ViewRepository) ListByViewer(teamID, viewerID uuid.UUID) ([]models.View, error) {
	var views []models.View
	err := r.db.Where("team_id = ? AND viewer_id = ?", teamID, viewerID).
		Order("viewed_at DESC").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// CountByLinks counts non-archived views per link
func (r *ViewRepository) CountByLinks(linkIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(linkIDs))
	if len(linkIDs) == 0 {
		return out, nil
	}
	var rows []countRow
	err := r.db.Model(&models.View{}).
		Select("link_id AS id, COUNT(*) AS count").
		Where("link_id IN ? AND is_archived = ?", linkIDs, false).
		Group("link_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out, nil
}

// CountByLink counts every view of a link, archived or not
func (r *ViewRepository) CountByLink(linkID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.View{}).Where("link_id = ?", linkID).Count(&count).Error
	return count, err
}

// DocumentTotals sums up the non-archived views of a document
func (r *ViewRepository) DocumentTotals(documentID uuid.UUID) (*DocumentViewTotals, error) {
	totals := &DocumentViewTotals{}
	base := func() *gorm.DB {
		return r.db.Model(&models.View{}).Where("document_id = ? AND is_archived = ?", documentID, false)
	}

	if err := base().Count(&totals.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := base().Where("viewer_email <> ?", "").
		Distinct("viewer_email").Count(&totals.UniqueViewers).Error; err != nil {
		return nil, err
	}
	if err := base().Where("downloaded_at IS NOT NULL").Count(&totals.TotalDownloads).Error; err != nil {
		return nil, err
	}

	var duration sql.NullInt64
	err := r.db.Model(&models.PageView{}).
		Select("SUM(page_views.duration_ms)").
		Joins("JOIN views ON views.id = page_views.view_id").
		Where("page_views.document_id = ? AND views.is_archived = ?", documentID, false).
		Row().Scan(&duration)
	if err != nil {
		return nil, err
	}
	totals.TotalDurationMs = duration.Int64
	return totals, nil
}

// CreatePageView inserts a page view
func (r *ViewRepository) CreatePageView(pageView *models.PageView) error {
	return r.db.Create(pageView).Error
}

// AggregateByViews rolls up page views per view
func (r *ViewRepository) AggregateByViews(viewIDs []uuid.UUID) (map[uuid.UUID]ViewAggregate, error) {
	out := make(map[uuid.UUID]ViewAggregate, len(viewIDs))
	if len(viewIDs) == 0 {
		return out, nil
	}
	var rows []ViewAggregate
	err := r.db.Model(&models.PageView{}).
		Select("view_id, SUM(duration_ms) AS total_duration_ms, COUNT(DISTINCT page_number) AS pages_viewed").
		Where("view_id IN ?", viewIDs).
		Group("view_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ViewID] = row
	}
	return out, nil
}

// AggregateByPage rolls up the page views of a document per page, ignoring archived views
func (r *ViewRepository) AggregateByPage(documentID uuid.UUID) ([]PageAggregate, error) {
	var rows []PageAggregate
	err := r.db.Model(&models.PageView{}).
		Select("page_views.page_number, AVG(page_views.duration_ms) AS avg_duration_ms, COUNT(DISTINCT page_views.view_id) AS views").
		Joins("JOIN views ON views.id = page_views.view_id").
		Where("page_views.document_id = ? AND views.is_archived = ?", documentID, false).
		Group("page_views.page_number").
		Order("page_views.page_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
