package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

// ISiteRepository site veritabanı işlemleri için arayüz.
type ISiteRepository interface {
	IBaseRepository[models.Site]
	List(ctx context.Context, params queryparams.ListParams) ([]models.Site, error)
	FindDetail(ctx context.Context, id uint) (*models.Site, error)
}

type SiteRepository struct {
	*BaseRepository[models.Site]
}

func NewSiteRepository(db *gorm.DB) ISiteRepository {
	return &SiteRepository{BaseRepository: NewBaseRepository[models.Site](db)}
}

const siteSelect = `sites.*,
	(SELECT COUNT(*) FROM blocks WHERE blocks.site_id = sites.id AND blocks.is_active = ?) AS block_count,
	(SELECT COUNT(*) FROM common_areas WHERE common_areas.site_id = sites.id AND common_areas.is_active = ?) AS common_area_count,
	(SELECT COUNT(*) FROM issues WHERE issues.site_id = sites.id) AS issue_count,
	(SELECT COUNT(*) FROM inventory_items WHERE inventory_items.site_id = sites.id AND inventory_items.is_active = ?) AS asset_count`

// List aktif siteleri ada göre sıralı döndürür.
func (r *SiteRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.Site, error) {
	var sites []models.Site
	q := r.getDB(ctx).Model(&models.Site{}).
		Select(siteSelect, true, true, true).
		Where("sites.is_active = ?", true)
	q = applySearch(q, params.Search, "sites.name", "sites.city", "sites.district", "sites.address")
	err := q.Order("sites.name ASC").Order("sites.id ASC").Find(&sites).Error
	return sites, err
}

// FindDetail siteyi aktif bloklar ve ortak alanlarla getirir.
func (r *SiteRepository) FindDetail(ctx context.Context, id uint) (*models.Site, error) {
	var site models.Site
	err := r.getDB(ctx).
		Select(siteSelect, true, true, true).
		Preload("Blocks", activeOrdered("name ASC")).
		Preload("CommonAreas", activeOrdered("name ASC")).
		Where("sites.id = ?", id).
		First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

var _ ISiteRepository = (*SiteRepository)(nil)
