package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IBlockRepository interface {
	IBaseRepository[models.Block]
	List(ctx context.Context, params queryparams.ListParams) ([]models.Block, error)
	FindDetail(ctx context.Context, id uint) (*models.Block, error)
}

type BlockRepository struct {
	*BaseRepository[models.Block]
}

func NewBlockRepository(db *gorm.DB) IBlockRepository {
	return &BlockRepository{BaseRepository: NewBaseRepository[models.Block](db)}
}

const blockSelect = `blocks.*,
	(SELECT COUNT(*) FROM floors WHERE floors.block_id = blocks.id AND floors.is_active = ?) AS floor_count,
	(SELECT COUNT(*) FROM apartments JOIN floors ON floors.id = apartments.floor_id
		WHERE floors.block_id = blocks.id AND floors.is_active = ? AND apartments.is_active = ?) AS apartment_count,
	(SELECT COUNT(*) FROM issues WHERE issues.block_id = blocks.id) AS issue_count`

func (r *BlockRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.Block, error) {
	var blocks []models.Block
	q := r.getDB(ctx).Model(&models.Block{}).
		Select(blockSelect, true, true, true).
		Where("blocks.is_active = ?", true).
		Preload("Site")
	if params.SiteID != 0 {
		q = q.Where("blocks.site_id = ?", params.SiteID)
	}
	q = applySearch(q, params.Search, "blocks.name")
	err := q.Order("blocks.name ASC").Order("blocks.id ASC").Find(&blocks).Error
	return blocks, err
}

// FindDetail bloğu site, katlar ve dairelerle birlikte getirir.
func (r *BlockRepository) FindDetail(ctx context.Context, id uint) (*models.Block, error) {
	var block models.Block
	err := r.getDB(ctx).
		Select(blockSelect, true, true, true).
		Preload("Site").
		Preload("Floors", activeOrdered("number ASC")).
		Preload("Floors.Apartments", activeOrdered("number ASC")).
		Where("blocks.id = ?", id).
		First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

var _ IBlockRepository = (*BlockRepository)(nil)
