package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

// TransactionTotal tür ve kategori bazında toplanmış tutardır.
type TransactionTotal struct {
	Type     models.TransactionType
	Category models.TransactionCategory
	Total    float64
	Count    int64
}

type ITransactionRepository interface {
	IBaseRepository[models.FinancialTransaction]
	List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.FinancialTransaction, error)
	FindDetail(ctx context.Context, id uint) (*models.FinancialTransaction, error)
	Totals(ctx context.Context, siteID uint, from, to *time.Time) ([]TransactionTotal, error)
}

type TransactionRepository struct {
	*BaseRepository[models.FinancialTransaction]
}

func NewTransactionRepository(db *gorm.DB) ITransactionRepository {
	return &TransactionRepository{BaseRepository: NewBaseRepository[models.FinancialTransaction](db)}
}

func (r *TransactionRepository) List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.FinancialTransaction, error) {
	var txs []models.FinancialTransaction
	q := r.getDB(ctx).Model(&models.FinancialTransaction{}).Preload("Site")
	if params.SiteID != 0 {
		q = q.Where("financial_transactions.site_id = ?", params.SiteID)
	}
	if params.Type != "" {
		q = q.Where("financial_transactions.type = ?", params.Type)
	}
	if params.Category != "" {
		q = q.Where("financial_transactions.category = ?", params.Category)
	}
	q = applyDateRange(q, "financial_transactions.date", from, to)
	q = applySearch(q, params.Search, "financial_transactions.description")
	err := q.Order("financial_transactions.date DESC").Order("financial_transactions.id DESC").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) FindDetail(ctx context.Context, id uint) (*models.FinancialTransaction, error) {
	var tx models.FinancialTransaction
	err := r.getDB(ctx).Preload("Site").First(&tx, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Totals işlemleri tür ve kategoriye göre toplar. siteID 0 ise tüm siteler.
func (r *TransactionRepository) Totals(ctx context.Context, siteID uint, from, to *time.Time) ([]TransactionTotal, error) {
	var rows []TransactionTotal
	q := r.getDB(ctx).Model(&models.FinancialTransaction{}).
		Select("type, category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count")
	if siteID != 0 {
		q = q.Where("site_id = ?", siteID)
	}
	q = applyDateRange(q, "date", from, to)
	err := q.Group("type, category").Order("type, category").Scan(&rows).Error
	return rows, err
}

var _ ITransactionRepository = (*TransactionRepository)(nil)
