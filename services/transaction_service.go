package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
)

const ErrTransactionNotFound NotFoundError = "finans kaydı bulunamadı"

const (
	transactionTypes      = "INCOME EXPENSE"
	transactionCategories = "DUES PARKING MAINTENANCE UTILITIES SALARY OTHER"
	paymentMethods        = "CASH BANK_TRANSFER CREDIT_CARD CHECK"
)

type TransactionInput struct {
	SiteID        uint    `json:"siteId" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category      string  `json:"category" validate:"omitempty,oneof=DUES PARKING MAINTENANCE UTILITIES SALARY OTHER"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=CASH BANK_TRANSFER CREDIT_CARD CHECK"`
	Description   string  `json:"description" validate:"max=500"`
}

type TransactionUpdateInput struct {
	SiteID        optional.Field[uint]    `json:"siteId"`
	Type          optional.Field[string]  `json:"type"`
	Category      optional.Field[string]  `json:"category"`
	Amount        optional.Field[float64] `json:"amount"`
	Date          optional.Field[string]  `json:"date"`
	PaymentMethod optional.Field[string]  `json:"paymentMethod"`
	Description   optional.Field[string]  `json:"description"`
}

// FinanceSummary bir site ve tarih aralığı için gelir-gider özetidir.
type FinanceSummary struct {
	SiteID     uint                                   `json:"siteId,omitempty"`
	Income     float64                                `json:"income"`
	Expense    float64                                `json:"expense"`
	Balance    float64                                `json:"balance"`
	Count      int64                                  `json:"count"`
	ByCategory map[models.TransactionCategory]float64 `json:"byCategory"`
	Incomes    map[models.TransactionCategory]float64 `json:"incomeByCategory"`
	Expenses   map[models.TransactionCategory]float64 `json:"expenseByCategory"`
}

type ITransactionService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.FinancialTransaction, error)
	Get(ctx context.Context, id uint) (*models.FinancialTransaction, error)
	Create(ctx context.Context, in TransactionInput) (*models.FinancialTransaction, error)
	Update(ctx context.Context, id uint, in TransactionUpdateInput) (*models.FinancialTransaction, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context, params queryparams.ListParams) (*FinanceSummary, error)
}

type TransactionService struct {
	repo     repositories.ITransactionRepository
	siteRepo repositories.ISiteRepository
}

func NewTransactionService(repo repositories.ITransactionRepository, siteRepo repositories.ISiteRepository) ITransactionService {
	return &TransactionService{repo: repo, siteRepo: siteRepo}
}

func (s *TransactionService) List(ctx context.Context, params queryparams.ListParams) ([]models.FinancialTransaction, error) {
	from, to, err := dateRange(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, params, from, to)
}

func (s *TransactionService) Get(ctx context.Context, id uint) (*models.FinancialTransaction, error) {
	tx, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrTransactionNotFound, "TransactionService.Get", id)
	}
	return tx, nil
}

func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (*models.FinancialTransaction, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.siteRepo, in.SiteID, ErrSiteInvalid); err != nil {
		return nil, err
	}
	date, err := parseDateInput("date", in.Date)
	if err != nil {
		return nil, err
	}
	tx := &models.FinancialTransaction{
		SiteID:        in.SiteID,
		Type:          models.TransactionType(in.Type),
		Category:      orDefault(models.TransactionCategory(in.Category), models.TransactionCategoryOther),
		Amount:        in.Amount,
		Date:          *date,
		PaymentMethod: orDefault(models.PaymentMethod(in.PaymentMethod), models.PaymentMethodCash),
		Description:   strings.TrimSpace(in.Description),
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		configslog.Log.Error("Finans kaydı oluşturulamadı", zap.Uint("site_id", in.SiteID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Update(ctx context.Context, id uint, in TransactionUpdateInput) (*models.FinancialTransaction, error) {
	changes := changeSet{}
	if in.SiteID.Set {
		if in.SiteID.Null {
			return nil, ErrSiteInvalid
		}
		if err := requireActiveParent(ctx, s.siteRepo, in.SiteID.Value, ErrSiteInvalid); err != nil {
			return nil, err
		}
		changes["site_id"] = in.SiteID.Value
	}
	if err := changes.enum("type", "type", in.Type, transactionTypes); err != nil {
		return nil, err
	}
	if err := changes.enum("category", "category", in.Category, transactionCategories); err != nil {
		return nil, err
	}
	if err := changes.enum("payment_method", "paymentMethod", in.PaymentMethod, paymentMethods); err != nil {
		return nil, err
	}
	if in.Amount.Present() && in.Amount.Value <= 0 {
		return nil, fmt.Errorf("%w: amount sıfırdan büyük olmalıdır", ErrInvalidInput)
	}
	if err := value(changes, "amount", "amount", in.Amount); err != nil {
		return nil, err
	}
	if err := changes.date("date", "date", in.Date, false); err != nil {
		return nil, err
	}
	changes.text("description", in.Description)

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrTransactionNotFound, "TransactionService.Update", id)
	}
	return s.Get(ctx, id)
}

// Delete finans kaydını kalıcı olarak siler.
func (s *TransactionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return notFoundOr(err, ErrTransactionNotFound, "TransactionService.Delete", id)
	}
	return nil
}

// Summary siteId ve tarih aralığına göre gelir, gider ve kategori toplamlarını hesaplar.
func (s *TransactionService) Summary(ctx context.Context, params queryparams.ListParams) (*FinanceSummary, error) {
	from, to, err := dateRange(params)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.Totals(ctx, params.SiteID, from, to)
	if err != nil {
		configslog.Log.Error("Finans özeti alınamadı", zap.Uint("site_id", params.SiteID), zap.Error(err))
		return nil, err
	}
	summary := &FinanceSummary{
		SiteID:     params.SiteID,
		ByCategory: map[models.TransactionCategory]float64{},
		Incomes:    map[models.TransactionCategory]float64{},
		Expenses:   map[models.TransactionCategory]float64{},
	}
	for _, t := range totals {
		summary.Count += t.Count
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.Income += t.Total
			summary.Incomes[t.Category] += t.Total
			summary.ByCategory[t.Category] += t.Total
		case models.TransactionTypeExpense:
			summary.Expense += t.Total
			summary.Expenses[t.Category] += t.Total
			summary.ByCategory[t.Category] -= t.Total
		}
	}
	summary.Income = roundCents(summary.Income)
	summary.Expense = roundCents(summary.Expense)
	summary.Balance = roundCents(summary.Income - summary.Expense)
	return summary, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ ITransactionService = (*TransactionService)(nil)
