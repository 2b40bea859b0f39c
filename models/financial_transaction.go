package models

import "time"

// TransactionType gelir veya gider.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// TransactionCategory finansal hareketin kategorisidir.
type TransactionCategory string

const (
	TransactionCategoryDues        TransactionCategory = "DUES"
	TransactionCategoryParking     TransactionCategory = "PARKING"
	TransactionCategoryMaintenance TransactionCategory = "MAINTENANCE"
	TransactionCategoryUtilities   TransactionCategory = "UTILITIES"
	TransactionCategorySalary      TransactionCategory = "SALARY"
	TransactionCategoryOther       TransactionCategory = "OTHER"
)

// PaymentMethod ödeme yöntemidir.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodCheck        PaymentMethod = "CHECK"
)

// FinancialTransaction site kasasına giren veya çıkan tutardır.
type FinancialTransaction struct {
	BaseModel
	SiteID        uint                `gorm:"not null;index" json:"siteId"`
	Type          TransactionType     `gorm:"type:varchar(10);not null;index" json:"type"`
	Category      TransactionCategory `gorm:"type:varchar(20);not null;default:'OTHER';index" json:"category"`
	Amount        float64             `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date          time.Time           `gorm:"not null;index" json:"date"`
	PaymentMethod PaymentMethod       `gorm:"type:varchar(20);not null;default:'CASH'" json:"paymentMethod"`
	Description   string              `gorm:"type:varchar(500)" json:"description"`

	Site *Site `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
}
