package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"

	// CategoryEnergy tags electricity bills.
	CategoryEnergy = "Luz"
)

// Transaction is a single income or expense entry. Date is the "YYYY-MM"
// reporting month and PropertyID is stored as given.
type Transaction struct {
	ID          string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string  `gorm:"type:varchar(36);index:idx_transactions_user_date;not null" json:"user_id"`
	PropertyID  string  `gorm:"type:text;index" json:"property_id"`
	Type        string  `gorm:"type:text" json:"type"`
	Category    *string `json:"category"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
	Date        string  `gorm:"type:text;index:idx_transactions_user_date" json:"date"`
	CreatedAt   string  `gorm:"type:varchar(64)" json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}

func (t *Transaction) OwnerID() string { return t.UserID }

// HasCategory reports whether the transaction carries a non-empty category.
func (t *Transaction) HasCategory() bool {
	return t.Category != nil && *t.Category != ""
}
