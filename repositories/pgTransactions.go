package repositories

import (
	"context"
	"fmt"

	"rental-api/db"
	"rental-api/entities"
)

type transactionPgRepository struct {
	*ownedPgRepository[entities.Transaction]
}

func NewTransactionPgRepository(database db.Database) TransactionRepository {
	return &transactionPgRepository{newOwnedPgRepository[entities.Transaction](database, "transaction")}
}

func (r *transactionPgRepository) Find(ctx context.Context, userID string, filter TransactionFilter) ([]entities.Transaction, error) {
	query := r.conn(ctx).Where("user_id = ?", userID)
	if filter.Month != "" {
		query = query.Where("date = ?", filter.Month)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	transactions := []entities.Transaction{}
	if err := query.Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	return transactions, nil
}
