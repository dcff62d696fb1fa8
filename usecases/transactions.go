package usecases

import (
	"context"
	"fmt"
	"time"

	"rental-api/entities"
	"rental-api/repositories"
)

// TransactionListLimit caps a ledger listing.
const TransactionListLimit = 1000

// TransactionInput is the client-supplied part of a transaction. Amount and
// date are stored as given; property id is not checked.
type TransactionInput struct {
	PropertyID  string
	Type        string
	Category    *string
	Amount      float64
	Description *string
	Date        string
}

type TransactionUseCase struct {
	repo repositories.TransactionRepository
}

func NewTransactionUseCase(repo repositories.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (uc *TransactionUseCase) Create(ctx context.Context, userID string, in TransactionInput) (*entities.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tx := in.record(userID)
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List returns the user's transactions, restricted to date == month when
// month is not empty.
func (uc *TransactionUseCase) List(ctx context.Context, userID, month string) ([]entities.Transaction, error) {
	return uc.repo.Find(ctx, userID, repositories.TransactionFilter{Month: month, Limit: TransactionListLimit})
}

func (uc *TransactionUseCase) Update(ctx context.Context, userID, id string, in TransactionInput) (*entities.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tx := in.record(userID)
	tx.ID = id
	tx.CreatedAt = now()
	if err := uc.repo.Replace(ctx, userID, id, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (uc *TransactionUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, userID, id)
}

func (in TransactionInput) validate() error {
	if in.PropertyID == "" || in.Type == "" || in.Date == "" {
		return fmt.Errorf("property_id, type and date are required: %w", entities.ErrValidation)
	}
	return nil
}

func (in TransactionInput) record(userID string) *entities.Transaction {
	return &entities.Transaction{
		UserID:      userID,
		PropertyID:  in.PropertyID,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
