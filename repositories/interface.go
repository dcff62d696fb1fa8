package repositories

import (
	"context"

	"rental-api/entities"
)

// Owned is implemented by records that belong to a single user.
type Owned interface {
	OwnerID() string
}

// OwnedRepository is CRUD scoped by owner: every lookup, replace and delete
// matches on (id, user_id), so another user's record behaves as missing.
type OwnedRepository[T any] interface {
	Create(ctx context.Context, record *T) error
	List(ctx context.Context, userID string, limit int) ([]T, error)
	Get(ctx context.Context, userID, id string) (*T, error)
	Replace(ctx context.Context, userID, id string, record *T) error
	Delete(ctx context.Context, userID, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type PropertyRepository interface {
	OwnedRepository[entities.Property]
	// DeleteCascade removes the property and the owner's transactions that
	// reference it, atomically.
	DeleteCascade(ctx context.Context, userID, id string) (removedTransactions int64, err error)
}

// TransactionFilter narrows a ledger query. Empty fields match everything.
type TransactionFilter struct {
	Month      string
	Type       string
	Category   string
	PropertyID string
	Limit      int
}

type TransactionRepository interface {
	OwnedRepository[entities.Transaction]
	Find(ctx context.Context, userID string, filter TransactionFilter) ([]entities.Transaction, error)
}
