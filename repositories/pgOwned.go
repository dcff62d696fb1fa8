package repositories

import (
	"context"
	"errors"
	"fmt"

	"rental-api/db"
	"rental-api/entities"

	"gorm.io/gorm"
)

type ownedPgRepository[T any] struct {
	db   db.Database
	kind string
}

func newOwnedPgRepository[T any](database db.Database, kind string) *ownedPgRepository[T] {
	return &ownedPgRepository[T]{db: database, kind: kind}
}

func (r *ownedPgRepository[T]) conn(ctx context.Context) *gorm.DB {
	return r.db.GetDB().WithContext(ctx)
}

func (r *ownedPgRepository[T]) Create(ctx context.Context, record *T) error {
	if err := r.conn(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.kind, err)
	}
	return nil
}

func (r *ownedPgRepository[T]) List(ctx context.Context, userID string, limit int) ([]T, error) {
	records := []T{}
	query := r.conn(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	return records, nil
}

func (r *ownedPgRepository[T]) Get(ctx context.Context, userID, id string) (*T, error) {
	var record T
	err := r.conn(ctx).Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s %s: %w", r.kind, id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.kind, err)
	}
	return &record, nil
}

// Replace overwrites every column of the owned record with record. The caller
// sets record's id and owner to the matched values.
func (r *ownedPgRepository[T]) Replace(ctx context.Context, userID, id string, record *T) error {
	result := r.conn(ctx).Model(record).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").
		Updates(record)
	if result.Error != nil {
		return fmt.Errorf("replace %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", r.kind, id, entities.ErrNotFound)
	}
	return nil
}

func (r *ownedPgRepository[T]) Delete(ctx context.Context, userID, id string) error {
	result := r.conn(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(new(T))
	if result.Error != nil {
		return fmt.Errorf("delete %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", r.kind, id, entities.ErrNotFound)
	}
	return nil
}
