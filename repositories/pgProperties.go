package repositories

import (
	"context"
	"fmt"

	"rental-api/db"
	"rental-api/entities"
)

type propertyPgRepository struct {
	*ownedPgRepository[entities.Property]
}

func NewPropertyPgRepository(database db.Database) PropertyRepository {
	return &propertyPgRepository{newOwnedPgRepository[entities.Property](database, "property")}
}

func (r *propertyPgRepository) DeleteCascade(ctx context.Context, userID, id string) (int64, error) {
	var removed int64
	err := r.db.Transaction(ctx, func(tx db.Database) error {
		if err := newOwnedPgRepository[entities.Property](tx, "property").Delete(ctx, userID, id); err != nil {
			return err
		}
		result := tx.GetDB().WithContext(ctx).
			Where("property_id = ? AND user_id = ?", id, userID).
			Delete(&entities.Transaction{})
		if result.Error != nil {
			return fmt.Errorf("delete property transactions: %w", result.Error)
		}
		removed = result.RowsAffected
		return nil
	})
	return removed, err
}
