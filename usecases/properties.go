package usecases

import (
	"context"
	"fmt"

	"rental-api/entities"
	"rental-api/repositories"

	"github.com/rs/zerolog"
)

// PropertyListLimit caps a property listing.
const PropertyListLimit = 100

// PropertyInput is the client-supplied part of a property.
type PropertyInput struct {
	Name     string
	Type     string
	ImageURL *string
}

type PropertyUseCase struct {
	repo repositories.PropertyRepository
	log  zerolog.Logger
}

func NewPropertyUseCase(repo repositories.PropertyRepository, log zerolog.Logger) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, log: log}
}

func (uc *PropertyUseCase) Create(ctx context.Context, userID string, in PropertyInput) (*entities.Property, error) {
	if in.Name == "" || in.Type == "" {
		return nil, fmt.Errorf("property name and type are required: %w", entities.ErrValidation)
	}
	prop := &entities.Property{UserID: userID, Name: in.Name, Type: in.Type, ImageURL: in.ImageURL}
	if err := uc.repo.Create(ctx, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

func (uc *PropertyUseCase) List(ctx context.Context, userID string) ([]entities.Property, error) {
	return uc.repo.List(ctx, userID, PropertyListLimit)
}

func (uc *PropertyUseCase) Get(ctx context.Context, userID, id string) (*entities.Property, error) {
	return uc.repo.Get(ctx, userID, id)
}

// Update replaces the whole record under its existing id. Like a fresh
// insert, the replacement gets a new created_at.
func (uc *PropertyUseCase) Update(ctx context.Context, userID, id string, in PropertyInput) (*entities.Property, error) {
	if in.Name == "" || in.Type == "" {
		return nil, fmt.Errorf("property name and type are required: %w", entities.ErrValidation)
	}
	prop := &entities.Property{ID: id, UserID: userID, Name: in.Name, Type: in.Type, ImageURL: in.ImageURL, CreatedAt: now()}
	if err := uc.repo.Replace(ctx, userID, id, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// Delete removes the property together with the owner's transactions on it.
func (uc *PropertyUseCase) Delete(ctx context.Context, userID, id string) error {
	removed, err := uc.repo.DeleteCascade(ctx, userID, id)
	if err != nil {
		return err
	}
	uc.log.Info().Str("user_id", userID).Str("property_id", id).Int64("transactions_removed", removed).Msg("property deleted")
	return nil
}
