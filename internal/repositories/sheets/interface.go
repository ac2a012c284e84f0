package sheets

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksheets -source=interface.go

import (
	"context"

	"github.com/ninthworld/chargen/internal/domain/character"
)

// Repository stores finished character sheets
type Repository interface {
	// Save persists a sheet under its ID
	Save(ctx context.Context, sheet *character.Sheet) error

	// Get retrieves a sheet by ID
	Get(ctx context.Context, id string) (*character.Sheet, error)

	// List returns every stored sheet
	List(ctx context.Context) ([]*character.Sheet, error)

	// Delete removes a sheet by ID
	Delete(ctx context.Context, id string) error
}
