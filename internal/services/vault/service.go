package vault

//go:generate mockgen -destination=mock/mock_service.go -package=mockvault -source=service.go

import (
	"context"
	"sort"
	"strings"

	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
	"github.com/ninthworld/chargen/internal/repositories/sheets"
)

// Service is the character vault: finished sheets go in, and come back
// out by id or as a stable listing
type Service interface {
	// Store persists a finished sheet
	Store(ctx context.Context, sheet *character.Sheet) error

	// Fetch retrieves a sheet by id
	Fetch(ctx context.Context, id string) (*character.Sheet, error)

	// List returns every stored sheet, newest first
	List(ctx context.Context) ([]*character.Sheet, error)

	// Remove deletes a sheet by id
	Remove(ctx context.Context, id string) error
}

type service struct {
	repo sheets.Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository sheets.Repository
}

// NewService creates a vault service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil || cfg.Repository == nil {
		return nil, cherr.InvalidArgument("repository is required")
	}
	return &service{repo: cfg.Repository}, nil
}

func (s *service) Store(ctx context.Context, sheet *character.Sheet) error {
	if sheet == nil {
		return cherr.InvalidArgument("sheet is required")
	}
	if sheet.ID == "" {
		return cherr.InvalidArgument("sheet has no id")
	}
	return s.repo.Save(ctx, sheet)
}

func (s *service) Fetch(ctx context.Context, id string) (*character.Sheet, error) {
	if id == "" {
		return nil, cherr.InvalidArgument("id is required")
	}
	return s.repo.Get(ctx, id)
}

// List sorts by creation time, newest first, with name as a tiebreaker
// so backends with unordered listings stay deterministic
func (s *service) List(ctx context.Context) ([]*character.Sheet, error) {
	listed, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(listed, func(i, j int) bool {
		if !listed[i].CreatedAt.Equal(listed[j].CreatedAt) {
			return listed[i].CreatedAt.After(listed[j].CreatedAt)
		}
		return strings.ToLower(listed[i].Name) < strings.ToLower(listed[j].Name)
	})
	return listed, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if id == "" {
		return cherr.InvalidArgument("id is required")
	}
	return s.repo.Delete(ctx, id)
}
