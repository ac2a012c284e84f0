package sheets

import (
	"context"
	"sync"

	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

// inMemoryRepository keeps encoded sheets in a map. Going through the
// codec on every call gives callers the same deep-copy isolation the
// real backends have.
type inMemoryRepository struct {
	mu     sync.RWMutex
	sheets map[string][]byte
}

// NewInMemoryRepository creates an in-memory sheet repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sheets: make(map[string][]byte),
	}
}

func (r *inMemoryRepository) Save(_ context.Context, sheet *character.Sheet) error {
	if sheet == nil {
		return cherr.InvalidArgument("sheet is required")
	}
	if sheet.ID == "" {
		return cherr.InvalidArgument("sheet has no id")
	}

	data, err := Encode(sheet)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[sheet.ID] = data
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*character.Sheet, error) {
	if id == "" {
		return nil, cherr.InvalidArgument("id is required")
	}

	r.mu.RLock()
	data, ok := r.sheets[id]
	r.mu.RUnlock()

	if !ok {
		return nil, cherr.NotFoundf("sheet %s not found", id)
	}
	return Decode(data)
}

func (r *inMemoryRepository) List(_ context.Context) ([]*character.Sheet, error) {
	r.mu.RLock()
	encoded := make([][]byte, 0, len(r.sheets))
	for _, data := range r.sheets {
		encoded = append(encoded, data)
	}
	r.mu.RUnlock()

	sheets := make([]*character.Sheet, 0, len(encoded))
	for _, data := range encoded {
		sheet, err := Decode(data)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return cherr.InvalidArgument("id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sheets[id]; !ok {
		return cherr.NotFoundf("sheet %s not found", id)
	}
	delete(r.sheets, id)
	return nil
}
