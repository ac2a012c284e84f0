package sheets

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

const sheetExt = ".toml"

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	Dir string
}

// fileRepository stores one TOML file per sheet under a directory.
// Writes go through a temp file and rename, so a crash mid-write never
// leaves a truncated sheet behind.
type fileRepository struct {
	dir string
}

// NewFileRepository creates a file-backed sheet repository, creating
// the directory if needed
func NewFileRepository(cfg *FileRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, cherr.InvalidArgument("directory is required")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, cherr.Wrapf(err, "failed to create %s", cfg.Dir)
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

func (r *fileRepository) path(id string) string {
	return filepath.Join(r.dir, id+sheetExt)
}

func (r *fileRepository) Save(_ context.Context, sheet *character.Sheet) error {
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

	tmp, err := os.CreateTemp(r.dir, "."+sheet.ID+"-*")
	if err != nil {
		return cherr.Wrap(err, "failed to create temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return cherr.Wrap(err, "failed to write sheet")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return cherr.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmp.Name(), r.path(sheet.ID)); err != nil {
		_ = os.Remove(tmp.Name())
		return cherr.Wrap(err, "failed to move sheet into place")
	}

	return nil
}

func (r *fileRepository) Get(_ context.Context, id string) (*character.Sheet, error) {
	if id == "" {
		return nil, cherr.InvalidArgument("id is required")
	}

	data, err := os.ReadFile(r.path(id))
	if os.IsNotExist(err) {
		return nil, cherr.NotFoundf("sheet %s not found", id)
	}
	if err != nil {
		return nil, cherr.Wrapf(err, "failed to read sheet %s", id)
	}

	return Decode(data)
}

func (r *fileRepository) List(ctx context.Context) ([]*character.Sheet, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, cherr.Wrapf(err, "failed to read %s", r.dir)
	}

	var sheets []*character.Sheet
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, sheetExt) || strings.HasPrefix(name, ".") {
			continue
		}

		sheet, err := r.Get(ctx, strings.TrimSuffix(name, sheetExt))
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

func (r *fileRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return cherr.InvalidArgument("id is required")
	}

	err := os.Remove(r.path(id))
	if os.IsNotExist(err) {
		return cherr.NotFoundf("sheet %s not found", id)
	}
	if err != nil {
		return cherr.Wrapf(err, "failed to delete sheet %s", id)
	}
	return nil
}
