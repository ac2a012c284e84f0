package sheets

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

const (
	sheetKeyPrefix = "sheet:"
	sheetIndexKey  = "sheets"

	listConcurrency = 8
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository stores encoded sheets under sheet:<id> with a set
// index for listing
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed sheet repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, cherr.InvalidArgument("redis client is required")
	}

	return &redisRepository{client: cfg.Client}, nil
}

func sheetKey(id string) string {
	return sheetKeyPrefix + id
}

func (r *redisRepository) Save(ctx context.Context, sheet *character.Sheet) error {
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

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sheetKey(sheet.ID), data, 0)
	pipe.SAdd(ctx, sheetIndexKey, sheet.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return cherr.Wrapf(err, "failed to save sheet %s", sheet.ID)
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*character.Sheet, error) {
	if id == "" {
		return nil, cherr.InvalidArgument("id is required")
	}

	data, err := r.client.Get(ctx, sheetKey(id)).Bytes()
	if err == redis.Nil {
		return nil, cherr.NotFoundf("sheet %s not found", id)
	}
	if err != nil {
		return nil, cherr.Wrapf(err, "failed to get sheet %s", id)
	}

	return Decode(data)
}

func (r *redisRepository) List(ctx context.Context) ([]*character.Sheet, error) {
	ids, err := r.client.SMembers(ctx, sheetIndexKey).Result()
	if err != nil {
		return nil, cherr.Wrap(err, "failed to list sheet ids")
	}

	sheets := make([]*character.Sheet, 0, len(ids))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(listConcurrency)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			sheet, err := r.Get(ctx, id)
			if cherr.IsNotFound(err) {
				// index entry outlived its sheet; skip it
				return nil
			}
			if err != nil {
				return err
			}

			mu.Lock()
			sheets = append(sheets, sheet)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return sheets, nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return cherr.InvalidArgument("id is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, sheetKey(id))
	pipe.SRem(ctx, sheetIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return cherr.Wrapf(err, "failed to delete sheet %s", id)
	}

	if del.Val() == 0 {
		return cherr.NotFoundf("sheet %s not found", id)
	}
	return nil
}
