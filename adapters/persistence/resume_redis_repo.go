package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

const maxReplaceAttempts = 3

// redisResumeRepo stores each resume as a JSON string under its own key and
// keeps a sorted set of ids scored by updatedAt (unix micros) for List.
type redisResumeRepo struct {
	rdb       *redis.Client
	keyPrefix string
	logger    logger.Logger
}

func NewRedisResumeRepo(rdb *redis.Client, keyPrefix string, logger logger.Logger) resume.Repository {
	return &redisResumeRepo{rdb: rdb, keyPrefix: keyPrefix, logger: logger}
}

func (r *redisResumeRepo) docKey(id uuid.UUID) string {
	return r.documentKey(id.String())
}

// documentKey builds the key from an id already in string form, as read back
// from the sorted set.
func (r *redisResumeRepo) documentKey(id string) string {
	return fmt.Sprintf("%s:resume:%s", r.keyPrefix, id)
}

func (r *redisResumeRepo) indexKey() string {
	return r.keyPrefix + ":resumes:by_updated"
}

func updatedScore(res *resume.Resume) redis.Z {
	return redis.Z{Score: float64(res.UpdatedAt.UnixMicro()), Member: res.ID.String()}
}

func (r *redisResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	data, err := json.Marshal(res)
	if err != nil {
		return apperror.NewInternal("failed to marshal resume", err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(res.ID), data, 0)
		pipe.ZAdd(ctx, r.indexKey(), updatedScore(res))
		return nil
	})
	if err != nil {
		return apperror.NewInternal("failed to save resume", err)
	}
	return nil
}

func (r *redisResumeRepo) Replace(ctx context.Context, res *resume.Resume) (*resume.Resume, error) {
	key := r.docKey(res.ID)
	var stored *resume.Resume

	replace := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return apperror.NewNotFound("Resume", res.ID.String())
		}
		if err != nil {
			return apperror.NewInternal("failed to read resume for replace", err)
		}
		var existing resume.Resume
		if err := json.Unmarshal(raw, &existing); err != nil {
			return apperror.NewInternal("failed to decode stored resume", err)
		}

		next := cloneResume(res)
		next.CreatedAt = existing.CreatedAt
		next.UpdatedAt = resume.NextUpdatedAt(existing.UpdatedAt, res.UpdatedAt)
		data, err := json.Marshal(next)
		if err != nil {
			return apperror.NewInternal("failed to marshal resume", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZAdd(ctx, r.indexKey(), updatedScore(next))
			return nil
		})
		if err != nil {
			return err
		}
		stored = next
		return nil
	}

	// A concurrent writer invalidates the WATCH; the retry makes the later write
	// win instead of failing.
	for attempt := 0; attempt < maxReplaceAttempts; attempt++ {
		err := r.rdb.Watch(ctx, replace, key)
		if err == nil {
			return stored, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.NewInternal("failed to replace resume", err)
	}
	return nil, apperror.NewInternal("failed to replace resume", redis.TxFailedErr)
}

func (r *redisResumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.docKey(id))
		pipe.ZRem(ctx, r.indexKey(), id.String())
		return nil
	})
	if err != nil {
		return apperror.NewInternal("failed to delete resume", err)
	}
	if del.Val() == 0 {
		return apperror.NewNotFound("Resume", id.String())
	}
	return nil
}

func (r *redisResumeRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	raw, err := r.rdb.Get(ctx, r.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.NewNotFound("Resume", id.String())
	}
	if err != nil {
		return nil, apperror.NewInternal("failed to get resume", err)
	}

	var res resume.Resume
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, apperror.NewInternal("failed to decode resume", err)
	}
	return &res, nil
}

func (r *redisResumeRepo) List(ctx context.Context) ([]*resume.Resume, error) {
	ids, err := r.rdb.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, apperror.NewInternal("failed to read resume index", err)
	}
	resumes := make([]*resume.Resume, 0, len(ids))
	if len(ids) == 0 {
		return resumes, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.documentKey(id)
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperror.NewInternal("failed to load resumes", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// index entry without a document; a delete raced this read
			continue
		}
		var res resume.Resume
		if err := json.Unmarshal([]byte(s), &res); err != nil {
			r.logger.Warn("Skipping undecodable resume", zap.String("resume_id", ids[i]), zap.Error(err))
			continue
		}
		resumes = append(resumes, &res)
	}
	return resumes, nil
}
