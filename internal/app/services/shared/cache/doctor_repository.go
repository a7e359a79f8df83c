package cache

import (
	"context"
	"fmt"
	"time"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// doctorRepository serves FindByID from Redis and falls back to the wrapped
// store. Writes go to the store first, then mark the doctor stale and drop
// the cached copy. Redis faults are logged and never fail the call.
type doctorRepository struct {
	contracts.DoctorRepository
	Redis contracts.RedisRepository
	TTL   time.Duration
	Log   *zap.Logger
}

func NewDoctorRepository(next contracts.DoctorRepository, redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.DoctorRepository {
	return &doctorRepository{
		DoctorRepository: next,
		Redis:            redisRepository,
		TTL:              ttl,
		Log:              logger,
	}
}

func doctorKey(doctorID int64) string {
	return fmt.Sprintf(constvars.RedisDoctorKeyFormat, doctorID)
}

func tombstoneKey(doctorID int64) string {
	return fmt.Sprintf(constvars.RedisDoctorTombstoneKeyFormat, doctorID)
}

func (r *doctorRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	key := doctorKey(doctorID)

	cached, err := r.Redis.Get(ctx, key)
	if err != nil {
		r.Log.Warn("doctorCache.FindByID redis get failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	} else if cached != "" {
		var doctor models.Doctor
		err = json.Unmarshal([]byte(cached), &doctor)
		if err == nil {
			return &doctor, nil
		}
		r.Log.Warn("doctorCache.FindByID discarding unreadable entry",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}

	doctor, err := r.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		return doctor, err
	}

	err = r.Redis.Set(ctx, key, doctor, r.TTL)
	if err != nil {
		r.Log.Warn("doctorCache.FindByID redis set failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	err := r.DoctorRepository.Update(ctx, doctor)
	if err != nil {
		return err
	}
	r.evict(ctx, doctor.ID)
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, doctorID int64) error {
	err := r.DoctorRepository.Delete(ctx, doctorID)
	if err != nil {
		return err
	}
	r.evict(ctx, doctorID)
	return nil
}

// evict writes the tombstone before deleting the entry so a warmup round
// holding an older snapshot can tell its copy is stale.
func (r *doctorRepository) evict(ctx context.Context, doctorID int64) {
	stale := tombstoneKey(doctorID)
	err := r.Redis.Set(ctx, stale, time.Now().Unix(), tombstoneTTL)
	if err != nil {
		r.Log.Warn("doctorCache.evict redis tombstone failed",
			zap.String(constvars.LoggingRedisKey, stale),
			zap.Error(err),
		)
	}

	key := doctorKey(doctorID)
	err = r.Redis.Delete(ctx, key)
	if err != nil {
		r.Log.Warn("doctorCache.evict redis delete failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}
