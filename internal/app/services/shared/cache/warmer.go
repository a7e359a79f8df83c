package cache

import (
	"context"
	"time"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// warmupLockTTL bounds how long one instance owns a warmup round and how long
// a round may run. The lock is left to expire so other instances skip rounds
// scheduled inside the window.
const warmupLockTTL = time.Minute

// tombstoneTTL outlives any round that took its snapshot before the write.
const tombstoneTTL = 2 * warmupLockTTL

// Warmer periodically copies every doctor from the store into Redis so
// lookups after a restart or an eviction are served from the cache.
type Warmer struct {
	Doctors contracts.DoctorRepository
	Redis   contracts.RedisRepository
	TTL     time.Duration
	Spec    string
	Log     *zap.Logger

	cron   *cron.Cron
	cancel context.CancelFunc
}

// NewWarmer expects the undecorated doctor store, not the caching one.
func NewWarmer(doctors contracts.DoctorRepository, redisRepository contracts.RedisRepository, ttl time.Duration, spec string, logger *zap.Logger) *Warmer {
	return &Warmer{
		Doctors: doctors,
		Redis:   redisRepository,
		TTL:     ttl,
		Spec:    spec,
		Log:     logger,
	}
}

func (w *Warmer) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	c := cron.New()
	_, err := c.AddFunc(w.Spec, func() { w.run(runCtx) })
	if err != nil {
		w.Log.Warn("doctorWarmer.Start invalid cron spec, falling back to default",
			zap.String(constvars.LoggingCronSpecKey, w.Spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.DefaultDoctorWarmupCronSpec, func() { w.run(runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels an in-flight round and waits for it to return.
func (w *Warmer) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Warmer) run(ctx context.Context) {
	warmed, err := w.RunOnce(ctx)
	if err != nil {
		w.Log.Warn("doctorWarmer.run failed", zap.Error(err))
		return
	}
	w.Log.Info("doctorWarmer.run succeeded", zap.Int(constvars.LoggingDoctorCountKey, warmed))
}

// RunOnce returns how many doctors were written. It writes nothing when
// another instance holds the warmup lock, and skips doctors updated or deleted
// since the snapshot was taken.
func (w *Warmer) RunOnce(ctx context.Context) (int, error) {
	acquired, err := w.Redis.TrySetNX(ctx, constvars.RedisDoctorWarmupLockKey, uuid.NewString(), warmupLockTTL)
	if err != nil {
		return 0, err
	}
	if !acquired {
		w.Log.Info("doctorWarmer.RunOnce skipped, lock held by another instance",
			zap.String(constvars.LoggingRedisKey, constvars.RedisDoctorWarmupLockKey),
		)
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, warmupLockTTL)
	defer cancel()

	doctors, err := w.Doctors.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	warmed := 0
	for i := range doctors {
		if ctx.Err() != nil {
			return warmed, ctx.Err()
		}
		doctorID := doctors[i].ID
		if w.stale(ctx, doctorID) {
			continue
		}

		key := doctorKey(doctorID)
		err = w.Redis.Set(ctx, key, &doctors[i], w.TTL)
		if err != nil {
			w.Log.Warn("doctorWarmer.RunOnce redis set failed",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
			continue
		}

		// A write may have evicted the key between the check and the Set.
		if w.stale(ctx, doctorID) {
			err = w.Redis.Delete(ctx, key)
			if err != nil {
				w.Log.Warn("doctorWarmer.RunOnce redis delete failed",
					zap.String(constvars.LoggingRedisKey, key),
					zap.Error(err),
				)
			}
			continue
		}
		warmed++
	}
	return warmed, nil
}

// stale reports whether the doctor carries a tombstone. An unreadable
// tombstone counts as stale.
func (w *Warmer) stale(ctx context.Context, doctorID int64) bool {
	key := tombstoneKey(doctorID)
	marker, err := w.Redis.Get(ctx, key)
	if err != nil {
		w.Log.Warn("doctorWarmer.stale redis get failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return true
	}
	return marker != ""
}
