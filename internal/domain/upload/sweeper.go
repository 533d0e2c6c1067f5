package upload

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/storage"
)

// Sweeper deletes stale uploads and results on a fixed interval
type Sweeper struct {
	stores   []*storage.LocalStorage
	maxAge   time.Duration
	interval time.Duration
}

// NewSweeper creates a sweeper over the given stores
func NewSweeper(maxAge, interval time.Duration, stores ...*storage.LocalStorage) *Sweeper {
	return &Sweeper{stores: stores, maxAge: maxAge, interval: interval}
}

// Run sweeps once immediately, then on every tick until the context ends
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	total := 0
	for _, store := range s.stores {
		n, err := store.CleanupExpired(s.maxAge)
		if err != nil {
			log.Error().Err(err).Str("dir", store.BasePath()).Msg("Cleanup sweep failed")
			continue
		}
		total += n
	}
	if total > 0 {
		log.Info().Int("removed", total).Msg("Stale files cleaned up")
	}
}
