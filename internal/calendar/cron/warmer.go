package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CacheWarmer re-primes the project-list cache on a schedule so dashboard
// loads after an invalidation hit Redis instead of the store.
type CacheWarmer struct {
	warm func(context.Context) error
	spec string
	c    *cron.Cron
}

// NewCacheWarmer creates a warmer running warm on the given cron spec
// (standard 5-field format or @every syntax).
func NewCacheWarmer(spec string, warm func(context.Context) error) *CacheWarmer {
	return &CacheWarmer{warm: warm, spec: spec}
}

// Start registers and starts the cron job.
func (w *CacheWarmer) Start() error {
	w.c = cron.New()
	_, err := w.c.AddFunc(w.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := w.warm(ctx); err != nil {
			log.Printf("cache warm failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	log.Printf("cache warmer started (spec %q)", w.spec)
	w.c.Start()
	return nil
}

// Stop halts the scheduler; running jobs finish on their own.
func (w *CacheWarmer) Stop() {
	if w.c != nil {
		w.c.Stop()
	}
}
