package watcher

import (
	"context"

	"github.com/robfig/cron/v3"
)

// startSchedule runs the optional cron schedule for periodic full sweeps.
// It catches files the event path missed, which happens on network mounts
// and after downtime.
func (w *Watcher) startSchedule(ctx context.Context) {
	w.mu.RLock()
	spec := w.schedule
	w.mu.RUnlock()

	if spec == "" {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() { w.request("schedule") }); err != nil {
		w.log.Error("watcher: invalid sweep schedule", "schedule", spec, "error", err)
		return
	}
	c.Start()
	w.log.Info("watcher: sweep schedule active", "schedule", spec)

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
}
