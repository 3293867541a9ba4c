package weather

import (
	"context"
	"math/rand"
	"time"
)

// Provider fetches a current-conditions snapshot from some weather service.
type Provider interface {
	Current(ctx context.Context, loc Location, units Units) (Snapshot, error)
	Attribution() string
}

// SnapshotCache is the slice of the cache layer the client uses for
// degraded results. Nil disables caching.
type SnapshotCache interface {
	SaveWeather(snap Snapshot, loc Location) error
	LoadWeather(loc Location) (Snapshot, bool)
}

// Client periodically fetches weather and delivers snapshots on a channel.
// It never delivers errors: a failed fetch degrades to the cached snapshot
// when fresh, otherwise to generated offline weather. Absence of a value on
// the channel simply means no change yet.
type Client struct {
	provider Provider
	cache    SnapshotCache
	interval time.Duration
	loc      Location
	units    Units
	label    string
}

func NewClient(provider Provider, cache SnapshotCache, interval time.Duration, loc Location, units Units, label string) *Client {
	return &Client{
		provider: provider,
		cache:    cache,
		interval: interval,
		loc:      loc,
		units:    units,
		label:    label,
	}
}

// Run spawns the fetch loop and returns its delivery channel. The loop
// fetches immediately, delivers exactly one snapshot per attempt, then
// sleeps for the refresh interval. It exits when ctx is cancelled; the
// channel is closed on exit so a replaced receiver cannot observe stale
// sends. Location and units were captured at construction and are never
// written after this point.
func (c *Client) Run(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	go func() {
		defer close(ch)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for {
			snap := c.fetch(ctx, rng)
			if ctx.Err() != nil {
				return
			}
			snap.Location = c.label
			select {
			case ch <- snap:
			case <-ctx.Done():
				return
			}
			select {
			case <-time.After(c.interval):
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func (c *Client) fetch(ctx context.Context, rng *rand.Rand) Snapshot {
	snap, err := c.provider.Current(ctx, c.loc, c.units)
	if err == nil {
		if c.cache != nil {
			// Advisory only; a failed cache write must not disturb delivery.
			_ = c.cache.SaveWeather(snap, c.loc)
		}
		return snap
	}

	if c.cache != nil {
		if cached, ok := c.cache.LoadWeather(c.loc); ok {
			cached.Offline = true
			return cached
		}
	}
	return GenerateOffline(rng, time.Now())
}
