// Package generator builds typed rows from reference keys. Builders do no I/O:
// the pipeline fetches candidates, the generator draws, the pipeline inserts.
package generator

import (
	"errors"
	"time"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/faker"
	"github.com/Rana718/petseed/internal/weighted"
)

var (
	ErrInsufficientAddresses = errors.New("not enough residential addresses for customers")
	ErrNoCities              = errors.New("no cities to place addresses in")
	ErrNoSizes               = errors.New("no pet sizes available")
)

type Generator struct {
	cfg   *config.Config
	f     *faker.Faker
	now   func() time.Time
	metro map[int64]weighted.Distribution
}

type Option func(*Generator)

// WithClock sets the reference instant for pet ages.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New expects a validated cfg.
func New(cfg *config.Config, f *faker.Faker, opts ...Option) *Generator {
	g := &Generator{
		cfg:   cfg,
		f:     f,
		now:   time.Now,
		metro: cfg.Probabilities.MetroStates(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func pickOne[T any](f *faker.Faker, items []T) T {
	return items[f.Intn(len(items))]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
