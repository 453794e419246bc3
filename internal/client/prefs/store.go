// Package prefs holds user interface preferences, currently the font scale
// used by the accessibility controls. Preferences persist independently of
// the auth session and survive logout.
package prefs

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/iqranow/iqranow-cli/internal/client/repositories/state"
	"github.com/iqranow/iqranow-cli/internal/logging"
)

const (
	MinFontScale     = 0.8
	MaxFontScale     = 1.6
	DefaultFontScale = 1.0
	FontScaleStep    = 0.1
)

// ApplyFunc receives the effective font scale whenever it changes. The CLI
// reports it to the user; a graphical shell would set a rendering variable.
type ApplyFunc func(scale float64)

// Store is the font-scale preference store.
type Store struct {
	mu    sync.RWMutex
	scale float64

	repo  state.Repository
	log   logging.Logger
	apply ApplyFunc
}

// NewStore loads the persisted font scale and applies it. A missing or
// unparseable stored value falls back to DefaultFontScale rather than being
// coerced through the clamp to the minimum.
func NewStore(ctx context.Context, repo state.Repository, log logging.Logger, apply ApplyFunc) *Store {
	s := &Store{repo: repo, log: log, apply: apply}

	scale := DefaultFontScale
	if raw, err := repo.Get(ctx, state.KeyFontScale); err != nil {
		log.Warn(ctx, "failed to read font scale, using default", "error", err)
	} else if len(raw) > 0 {
		if v, perr := strconv.ParseFloat(string(raw), 64); perr == nil {
			scale = clamp(round2(v))
		} else {
			log.Warn(ctx, "invalid persisted font scale, using default", "value", string(raw))
		}
	}

	s.scale = scale
	if s.apply != nil {
		s.apply(scale)
	}
	return s
}

// FontScale returns the current effective scale.
func (s *Store) FontScale() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scale
}

// SetFontScale clamps x to [MinFontScale, MaxFontScale], rounds it to two
// decimals, persists it, applies it, and updates the in-memory value. The
// effective value is returned. Re-applying a previously returned value is a
// no-op with respect to the stored result.
func (s *Store) SetFontScale(ctx context.Context, x float64) (float64, error) {
	scale := clamp(round2(x))

	s.mu.Lock()
	s.scale = scale
	s.mu.Unlock()

	if s.apply != nil {
		s.apply(scale)
	}

	value := strconv.FormatFloat(scale, 'f', -1, 64)
	if err := s.repo.Set(ctx, state.KeyFontScale, []byte(value)); err != nil {
		return scale, fmt.Errorf("failed to persist font scale: %w", err)
	}
	return scale, nil
}

// Increase bumps the scale by one step.
func (s *Store) Increase(ctx context.Context) (float64, error) {
	return s.SetFontScale(ctx, s.FontScale()+FontScaleStep)
}

// Decrease lowers the scale by one step.
func (s *Store) Decrease(ctx context.Context) (float64, error) {
	return s.SetFontScale(ctx, s.FontScale()-FontScaleStep)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x float64) float64 {
	return math.Min(MaxFontScale, math.Max(MinFontScale, x))
}
