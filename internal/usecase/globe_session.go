package usecase

import (
	"sync"

	"github.com/google/uuid"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/hitregion"
	"github.com/globe-engine/internal/hover"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/registry"
)

// GlobeSession - контекст одного глобуса: реестр, регионы, трекер подсветки и растр.
// Реестр, регионы и растр неизменяемы; HoverState меняет только трекер под mu.
type GlobeSession struct {
	id       uuid.UUID
	registry *registry.Registry
	regions  *hitregion.Set
	raster   *domain.RasterGrid
	rasterFP string

	mu        sync.Mutex
	tracker   *hover.Tracker
	disposers []func()
	closed    bool
	closeOnce sync.Once
}

// NewGlobeSession assembles a session. raster may be nil.
func NewGlobeSession(reg *registry.Registry, regions *hitregion.Set, raster *domain.RasterGrid) *GlobeSession {
	s := &GlobeSession{
		id:       uuid.New(),
		registry: reg,
		regions:  regions,
		raster:   raster,
		tracker:  hover.NewTracker(),
	}
	if raster != nil {
		s.rasterFP = raster.Fingerprint()
	}
	return s
}

func (s *GlobeSession) ID() uuid.UUID { return s.id }
func (s *GlobeSession) Registry() *registry.Registry { return s.registry }
func (s *GlobeSession) Regions() *hitregion.Set { return s.regions }
func (s *GlobeSession) Raster() *domain.RasterGrid { return s.raster }
func (s *GlobeSession) Options() hitregion.Options { return s.regions.Options() }

// RasterFingerprint is empty when no raster is attached.
func (s *GlobeSession) RasterFingerprint() string { return s.rasterFP }

// Hover feeds one intersection query result to the tracker.
func (s *GlobeSession) Hover(hits []domain.Intersection) ([]domain.HoverEvent, domain.HoverState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.HoverState{}, errors.ErrSessionClosed
	}
	events := s.tracker.Update(hits)
	return events, s.tracker.State(), nil
}

// HoverState returns the current highlight.
func (s *GlobeSession) HoverState() domain.HoverState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.State()
}

// Subscribe registers a hover listener. Listeners run under the session
// lock and must not call back into the session. The disposer is idempotent
// and also runs on Close.
func (s *GlobeSession) Subscribe(l hover.Listener) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.ErrSessionClosed
	}

	unsubscribe := s.tracker.Subscribe(l)
	var once sync.Once
	dispose := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			unsubscribe()
		})
	}
	s.disposers = append(s.disposers, unsubscribe)
	return dispose, nil
}

// Close clears the highlight (listeners receive the final unhighlight),
// then releases every registration. Only the first call has an effect.
func (s *GlobeSession) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.tracker.Reset()
		for _, d := range s.disposers {
			d()
		}
		s.disposers = nil
		s.closed = true
	})
}
