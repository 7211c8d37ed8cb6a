package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/metrics"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/pkg/validator"
	"github.com/globe-engine/internal/usecase/dto"
)

// HoverPublisher принимает события подсветки для асинхронной доставки.
// Publish не должен блокировать.
type HoverPublisher interface {
	Publish(msg domain.HoverEventMessage) bool
}

// HoverUseCase - обработка запросов подсветки
type HoverUseCase struct {
	session *GlobeSession
	logger  *zap.Logger
	now     func() time.Time
}

// NewHoverUseCase - создание нового HoverUseCase
func NewHoverUseCase(session *GlobeSession, logger *zap.Logger) *HoverUseCase {
	return &HoverUseCase{session: session, logger: logger, now: time.Now}
}

// Query resolves the request into an intersection list and advances the tracker.
func (uc *HoverUseCase) Query(ctx context.Context, req dto.HoverRequest) (*dto.HoverResponse, error) {
	if req.Mode() != 1 {
		return nil, errors.ErrInvalidRequest.WithMessage("exactly one of ray, point or hits is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(validator.Fields(err))
	}

	var hits []domain.Intersection
	start := uc.now()
	switch {
	case req.Ray != nil:
		hits = uc.session.Regions().Pick(req.Ray.ToRay())
	case req.Point != nil:
		hits = uc.session.Regions().PickGeo(req.Point.ToGeo())
	default:
		hits = dto.ToIntersections(req.Hits)
	}
	metrics.PickDurationMs.Observe(float64(uc.now().Sub(start).Microseconds()) / 1000)

	events, state, err := uc.session.Hover(hits)
	if err != nil {
		return nil, err
	}

	metrics.HoverQueriesTotal.Inc()
	for _, e := range events {
		metrics.HoverTransitionsTotal.WithLabelValues(string(e.Type)).Inc()
	}
	if len(events) > 0 {
		uc.logger.Debug("Hover transition",
			zap.String("session_id", uc.session.ID().String()),
			zap.Int("events", len(events)),
			zap.String("current", state.Code))
	}

	if events == nil {
		events = []domain.HoverEvent{}
	}
	return &dto.HoverResponse{Events: events, State: state, Hits: hits}, nil
}

// Current - текущая подсветка
func (uc *HoverUseCase) Current() domain.HoverState {
	return uc.session.HoverState()
}

// ForwardHoverEvents subscribes publisher to the session's transitions. The
// returned disposer detaches it; Close on the session does the same.
func ForwardHoverEvents(session *GlobeSession, publisher HoverPublisher, logger *zap.Logger) (func(), error) {
	return session.Subscribe(func(e domain.HoverEvent) {
		msg := domain.HoverEventMessage{
			ID:        uuid.New(),
			SessionID: session.ID(),
			Type:      e.Type,
			Code:      e.Code,
			At:        time.Now().UTC(),
		}
		if !publisher.Publish(msg) {
			logger.Warn("Hover event dropped, publisher buffer full",
				zap.String("type", string(e.Type)),
				zap.String("code", e.Code))
		}
	})
}
