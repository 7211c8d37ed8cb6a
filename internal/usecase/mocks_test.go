package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/globe-engine/internal/domain"
)

// MockFeatureRepository is a mock of FeatureRepository
type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) List(ctx context.Context) ([]domain.Feature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

func (m *MockFeatureRepository) ListByCodes(ctx context.Context, codes []string) ([]domain.Feature, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

// MockCenterRepository is a mock of CenterRepository
type MockCenterRepository struct {
	mock.Mock
}

func (m *MockCenterRepository) Centers(ctx context.Context) (map[string]domain.SpherePoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SpherePoint), args.Error(1)
}

// MockRasterRepository is a mock of RasterRepository
type MockRasterRepository struct {
	mock.Mock
}

func (m *MockRasterRepository) Load(ctx context.Context) (*domain.RasterGrid, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RasterGrid), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetDensity(ctx context.Context, key domain.DensityKey) ([]domain.DensitySample, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DensitySample), args.Error(1)
}

func (m *MockCacheRepository) SetDensity(ctx context.Context, key domain.DensityKey, samples []domain.DensitySample, ttl time.Duration) error {
	args := m.Called(ctx, key, samples, ttl)
	return args.Error(0)
}

// fakePublisher records published messages and can simulate a full buffer
type fakePublisher struct {
	mu       sync.Mutex
	messages []domain.HoverEventMessage
	full     bool
}

func (p *fakePublisher) Publish(msg domain.HoverEventMessage) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.full {
		return false
	}
	p.messages = append(p.messages, msg)
	return true
}

func (p *fakePublisher) Messages() []domain.HoverEventMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.HoverEventMessage, len(p.messages))
	copy(out, p.messages)
	return out
}
