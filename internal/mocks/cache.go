package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bookmanager/pkg/cache"
)

// Cache mocks cache.Cache. A "fill" func passed as the first return value of
// Get is called with dest to simulate a hit.
type Cache struct {
	mock.Mock
}

var _ cache.Cache = (*Cache)(nil)

func (m *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	if fill, ok := args.Get(0).(func(dest interface{})); ok {
		fill(dest)
		return true, args.Error(1)
	}
	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *Cache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *Cache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
