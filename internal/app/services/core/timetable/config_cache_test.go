package timetable

import (
	"context"
	"testing"
	"time"

	"campushub-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) GetConfiguration(ctx context.Context) (*models.CollegeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeConfig), args.Error(1)
}

func (m *MockConfigRepository) SaveConfiguration(ctx context.Context, weeklySchedule, overrides map[string]string) (*models.CollegeConfig, error) {
	args := m.Called(ctx, weeklySchedule, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeConfig), args.Error(1)
}

func (m *MockConfigRepository) DeleteConfiguration(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestConfigCacheCell(t *testing.T) {
	config := buildTestConfig()

	t.Run("Second Read Within TTL Hits Cache", func(t *testing.T) {
		repo := new(MockConfigRepository)
		repo.On("GetConfiguration", mock.Anything).Return(config, nil).Once()

		current := time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)
		cache := NewConfigCacheCell(repo, 5*time.Minute, func() time.Time { return current })

		first, err := cache.Get(context.Background())
		assert.NoError(t, err)

		current = current.Add(4 * time.Minute)
		second, err := cache.Get(context.Background())
		assert.NoError(t, err)

		assert.Same(t, first, second)
		repo.AssertNumberOfCalls(t, "GetConfiguration", 1)
	})

	t.Run("Lapsed Entry Is Refetched", func(t *testing.T) {
		repo := new(MockConfigRepository)
		repo.On("GetConfiguration", mock.Anything).Return(config, nil)

		current := time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)
		cache := NewConfigCacheCell(repo, 5*time.Minute, func() time.Time { return current })

		_, err := cache.Get(context.Background())
		assert.NoError(t, err)

		current = current.Add(5 * time.Minute)
		_, err = cache.Get(context.Background())
		assert.NoError(t, err)

		repo.AssertNumberOfCalls(t, "GetConfiguration", 2)
	})

	t.Run("Invalidate Forces Refetch", func(t *testing.T) {
		repo := new(MockConfigRepository)
		repo.On("GetConfiguration", mock.Anything).Return(config, nil)

		current := time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)
		cache := NewConfigCacheCell(repo, 5*time.Minute, func() time.Time { return current })

		_, _ = cache.Get(context.Background())
		cache.Invalidate()
		_, _ = cache.Get(context.Background())

		repo.AssertNumberOfCalls(t, "GetConfiguration", 2)
	})

	t.Run("Unconfigured Singleton Is Cached", func(t *testing.T) {
		repo := new(MockConfigRepository)
		repo.On("GetConfiguration", mock.Anything).Return(nil, nil).Once()

		current := time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)
		cache := NewConfigCacheCell(repo, 5*time.Minute, func() time.Time { return current })

		result, err := cache.Get(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, result)

		result, err = cache.Get(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, result)
		repo.AssertNumberOfCalls(t, "GetConfiguration", 1)
	})

	t.Run("Repository Error Is Not Cached", func(t *testing.T) {
		repo := new(MockConfigRepository)
		repo.On("GetConfiguration", mock.Anything).Return(nil, assert.AnError)

		current := time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)
		cache := NewConfigCacheCell(repo, 5*time.Minute, func() time.Time { return current })

		_, err := cache.Get(context.Background())
		assert.Error(t, err)
		_, err = cache.Get(context.Background())
		assert.Error(t, err)
		repo.AssertNumberOfCalls(t, "GetConfiguration", 2)
	})
}
