package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/levelupbd/LevelBoost_Go/internal/domain"
)

// MockRepository implements repository.Settings for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCalculationSettings(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockRepository) GetFeeRules(ctx context.Context) ([]domain.LevelFeeRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LevelFeeRule), args.Error(1)
}

// fakeClock is a manually advanced clock
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func storedValues() map[string]float64 {
	return map[string]float64{
		domain.SettingExpPerHour:      12000,
		domain.SettingBaseCostPerHour: 0.25,
	}
}

func storedRules() []domain.LevelFeeRule {
	return []domain.LevelFeeRule{
		{ID: "r1", FromLevel: 60, ToLevel: 69, AdditionalFeeUSD: 5},
	}
}

func TestGetSettings_FetchesAndCaches(t *testing.T) {
	mockRepo := &MockRepository{}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewServiceWithClock(mockRepo, CacheTTL, clock.Now)
	ctx := context.Background()

	mockRepo.On("GetCalculationSettings", mock.Anything).Return(storedValues(), nil).Once()
	mockRepo.On("GetFeeRules", mock.Anything).Return(storedRules(), nil).Once()

	got := svc.GetSettings(ctx, false)
	assert.Equal(t, 12000.0, got.ExpPerHour)
	assert.Equal(t, 0.25, got.BaseCostPerHourUSD)

	// Within the TTL the repository must not be hit again
	clock.Advance(CacheTTL - time.Second)
	_ = svc.GetSettings(ctx, false)
	_ = svc.GetFeeRules(ctx, false)
	mockRepo.AssertExpectations(t)
}

func TestGetSettings_RefetchesAfterTTL(t *testing.T) {
	mockRepo := &MockRepository{}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewServiceWithClock(mockRepo, CacheTTL, clock.Now)
	ctx := context.Background()

	mockRepo.On("GetCalculationSettings", mock.Anything).Return(storedValues(), nil).Twice()
	mockRepo.On("GetFeeRules", mock.Anything).Return(storedRules(), nil).Twice()

	_ = svc.GetSettings(ctx, false)
	clock.Advance(CacheTTL + time.Second)
	_ = svc.GetSettings(ctx, false)

	mockRepo.AssertExpectations(t)
}

func TestGetSettings_ForceRefreshBypassesCache(t *testing.T) {
	mockRepo := &MockRepository{}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewServiceWithClock(mockRepo, CacheTTL, clock.Now)
	ctx := context.Background()

	mockRepo.On("GetCalculationSettings", mock.Anything).Return(storedValues(), nil).Twice()
	mockRepo.On("GetFeeRules", mock.Anything).Return(storedRules(), nil).Twice()

	_ = svc.GetSettings(ctx, false)
	_ = svc.GetSettings(ctx, true)

	mockRepo.AssertExpectations(t)
}

func TestGetSettings_KeepsPreviousSnapshotOnFailure(t *testing.T) {
	mockRepo := &MockRepository{}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewServiceWithClock(mockRepo, CacheTTL, clock.Now)
	ctx := context.Background()

	mockRepo.On("GetCalculationSettings", mock.Anything).Return(storedValues(), nil).Once()
	mockRepo.On("GetFeeRules", mock.Anything).Return(storedRules(), nil).Once()

	first := svc.GetSettings(ctx, false)
	require.Equal(t, 12000.0, first.ExpPerHour)

	// Store goes down after the first fetch
	mockRepo.On("GetCalculationSettings", mock.Anything).Return(nil, errors.New("connection refused"))

	clock.Advance(CacheTTL + time.Minute)
	second := svc.GetSettings(ctx, false)
	assert.Equal(t, first, second, "previous snapshot survives a failed refresh")

	rules := svc.GetFeeRules(ctx, false)
	assert.Equal(t, storedRules(), rules)
}

func TestGetSettings_FallbackWhenNeverFetched(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetCalculationSettings", mock.Anything).Return(nil, errors.New("connection refused"))

	got := svc.GetSettings(ctx, false)
	assert.Equal(t, DefaultExpPerHour, got.ExpPerHour)
	assert.Equal(t, DefaultBaseCostPerHourUSD, got.BaseCostPerHourUSD)

	rules := svc.GetFeeRules(ctx, false)
	assert.Empty(t, rules, "no rules means zero additional fees, not an error")
}

func TestGetSettings_MissingNamesFallBackPerName(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	// Only exp_per_hour is present in the store
	mockRepo.On("GetCalculationSettings", mock.Anything).
		Return(map[string]float64{domain.SettingExpPerHour: 10000}, nil)
	mockRepo.On("GetFeeRules", mock.Anything).Return([]domain.LevelFeeRule{}, nil)

	got := svc.GetSettings(ctx, false)
	assert.Equal(t, 10000.0, got.ExpPerHour)
	assert.Equal(t, DefaultBaseCostPerHourUSD, got.BaseCostPerHourUSD)
}

func TestGetSettings_NonPositiveValuesRejected(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetCalculationSettings", mock.Anything).
		Return(map[string]float64{
			domain.SettingExpPerHour:      0,
			domain.SettingBaseCostPerHour: -1,
		}, nil)
	mockRepo.On("GetFeeRules", mock.Anything).Return([]domain.LevelFeeRule{}, nil)

	got := svc.GetSettings(ctx, false)
	assert.Equal(t, DefaultExpPerHour, got.ExpPerHour)
	assert.Equal(t, DefaultBaseCostPerHourUSD, got.BaseCostPerHourUSD)
}
