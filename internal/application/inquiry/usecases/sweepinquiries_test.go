package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

func TestSweepInquiries_StaleNotifiedExactlyOnceAcrossCycles(t *testing.T) {
	repo := newMemoryInquiryRepository()
	stale := repo.seed(2, testNow.Add(-4*24*time.Hour), 0)
	repo.seed(3, testNow.Add(-30*time.Minute), 0)
	repo.seed(3, testNow.Add(-4*24*time.Hour), time.Hour)
	pub := &mockPublisher{}
	evaluator := newTestEvaluator(repo, newMockLocker(), pub, testNow)
	sweep := NewSweepInquiriesUseCase(repo, evaluator, slaPolicy(2, 3), 4, 2, logger.NewDiscardLogger())

	first, err := sweep.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	for cycle := 0; cycle < 5; cycle++ {
		n, err := sweep.Execute(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	assert.Equal(t, 1, pub.countType(inquiry.EventTypeStale))
	assert.Equal(t, 1, pub.countType(inquiry.EventTypeSLABreach))
	stored, _ := repo.GetByID(context.Background(), stale.ID())
	assert.Equal(t, inquiry.SLAStateStale, stored.Classify(testNow, inquiry.NewSLAPolicy(2, 3)))
}

func TestSweepInquiries_PagesThroughAllOpenInquiries(t *testing.T) {
	repo := newMemoryInquiryRepository()
	for n := 0; n < 7; n++ {
		repo.seed(uint(n+1), testNow.Add(-3*time.Hour), 0)
	}
	pub := &mockPublisher{}
	evaluator := newTestEvaluator(repo, newMockLocker(), pub, testNow)
	sweep := NewSweepInquiriesUseCase(repo, evaluator, slaPolicy(2, 3), 3, 3, logger.NewDiscardLogger())

	n, err := sweep.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, pub.countType(inquiry.EventTypeSLABreach))
}

func TestSweepInquiries_OneFailureDoesNotStopSweep(t *testing.T) {
	repo := newMemoryInquiryRepository()
	bad := repo.seed(1, testNow.Add(-3*time.Hour), 0)
	repo.seed(2, testNow.Add(-3*time.Hour), 0)
	repo.AdvanceNotifiedStateFunc = func(ctx context.Context, id uint, from, to inquiry.NotifiedState) (bool, error) {
		if id == bad.ID() {
			return false, errors.New("lock wait timeout")
		}
		return true, nil
	}
	pub := &mockPublisher{}
	evaluator := newTestEvaluator(repo, newMockLocker(), pub, testNow)
	sweep := NewSweepInquiriesUseCase(repo, evaluator, slaPolicy(2, 3), 2, 10, logger.NewDiscardLogger())

	n, err := sweep.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSweepInquiries_PolicyFailureAborts(t *testing.T) {
	repo := newMemoryInquiryRepository()
	evaluator := newTestEvaluator(repo, newMockLocker(), &mockPublisher{}, testNow)
	sweep := NewSweepInquiriesUseCase(repo, evaluator, &mockPolicyReader{err: errors.New("db down")}, 2, 10, logger.NewDiscardLogger())

	_, err := sweep.Execute(context.Background())

	assert.Error(t, err)
}
