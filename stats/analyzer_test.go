package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzer_ConstantStream verifies convergence behavior: feeding a
// constant 7.0 converges immediately once 10 batches of 100 complete.
func TestAnalyzer_ConstantStream(t *testing.T) {
	var a Analyzer
	a.Configure(0, 100, 0.01, 0.95)

	stopped := false
	stopAt := 0
	for i := 1; i <= 1000; i++ {
		if a.Observe(7.0) {
			stopped = true
			stopAt = i
			break
		}
	}

	require.True(t, stopped)
	assert.Equal(t, 1000, stopAt)

	mean, halfWidth, numBatches := a.Result()
	assert.Equal(t, 7.0, mean)
	assert.Equal(t, 0.0, halfWidth)
	assert.Equal(t, 10, numBatches)
}

// TestAnalyzer_TransientDiscard verifies the transient-discard behavior.
func TestAnalyzer_TransientDiscard(t *testing.T) {
	var a Analyzer
	a.Configure(50, 10, 0.01, 0.95)

	for i := 0; i < 50; i++ {
		a.Observe(0)
	}
	for i := 0; i < 100; i++ {
		a.Observe(5)
	}

	mean, _, numBatches := a.Result()
	assert.Equal(t, 10, numBatches)
	assert.Equal(t, 5.0, mean)
}

func TestAnalyzer_NumBatchesIsFloorOfNonTransientObservations(t *testing.T) {
	var a Analyzer
	a.Configure(5, 4, 1.0, 0.95) // fewer than 10 batches: never signals, batches just accumulate

	for i := 0; i < 5; i++ {
		a.Observe(1.0) // discarded transient
	}
	for i := 0; i < 17; i++ { // 17 non-transient observations / batch size 4 = 4 full batches, 1 left over
		a.Observe(float64(i))
	}

	_, _, numBatches := a.Result()
	assert.Equal(t, 4, numBatches)
}

func TestAnalyzer_HalfWidthNeverNegative(t *testing.T) {
	var a Analyzer
	a.Configure(0, 5, 0.001, 0.95)
	for i := 0; i < 200; i++ {
		a.Observe(float64(i%7) + 1.0)
	}
	_, halfWidth, numBatches := a.Result()
	require.GreaterOrEqual(t, numBatches, 10)
	assert.GreaterOrEqual(t, halfWidth, 0.0)
}

func TestAnalyzer_ResultOnlyChangesAtBatchBoundaries(t *testing.T) {
	var a Analyzer
	a.Configure(0, 10, 0.2, 0.95)

	for i := 0; i < 99; i++ { // fill 9 full batches + 9 extra observations, no 10th batch yet
		a.Observe(float64(i))
	}
	_, _, numBatchesBefore := a.Result()
	assert.Equal(t, 9, numBatchesBefore)

	a.Observe(1.0) // completes batch 10; result should now update
	_, _, numBatchesAfter := a.Result()
	assert.Equal(t, 10, numBatchesAfter)
}

func TestAnalyzer_GonumCheck_AgreesWithIncrementalAccumulators(t *testing.T) {
	var a Analyzer
	a.Configure(0, 20, 0.01, 0.95)
	for i := 0; i < 400; i++ {
		a.Observe(float64(i%13) + 1.0)
	}

	gonumMean, gonumVariance, ownMean, ownVariance := a.GonumCheck()
	assert.InDelta(t, ownMean, gonumMean, 1e-9)
	assert.InDelta(t, ownVariance, gonumVariance, 1e-6)
}
