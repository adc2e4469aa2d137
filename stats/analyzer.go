package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// minBatchesForEstimate is the minimum number of completed batches before a
// half-width estimate is computed.
const minBatchesForEstimate = 10

// Analyzer is an online batch-means estimator. Configure resets all state;
// Observe feeds one scalar observation at a time and reports whether the
// target relative precision has just been reached.
//
// Grounded directly on _examples/original_source/batch-means.c's
// batch_mean/observacion/resultado; see DESIGN.md.
//
// Thread-safety: NOT thread-safe. Feed observations from a single goroutine.
type Analyzer struct {
	transientRemaining int
	batchSize          int
	precision          float64
	confidenceLevel    float64

	inBatchSum   float64
	inBatchCount int

	numBatches int
	grandSum   float64
	grandSumSq float64
	grandMean  float64
	halfWidth  float64

	batchMeans []float64
}

// Configure resets the analyzer with new parameters. transientObs
// observations are discarded before batching begins; batchSize observations
// form each batch; precision is the target relative half-width
// (half-width / grand mean); confidenceLevel is e.g. 0.95.
func (a *Analyzer) Configure(transientObs, batchSize int, precision, confidenceLevel float64) {
	a.transientRemaining = transientObs
	a.batchSize = batchSize
	a.precision = precision
	a.confidenceLevel = confidenceLevel

	a.inBatchSum = 0
	a.inBatchCount = 0
	a.numBatches = 0
	a.grandSum = 0
	a.grandSumSq = 0
	a.grandMean = 0
	a.halfWidth = 0
	a.batchMeans = nil
}

// Observe feeds one scalar observation. It returns true the instant the
// relative half-width first falls at or below the configured precision;
// once true has been returned it may return true again on later batch
// boundaries — the stop signal is never latched, the host is expected to
// stop calling Observe once it sees true.
func (a *Analyzer) Observe(value float64) bool {
	if a.transientRemaining > 0 {
		a.transientRemaining--
		return false
	}

	a.inBatchSum += value
	a.inBatchCount++
	if a.inBatchCount != a.batchSize {
		return false
	}

	batchMean := a.inBatchSum / float64(a.inBatchCount)
	a.grandSum += batchMean
	a.grandSumSq += batchMean * batchMean
	a.numBatches++
	a.batchMeans = append(a.batchMeans, batchMean)

	a.inBatchSum = 0
	a.inBatchCount = 0

	if a.numBatches < minBatchesForEstimate {
		return false
	}

	a.grandMean = a.grandSum / float64(a.numBatches)
	sampleVariance := (a.grandSumSq - float64(a.numBatches)*a.grandMean*a.grandMean) / float64(a.numBatches-1)
	a.halfWidth = T((1-a.confidenceLevel)/2.0, a.numBatches-1) * sqrtNonNegative(sampleVariance/float64(a.numBatches))

	return a.halfWidth/a.grandMean <= a.precision
}

// Result returns the most recently computed grand mean, half-width, and
// batch count. Well-defined only after at least minBatchesForEstimate
// batches have completed; until then mean and halfWidth are zero, while
// numBatches is the number of batches completed so far.
func (a *Analyzer) Result() (mean, halfWidth float64, numBatches int) {
	return a.grandMean, a.halfWidth, a.numBatches
}

// BatchMeans returns a copy of the batch means accumulated so far, for use
// with GonumCheck or independent inspection.
func (a *Analyzer) BatchMeans() []float64 {
	out := make([]float64, len(a.batchMeans))
	copy(out, a.batchMeans)
	return out
}

// GonumCheck recomputes the grand mean and sample variance across the
// accumulated batch means using gonum.org/v1/gonum/stat.MeanVariance, and
// returns them alongside the analyzer's own incrementally-accumulated
// values, for tests to assert agreement. The production Observe path keeps
// its own incremental accumulators because the observation stream is
// unbounded in principle; gonum's MeanVariance recomputes from the stored
// slice and serves purely as an independent check. See DESIGN.md.
func (a *Analyzer) GonumCheck() (gonumMean, gonumVariance, ownMean, ownVariance float64) {
	gonumMean, gonumVariance = stat.MeanVariance(a.batchMeans, nil)
	ownMean = a.grandSum / float64(a.numBatches)
	ownVariance = (a.grandSumSq - float64(a.numBatches)*ownMean*ownMean) / float64(a.numBatches-1)
	return gonumMean, gonumVariance, ownMean, ownVariance
}

// sqrtNonNegative guards against a tiny negative argument arising from
// floating-point cancellation in the sample-variance formula when every
// batch mean is identical (variance should be exactly 0 in that case).
func sqrtNonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Sqrt(x)
}
