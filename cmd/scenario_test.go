package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenario_MM1Example_ConvergesWithinRequestCap(t *testing.T) {
	result, err := runScenario("../examples/mm1.yaml", 500_000, 0)
	require.NoError(t, err)

	assert.True(t, result.Converged, "expected batch-means convergence within the request cap")

	mean, halfWidth, numBatches := result.Analyzer.Result()
	assert.GreaterOrEqual(t, numBatches, 10)
	assert.Greater(t, mean, 0.0)
	assert.GreaterOrEqual(t, halfWidth, 0.0)
	assert.LessOrEqual(t, halfWidth/mean, 0.05)
}

func TestRunScenario_MissingScenarioFileReturnsError(t *testing.T) {
	// runScenario always creates a fresh kernel, so this exercises only that
	// a missing scenario file surfaces as an error rather than a panic.
	_, err := runScenario("../examples/does-not-exist.yaml", 1000, 0)
	assert.Error(t, err)
}
