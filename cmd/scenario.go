package cmd

import (
	"fmt"

	"github.com/queue-sim/queue-sim/sim"
	"github.com/queue-sim/queue-sim/stats"
)

const (
	kindArrive = 1 // external arrival pacemaker
	kindDepart = 2
	kindEnter  = 3 // zero-delay "attempt to enter the station" event
)

// scenarioResult summarizes a completed (or capped) scenario run.
type scenarioResult struct {
	Kernel     *sim.Kernel
	Analyzer   *stats.Analyzer
	Departures int64
	ClockNs    int64
	Converged  bool
}

// runScenario loads a YAML scenario config, drives a single-station
// simulation, and feeds each departure's response time (ms) into a
// batch-means analyzer until it signals convergence or maxRequests
// departures have been processed, whichever comes first.
//
// kindEnter is kept distinct from kindArrive: a station client's
// EventKindAtEnqueue is the kind in effect when Request was called, and
// Leave's zero-delay dispatch handoff re-enters with that same kind. Calling
// Request directly from the kindArrive case would let that handoff land
// back in kindArrive and spuriously pace a phantom external arrival on
// every dispatch; kindEnter absorbs the re-entry instead.
func runScenario(path string, maxRequests int64, traceLevel int) (*scenarioResult, error) {
	cfg, err := sim.LoadScenarioConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}

	k := sim.NewKernel()
	k.SetTraceLevel(traceLevel)
	k.Streams.Seed(cfg.Seed, 0)

	st := k.Registry.Create(cfg.Station.Name)
	if st == nil {
		return nil, fmt.Errorf("station %q already exists", cfg.Station.Name)
	}

	var analyzer stats.Analyzer
	analyzer.Configure(cfg.BatchMeans.TransientObservations, cfg.BatchMeans.BatchSize,
		cfg.BatchMeans.Precision, cfg.BatchMeans.ConfidenceLevel)

	var nextClientID int64 = 1
	scheduleArrival := func() {
		delay := cfg.Arrival.NextArrivalMs(k.Streams)
		k.Schedule(kindArrive, nextClientID, delay)
		nextClientID++
	}
	scheduleArrival()

	result := &scenarioResult{Kernel: k, Analyzer: &analyzer}

	for k.Pending() > 0 && result.Departures < maxRequests {
		kind, clientID := k.Extract()
		switch kind {
		case kindArrive:
			scheduleArrival()
			k.ScheduleNS(kindEnter, clientID, 0)
		case kindEnter:
			if status := k.Request(st, clientID); status == sim.UsingStation {
				serviceMs := cfg.Service.NextServiceMs(k.Streams)
				k.Schedule(kindDepart, clientID, serviceMs)
			}
		case kindDepart:
			responseTimeNsBefore := st.TotalResponseTime
			k.Leave(st, clientID)
			responseMs := float64(st.TotalResponseTime-responseTimeNsBefore) / 1e6
			result.Departures++
			if analyzer.Observe(responseMs) {
				result.Converged = true
				result.ClockNs = k.Clock
				return result, nil
			}
		}
	}

	result.ClockNs = k.Clock
	return result, nil
}
