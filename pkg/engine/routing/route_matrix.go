package routing

import (
	"sort"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/concurrent"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

const matrixWorkers = 8

// MatrixEntry is one source-target cell of a batch route matrix. a failed
// pair carries its error instead of a plan, the batch itself never fails.
type MatrixEntry struct {
	source string
	target string
	plan   *da.RoutePlan
	err    error
}

func (e MatrixEntry) GetSource() string {
	return e.source
}

func (e MatrixEntry) GetTarget() string {
	return e.target
}

func (e MatrixEntry) GetPlan() *da.RoutePlan {
	return e.plan
}

func (e MatrixEntry) GetErr() error {
	return e.err
}

type matrixJob struct {
	source string
	target string
}

// ComputeRouteMatrix evaluates every source-target pair on a worker pool
// and returns the cells sorted by (source, target). every cell runs the
// same preference weighted search a single FindOptimalRoute would.
func (re *RouteEngine) ComputeRouteMatrix(sources, targets []string,
	preferences map[pkg.TransportType]float64) []MatrixEntry {
	numJobs := len(sources) * len(targets)
	if numJobs == 0 {
		return []MatrixEntry{}
	}

	workers := concurrent.NewWorkerPool[matrixJob, MatrixEntry](matrixWorkers, numJobs)

	workers.Start(func(job matrixJob) MatrixEntry {
		plan, err := re.FindOptimalRoute(job.source, job.target, preferences)
		return MatrixEntry{source: job.source, target: job.target, plan: plan, err: err}
	})

	for _, source := range sources {
		for _, target := range targets {
			workers.AddJob(matrixJob{source: source, target: target})
		}
	}
	workers.Close()
	workers.Wait()

	entries := make([]MatrixEntry, 0, numJobs)
	for entry := range workers.CollectResults() {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].source != entries[j].source {
			return entries[i].source < entries[j].source
		}
		return entries[i].target < entries[j].target
	})

	return entries
}
