package harness

import (
	"context"
	"sync"
	"time"
)

// DefaultWorkers is the parallel mode worker pool size.
const DefaultWorkers = 4

// Options configures one run.
type Options struct {
	CheckOutput bool
	Parallel    bool
	Workers     int
}

// Runner discovers scripts under a root directory and drives a CaseRunner
// over each, sequentially or through a bounded worker pool.
type Runner struct {
	executor  CaseRunner
	filter    *CaseFilter
	scriptExt string
	logger    Logger
}

// NewRunner wires a runner. A nil filter selects everything; a nil logger
// degrades to a no-op.
func NewRunner(executor CaseRunner, filter *CaseFilter, scriptExt string, logger Logger) *Runner {
	if logger == nil {
		logger = NopLogger{}
	}
	if scriptExt == "" {
		scriptExt = DefaultScriptExt
	}
	return &Runner{
		executor:  executor,
		filter:    filter,
		scriptExt: scriptExt,
		logger:    logger,
	}
}

// RunAll runs every discovered script and partitions the paths into the
// returned report. On interruption the report carries the results
// accumulated so far and ctx's error is returned alongside it; scripts that
// never produced a result appear in neither list.
func (r *Runner) RunAll(ctx context.Context, root string, opts Options) (*Report, error) {
	report := &Report{
		Root:      root,
		StartTime: time.Now(),
		Passed:    []string{},
		Failed:    []string{},
	}

	scripts, err := DiscoverScripts(root, r.scriptExt, r.filter)
	if err != nil {
		report.EndTime = time.Now()
		return report, err
	}
	r.logger.Info("discovered scripts", "root", root, "count", len(scripts))

	if opts.Parallel {
		err = r.runPool(ctx, scripts, opts, report)
	} else {
		err = r.runSequential(ctx, scripts, opts, report)
	}

	report.EndTime = time.Now()
	report.Interrupted = err != nil
	return report, err
}

// runSequential visits scripts one at a time, stopping at the first
// interrupt and leaving the remaining scripts unvisited.
func (r *Runner) runSequential(ctx context.Context, scripts []string, opts Options, report *Report) error {
	for _, script := range scripts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		passed, err := r.executor.Execute(ctx, script, opts.CheckOutput)
		if err != nil {
			return err
		}
		if passed {
			report.Passed = append(report.Passed, script)
		} else {
			report.Failed = append(report.Failed, script)
		}
	}
	return nil
}

// caseResult is one pool slot. Each goroutine writes only its own slot, so
// no lock is needed; the partition is assembled after the pool drains.
type caseResult struct {
	done   bool
	passed bool
}

// runPool dispatches scripts to a bounded worker pool. Results are
// assembled in submission order so the report's membership is deterministic
// regardless of worker scheduling. An interrupt stops new dispatch but
// lets in-flight workers finish and be collected.
func (r *Runner) runPool(ctx context.Context, scripts []string, opts Options, report *Report) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	results := make([]caseResult, len(scripts))

	var interrupted bool
	for idx, script := range scripts {
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		wg.Add(1)
		go func(idx int, script string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if ctx.Err() != nil {
				return
			}
			passed, err := r.executor.Execute(ctx, script, opts.CheckOutput)
			if err != nil {
				// Interrupted mid-case: no result to record.
				return
			}
			results[idx] = caseResult{done: true, passed: passed}
		}(idx, script)
	}

	wg.Wait()

	for idx, script := range scripts {
		if !results[idx].done {
			continue
		}
		if results[idx].passed {
			report.Passed = append(report.Passed, script)
		} else {
			report.Failed = append(report.Failed, script)
		}
	}

	if interrupted || ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}
