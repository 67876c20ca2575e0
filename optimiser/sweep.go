package optimiser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/whip-phylo/whip/beast"
	"github.com/whip-phylo/whip/optimiser/beagle"
)

// RuntimeEstimator estimates the total runtime in hours of a job run with the
// given extra beast flags.
type RuntimeEstimator interface {
	Estimate(ctx context.Context, jobPath string, args []string) (float64, error)
}

// OptionSource lists the acceleration options to try.
type OptionSource func(ctx context.Context) ([]beagle.Option, error)

// Outcome is the result of one estimation attempt: either an estimate in
// hours or a failure. Failures order after every estimate.
type Outcome struct {
	Hours  float64
	Failed bool
}

// Estimated returns a successful outcome.
func Estimated(hours float64) Outcome { return Outcome{Hours: hours} }

// FailedOutcome is the outcome of an attempt whose estimate could not be obtained.
var FailedOutcome = Outcome{Failed: true}

// Compare orders outcomes by hours, treating a failure as +Inf.
func (o Outcome) Compare(other Outcome) int {
	switch {
	case o.Failed && other.Failed:
		return 0
	case o.Failed:
		return 1
	case other.Failed:
		return -1
	case o.Hours < other.Hours:
		return -1
	case o.Hours > other.Hours:
		return 1
	}
	return 0
}

func (o Outcome) String() string {
	if o.Failed {
		return "INF"
	}
	return FormatDuration(o.Hours)
}

// Run records one option's estimate and how long obtaining it took.
type Run struct {
	Option  beagle.Option
	Outcome Outcome
	Elapsed time.Duration
}

// Rank sorts runs by outcome, keeping enumeration order for ties.
func Rank(runs []Run) {
	slices.SortStableFunc(runs, func(a, b Run) int {
		return a.Outcome.Compare(b.Outcome)
	})
}

// Sweep benchmarks every acceleration option on one job.
type Sweep struct {
	Estimator RuntimeEstimator
	Options   OptionSource
	Stream    io.Writer        // audit sink; nil means os.Stdout
	Now       func() time.Time // nil means time.Now
}

// RunAll estimates the job's runtime under every option not matching one of
// the exclude substrings and returns the runs ranked fastest first.
//
// The job must declare a screen log, since the rate is read from it; when it
// does not, RunAll returns *beast.InvalidInputError without running beast.
func (s *Sweep) RunAll(ctx context.Context, jobPath string, exclude []string) ([]Run, error) {
	job, err := beast.LoadJob(jobPath)
	if err != nil {
		return nil, err
	}
	if !job.HasScreenLog() {
		return nil, &beast.InvalidInputError{Path: jobPath, Reason: "no screenLog declared"}
	}

	options, err := s.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing beagle options: %w", err)
	}

	stream := s.Stream
	if stream == nil {
		stream = os.Stdout
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	runs := make([]Run, 0, len(options))
	for _, opt := range options {
		if excluded(opt, exclude) {
			logrus.Debugf("Skipping excluded option %s", opt)
			continue
		}
		logrus.Infof("Running beast with %s", opt)

		start := now()
		hours, err := s.Estimator.Estimate(ctx, jobPath, opt.Args())
		elapsed := now().Sub(start)

		outcome := Estimated(hours)
		if err != nil {
			var failure *EstimationFailure
			if !errors.As(err, &failure) {
				return nil, fmt.Errorf("estimating %s: %w", opt, err)
			}
			logrus.Warnf("%s: %v", opt, failure)
			outcome = FailedOutcome
		}

		msg := fmt.Sprintf("%s estimate: %s (Time to generate: %s)", opt, outcome, FormatDuration(elapsed.Hours()))
		fmt.Fprintln(stream, msg)
		logrus.Info(msg)
		runs = append(runs, Run{Option: opt, Outcome: outcome, Elapsed: elapsed})
	}

	Rank(runs)
	return runs, nil
}

func excluded(opt beagle.Option, exclude []string) bool {
	s := opt.String()
	for _, ex := range exclude {
		if ex != "" && strings.Contains(s, ex) {
			return true
		}
	}
	return false
}

// Summary aggregates a ranked sweep.
type Summary struct {
	Best         *Run // nil when every run failed or none ran
	Runs         int
	FailedCount  int
	TotalElapsed time.Duration
}

// Summarize computes aggregate statistics over runs as returned by RunAll.
// Safe for empty input.
func Summarize(runs []Run) Summary {
	var sum Summary
	sum.Runs = len(runs)
	for i := range runs {
		sum.TotalElapsed += runs[i].Elapsed
		if runs[i].Outcome.Failed {
			sum.FailedCount++
			continue
		}
		if sum.Best == nil || runs[i].Outcome.Compare(sum.Best.Outcome) < 0 {
			sum.Best = &runs[i]
		}
	}
	return sum
}
