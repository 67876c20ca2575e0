package optimiser

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/whip-phylo/whip/beast"
)

const (
	DefaultTool = "beast"
	DefaultSeed = 999

	defaultTailLines = 20
	maxLineBytes     = 16 * 1024 * 1024
	waitDelay        = 5 * time.Second
)

// CommandFunc builds the process for one beast run.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Estimator runs beast just long enough to read its progress rate.
// The zero value runs "beast" with seed 0; use NewEstimator for the defaults.
type Estimator struct {
	Tool      string
	Seed      int64
	ExtraArgs []string  // appended after the per-run option flags
	Stream    io.Writer // audit sink; nil means os.Stdout
	TempDir   string    // parent of per-run working directories; "" means os.TempDir()
	TailLines int       // stdout lines kept for EstimationFailure; 0 means 20
	Command   CommandFunc
}

// NewEstimator returns an Estimator with the default tool and seed.
func NewEstimator(stream io.Writer) *Estimator {
	return &Estimator{Tool: DefaultTool, Seed: DefaultSeed, Stream: stream}
}

// CommandLine returns the argv used to benchmark jobPath with args.
func (e *Estimator) CommandLine(jobPath string, args []string) []string {
	tool := e.Tool
	if tool == "" {
		tool = DefaultTool
	}
	argv := []string{tool, "-overwrite", "-seed", strconv.FormatInt(e.Seed, 10)}
	argv = append(argv, args...)
	argv = append(argv, e.ExtraArgs...)
	return append(argv, jobPath)
}

// Estimate runs beast on jobPath with the given extra flags and returns the
// estimated total runtime of the job in hours. It returns *EstimationFailure
// when beast never reports a rate.
func (e *Estimator) Estimate(ctx context.Context, jobPath string, args []string) (float64, error) {
	abs, err := filepath.Abs(jobPath)
	if err != nil {
		return 0, fmt.Errorf("resolving job path: %w", err)
	}
	argv := e.CommandLine(abs, args)
	stream := e.stream()
	fmt.Fprintln(stream, strings.Join(argv, " "))

	dir, err := os.MkdirTemp(e.TempDir, "beagleoptimiser*run")
	if err != nil {
		return 0, fmt.Errorf("creating working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logrus.Warnf("removing working directory %s: %v", dir, err)
		}
	}()

	rate, err := e.supervise(ctx, dir, argv, stream)
	if err != nil {
		return 0, err
	}

	job, err := beast.LoadJob(abs)
	if err != nil {
		return 0, err
	}
	states, err := job.ChainLength()
	if err != nil {
		return 0, err
	}
	hours := rate * (float64(states) / 1e6)
	logrus.Debugf("%.4f hours/million states over %d states = %.4f hours", rate, states, hours)
	return hours, nil
}

// supervise runs argv in dir and returns the first progress rate it prints.
// The process is killed and reaped before supervise returns, whatever the
// outcome.
func (e *Estimator) supervise(ctx context.Context, dir string, argv []string, stream io.Writer) (float64, error) {
	command := e.Command
	if command == nil {
		command = exec.CommandContext
	}
	cmd := command(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("connecting to %s stdout: %w", argv[0], err)
	}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting %s: %w", argv[0], err)
	}

	reaped := false
	var waitErr error
	reap := func() {
		if reaped {
			return
		}
		reaped = true
		_ = cmd.Process.Kill()
		waitErr = cmd.Wait()
	}
	defer reap()

	keep := e.TailLines
	if keep <= 0 {
		keep = defaultTailLines
	}
	var tail deque.Deque[string]

	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		fmt.Fprintln(stream, line)
		if rate, ok := ParseHoursPerMillion(line); ok {
			return rate, nil
		}
		tail.PushBack(line)
		if tail.Len() > keep {
			tail.PopFront()
		}
	}
	scanErr := sc.Err()
	reap()

	if ctx.Err() != nil {
		return 0, fmt.Errorf("estimating with %s: %w", argv[0], ctx.Err())
	}

	fmt.Fprintln(stream, "!!!!!!!!!!!! Beast did not exit correctly !!!!!!!!!!!!!!!!!!")
	fmt.Fprintln(stream, "Here is the remaining output:")
	if stderr.Len() > 0 {
		stream.Write(stderr.Bytes())
		if !bytes.HasSuffix(stderr.Bytes(), []byte("\n")) {
			fmt.Fprintln(stream)
		}
	}
	fmt.Fprintln(stream, "!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")

	failure := &EstimationFailure{
		Command: strings.Join(argv, " "),
		Stderr:  stderr.String(),
		Tail:    make([]string, 0, tail.Len()),
		Err:     scanErr,
	}
	if failure.Err == nil {
		failure.Err = waitErr
	}
	for i := 0; i < tail.Len(); i++ {
		failure.Tail = append(failure.Tail, tail.At(i))
	}
	return 0, failure
}

func (e *Estimator) stream() io.Writer {
	if e.Stream == nil {
		return os.Stdout
	}
	return e.Stream
}
