package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lvsearch/bsearch"
	"github.com/katalvlaran/lvsearch/internal/datagen"
	"github.com/katalvlaran/lvsearch/internal/logger"
)

// errNoTarget indicates that stdin ended before a target was read.
var errNoTarget = errors.New("bsearch: no target given")

// notFoundMessage is printed when every element is below the target.
const notFoundMessage = "No number in the list is greater than or equal to the target."

// bsearchConfig holds the bsearch flags. target is nil unless --target was set.
type bsearchConfig struct {
	size   int
	min    float64
	max    float64
	seed   int64
	target *float64
}

func defaultBsearchConfig() bsearchConfig {
	return bsearchConfig{
		size: 10,
		min:  datagen.DefaultMin,
		max:  datagen.DefaultMax,
		seed: datagen.DefaultSeed,
	}
}

func newBsearchCmd(log *logger.Logger) *cobra.Command {
	cfg := defaultBsearchConfig()
	var target float64
	cmd := &cobra.Command{
		Use:   "bsearch",
		Short: "Bisect a random sorted float sequence for a target",
		Long: `bsearch generates a sorted sequence of random floats, prints it, reads a
target (from --target, or from stdin with a prompt when stdin is a terminal)
and prints how many bisection steps ran and the smallest element that is
greater than or equal to the target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("target") {
				cfg.target = &target
			}
			in := cmd.InOrStdin()
			interactive := false
			if f, ok := stdinFile(cmd); ok {
				interactive = term.IsTerminal(int(f.Fd()))
			}

			return runBsearch(cmd.Context(), cmd.OutOrStdout(), in, interactive, log.WithPrefix(cmd.Name()), cfg)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.size, "size", cfg.size, "number of generated floats")
	f.Float64Var(&cfg.min, "min", cfg.min, "lower bound of generated floats (inclusive)")
	f.Float64Var(&cfg.max, "max", cfg.max, "upper bound of generated floats (exclusive)")
	f.Int64Var(&cfg.seed, "seed", cfg.seed, "random seed; 0 selects the default")
	f.Float64Var(&target, "target", 0, "target value; read from stdin when unset")

	return cmd
}

// runBsearch generates the sequence, resolves the target and prints the
// outcome to w. The prompt is written only when interactive is set. Waiting
// for the target ends with ctx.Err() once ctx is cancelled.
func runBsearch(ctx context.Context, w io.Writer, in io.Reader, interactive bool, log *logger.Logger, cfg bsearchConfig) error {
	arr, err := datagen.SortedFloats(cfg.size, cfg.min, cfg.max, datagen.RNGFromSeed(cfg.seed))
	if err != nil {
		return fmt.Errorf("bsearch: generate: %w", err)
	}
	log.Debug("generated %d floats in [%g, %g) with seed %d", len(arr), cfg.min, cfg.max, cfg.seed)

	if _, err := fmt.Fprintln(w, "Sorted list:", formatFloats(arr)); err != nil {
		return err
	}

	var target float64
	if cfg.target != nil {
		target = *cfg.target
	} else {
		if interactive {
			fmt.Fprint(w, "Enter the target number: ")
		}
		if target, err = readTarget(ctx, in); err != nil {
			return err
		}
	}

	loops, top, ok := bsearch.Float64(arr, target)
	log.Info("target %g: %d loops, found=%t", target, loops, ok)
	fmt.Fprintf(w, "Number of loops: %d\n", loops)
	if !ok {
		_, err = fmt.Fprintln(w, notFoundMessage)
		return err
	}
	_, err = fmt.Fprintf(w, "Top margin (smallest number >= target): %g\n", top)

	return err
}

// targetResult carries the outcome of one blocking target read.
type targetResult struct {
	value float64
	err   error
}

// readTarget parses the first non-empty line of in as a float. The read runs
// in its own goroutine so cancellation of ctx returns immediately; a reader
// that never delivers a line keeps that goroutine parked until the process
// exits.
func readTarget(ctx context.Context, in io.Reader) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	done := make(chan targetResult, 1)
	go func() {
		v, err := scanTarget(in)
		done <- targetResult{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-done:
		return res.value, res.err
	}
}

// scanTarget is the blocking part of readTarget.
func scanTarget(in io.Reader) (float64, error) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, fmt.Errorf("bsearch: target %q: %w", line, err)
		}

		return v, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("bsearch: read target: %w", err)
	}

	return 0, errNoTarget
}

// formatFloats renders arr as "[a b c]" at full precision, so any printed
// element typed back as the target is found exactly.
func formatFloats(arr []float64) string {
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
