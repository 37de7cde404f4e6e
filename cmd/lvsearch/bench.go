package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/logger"
	"github.com/katalvlaran/lvsearch/internal/textfile"
	"github.com/katalvlaran/lvsearch/matcher"
)

// Sentinel errors for bench flags.
var (
	// ErrNoTexts indicates that no text file was given.
	ErrNoTexts = errors.New("bench: no text files")

	errBadRuns     = errors.New("bench: runs must be >= 1")
	errBadParallel = errors.New("bench: parallel must be >= 1")
)

// Pattern defaults and the long-existing window.
const (
	shortExisting    = "пошук"
	shortNonExisting = "Lorem"
	longNonExisting  = "Lorem ipsum dolor sit amet, consectetur adipiscing elit"

	longExistingOffset = 2000 // symbols before the end of the text
	longExistingLen    = 55
)

// benchConfig holds the bench flags.
type benchConfig struct {
	texts    []string
	algos    []string
	runs     int
	parallel int
	units    string
	foldCase bool
	nfc      bool
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		texts:    []string{"text1.txt", "text2.txt"},
		runs:     1,
		parallel: 1,
		units:    matcher.Bytes.String(),
	}
}

// benchPlan is a validated benchConfig.
type benchPlan struct {
	opts      matcher.Options
	searchers []matcher.Searcher
}

// validate checks the flags and resolves them into matcher options and the
// selected searchers. No --algo selects every registered algorithm.
func (c benchConfig) validate() (benchPlan, error) {
	plan := benchPlan{opts: matcher.DefaultOptions()}
	if len(nonBlank(c.texts)) == 0 {
		return plan, ErrNoTexts
	}
	if c.runs < 1 {
		return plan, errBadRuns
	}
	if c.parallel < 1 {
		return plan, errBadParallel
	}
	u, err := matcher.ParseUnits(c.units)
	if err != nil {
		return plan, fmt.Errorf("bench: --units %q: %w", c.units, err)
	}
	plan.opts.Units = u
	plan.opts.FoldCase = c.foldCase
	plan.opts.NFC = c.nfc

	algs := matcher.All()
	if names := nonBlank(c.algos); len(names) > 0 {
		algs = nil
		for _, name := range names {
			a, err := matcher.ParseAlgorithm(name)
			if err != nil {
				return plan, fmt.Errorf("bench: --algo %q: %w", name, err)
			}
			if !slices.Contains(algs, a) {
				algs = append(algs, a)
			}
		}
	}
	for _, a := range algs {
		s, err := matcher.New(a)
		if err != nil {
			return plan, err
		}
		plan.searchers = append(plan.searchers, s)
	}

	return plan, nil
}

func newBenchCmd(log *logger.Logger) *cobra.Command {
	cfg := defaultBenchConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the search algorithms on the named patterns of each text",
		Long: `bench loads each text file, builds four patterns (short existing,
short non-existing, long existing, long non-existing), runs the selected
algorithms on them and prints one table per text. All algorithms must agree
on every offset; a disagreement aborts the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), log.WithPrefix(cmd.Name()), cfg)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&cfg.texts, "text", cfg.texts, "text file to search (repeatable)")
	f.StringArrayVar(&cfg.algos, "algo", nil, "algorithm to run: kmp, bm, rk or a full name (repeatable; default all)")
	f.IntVar(&cfg.runs, "runs", cfg.runs, "repetitions per measurement; the mean is reported")
	f.IntVar(&cfg.parallel, "parallel", cfg.parallel, "number of texts processed concurrently")
	f.StringVar(&cfg.units, "units", cfg.units, "symbol units: bytes or runes")
	f.BoolVar(&cfg.foldCase, "fold-case", cfg.foldCase, "case-fold text and patterns before searching")
	f.BoolVar(&cfg.nfc, "nfc", cfg.nfc, "normalise text and patterns to NFC before searching")

	return cmd
}

// namedPattern is one row group of the report.
type namedPattern struct {
	Name  string
	Value string
}

// measurement is one algorithm run on one pattern.
type measurement struct {
	Pattern   string
	Algorithm string
	Index     int
	Elapsed   time.Duration
}

// report is the outcome for one text.
type report struct {
	Name        string
	Fingerprint uint64
	Rows        []measurement
}

// buildPatterns returns the four benchmark patterns for text. The long
// existing pattern is the longExistingLen runes starting longExistingOffset
// runes before the end, counted in runes so the slice never splits a UTF-8
// sequence. short reports a text of fewer than longExistingOffset runes: the
// window then starts at the beginning of the text, so the pattern stays
// non-empty and present rather than collapsing to an empty slice.
func buildPatterns(text string) (patterns []namedPattern, short bool) {
	r := []rune(text)
	start := max(len(r)-longExistingOffset, 0)
	end := min(start+longExistingLen, len(r))

	return []namedPattern{
		{Name: "Short existing", Value: shortExisting},
		{Name: "Short non-existing", Value: shortNonExisting},
		{Name: "Long existing", Value: string(r[start:end])},
		{Name: "Long non-existing", Value: longNonExisting},
	}, len(r) < longExistingOffset
}

// runBench loads every text, measures it and writes the tables to w in the
// order the texts were given.
func runBench(ctx context.Context, w io.Writer, log *logger.Logger, cfg benchConfig) error {
	plan, err := cfg.validate()
	if err != nil {
		return err
	}
	paths := nonBlank(cfg.texts)
	reports := make([]report, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			txt, err := textfile.Open(gctx, path)
			if err != nil {
				return fmt.Errorf("bench: load %q: %w", path, err)
			}
			defer txt.Close()
			tlog := log.WithPrefix(txt.Name)
			tlog.Info("loaded %d bytes, fingerprint %016x", txt.Len(), txt.Fingerprint)

			rep, err := measureText(gctx, tlog, txt, plan, cfg.runs)
			if err != nil {
				return fmt.Errorf("bench: %s: %w", txt.Name, err)
			}
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := writeReport(w, rep); err != nil {
			return err
		}
	}

	return nil
}

// measureText runs every planned searcher on every pattern of txt and checks
// that they agree.
func measureText(ctx context.Context, log *logger.Logger, txt *textfile.Text, plan benchPlan, runs int) (report, error) {
	rep := report{Name: txt.Name, Fingerprint: txt.Fingerprint}
	opts := plan.opts
	text := matcher.Prepare(string(txt.Data), opts)

	var (
		textBytes []byte
		textRunes []rune
	)
	if opts.Units == matcher.Runes {
		textRunes = []rune(text)
	} else {
		textBytes = []byte(text)
	}

	patterns, short := buildPatterns(text)
	if short {
		log.Warn("text has fewer than %d symbols; long existing pattern taken from its start", longExistingOffset)
	}

	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		pattern := matcher.Prepare(p.Value, opts)
		patternBytes, patternRunes := []byte(pattern), []rune(pattern)

		first := core.NotFound
		for i, s := range plan.searchers {
			var run func() int
			switch opts.Units {
			case matcher.Runes:
				run = func() int { return s.SearchRunes(textRunes, patternRunes) }
			default:
				run = func() int { return s.Search(textBytes, patternBytes) }
			}

			idx, elapsed := timeRuns(run, runs)
			log.Debug("%s / %s: index %d in %s", p.Name, s, idx, elapsed)
			if i == 0 {
				first = idx
			} else if idx != first {
				return rep, fmt.Errorf("%w: %s on %q: %s=%d, %s=%d",
					matcher.ErrMismatch, p.Name, txt.Name, plan.searchers[0], first, s, idx)
			}

			rep.Rows = append(rep.Rows, measurement{
				Pattern:   p.Name,
				Algorithm: s.String(),
				Index:     idx,
				Elapsed:   elapsed,
			})
		}
	}

	return rep, nil
}

// timeRuns calls run n times and returns its last result with the mean
// duration of one call.
func timeRuns(run func() int, n int) (int, time.Duration) {
	idx := core.NotFound
	start := time.Now()
	for i := 0; i < n; i++ {
		idx = run()
	}

	return idx, time.Since(start) / time.Duration(n)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// writeReport renders rep as a titled table.
func writeReport(w io.Writer, rep report) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PATTERN", "ALGORITHM", "INDEX", "SECONDS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, m := range rep.Rows {
		t.Row(m.Pattern, m.Algorithm, strconv.Itoa(m.Index), fmt.Sprintf("%.6f", m.Elapsed.Seconds()))
	}

	title := titleStyle.Render(fmt.Sprintf("Processing %s (xxh64 %016x)", rep.Name, rep.Fingerprint))
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", title, t.String())

	return err
}

// nonBlank drops empty and whitespace-only entries.
func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}

	return out
}
