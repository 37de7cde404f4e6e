package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logger"
)

// newRootCmd builds the command tree around log. The --log-level flag is
// applied to log before any subcommand runs; subcommands log through
// log.WithPrefix(<command name>). A nil log discards everything. Each call
// returns an independent tree.
func newRootCmd(log *logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.Nop()
	}
	logLevel := log.GetLevel().String()
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Substring-search benchmark and binary-search playground",
		Long: `lvsearch exercises the lvsearch library:

- bench:   time Knuth-Morris-Pratt, Boyer-Moore and Rabin-Karp on sample texts
- bsearch: bisect a random sorted float sequence and report the top margin

Use 'lvsearch help <command>' for more information on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetLevel(logger.ParseLevel(logLevel))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error, none")

	root.AddCommand(newBenchCmd(log), newBsearchCmd(log))
	return root
}

// stdinFile returns the command input as *os.File when it is one, so the
// terminal check can inspect its descriptor.
func stdinFile(cmd *cobra.Command) (*os.File, bool) {
	f, ok := cmd.InOrStdin().(*os.File)
	return f, ok
}
