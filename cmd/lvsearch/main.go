// Command lvsearch benchmarks the substring-search algorithms on sample texts
// and runs the interactive binary search.
//
//	lvsearch bench --text text1.txt --text text2.txt
//	lvsearch bsearch --size 10
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvsearch/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.LevelWarn, os.Stderr, "lvsearch")
	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
