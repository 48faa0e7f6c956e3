// Command plltrainer drills recognition of PLL cases in the terminal.
//
// Type the first letter of the case shown (G for every G permutation),
// press space to skip to the next case, and q to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sky-flux/pll/render"
	"github.com/sky-flux/pll/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	seedDefault, err := strconv.ParseInt(envOr("PLL_SEED", "0"), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid PLL_SEED: %v\n", err)
		return 2
	}

	seed := flag.Int64("seed", seedDefault, "random seed (0 = time-based) [PLL_SEED]")
	logPath := flag.String("log", envOr("PLL_LOG", ""), "write debug log to this file [PLL_LOG]")
	cellWidth := flag.Int("cell", 4, "sticker width in terminal columns")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "plltrainer")
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := tui.Config{
		Seed:    *seed,
		Options: render.Options{CellWidth: *cellWidth},
		Logger:  logger,
	}
	if err := tui.Run(ctx, cfg); err != nil {
		logger.Printf("run: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
