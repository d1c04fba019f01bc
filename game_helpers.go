package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// runGame builds and seeds the board, then renders and advances it once per
// frame until it stabilizes, empties, reaches the generation limit, or the
// process is interrupted.
func runGame(config utils.Config) error {
	board, err := model.NewBoard(config.Size)
	if err != nil {
		return err
	}
	if config.Seed != 0 {
		board.Reseed(config.Seed)
	}
	if config.Glider {
		if err = board.InsertGlider(); err != nil {
			return err
		}
	} else {
		board.Randomize(config.Density)
	}

	var (
		renderer = model.NewTerminalRenderer()
		stats    = utils.NewStats()
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return watchSignals(ctx, cancel)
	})
	eg.Go(func() error {
		defer cancel()
		return frameLoop(ctx, board, renderer, stats, config)
	})

	renderer.EnterScreen()
	err = eg.Wait()
	renderer.ExitScreen()
	if err != nil {
		return err
	}

	printSummary(board, stats)
	return nil
}

// frameLoop paces the simulation: draw the current generation, check the
// stop conditions, wait one frame, advance. The core never blocks; all
// timing lives here.
func frameLoop(
	ctx context.Context,
	board *model.Board,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) error {
	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	lastFrame := time.Now()
	for {
		renderer.Display(board, statusLine(board, stats))

		if board.IsStable() || board.IsEmpty() {
			return nil
		}
		if config.MaxGenerations > 0 && board.Step() >= config.MaxGenerations {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		board.Advance()
		stats.Update(board.Step(), board.CountLivingCells(), time.Since(lastFrame))
		lastFrame = time.Now()
	}
}

// watchSignals cancels the run on SIGINT or SIGTERM.
func watchSignals(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		cancel()
	case <-ctx.Done():
	}
	return nil
}

// statusLine formats the per-frame status shown under the grid.
func statusLine(board *model.Board, stats *utils.Stats) string {
	living := board.CountLivingCells()
	density := float64(living) / float64(board.Size()*board.Size()) * 100

	status := "Active"
	if board.IsStable() {
		status = "Stable"
	}
	if board.IsEmpty() {
		status = "Extinct"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		board.Step(), living, density, status, stats.GenerationsPerSecond)
}

// printSummary reports the final run statistics once the screen is restored.
func printSummary(board *model.Board, stats *utils.Stats) {
	fmt.Printf("Finished after %d generations in %.1f seconds\n",
		board.Step(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)

	switch {
	case board.IsEmpty():
		fmt.Println("All cells died out")
	case board.IsStable():
		fmt.Println("Board settled into a stable or oscillating state")
	}
}
