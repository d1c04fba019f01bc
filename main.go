package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var rootCmd = &cobra.Command{
	Use:   "go-life",
	Short: "Conway's Game of Life on a toroidal grid, rendered in the terminal",
	Long: `go-life simulates Conway's Game of Life on a fixed-size square grid whose
edges wrap around. Each generation is painted to the terminal until the
board stabilizes, dies out, hits the generation limit, or is interrupted.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runGame(config)
	},
}

func init() {
	rootCmd.Flags().String("config", "", "path to a JSON config file")
	rootCmd.Flags().Int("size", 50, "grid size (the board is size x size)")
	rootCmd.Flags().Float64("density", model.DefaultDensity, "fraction of cells initialized alive")
	rootCmd.Flags().Int64("seed", 0, "RNG seed (0 seeds from the clock)")
	rootCmd.Flags().Duration("frame-rate", utils.DefaultConfig().FrameRate, "delay between generations")
	rootCmd.Flags().Int("max-generations", 100000, "stop after this many generations (0 for no limit)")
	rootCmd.Flags().Bool("glider", false, "start with a single random glider instead of a random fill")
}

// resolveConfig builds the effective configuration: file values when
// --config is given, with any explicitly set flags overriding them.
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if cmd.Flags().Changed("size") {
		config.Size, _ = cmd.Flags().GetInt("size")
	}
	if cmd.Flags().Changed("density") {
		config.Density, _ = cmd.Flags().GetFloat64("density")
	}
	if cmd.Flags().Changed("seed") {
		config.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("frame-rate") {
		config.FrameRate, _ = cmd.Flags().GetDuration("frame-rate")
	}
	if cmd.Flags().Changed("max-generations") {
		config.MaxGenerations, _ = cmd.Flags().GetInt("max-generations")
	}
	if cmd.Flags().Changed("glider") {
		config.Glider, _ = cmd.Flags().GetBool("glider")
	}

	return config, config.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
