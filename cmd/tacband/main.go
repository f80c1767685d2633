// Package main is the entry point for tacband.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/tacband/internal/game"
	"github.com/samdwyer/tacband/internal/telemetry"
)

func main() {
	cmd := &cli.Command{
		Name:  "tacband",
		Usage: "grid tactics sandbox: select units and move them around a board",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "width",
				Value: game.DefaultWidth,
				Usage: "board width in cells",
			},
			&cli.IntFlag{
				Name:  "height",
				Value: game.DefaultHeight,
				Usage: "board height in cells",
			},
			&cli.IntFlag{
				Name:  "units",
				Value: game.DefaultUnits,
				Usage: "number of units to place",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 0,
				Usage: "rng seed for unit placement (0 = time-based)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	// Load .env file for local development
	// This makes HONEYCOMB_TACBAND_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(game.Config{
		Width:  int(cmd.Int("width")),
		Height: int(cmd.Int("height")),
		Units:  int(cmd.Int("units")),
		Seed:   cmd.Int64("seed"),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	return g.Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_TACBAND_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TACBAND_DATASET")
	if dataset == "" {
		dataset = "tacband" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
