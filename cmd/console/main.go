// Command console runs the game in a plain terminal, without the graphical
// world. Useful over SSH and for prompt iteration.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JihunPark03/Gemini3Hackathon/internal/config"
	"github.com/JihunPark03/Gemini3Hackathon/internal/engine"
	"github.com/JihunPark03/Gemini3Hackathon/internal/game"
	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
	"github.com/JihunPark03/Gemini3Hackathon/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}
	defer eng.Close()

	machines, err := models.LoadMachines()
	if err != nil {
		fmt.Printf("Error loading machines: %v\n", err)
		os.Exit(1)
	}

	run := game.NewRun(machines, eng.NewSession)
	if err := tui.Run(ctx, run); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
