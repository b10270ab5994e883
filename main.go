package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JihunPark03/Gemini3Hackathon/internal/config"
	"github.com/JihunPark03/Gemini3Hackathon/internal/engine"
	"github.com/JihunPark03/Gemini3Hackathon/internal/game"
	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
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

	ebiten.SetWindowSize(int(models.WorldWidth), int(models.WorldHeight))
	ebiten.SetWindowTitle("KESTREL — Emergency Repair Protocol")
	if err := ebiten.RunGame(game.NewGame(ctx, run)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
