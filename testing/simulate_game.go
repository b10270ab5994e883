// Simulates a full repair run with a second Gemini model standing in for
// the player. Hits the live API; meant for prompt tuning, not CI.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/JihunPark03/Gemini3Hackathon/internal/config"
	"github.com/JihunPark03/Gemini3Hackathon/internal/engine"
	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
	"github.com/JihunPark03/Gemini3Hackathon/internal/puzzle"
)

const maxTurns = 30

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The ship computer under test.
	shipEngine, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create ship engine: %v", err)
	}
	defer shipEngine.Close()
	ship := shipEngine.NewSession()

	// A second model plays the crew member.
	playerClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer playerClient.Close()
	playerModel := playerClient.GenerativeModel(cfg.GeminiModel)
	playerModel.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(
		"You are a crew member repairing a damaged starship through text " +
			"terminals. Read the ship computer's last reply and answer with ONE " +
			"short command: either 'Open POWER', 'Open ENGINE', 'Open LIFE " +
			"SUPPORT', a diagnostic question, or a specific repair instruction. " +
			"Return only the command text.")}}
	player := playerModel.StartChat()

	machines, err := models.LoadMachines()
	if err != nil {
		log.Fatalf("Failed to load machines: %v", err)
	}
	tracker := puzzle.NewTracker(models.SystemIDs(machines))

	fmt.Println("--- BEGIN ---")
	shipReply, err := ship.Send(ctx, "BEGIN")
	if err != nil {
		log.Fatalf("Init failed: %v", err)
	}
	fmt.Printf("SHIP: %s\n\n", shipReply)

	for turn := 1; turn <= maxTurns; turn++ {
		resp, err := player.SendMessage(ctx, genai.Text("Ship computer said:\n"+shipReply))
		if err != nil {
			log.Fatalf("Turn %d: player failed: %v", turn, err)
		}
		command := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
		fmt.Printf("[%d] YOU: %s\n", turn, command)

		shipReply, err = ship.Send(ctx, command)
		if err != nil {
			log.Fatalf("Turn %d: ship failed: %v", turn, err)
		}
		fmt.Printf("SHIP: %s\n", shipReply)

		report := puzzle.Scan(shipReply)
		tracker.Apply(report)
		for _, id := range tracker.Order() {
			fmt.Printf("  %s=%s", id, tracker.Status(id))
		}
		fmt.Println()

		if report.Mission {
			fmt.Printf("\nMISSION SUCCESS after %d turns (all flags fixed: %v)\n", turn, tracker.AllFixed())
			return
		}
		fmt.Println()
	}
	fmt.Println("\nRan out of turns without MISSION SUCCESS.")
}
