package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"debatecoach/config"
	"debatecoach/services"
)

// Lists the models available to the configured API key and prints the
// one the name-substring heuristic would pick. Operator aid only; the
// server always uses the statically configured model.
func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.prod.yml"
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitCoachService(cfg); err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	names, err := services.ListModelNames(context.Background())
	if err != nil {
		log.Fatalf("Failed to list models: %v", err)
	}

	for _, name := range names {
		fmt.Println(name)
	}

	if preferred := services.PickPreferredModel(names); preferred != "" {
		fmt.Printf("\nPreferred model: %s\n", preferred)
	} else {
		fmt.Println("\nNo preferred model found")
	}
}
