package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/malikacodes/nursing-game/internal/app"
	"github.com/malikacodes/nursing-game/internal/config"
)

func main() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	settings, err := config.ParseSettings(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("nursesim: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, settings, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("nursesim: %v", err)
	}
}
