// Package app wires configuration, content and the console into a game.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/malikacodes/nursing-game/internal/config"
	"github.com/malikacodes/nursing-game/internal/console"
	"github.com/malikacodes/nursing-game/internal/game"
	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/random"
	"github.com/malikacodes/nursing-game/internal/scenario"
	"github.com/malikacodes/nursing-game/internal/telemetry"
)

// Run plays one game on in/out. Diagnostics go to errOut when s.Debug is
// set.
func Run(ctx context.Context, s config.Settings, in io.Reader, out, errOut io.Writer) error {
	return run(ctx, s, in, out, errOut, game.RealClock{})
}

func run(ctx context.Context, s config.Settings, in io.Reader, out, errOut io.Writer, clock game.Clock) error {
	logger := log.New(io.Discard, "", 0)
	if s.Debug {
		logger = log.New(errOut, "nursesim: ", log.Lmsgprefix)
	}

	balance, err := s.Balance()
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	defs, err := definitions(s.CatalogFile)
	if err != nil {
		return err
	}

	seed := s.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	logger.Printf("difficulty=%s seed=%d scenarios=%d", s.Difficulty, seed, len(defs))

	con := console.New(in, out)
	profile, err := con.Setup(ctx)
	if err != nil {
		return err
	}
	n, err := nurse.Create(profile)
	if err != nil {
		return err
	}
	cat, err := scenario.NewCatalog(profile.Tier, defs)
	if err != nil {
		return err
	}

	engine := game.Engine{
		Balance: balance,
		Rand:    random.New(seed),
		Events:  telemetry.NewMemoryRepository(clock.Now),
		Clock:   clock,
		Logger:  logger,
	}

	start := game.StartPhase(profile.Shift)
	con.Welcome(n, start)
	sess, err := engine.NewSession(n, cat, start)
	if err != nil {
		return err
	}

	summary, err := engine.Run(ctx, sess, con)
	if err != nil {
		return err
	}
	if s.SummaryFile != "" {
		if err := writeSummary(s.SummaryFile, summary); err != nil {
			return err
		}
		logger.Printf("summary written to %s", s.SummaryFile)
	}
	return nil
}

func definitions(path string) ([]scenario.Definition, error) {
	if path == "" {
		return scenario.Seed(), nil
	}
	defs, err := scenario.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return defs, nil
}

func writeSummary(path string, s game.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary: %w", err)
	}
	if err := s.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write summary: %w", err)
	}
	return f.Close()
}
