package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jason-s-yu/gwynt/engine"
	"github.com/jason-s-yu/gwynt/internal/cli"
	"github.com/jason-s-yu/gwynt/internal/config"
	"github.com/jason-s-yu/gwynt/internal/deck"
	"github.com/jason-s-yu/gwynt/internal/history"
	"github.com/jason-s-yu/gwynt/internal/render"
	"github.com/sirupsen/logrus"
)

// Second player's card ids start here so the two decks never collide.
const playerTwoFirstID engine.CardID = 1000

// Labels recorded for the built-in demo decks.
var demoFactions = [2]string{"Demo A", "Demo B"}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs first.
func realMain(args []string) int {
	fs := flag.NewFlagSet("gwynt", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "optional env file")
	deckFile := fs.String("decks", "", "card list CSV (overrides GWYNT_DECK_FILE)")
	demo := fs.Bool("demo", false, "play with the built-in demo decks instead of a card list")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *deckFile != "" {
		cfg.DeckFile = *deckFile
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(cfg.Level())
	render.SetColor(!cfg.NoColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *demo, logger); err != nil {
		if errors.Is(err, cli.ErrInputClosed) || errors.Is(err, context.Canceled) {
			logger.WithError(err).Info("match abandoned")
			return 0
		}
		logger.WithError(err).Error("gwynt failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config, demo bool, logger *logrus.Logger) error {
	one, two, factions, err := loadDecks(cfg, demo)
	if err != nil {
		return err
	}

	if cfg.Shuffle {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		one = deck.Shuffle(one, rng)
		two = deck.Shuffle(two, rng)
		logger.WithField("seed", seed).Debug("decks shuffled")
	}

	rules := engine.DefaultMatchRules()
	rules.OpeningHand = cfg.OpeningHand
	g := engine.NewMatch(one, two, rules)

	recorder := openRecorders(ctx, cfg, logger)
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.WithError(err).Warn("close recorders")
		}
	}()

	s := cli.NewSession(os.Stdin, os.Stdout, factions, cli.WithLogger(logger), cli.WithRecorder(recorder))
	_, err = s.Run(ctx, g)
	return err
}

// loadDecks returns both decks and the faction labels to record them under.
func loadDecks(cfg config.Config, demo bool) ([]engine.Card, []engine.Card, [2]string, error) {
	if demo {
		return deck.Example("Soldier A", 3, 0, 10), deck.Example("Soldier B", 4, 100, 10), demoFactions, nil
	}

	factions := [2]string{cfg.FactionOne, cfg.FactionTwo}
	one, err := deck.LoadFile(cfg.DeckFile, factions[0], 0)
	if err != nil {
		return nil, nil, factions, err
	}
	two, err := deck.LoadFile(cfg.DeckFile, factions[1], playerTwoFirstID)
	if err != nil {
		return nil, nil, factions, err
	}
	for i, cards := range [][]engine.Card{one, two} {
		if len(cards) == 0 {
			return nil, nil, factions, fmt.Errorf("no cards for faction %q in %s (available: %s)",
				factions[i], cfg.DeckFile, availableFactions(cfg.DeckFile))
		}
	}
	return one, two, factions, nil
}

func availableFactions(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "unknown"
	}
	defer f.Close()
	names, err := deck.Factions(f)
	if err != nil || len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// openRecorders connects every configured history backend. A backend that
// cannot be reached is skipped with a warning.
func openRecorders(ctx context.Context, cfg config.Config, logger *logrus.Logger) history.Recorder {
	var recorders history.Multi
	if cfg.DatabaseURL != "" {
		pg, err := history.NewPostgresRecorder(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Warn("postgres history disabled")
		} else {
			recorders = append(recorders, pg)
		}
	}
	if cfg.RedisURL != "" {
		rdb, err := history.NewRedisRecorder(ctx, cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("redis history disabled")
		} else {
			recorders = append(recorders, rdb)
		}
	}
	if len(recorders) == 0 {
		return history.Nop{}
	}
	return recorders
}
