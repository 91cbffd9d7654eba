package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"blackjack-sim/internal/config"
	"blackjack-sim/internal/rng"
	"blackjack-sim/pkg/blackjack"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var rounds = flag.Int("rounds", 0, "number of rounds to simulate (overrides the config)")
var seed = flag.Int64("seed", 0, "seed for a reproducible simulation (0 uses crypto/rand)")

func main() {
	flag.Parse()
	setupLogger()

	n := config.Instance().Rounds
	if *rounds > 0 {
		n = *rounds
	}

	s := config.Instance().Seed
	if *seed != 0 {
		s = *seed
	}

	var gen rng.Generator = rng.Crypto{}
	if s != 0 {
		gen = rng.NewSeeded(s)
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"rounds":  n,
	}).Info("starting simulation")

	var playerWins, dealerWins, ties int
	for i := 0; i < n; i++ {
		result, err := blackjack.NewRound(blackjack.Options{Rand: gen}).Play()
		if err != nil {
			logrus.WithError(err).Fatal("round aborted")
		}

		fmt.Fprintln(os.Stdout, result.String())

		switch result.Winner {
		case "player":
			playerWins++
		case "dealer":
			dealerWins++
		default:
			ties++
		}
	}

	fmt.Fprintf(os.Stdout, "player %d, dealer %d, ties %d\n", playerWins, dealerWins, ties)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
