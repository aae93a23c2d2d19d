// Command selfplay pits two bots against each other and prints the game.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chessbots/board"
	"chessbots/engine"
	"chessbots/game"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "starting position")
	white := flag.String("white", "minimax", "white bot: "+strings.Join(engine.BotKinds, ", "))
	black := flag.String("black", "montecarlo", "black bot: "+strings.Join(engine.BotKinds, ", "))
	depth := flag.Int("depth", engine.DefaultMinMaxConfig().Depth, "minimax search depth in plies")
	rollouts := flag.Int("rollouts", engine.DefaultMonteCarloConfig().Rollouts, "Monte Carlo rollouts per root move")
	rolloutPlies := flag.Int("rolloutplies", engine.DefaultMonteCarloConfig().RolloutPlies, "Monte Carlo rollout length cap")
	maxPlies := flag.Int("maxplies", 400, "stop after this many plies (0 = no limit)")
	quiet := flag.Bool("quiet", false, "print only the result")
	logLevel := flag.String("loglevel", "info", "log level: trace, debug, info, warn, error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -loglevel: %v\n", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	g, err := game.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	opts := engine.Options{
		MinMax:     engine.MinMaxConfig{Depth: *depth},
		MonteCarlo: engine.MonteCarloConfig{Rollouts: *rollouts, RolloutPlies: *rolloutPlies},
	}
	wb, err := engine.NewBot(*white, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-white: %v\n", err)
		os.Exit(2)
	}
	bb, err := engine.NewBot(*black, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-black: %v\n", err)
		os.Exit(2)
	}

	log.Info().Str("white", wb.Name()).Str("black", bb.Name()).Str("fen", g.FEN()).Msg("match-start")
	if !*quiet {
		fmt.Print(g.Board())
	}

	start := time.Now()
	res, err := engine.PlayMatch(g, wb, bb, *maxPlies, func(g *game.Game, m board.Move) {
		if *quiet {
			return
		}
		fmt.Printf("\n%d. %s\n", g.Ply(), m)
		fmt.Print(g.Board())
	})
	if err != nil {
		log.Error().Err(err).Msg("match-failed")
		os.Exit(1)
	}

	fmt.Printf("\nresult: %s after %d plies (%s)\n", res.Status, len(res.Moves), time.Since(start).Round(time.Millisecond))
	if res.Truncated {
		fmt.Println("stopped at the ply limit")
	}
	fmt.Printf("final: %s\n", g.FEN())
}
