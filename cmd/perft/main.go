// Command perft counts move-tree leaves from a position, optionally split by
// root move or with the board invariants checked at every node.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chessbots/board"
)

type options struct {
	fen     string
	depth   int
	divide  bool
	check   bool
	repeat  int
	profile string
}

func main() {
	var opts options
	flag.StringVar(&opts.fen, "fen", board.StartFEN, "position to search from")
	flag.IntVar(&opts.depth, "depth", 0, "search depth in plies (required)")
	flag.BoolVar(&opts.divide, "divide", false, "print the leaf count below each root move")
	flag.BoolVar(&opts.check, "check", false, "validate hash, occupancy and undo at every node")
	flag.IntVar(&opts.repeat, "repeat", 1, "run the count this many times")
	flag.StringVar(&opts.profile, "cpuprofile", "", "write a CPU profile to this file")
	logLevel := flag.String("loglevel", "info", "log level: trace, debug, info, warn, error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -loglevel: %v\n", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	if opts.depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	pos, err := board.ParseFEN(opts.fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if opts.profile != "" {
		stop, err := startProfile(opts.profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cpuprofile: %v\n", err)
			os.Exit(2)
		}
		defer stop()
	}

	switch {
	case opts.check:
		err = runChecked(pos, opts)
	case opts.divide:
		runDivide(pos, opts)
	default:
		runCount(pos, opts)
	}
	if err != nil {
		log.Error().Err(err).Msg("perft-check-failed")
		os.Exit(1)
	}
}

func startProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func runCount(pos *board.Board, opts options) {
	var nodes uint64
	start := time.Now()
	for i := 0; i < opts.repeat; i++ {
		nodes = board.Perft(pos, opts.depth)
	}
	elapsed := time.Since(start)
	log.Info().
		Int("depth", opts.depth).
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Float64("nps", float64(nodes)*float64(opts.repeat)/elapsed.Seconds()).
		Msg("perft")
	fmt.Println(nodes)
}

func runDivide(pos *board.Board, opts options) {
	div := board.PerftDivide(pos, opts.depth)
	lines := make([]string, 0, len(div))
	var total uint64
	for m, n := range div {
		lines = append(lines, fmt.Sprintf("%s: %d", m, n))
		total += n
		log.Debug().Str("move", m.String()).Uint64("nodes", n).Msg("divide")
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Println(l)
	}
	fmt.Printf("\nmoves: %d\nnodes: %d\n", len(div), total)
}

// runChecked walks the tree with the invariant checks on and compares the
// count with the unchecked walk.
func runChecked(pos *board.Board, opts options) error {
	start := time.Now()
	checked, err := board.PerftChecked(pos, opts.depth)
	if err != nil {
		return err
	}
	if plain := board.Perft(pos, opts.depth); plain != checked {
		return fmt.Errorf("checked walk counted %d nodes, plain walk %d", checked, plain)
	}
	log.Info().
		Int("depth", opts.depth).
		Uint64("nodes", checked).
		Dur("elapsed", time.Since(start)).
		Msg("perft-check-ok")
	fmt.Println(checked)
	return nil
}
