package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	engine "github.com/jason-s-yu/mushtara/engine"
	"github.com/jason-s-yu/mushtara/internal/simulation"
	"github.com/sirupsen/logrus"
)

func runSimulate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	matches := fs.Int("matches", 0, "matches to play (0 = MUSHTARA_SIM_MATCHES)")
	workers := fs.Int("workers", 0, "worker goroutines (0 = MUSHTARA_SIM_WORKERS)")
	mixed := fs.Bool("mixed", false, "seat the random baseline on Team B")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *matches > 0 {
		cfg.SimMatches = *matches
	}
	if *workers > 0 {
		cfg.SimWorkers = *workers
	}

	seats := simulation.HeuristicSeats
	if *mixed {
		seats = simulation.MixedSeats
	}
	stats, err := simulation.RunBatch(ctx, simulation.Options{
		Matches:   cfg.SimMatches,
		Workers:   cfg.SimWorkers,
		Seed:      cfg.Seed,
		MaxRounds: cfg.SimMaxRounds,
		Rules:     engine.Rules{SpecialDeals: cfg.SpecialDeals},
		Seats:     seats,
		Logger:    logrus.StandardLogger(),
	})
	if err != nil {
		return err
	}
	printStats(os.Stdout, cfg.Seed, stats)
	return nil
}

func printStats(w io.Writer, seed uint64, s simulation.Stats) {
	fmt.Fprintf(w, "seed %d: %d matches in %s\n", seed, s.Matches, s.Elapsed)
	fmt.Fprintf(w, "  finished   %d (abandoned %d)\n", s.Finished, s.Abandoned)
	fmt.Fprintf(w, "  wins       A %d : B %d\n", s.Wins[engine.TeamA], s.Wins[engine.TeamB])

	reasons := make([]string, 0, len(s.ByReason))
	for r := range s.ByReason {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "  by %-8s %d\n", r, s.ByReason[engine.MatchEndReason(r)])
	}

	fmt.Fprintf(w, "  rounds     %.1f avg, longest %d\n", s.AvgRounds(), s.Longest)
	fmt.Fprintf(w, "  contracts  made %d, failed %d (%.0f%% made)\n", s.ContractsMade, s.ContractsFailed, 100*s.MadeRate())
	fmt.Fprintf(w, "  bound      offered %d, accepted %d\n", s.BoundsOffered, s.BoundsAccepted)
	fmt.Fprintf(w, "  malzoum    %d\n", s.Malzoum)
	fmt.Fprintf(w, "  redeals    %d\n", s.Redeals)
	fmt.Fprintf(w, "  special    %d deals\n", s.SpecialDeals)
}
