package simulation

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	engine "github.com/jason-s-yu/mushtara/engine"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxRounds bounds a match when Options.MaxRounds is unset.
const DefaultMaxRounds = 200

// Options configures a batch.
type Options struct {
	Matches   int
	Workers   int // 0 uses GOMAXPROCS
	Seed      uint64
	MaxRounds int
	Rules     engine.Rules
	Seats     SeatFactory // nil seats the heuristic everywhere
	Logger    logrus.FieldLogger
}

// Job is one match in a batch.
type Job struct {
	SimID int
	Seed  uint64
}

// Stats aggregates a batch.
type Stats struct {
	Matches   int
	Finished  int
	Abandoned int // hit MaxRounds without a bound point
	Wins      [2]int
	ByReason  map[engine.MatchEndReason]int
	Rounds    int
	Longest   int // rounds in the longest finished match

	ContractsMade   int
	ContractsFailed int
	Malzoum         int
	Redeals         int
	BoundsOffered   int
	BoundsAccepted  int
	SpecialDeals    int

	Elapsed time.Duration
}

// AvgRounds is the mean number of rounds per match.
func (s Stats) AvgRounds() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Matches)
}

// MadeRate is the share of settled contracts that were made, bound rounds
// excluded.
func (s Stats) MadeRate() float64 {
	n := s.ContractsMade + s.ContractsFailed
	if n == 0 {
		return 0
	}
	return float64(s.ContractsMade) / float64(n)
}

func (s *Stats) add(r MatchResult) {
	s.Matches++
	s.Rounds += r.Rounds
	if r.Finished {
		s.Finished++
		s.Wins[r.Winner]++
		s.ByReason[r.Reason]++
		if r.Rounds > s.Longest {
			s.Longest = r.Rounds
		}
	} else {
		s.Abandoned++
	}
	s.ContractsMade += r.ContractsMade
	s.ContractsFailed += r.ContractsFailed
	s.Malzoum += r.Malzoum
	s.Redeals += r.Redeals
	s.BoundsOffered += r.BoundsOffered
	s.BoundsAccepted += r.BoundsAccepted
	s.SpecialDeals += r.SpecialDeals
}

// Jobs derives the per-match seeds from the batch seed. The same options
// always yield the same jobs.
func Jobs(matches int, seed uint64) []Job {
	rng := rand.New(rand.NewPCG(seed, seed^0x5DEECE66D))
	jobs := make([]Job, matches)
	for i := range jobs {
		jobs[i] = Job{SimID: i, Seed: rng.Uint64()}
	}
	return jobs
}

// RunBatch plays opts.Matches matches across a bounded worker pool. The
// first match error cancels the rest of the batch.
func RunBatch(ctx context.Context, opts Options) (Stats, error) {
	start := time.Now()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = DefaultMaxRounds
	}
	seats := opts.Seats
	if seats == nil {
		seats = HeuristicSeats
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	stats := Stats{ByReason: map[engine.MatchEndReason]int{}}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range Jobs(opts.Matches, opts.Seed) {
		g.Go(func() error {
			res, err := RunMatch(ctx, job.Seed, opts.Rules, seats(job.Seed), opts.MaxRounds)
			if err != nil {
				return err
			}
			res.SimID = job.SimID
			if !res.Finished {
				log.WithFields(logrus.Fields{"sim": job.SimID, "seed": job.Seed}).Debug("match abandoned at round limit")
			}
			mu.Lock()
			stats.add(res)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	stats.Elapsed = time.Since(start)

	log.WithFields(logrus.Fields{
		"matches":  stats.Matches,
		"workers":  workers,
		"elapsed":  stats.Elapsed,
		"finished": stats.Finished,
	}).Info("simulation batch complete")
	return stats, err
}
