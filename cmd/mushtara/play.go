package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	engine "github.com/jason-s-yu/mushtara/engine"
	"github.com/jason-s-yu/mushtara/internal/game"
	"github.com/sirupsen/logrus"
)

const playHelp = `commands:
  next              deal the next round (or the first one)
  bid 6|7|8         bid for the contract
  pass              pass in the auction
  malzoum           take the forced 6 as dealer
  redeal            pay a point to redeal as dealer
  trump S|H|C|D     name the Hokum suit
  play CARD         play a card, e.g. "play 10H", "play JN"
  accept, decline   answer a Bound offer
  show              print the table
  reset             start a new match
  quit`

var errQuit = errors.New("quit")

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}

	out := os.Stdout
	s := game.NewSession(game.Options{
		Seed:       cfg.Seed,
		Rules:      engine.Rules{SpecialDeals: cfg.SpecialDeals},
		ThinkDelay: cfg.ThinkDelay,
		Logger:     logrus.StandardLogger(),
		OnEvent:    func(e game.LogEntry) { printEvent(out, e) },
	})
	defer s.Close()

	fmt.Fprintf(out, "Mushtara table %s (seed %d). You are P0, partnered with P2.\n", s.ID, cfg.Seed)
	fmt.Fprintln(out, playHelp)

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := execute(s, line, out)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(out, "! %v\n", err)
			}
		}
	}
}

// execute runs one line of player input against the session.
func execute(s *game.Session, line string, out io.Writer) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprintln(out, playHelp)
		return nil
	case "show":
		printView(out, s.View(engine.HumanSeat))
		return nil
	case "next", "deal":
		return s.NextRound()
	case "reset":
		return s.ResetMatch()
	}

	cmd, err := parseCommand(fields, s.State().HandOf(engine.HumanSeat))
	if err != nil {
		return err
	}
	return s.Submit(cmd)
}

// parseCommand turns a lowercased input line into a command for the human
// seat. Cards are resolved against hand.
func parseCommand(fields []string, hand []engine.Card) (engine.Command, error) {
	cmd := engine.Command{Seat: engine.HumanSeat}
	arg := func() (string, error) {
		if len(fields) < 2 {
			return "", fmt.Errorf("%s needs an argument", fields[0])
		}
		return fields[1], nil
	}

	switch fields[0] {
	case "bid":
		a, err := arg()
		if err != nil {
			return cmd, err
		}
		n, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return cmd, fmt.Errorf("bad bid %q", a)
		}
		cmd.Kind, cmd.Amount = engine.CmdBid, uint8(n)
	case "pass":
		cmd.Kind = engine.CmdPass
	case "malzoum":
		cmd.Kind = engine.CmdMalzoum
	case "redeal":
		cmd.Kind = engine.CmdRedeal
	case "trump":
		a, err := arg()
		if err != nil {
			return cmd, err
		}
		suit, ok := engine.ParseSuit(strings.ToUpper(a[:1]))
		if !ok {
			return cmd, fmt.Errorf("bad suit %q", a)
		}
		cmd.Kind, cmd.Suit = engine.CmdChooseTrump, suit
	case "play":
		a, err := arg()
		if err != nil {
			return cmd, err
		}
		c, ok := findCard(hand, a)
		if !ok {
			return cmd, fmt.Errorf("%q is not in your hand", a)
		}
		cmd.Kind, cmd.Card = engine.CmdPlayCard, c
	case "accept":
		cmd.Kind = engine.CmdAcceptBound
	case "decline":
		cmd.Kind = engine.CmdDeclineBound
	default:
		return cmd, fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	return cmd, nil
}

func findCard(hand []engine.Card, label string) (engine.Card, bool) {
	for _, c := range hand {
		if strings.EqualFold(c.String(), label) {
			return c, true
		}
	}
	return engine.EmptyCard, false
}

func printEvent(w io.Writer, e game.LogEntry) {
	if e.Text == "" {
		return
	}
	mark := " "
	if e.Important {
		mark = "*"
	}
	fmt.Fprintf(w, "%s %s\n", mark, e.Text)
}

func printView(w io.Writer, v game.View) {
	fmt.Fprintf(w, "phase %s  round %d  score A %d : B %d  bound points A %d : B %d\n",
		v.Phase, v.RoundsPlayed+1, v.Scores[engine.TeamA], v.Scores[engine.TeamB],
		v.BoundPoints[engine.TeamA], v.BoundPoints[engine.TeamB])
	if v.Phase == engine.PhaseStart {
		return
	}
	fmt.Fprintf(w, "dealer P%d", v.Dealer)
	if v.DealLabel != "" {
		fmt.Fprintf(w, " (%s)", v.DealLabel)
	}
	fmt.Fprintln(w)

	ct := v.Contract
	switch {
	case ct.Buyer == engine.NoSeat && v.HighBidder != engine.NoSeat:
		fmt.Fprintf(w, "high bid %d by P%d\n", v.HighBid, v.HighBidder)
	case ct.Buyer != engine.NoSeat:
		fmt.Fprintf(w, "contract %d by P%d", ct.Amount, ct.Buyer)
		if ct.Malzoum {
			fmt.Fprint(w, " (Malzoum)")
		}
		if ct.TrumpChosen {
			fmt.Fprintf(w, ", Hokum %s", engine.SuitString(ct.Trump))
		}
		fmt.Fprintf(w, "  tricks A %d : B %d\n", v.TricksWon[engine.TeamA], v.TricksWon[engine.TeamB])
	}
	if len(v.Trick) > 0 {
		fmt.Fprintf(w, "trick %d:", v.TrickIndex)
		for _, p := range v.Trick {
			fmt.Fprintf(w, " P%d %s", p.Seat, p.Card)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "your hand: %s\n", cards(v.Hand))
	if len(v.Legal) > 0 {
		fmt.Fprintf(w, "playable:  %s\n", cards(v.Legal))
	}
	if v.Turn != engine.NoSeat {
		fmt.Fprintf(w, "to act: P%d\n", v.Turn)
	}
}

func cards(cs []engine.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
