package game

import (
	"time"

	engine "github.com/jason-s-yu/mushtara/engine"
	"github.com/jason-s-yu/mushtara/engine/agent"
)

// DecisionSource decides for one seat. A source that returns ok=false waits
// for a command submitted from outside the session.
type DecisionSource interface {
	Decide(m engine.MatchState, seat engine.Seat) (cmd engine.Command, ok bool, err error)
}

// Human is a seat driven by submitted commands. It never decides on its own.
type Human struct{}

// Decide implements DecisionSource.
func (Human) Decide(engine.MatchState, engine.Seat) (engine.Command, bool, error) {
	return engine.Command{}, false, nil
}

// Automated is a seat driven by a policy.
type Automated struct {
	Policy agent.Policy
}

// Decide implements DecisionSource.
func (a Automated) Decide(m engine.MatchState, seat engine.Seat) (engine.Command, bool, error) {
	cmd, err := a.Policy.Decide(m, seat)
	if err != nil {
		return engine.Command{}, false, err
	}
	return cmd, true, nil
}

func isHuman(src DecisionSource) bool {
	_, ok := src.(Human)
	return ok
}

func sourceName(src DecisionSource) string {
	if isHuman(src) {
		return "human"
	}
	return "policy"
}

// DefaultSources seats the local player at seat 0 and the heuristic policy
// everywhere else.
func DefaultSources() [engine.NumSeats]DecisionSource {
	policy := Automated{Policy: agent.NewHeuristic()}
	return [engine.NumSeats]DecisionSource{Human{}, policy, policy, policy}
}

// Task is a scheduled callback that can be cancelled.
type Task interface {
	Stop() bool
}

// Scheduler runs f after d. Sessions use it to pace automated decisions.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// TimerScheduler schedules on the runtime timer.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
