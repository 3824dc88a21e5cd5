package engine

// Match-ending score thresholds.
const (
	ShutoutTarget  = 30 // reached while the opponents are still at 0
	WinTarget      = 54
	RedealCost     = 1
	MalzoumPenalty = 6
)

// Rules holds the switches the engine accepts. The rule set itself is fixed;
// only the special-deal lottery can be turned off.
type Rules struct {
	SpecialDeals bool
}

// DefaultRules returns the standard Mushtara rules.
func DefaultRules() Rules {
	return Rules{
		SpecialDeals: true,
	}
}
