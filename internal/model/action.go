package model

// Action is a human-friendly operating mode for a timestep.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionSell Action = "SELL"
	ActionIdle Action = "IDLE"
)

func ActionFromFill(tokenAOut float64) Action {
	if tokenAOut > 0 {
		return ActionSell
	}
	return ActionIdle
}
