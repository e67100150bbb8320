package model

// Action is a human-friendly trade direction for a schedule event.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionInject   Action = "INJECT"
	ActionWithdraw Action = "WITHDRAW"
)

func (a Action) Valid() bool {
	return a == ActionInject || a == ActionWithdraw
}

// SignedVolume maps an event volume to its inventory delta:
// injections add, withdrawals remove.
func (a Action) SignedVolume(volume float64) float64 {
	if a == ActionWithdraw {
		return -volume
	}
	return volume
}
