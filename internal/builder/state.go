package builder

// State is the phase a Builder is in.
type State int

const (
	Idle State = iota
	Validating
	ResolvingBase
	Streaming
	Finished
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case ResolvingBase:
		return "resolving-base"
	case Streaming:
		return "streaming"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}
