package socket

// State is a handle's position in its lifecycle.
type State int

const (
	StateCreated State = iota
	StateBound
	StateConnected
	StateListening
	StateClosed
)

var stateNames = map[State]string{
	StateCreated:   "created",
	StateBound:     "bound",
	StateConnected: "connected",
	StateListening: "listening",
	StateClosed:    "closed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
