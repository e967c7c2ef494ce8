package uploader

// State is a step of a single upload.
type State string

const (
	StateIdle                 State = "idle"
	StateRequestingCredential State = "requesting_credential"
	StateUploading            State = "uploading"
	StateConfirming           State = "confirming"
	StateDone                 State = "done"
	StateFailed               State = "failed"
)

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

var transitions = map[State][]State{
	StateIdle:                 {StateRequestingCredential, StateFailed},
	StateRequestingCredential: {StateUploading, StateFailed},
	StateUploading:            {StateConfirming, StateDone, StateFailed},
	StateConfirming:           {StateDone, StateFailed},
}

func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
