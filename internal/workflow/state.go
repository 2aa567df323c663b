package workflow

// State is the position of a workflow in Idle -> Submitting -> Succeeded.
// Failed is reachable only when the remote reports an error.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent read of a workflow.
type Snapshot struct {
	State         State
	Attempts      int
	LastError     error
	PendingTimers int
	Closed        bool
}

func (s Snapshot) IsSubmitting() bool { return s.State == Submitting }
func (s Snapshot) IsSuccess() bool    { return s.State == Succeeded }
