package engine

// EventKind tags a structural event
type EventKind uint8

const (
	// EventMerge combines A and B into one word
	EventMerge EventKind = iota + 1
	// EventSplit breaks A into component fragments
	EventSplit
)

func (k EventKind) String() string {
	switch k {
	case EventMerge:
		return "merge"
	case EventSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Event is a structural change queued during collision detection and drained once per tick
// Merge uses A and B; Split uses A only
type Event struct {
	Kind EventKind
	A, B WordID
}

func mergeEvent(a, b WordID) Event { return Event{Kind: EventMerge, A: a, B: b} }

func splitEvent(id WordID) Event { return Event{Kind: EventSplit, A: id} }
