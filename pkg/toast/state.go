package toast

// State is a toast lifecycle stage.
type State string

const (
	StateCreated    State = "created"
	StateEntering   State = "entering"
	StateSteady     State = "steady"
	StateDismissing State = "dismissing"
	StateRemoved    State = "removed"
)

// trigger moves a toast between states. Every trigger except show is time driven.
type trigger string

const (
	triggerShow    trigger = "show"    // appended to the container
	triggerEntered trigger = "entered" // entry animation finished
	triggerExpire  trigger = "expire"  // display duration elapsed
	triggerEvict   trigger = "evict"   // pushed out by the visible cap
	triggerExited  trigger = "exited"  // exit animation finished
)

// transitions is indexed [from][trigger]. Anything missing is a stale timer and is ignored.
var transitions = map[State]map[trigger]State{
	StateCreated: {
		triggerShow: StateEntering,
	},
	StateEntering: {
		triggerEntered: StateSteady,
		triggerExpire:  StateDismissing,
		triggerEvict:   StateDismissing,
	},
	StateSteady: {
		triggerExpire: StateDismissing,
		triggerEvict:  StateDismissing,
	},
	StateDismissing: {
		triggerExited: StateRemoved,
	},
}

func nextState(from State, t trigger) (State, bool) {
	to, ok := transitions[from][t]
	return to, ok
}
