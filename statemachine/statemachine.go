// Package statemachine provides a small generic state machine where each
// state initializes, processes and deinitializes a shared data value.
package statemachine

// State is one state of a Machine. Process returns the state to run next;
// returning the receiver keeps the machine in the current state. Init and
// Deinit run exactly once per stay in a state, on entry and on exit.
type State[T any] interface {
	Init(data *T)
	Process(data *T) State[T]
	Deinit(data *T)
}

// NoopState does nothing and stays put. It serves as the machine's initial
// "previous" state so transitions need no nil checks.
type NoopState[T any] struct{}

func (NoopState[T]) Init(*T) {}

func (n NoopState[T]) Process(*T) State[T] { return n }

func (NoopState[T]) Deinit(*T) {}

// Machine drives a set of states over a data value of type T.
type Machine[T any] struct {
	previous State[T]
	current  State[T]
}

// New returns a machine positioned before its start state; the first Process
// call enters it.
func New[T any](start State[T]) *Machine[T] {
	return &Machine[T]{
		previous: NoopState[T]{},
		current:  start,
	}
}

// Process performs one step: on a pending transition it deinitializes the
// previous state and initializes the current one, then runs the current
// state's Process. Processing happens last so its result is externally
// visible after the call.
func (m *Machine[T]) Process(data *T) {
	if m.previous != m.current {
		m.previous.Deinit(data)
		m.current.Init(data)
		m.previous = m.current
	}
	m.current = m.current.Process(data)
}

// Reset deinitializes whatever state was entered and repositions the machine
// before the given start state, as New does.
func (m *Machine[T]) Reset(data *T, start State[T]) {
	// previous == current means the current state was entered and gets its
	// Deinit; otherwise a transition was still pending and the not-yet-entered
	// state is not initialized at all.
	m.previous.Deinit(data)
	m.previous = NoopState[T]{}
	m.current = start
}
