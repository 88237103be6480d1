package fsm

import (
	"time"

	"github.com/lixenwraith/voxel-map/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical state machine with a single active leaf
// T is the context passed to actions and guards
type Machine[T any] struct {
	// Graph, immutable after load
	nodes          map[StateID]*Node[T]
	InitialStateID StateID

	// Runtime
	activeStateID StateID
	activePath    []StateID // Root -> ... -> leaf
	timeInState   time.Duration

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]

	// OnTransition observes every completed state change
	OnTransition func(from, to string)
}

// Node is one state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Root-to-node path, precomputed for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Evaluated in declaration order
	Transitions []Transition[T]
}

// Transition links a source state to a target on an event
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = evaluated by Update
	Guard    GuardFunc[T]    // nil = always
}

// Action is a compiled side effect with its arguments
type Action[T any] struct {
	Func ActionFunc[T]
	Args ActionArgs
}

// ActionArgs carries the per-use arguments from the graph file
type ActionArgs struct {
	Screen string
	Event  event.EventType
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args ActionArgs)
