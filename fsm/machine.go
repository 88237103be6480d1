package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/voxel-map/event"
)

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate to the registry; must precede LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side effect to the registry; must precede LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down to the leaf
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.activePath = append(m.activePath[:0], node.Path...)
	m.timeInState = 0

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances time in state, runs the leaf's OnUpdate and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt
	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.HandleEvent(ctx, event.EventTick)
}

// HandleEvent offers the event to the active leaf, bubbling up to Root
// The first matching transition whose guard passes is taken
// Returns true if a transition occurred
func (m *Machine[T]) HandleEvent(ctx T, ev event.EventType) bool {
	for currID := m.activeStateID; currID != StateNone; {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", targetID))
	}
	from := m.nodes[m.activeStateID].Name

	lca := -1
	for i := 0; i < len(m.activePath) && i < len(target.Path); i++ {
		if m.activePath[i] != target.Path[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	for i := lca + 1; i < len(target.Path); i++ {
		runActions(ctx, m.nodes[target.Path[i]].OnEnter)
	}

	m.activeStateID = targetID
	m.activePath = append(m.activePath[:0], target.Path...)
	m.timeInState = 0

	if m.OnTransition != nil {
		m.OnTransition(from, target.Name)
	}
}

// Reset exits every active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// ActiveState returns the leaf state name, or "" before Init
func (m *Machine[T]) ActiveState() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// ActivePath returns state names from Root to the active leaf
func (m *Machine[T]) ActivePath() []string {
	names := make([]string, len(m.activePath))
	for i, id := range m.activePath {
		names[i] = m.nodes[id].Name
	}
	return names
}

// InState reports whether name is the active leaf or one of its ancestors
func (m *Machine[T]) InState(name string) bool {
	for _, id := range m.activePath {
		if m.nodes[id].Name == name {
			return true
		}
	}
	return false
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}
