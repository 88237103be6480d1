package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/voxel-map/event"
)

// LoadConfig decodes a TOML graph and replaces the machine's nodes
// Every referenced state, action, guard and event must resolve
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to decode FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown FSM config keys: %v", undecoded)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	m.AddState(StateRoot, "Root", StateNone)
	nameToID := map[string]StateID{"Root": StateRoot}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sorted for deterministic IDs
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for i, name := range names {
		nameToID[name] = StateID(i + 2)
	}

	for _, name := range append([]string{"Root"}, names...) {
		cfg := config.States[name]
		id := nameToID[name]

		node := m.nodes[StateRoot]
		if id != StateRoot {
			parent := cfg.Parent
			if parent == "" {
				parent = "Root"
			}
			parentID, ok := nameToID[parent]
			if !ok {
				return fmt.Errorf("state '%s' references unknown parent '%s'", name, parent)
			}
			node = m.AddState(id, name, parentID)
		}

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		for _, tc := range cfg.Transitions {
			t, err := m.compileTransition(tc, nameToID)
			if err != nil {
				return fmt.Errorf("state '%s' transitions: %w", name, err)
			}
			node.Transitions = append(node.Transitions, t)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initialID, ok := nameToID[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID
	return nil
}

// GetStateID resolves a state name
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	for id, node := range m.nodes {
		if node.Name == name {
			return id, true
		}
	}
	return StateNone, false
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		args := ActionArgs{Screen: cfg.Screen}
		if cfg.Event != "" {
			et, err := event.ParseEventType(cfg.Event)
			if err != nil {
				return nil, fmt.Errorf("action '%s': %w", cfg.Action, err)
			}
			args.Event = et
		}
		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransition(cfg TransitionConfig, nameToID map[string]StateID) (Transition[T], error) {
	var t Transition[T]

	targetID, ok := nameToID[cfg.Target]
	if !ok {
		return t, fmt.Errorf("unknown target state '%s'", cfg.Target)
	}
	t.TargetID = targetID

	et, err := event.ParseEventType(cfg.Trigger)
	if err != nil {
		return t, err
	}
	t.Event = et

	if cfg.Guard != "" {
		guard, ok := m.guardReg[cfg.Guard]
		if !ok {
			return t, fmt.Errorf("unknown guard function '%s'", cfg.Guard)
		}
		t.Guard = guard
	}
	return t, nil
}
