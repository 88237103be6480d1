package fsm

// RootConfig is the top-level graph file
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig is a single state definition
type StateConfig struct {
	Parent      string             `toml:"parent,omitempty"`
	OnEnter     []ActionConfig     `toml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `toml:"on_update,omitempty"`
	OnExit      []ActionConfig     `toml:"on_exit,omitempty"`
	Transitions []TransitionConfig `toml:"transitions,omitempty"`
}

// TransitionConfig is a transition definition
type TransitionConfig struct {
	Trigger string `toml:"trigger"`         // Event name or "Tick"
	Target  string `toml:"target"`          // State name
	Guard   string `toml:"guard,omitempty"` // Registered guard name
}

// ActionConfig is an action reference
type ActionConfig struct {
	Action string `toml:"action"`           // Registered action name
	Screen string `toml:"screen,omitempty"` // Screen name for build actions
	Event  string `toml:"event,omitempty"`  // Event name for EmitEvent
}
