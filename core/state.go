package core

// AppState is the coarse application phase
// Forward-only within the editor core: Loading -> Menu -> Generating -> InApp
// The editor starts in Loading and enters Menu on its first tick, so one frame is drawn before any menu exists
type AppState uint8

const (
	StateLoading AppState = iota
	StateMenu
	StateGenerating
	StateInApp
)

// String returns the state name as used in the FSM graph
func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateMenu:
		return "Menu"
	case StateGenerating:
		return "Generating"
	case StateInApp:
		return "InApp"
	default:
		return "Unknown"
	}
}

// MenuState is the menu sub-navigation, meaningful only while AppState is Menu
type MenuState uint8

const (
	MenuNone MenuState = iota
	MenuMain
	MenuOptions
)

// String returns the state name as used in the FSM graph
func (s MenuState) String() string {
	switch s {
	case MenuNone:
		return "None"
	case MenuMain:
		return "MainMenu"
	case MenuOptions:
		return "Options"
	default:
		return "Unknown"
	}
}

// ButtonAction is the semantic action bound to a button widget
type ButtonAction uint8

const (
	ActionNone ButtonAction = iota
	ActionStart
	ActionSettings
	ActionBack
	ActionSubmit
	ActionQuit
)

// String returns the action name
func (a ButtonAction) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionSettings:
		return "Settings"
	case ActionBack:
		return "Back"
	case ActionSubmit:
		return "Submit"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
