package asset

// DefaultEditorFSM is the navigation graph of the editor
// Menu screens are children of Menu so a generation request from either leaves both
const DefaultEditorFSM = `
initial = "Loading"

[states.Loading]
on_exit = [
    { action = "Announce", event = "EventStartup" },
]
transitions = [
    { trigger = "EventStartup", target = "MainMenu" },
]

# === Menu ===

[states.Menu]
transitions = [
    { trigger = "EventGenerationRequested", target = "Generating" },
]

[states.MainMenu]
parent = "Menu"
on_enter = [
    { action = "BuildScreen", screen = "MainMenu" },
]
on_exit = [
    { action = "TeardownScreen" },
]
transitions = [
    { trigger = "EventStartPressed", target = "Options" },
]

[states.Options]
parent = "Menu"
on_enter = [
    { action = "BuildScreen", screen = "Options" },
]
on_exit = [
    { action = "TeardownScreen" },
]
transitions = [
    { trigger = "EventBackPressed", target = "MainMenu" },
]

# === Application ===

[states.Generating]
transitions = [
    { trigger = "EventMapMaterialized", target = "InApp" },
]

[states.InApp]
on_enter = [
    { action = "EnterEditor" },
]
`
