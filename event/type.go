package event

import (
	"fmt"
	"strings"
)

// EventType names a state machine trigger
type EventType int

const (
	// EventTick fires every tick; used by timed transitions
	EventTick EventType = iota

	// EventStartup leaves the loading state
	// Trigger: engine after assets are ready
	EventStartup

	// EventStartPressed opens the options menu
	// Trigger: Start button on the main menu
	EventStartPressed

	// EventSettingsPressed is raised by the Settings button
	// No transition consumes it
	EventSettingsPressed

	// EventBackPressed returns from options to the main menu
	// Trigger: Back button on the options menu
	EventBackPressed

	// EventGenerationRequested leaves the menu for generation
	// Trigger: lifecycle on observing a GenerationRequest
	EventGenerationRequested

	// EventMapMaterialized enters the editor once tiles are spawned
	// Trigger: scene spawner after consuming a GenerationRequest
	EventMapMaterialized

	// EventQuitPressed requests application exit
	// Trigger: Quit button; handled by the engine, not the state graph
	EventQuitPressed
)

var eventNames = map[EventType]string{
	EventTick:                "Tick",
	EventStartup:             "Startup",
	EventStartPressed:        "StartPressed",
	EventSettingsPressed:     "SettingsPressed",
	EventBackPressed:         "BackPressed",
	EventGenerationRequested: "GenerationRequested",
	EventMapMaterialized:     "MapMaterialized",
	EventQuitPressed:         "QuitPressed",
}

var eventsByName = func() map[string]EventType {
	m := make(map[string]EventType, len(eventNames))
	for t, name := range eventNames {
		m["event"+strings.ToLower(name)] = t
	}
	return m
}()

// String returns the event name used in state graph files
func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return "Event" + name
	}
	return fmt.Sprintf("EventType(%d)", int(e))
}

// ParseEventType resolves a trigger name, with or without the Event prefix, case-insensitively
func ParseEventType(name string) (EventType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(key, "event") {
		key = "event" + key
	}
	if t, ok := eventsByName[key]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown event %q", name)
}
