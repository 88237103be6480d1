package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored strings in bytes so the status bar layout stays fixed
const MaxStringLen = 24

// AtomicString is a string cell written by one component and read by the renderer
// Zero value holds the empty string
type AtomicString struct {
	v atomic.Value
}

// Store sets the value, cut to at most MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	s.v.Store(clip(val))
}

// Load returns the current value
func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}

// clip shortens val to MaxStringLen bytes without splitting a UTF-8 sequence
func clip(val string) string {
	if len(val) <= MaxStringLen {
		return val
	}
	cut := MaxStringLen
	for cut > 0 && !utf8.RuneStart(val[cut]) {
		cut--
	}
	return val[:cut]
}
