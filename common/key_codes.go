package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeyM     = 77 // M key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)
	KeyEsc   = 256

	KeyLeftShift    = 340
	KeyLeftControl  = 341
	KeyRightShift   = 344
	KeyRightControl = 345
)

// keyNames maps config-file key names onto key codes.
var keyNames = map[string]uint32{
	"w":             KeyW,
	"a":             KeyA,
	"s":             KeyS,
	"d":             KeyD,
	"q":             KeyQ,
	"e":             KeyE,
	"m":             KeyM,
	"space":         KeySpace,
	"escape":        KeyEsc,
	"left_shift":    KeyLeftShift,
	"left_control":  KeyLeftControl,
	"right_shift":   KeyRightShift,
	"right_control": KeyRightControl,
}

// KeyByName resolves a key name (e.g. "w", "left_shift", "7") to its key code. Matching is case-insensitive.
//
// Parameters:
//   - name: the key name as written in the config file
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyByName(name string) (uint32, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if code, ok := keyNames[name]; ok {
		return code, true
	}
	// remaining letters and digits use their uppercase ASCII value, as GLFW does
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'a' && c <= 'z':
			return uint32(c - 'a' + 'A'), true
		case c >= '0' && c <= '9':
			return uint32(c), true
		}
	}
	return 0, false
}
