// Package config loads and watches the engine configuration.
//
// Two files make up the configuration surface: a TOML settings file holding
// the movement parameters, and a JSON keymap binding key sequences to motion
// names. Both are optional; a missing file yields the built-in defaults, and
// a malformed file is an error rather than a silent fallback.
//
// Reload watches the settings file with fsnotify and delivers debounced
// change notifications; the session decides when to apply them.
package config
