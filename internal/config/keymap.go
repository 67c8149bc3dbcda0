package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Keymap binds key sequences to motion names. Bindings layer over the
// builtin motion table: a binding with an empty motion name masks the
// builtin behind it.
type Keymap struct {
	bindings map[string]string
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]string)}
}

// LoadKeymap reads a keymap JSON file. A missing file yields an empty
// keymap. The expected shape is {"bindings": {"<keys>": "<motion>", ...}}.
func LoadKeymap(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewKeymap(), nil
		}
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return ParseKeymap(data)
}

// ParseKeymap parses keymap JSON.
func ParseKeymap(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("keymap: invalid JSON")
	}
	km := NewKeymap()
	bindings := gjson.GetBytes(data, "bindings")
	if !bindings.Exists() {
		return km, nil
	}
	if !bindings.IsObject() {
		return nil, fmt.Errorf("keymap: bindings must be an object")
	}
	var iterErr error
	bindings.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			iterErr = fmt.Errorf("keymap: binding %q must map to a motion name", key.String())
			return false
		}
		km.bindings[key.String()] = value.String()
		return true
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return km, nil
}

// Bind sets or replaces one binding.
func (km *Keymap) Bind(keys, motion string) {
	km.bindings[keys] = motion
}

// Motion resolves a key sequence to a motion name.
func (km *Keymap) Motion(keys string) (string, bool) {
	name, ok := km.bindings[keys]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// IsPrefix reports whether keys is a strict prefix of some binding.
func (km *Keymap) IsPrefix(keys string) bool {
	if keys == "" {
		return false
	}
	for k := range km.bindings {
		if len(k) > len(keys) && strings.HasPrefix(k, keys) {
			return true
		}
	}
	return false
}

// Masked reports whether keys is explicitly bound to nothing.
func (km *Keymap) Masked(keys string) bool {
	name, ok := km.bindings[keys]
	return ok && name == ""
}

// Len returns the number of bindings.
func (km *Keymap) Len() int {
	return len(km.bindings)
}

// MarshalJSON emits the keymap in the on-disk shape with stable key order.
func (km *Keymap) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(km.bindings))
	for k := range km.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := []byte(`{"bindings":{}}`)
	var err error
	for _, k := range keys {
		out, err = sjson.SetBytesOptions(out, "bindings."+escapePath(k), km.bindings[k], nil)
		if err != nil {
			return nil, fmt.Errorf("keymap: encoding binding %q: %w", k, err)
		}
	}
	return out, nil
}

// escapePath escapes sjson path metacharacters in a binding key.
func escapePath(key string) string {
	var out []rune
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			out = append(out, '\\', r)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
