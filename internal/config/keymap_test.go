package config

import (
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestParseKeymap(t *testing.T) {
	km, err := ParseKeymap([]byte(`{"bindings": {"w": "wordForward", "gg": "documentStart", "q": ""}}`))
	if err != nil {
		t.Fatal(err)
	}
	if km.Len() != 3 {
		t.Fatalf("len = %d, want 3", km.Len())
	}
	if name, ok := km.Motion("w"); !ok || name != "wordForward" {
		t.Errorf("w -> %q %v", name, ok)
	}
	if _, ok := km.Motion("q"); ok {
		t.Error("empty binding should not resolve")
	}
	if !km.Masked("q") {
		t.Error("empty binding should mask")
	}
	if km.Masked("w") {
		t.Error("real binding should not mask")
	}
}

func TestKeymapIsPrefix(t *testing.T) {
	km := NewKeymap()
	km.Bind("zz", "documentEnd")

	if !km.IsPrefix("z") {
		t.Error("z should be a prefix of zz")
	}
	if km.IsPrefix("zz") {
		t.Error("a complete binding is not its own prefix")
	}
	if km.IsPrefix("x") {
		t.Error("x is not a prefix of any binding")
	}
	if km.IsPrefix("") {
		t.Error("empty sequence is never a pending prefix")
	}
}

func TestParseKeymapErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"bindings": `},
		{"bindings not object", `{"bindings": ["w"]}`},
		{"non-string motion", `{"bindings": {"w": 7}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseKeymap([]byte(tt.data)); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestParseKeymapEmptyDocument(t *testing.T) {
	km, err := ParseKeymap([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if km.Len() != 0 {
		t.Errorf("len = %d, want 0", km.Len())
	}
}

func TestLoadKeymapMissingFile(t *testing.T) {
	km, err := LoadKeymap(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing keymap should not error: %v", err)
	}
	if km.Len() != 0 {
		t.Errorf("len = %d, want 0", km.Len())
	}
}

func TestKeymapRoundTrip(t *testing.T) {
	km := NewKeymap()
	km.Bind("w", "wordForward")
	km.Bind("g.", "custom.dotted")

	data, err := km.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("emitted invalid JSON: %s", data)
	}

	back, err := ParseKeymap(data)
	if err != nil {
		t.Fatalf("reparsing emitted keymap: %v", err)
	}
	if name, ok := back.Motion("w"); !ok || name != "wordForward" {
		t.Errorf("w -> %q %v", name, ok)
	}
	if name, ok := back.Motion("g."); !ok || name != "custom.dotted" {
		t.Errorf("g. -> %q %v", name, ok)
	}
}
