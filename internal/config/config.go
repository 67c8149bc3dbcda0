package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Movement holds the motion execution parameters.
type Movement struct {
	// WrapSearch enables search wraparound at the buffer edges.
	WrapSearch bool `toml:"wrap_search"`

	// ScrollOnEdge asks the host view to scroll when the cursor is pushed
	// against the viewport edge.
	ScrollOnEdge bool `toml:"scroll_on_edge"`

	// VisualMode allows motions to fire in visual mode.
	VisualMode bool `toml:"visual_mode"`
}

// Config is the full engine configuration.
type Config struct {
	Movement Movement `toml:"movement"`

	// KeymapPath points at the JSON keymap file. Empty means builtin
	// bindings only.
	KeymapPath string `toml:"keymap_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Movement: Movement{
			WrapSearch:   true,
			ScrollOnEdge: true,
			VisualMode:   true,
		},
	}
}

// Load reads the settings file at path. A missing file is not an error; the
// defaults are returned unchanged.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads settings from an io.Reader.
func LoadReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
