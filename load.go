package histfsm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the configuration format from a file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, &ErrConfiguration{Reason: fmt.Sprintf("unsupported config file extension %q", ext)}
	}
}

// ParseConfig decodes a configuration in the given format.
func ParseConfig(data []byte, format Format) (*Config, error) {
	config := new(Config)

	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, config)
	case FormatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		return nil, &ErrConfiguration{Reason: fmt.Sprintf("unsupported config format %s", format)}
	}

	if err != nil {
		return nil, &ErrConfiguration{Reason: "decode " + format.String(), Err: err}
	}

	if config.states == nil {
		return nil, &ErrConfiguration{Reason: "empty " + format.String() + " document"}
	}

	return config, nil
}

// LoadConfig reads and decodes a configuration file. The format is chosen by extension.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fsm config %s: %w", path, err)
	}

	return ParseConfig(data, format)
}
