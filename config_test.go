package histfsm_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/enetx/histfsm"
)

const playerJSON = `{
  "initial": "stopped",
  "states": {
    "stopped": {"transitions": {"play": "playing"}},
    "playing": {"transitions": {"pause": "paused", "stop": "stopped"}},
    "paused":  {"transitions": {"play": "playing", "stop": "stopped"}},
    "ejected": {"transitions": {}}
  }
}`

const playerYAML = `
initial: stopped
states:
  stopped:
    transitions:
      play: playing
  playing:
    transitions:
      pause: paused
      stop: stopped
  paused:
    transitions:
      play: playing
      stop: stopped
  ejected:
`

func TestConfig_Builder(t *testing.T) {
	c := histfsm.NewConfig("a").
		State("b").
		Transition("a", "go", "b").
		Transition("a", "go", "c").
		State("a")

	assert.Equal(t, histfsm.State("a"), c.Initial())
	assertStates(t, c.States(), "b", "a")
	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("c"))

	to, ok := c.Target("a", "go")
	assert.True(t, ok)
	assert.Equal(t, histfsm.State("c"), to)

	_, ok = c.Target("b", "go")
	assert.False(t, ok)

	_, ok = c.Target("missing", "go")
	assert.False(t, ok)
}

func TestConfig_EventsSorted(t *testing.T) {
	c := histfsm.NewConfig("a").
		Transition("a", "zeta", "a").
		Transition("a", "alpha", "a").
		Transition("a", "mid", "a")

	events := c.Events("a")
	require.Equal(t, 3, len(events))
	assert.Equal(t, histfsm.Event("alpha"), events[0])
	assert.Equal(t, histfsm.Event("mid"), events[1])
	assert.Equal(t, histfsm.Event("zeta"), events[2])
	assert.True(t, c.Events("missing").Empty())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *histfsm.Config
		unknown histfsm.State
		wantErr bool
	}{
		{
			name:   "valid",
			config: histfsm.NewConfig("a").Transition("a", "go", "b").State("b"),
		},
		{
			name:    "empty initial",
			config:  histfsm.NewConfig("").State("a"),
			wantErr: true,
		},
		{
			name:    "undeclared initial",
			config:  histfsm.NewConfig("x").State("a"),
			unknown: "x",
			wantErr: true,
		},
		{
			name:    "undeclared target",
			config:  histfsm.NewConfig("a").Transition("a", "go", "ghost"),
			unknown: "ghost",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var cfgErr *histfsm.ErrConfiguration
			require.True(t, errors.As(err, &cfgErr))

			if tt.unknown != "" {
				var unkErr *histfsm.ErrUnknownState
				require.True(t, errors.As(err, &unkErr))
				assert.Equal(t, tt.unknown, unkErr.State)
			}
		})
	}
}

func TestConfig_ParseJSONKeepsOrder(t *testing.T) {
	c, err := histfsm.ParseConfig([]byte(playerJSON), histfsm.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, histfsm.State("stopped"), c.Initial())
	assertStates(t, c.States(), "stopped", "playing", "paused", "ejected")

	to, ok := c.Target("paused", "stop")
	assert.True(t, ok)
	assert.Equal(t, histfsm.State("stopped"), to)
	require.NoError(t, c.Validate())
}

func TestConfig_ParseYAMLKeepsOrder(t *testing.T) {
	c, err := histfsm.ParseConfig([]byte(playerYAML), histfsm.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, histfsm.State("stopped"), c.Initial())
	assertStates(t, c.States(), "stopped", "playing", "paused", "ejected")
	assert.True(t, c.Events("ejected").Empty())
	require.NoError(t, c.Validate())
}

func TestConfig_JSONRoundTrip(t *testing.T) {
	c, err := histfsm.ParseConfig([]byte(playerJSON), histfsm.FormatJSON)
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	restored, err := histfsm.ParseConfig(data, histfsm.FormatJSON)
	require.NoError(t, err)

	assertStates(t, restored.States(), c.States()...)
	assert.JSONEq(t, string(data), mustJSON(t, restored))
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	c, err := histfsm.ParseConfig([]byte(playerYAML), histfsm.FormatYAML)
	require.NoError(t, err)

	data, err := yaml.Marshal(c)
	require.NoError(t, err)

	restored, err := histfsm.ParseConfig(data, histfsm.FormatYAML)
	require.NoError(t, err)

	assertStates(t, restored.States(), "stopped", "playing", "paused", "ejected")

	to, ok := restored.Target("playing", "pause")
	assert.True(t, ok)
	assert.Equal(t, histfsm.State("paused"), to)
}

func TestConfig_MarshalByValue(t *testing.T) {
	c, err := histfsm.ParseConfig([]byte(playerJSON), histfsm.FormatJSON)
	require.NoError(t, err)

	byValue, err := json.Marshal(*c)
	require.NoError(t, err)
	assert.JSONEq(t, mustJSON(t, c), string(byValue))

	data, err := yaml.Marshal(*c)
	require.NoError(t, err)

	restored, err := histfsm.ParseConfig(data, histfsm.FormatYAML)
	require.NoError(t, err)
	assertStates(t, restored.States(), "stopped", "playing", "paused", "ejected")
}

func TestConfig_EmptyTargetIsNoTransition(t *testing.T) {
	c := histfsm.NewConfig("a").
		Transition("a", "go", "").
		Transition("a", "next", "b").
		State("b")

	_, ok := c.Target("a", "go")
	assert.False(t, ok)

	events := c.Events("a")
	require.Equal(t, 1, len(events))
	assert.Equal(t, histfsm.Event("next"), events[0])
	require.NoError(t, c.Validate())
	assert.NotContains(t, string(c.ToDOT()), `"a" -> ""`)
}

func TestConfig_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format histfsm.Format
	}{
		{name: "broken json", data: `{"initial": `, format: histfsm.FormatJSON},
		{name: "json states not an object", data: `{"initial": "a", "states": ["a"]}`, format: histfsm.FormatJSON},
		{name: "yaml states not a mapping", data: "initial: a\nstates: [a, b]\n", format: histfsm.FormatYAML},
		{name: "empty yaml", data: "", format: histfsm.FormatYAML},
		{name: "null json", data: "null", format: histfsm.FormatJSON},
		{name: "padded null json", data: " null\n", format: histfsm.FormatJSON},
		{name: "unknown format", data: "{}", format: histfsm.Format(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := histfsm.ParseConfig([]byte(tt.data), tt.format)
			require.Error(t, err)

			var cfgErr *histfsm.ErrConfiguration
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestConfig_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "player.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(playerJSON), 0o600))

	yamlPath := filepath.Join(dir, "player.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte(playerYAML), 0o600))

	for _, path := range []string{jsonPath, yamlPath} {
		c, err := histfsm.LoadConfig(path)
		require.NoError(t, err, path)
		assertStates(t, c.States(), "stopped", "playing", "paused", "ejected")
	}

	_, err := histfsm.LoadConfig(filepath.Join(dir, "player.toml"))
	var cfgErr *histfsm.ErrConfiguration
	assert.True(t, errors.As(err, &cfgErr))

	_, err = histfsm.LoadConfig(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatOf(t *testing.T) {
	f, err := histfsm.FormatOf("machine.yaml")
	require.NoError(t, err)
	assert.Equal(t, histfsm.FormatYAML, f)
	assert.Equal(t, "yaml", f.String())

	f, err = histfsm.FormatOf("/etc/machine.JSON")
	require.NoError(t, err)
	assert.Equal(t, histfsm.FormatJSON, f)

	_, err = histfsm.FormatOf("machine")
	assert.Error(t, err)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}
