package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep/game"
)

// runRoot executes the CLI with fresh flag state, feeding "q" to play.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	gameConfig = game.NewGameConfig()
	rootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		require.NoError(t, flag.Value.Set(flag.DefValue))
		flag.Changed = false
	})
	t.Cleanup(func() {
		game.Log.SetOutput(os.Stderr)
		game.Log.SetLevel(logrus.WarnLevel)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader("q\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestConfigLayering(t *testing.T) {
	path := writeConfig(t, "rows: 4\ncols: 4\nmines: 3\nseed: 5\n")

	tests := []struct {
		name     string
		args     []string
		expected game.GameConfig
	}{
		{
			name:     "file only",
			args:     []string{"play", "--config", path},
			expected: game.GameConfig{Rows: 4, Cols: 4, NumMines: 3, Seed: 5},
		},
		{
			name:     "rows flag wins",
			args:     []string{"play", "--config", path, "--rows", "3"},
			expected: game.GameConfig{Rows: 3, Cols: 4, NumMines: 3, Seed: 5},
		},
		{
			name:     "every flag wins",
			args:     []string{"play", "--config", path, "-r", "5", "-c", "6", "-m", "7", "--seed", "9"},
			expected: game.GameConfig{Rows: 5, Cols: 6, NumMines: 7, Seed: 9},
		},
		{
			name:     "flags without file",
			args:     []string{"play", "--rows", "2", "--cols", "3", "--mines", "1", "--seed", "4"},
			expected: game.GameConfig{Rows: 2, Cols: 3, NumMines: 1, Seed: 4},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := runRoot(t, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.expected, gameConfig)
		})
	}
}

func TestConfigSeedFromClock(t *testing.T) {
	path := writeConfig(t, "rows: 4\ncols: 4\nmines: 3\n")

	_, _, err := runRoot(t, "play", "--config", path)
	require.NoError(t, err)
	assert.NotZero(t, gameConfig.Seed)
	assert.Equal(t, 4, gameConfig.Rows)
}

func TestConfigLayout(t *testing.T) {
	path := writeConfig(t, "layout: |\n  .*.\n  ...\n")

	out, _, err := runRoot(t, "play", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, ".*.\n...\n", gameConfig.Layout)
	assert.Contains(t, out, "mines: 001   playing")
	assert.Contains(t, out, "    0 1 2\n 0  # # #\n 1  # # #\n")
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		err      error
		contains string
	}{
		{
			name: "bad log level",
			args: func(t *testing.T) []string {
				return []string{"play", "--log-level", "loud"}
			},
			contains: "invalid --log-level",
		},
		{
			name: "too many mines in file",
			args: func(t *testing.T) []string {
				return []string{"play", "--config", writeConfig(t, "rows: 2\ncols: 2\nmines: 4\n")}
			},
			err: game.ErrTooManyMines,
		},
		{
			name: "bad layout in file",
			args: func(t *testing.T) []string {
				return []string{"play", "--config", writeConfig(t, "layout: \"*.x\"\n")}
			},
			err: game.ErrInvalidLayout,
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"play", "--config", filepath.Join(t.TempDir(), "missing.yaml")}
			},
			err: os.ErrNotExist,
		},
		{
			name: "too many mines in flags",
			args: func(t *testing.T) []string {
				return []string{"auto", "-r", "2", "-c", "2", "-m", "4"}
			},
			err: game.ErrTooManyMines,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, errOut, err := runRoot(t, test.args(t)...)
			require.Error(t, err)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
			}
			if test.contains != "" {
				assert.Contains(t, err.Error(), test.contains)
			}
			// Execute reports the error once, not cobra as well
			assert.NotContains(t, errOut, "Error:")
		})
	}
}
