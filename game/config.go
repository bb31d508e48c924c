package game

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Rows     int   `yaml:"rows"`
	Cols     int   `yaml:"cols"`
	NumMines int   `yaml:"mines"`
	Seed     int64 `yaml:"seed"`

	// Fixed mine layout for the first game, one line per row
	Layout string `yaml:"layout"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		NumMines: DefaultNumMines,
	}
}

// LoadGameConfig reads a YAML config file. Keys absent from the file keep
// their defaults.
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	if config.Layout != "" {
		return (&Board{}).initializeFromLayout(config.Layout)
	}
	return validateDimensions(config.Rows, config.Cols, config.NumMines)
}
