package experiments

import (
	"github.com/spf13/viper"
)

// Config is the experiment harness configuration.
type Config struct {
	GamesPerMatchup int      `mapstructure:"games_per_matchup"`
	Boards          []string `mapstructure:"boards"`
	Difficulties    []string `mapstructure:"difficulties"`
	OutputDir       string   `mapstructure:"output_dir"`
	Seed            uint64   `mapstructure:"seed"`
}

// DefaultConfig returns the configuration used when no config file is given:
// the full difficulty matrix on both boards.
func DefaultConfig() *Config {
	return &Config{
		GamesPerMatchup: 30,
		Boards:          []string{"grid", "graph"},
		Difficulties:    []string{"easy", "medium", "hard"},
		OutputDir:       "experiments",
	}
}

// LoadConfig reads a config file, filling unset keys from the defaults.
func LoadConfig(cfgPath string) (*Config, error) {
	defaults := DefaultConfig()
	viper.SetDefault("games_per_matchup", defaults.GamesPerMatchup)
	viper.SetDefault("boards", defaults.Boards)
	viper.SetDefault("difficulties", defaults.Difficulties)
	viper.SetDefault("output_dir", defaults.OutputDir)

	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
