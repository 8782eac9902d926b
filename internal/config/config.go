package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
)

var ErrTooManyArgs = errors.New("too many arguments")

// Board defaults are preset before reading instead of using env-default, which would also
// replace an explicit zero from the file.
const (
	defaultBoardSize = 4
	defaultWinStreak = 3
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Rounds    int    `yaml:"rounds" env:"ROUNDS"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE"`
	WinStreak int    `yaml:"win-streak" env:"WIN_STREAK"`
	Renderer  string `yaml:"renderer" env:"RENDERER" env-default:"console"`
	Seed      int64  `yaml:"seed" env:"SEED"`
	Player1   Player `yaml:"player1" env-prefix:"PLAYER1_"`
	Player2   Player `yaml:"player2" env-prefix:"PLAYER2_"`
	Redis     Redis  `yaml:"redis" env-prefix:"REDIS_"`
}

type Player struct {
	Name string `yaml:"name" env:"NAME"`
	Type string `yaml:"type" env:"TYPE" env-default:"whatever"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"CHANNEL" env-default:"tournament:results"`
}

// MustLoad - load configuration from the yml file at path, or from the environment alone
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{
		BoardSize: defaultBoardSize,
		WinStreak: defaultWinStreak,
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

// ApplyArgs overrides the loaded values with positional arguments, in order:
// rounds, board size, win streak, renderer, player1 type, player2 type.
func (that *Config) ApplyArgs(args []string) error {
	if len(args) > 6 {
		return fmt.Errorf("%w: got %d, want at most 6", ErrTooManyArgs, len(args))
	}

	ints := []*int{&that.Rounds, &that.BoardSize, &that.WinStreak}
	names := []string{"rounds", "board size", "win streak"}

	for i, arg := range args {
		switch {
		case i < len(ints):
			value, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
			}
			*ints[i] = value
		case i == 3:
			that.Renderer = arg
		case i == 4:
			that.Player1.Type = arg
		case i == 5:
			that.Player2.Type = arg
		}
	}

	return nil
}

// Validate checks the numeric settings. Player and renderer identifiers are checked by their factories.
func (that *Config) Validate() error {
	if that.Rounds < 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidRounds, that.Rounds)
	}

	if that.BoardSize <= 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, that.BoardSize)
	}

	if that.WinStreak <= 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidWinStreak, that.WinStreak)
	}

	return nil
}

// PlayerNames returns the display names, falling back to each player's type.
func (that *Config) PlayerNames() (string, string) {
	name1, name2 := that.Player1.Name, that.Player2.Name
	if name1 == "" {
		name1 = that.Player1.Type
	}
	if name2 == "" {
		name2 = that.Player2.Type
	}

	return name1, name2
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
