package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config controls where the runner keeps puzzle inputs and how it
// authenticates to adventofcode.com.
type Config struct {
	// InputDir is where inputs are cached, as <year>/<day>.input.
	InputDir string `yaml:"input_dir"`
	// SessionFile holds the session cookie. Ignored if AOC_SESSION is set.
	SessionFile string `yaml:"session_file"`
}

// sessionEnv overrides Config.SessionFile.
const sessionEnv = "AOC_SESSION"

func defaultConfig() Config {
	return Config{
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
	}
}

// LoadConfig reads the YAML config at path on top of the defaults. A
// missing file is not an error. A .env file in the working directory, if
// present, is loaded into the environment.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Session returns the session cookie value, from AOC_SESSION or else from
// the session file.
func (c Config) Session() (string, error) {
	if s := strings.TrimSpace(os.Getenv(sessionEnv)); s != "" {
		return s, nil
	}
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (c Config) inputPath(year, day int, ext string) string {
	return filepath.Join(c.InputDir, fmt.Sprint(year), fmt.Sprintf("%d.%s", day, ext))
}
