package cfgutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseTOML parses a TOML config from an io.Reader.
func ParseTOML(r io.Reader, dst any) error {
	return toml.NewDecoder(r).Decode(dst)
}

// ParseJSON parses a JSON config from an io.Reader.
func ParseJSON(r io.Reader, dst any) error {
	return json.NewDecoder(r).Decode(dst)
}

// ParseYAML parses a YAML config from an io.Reader.
func ParseYAML(r io.Reader, dst any) error {
	return yaml.NewDecoder(r).Decode(dst)
}

// Parse parses a reader.
func Parse(f io.Reader, configType string, dst any) error {
	switch configType {
	case "toml":
		return ParseTOML(f, dst)
	case "json":
		return ParseJSON(f, dst)
	case "yaml", "yml":
		return ParseYAML(f, dst)
	default:
		return fmt.Errorf("unsupported config type %s", configType)
	}
}

// ParseFileInto parses a config file from a path into dst. The file extension
// is used to determine the config format. Values already in dst are kept for
// fields absent from the file.
func ParseFileInto(path string, dst any) error {
	ext := filepath.Ext(path)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	if err := Parse(f, strings.ToLower(strings.TrimPrefix(ext, ".")), dst); err != nil {
		return errors.Wrapf(err, "failed to parse config file %q", path)
	}
	return nil
}

// LoadDotEnv loads environment variables from the given .env files into the
// process environment. Variables that are already set are not overridden.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrap(err, "failed to stat env file")
		}
		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "failed to load env file %q", path)
		}
	}
	return nil
}

// VerbosityToLevel lowers base by one slog level step per verbosity count.
// The result never goes below [slog.LevelDebug].
func VerbosityToLevel(base slog.Level, verbosity int) slog.Level {
	level := base - slog.Level(4*verbosity)
	if level < slog.LevelDebug {
		level = slog.LevelDebug
	}
	return level
}

// Env is a type that describes a value that can also be an environment
// variable if the value is of format $ENV. The variable is expanded on every
// read, so .env files loaded later are seen.
type Env[T ~string] string

func (env Env[T]) String() string {
	return string(env.Value())
}

func (env Env[T]) Value() T {
	if strings.HasPrefix(string(env), "$") {
		return T(os.ExpandEnv(string(env)))
	}

	return T(string(env))
}

// EnvString is a string variant of Env.
type EnvString = Env[string]
