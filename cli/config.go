package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		Archive  string `yaml:"archive"`
		Revision int    `yaml:"revision"`
		Workers  int    `yaml:"workers"`
		Debug    bool   `yaml:"debug"`
	}
)

const (
	DefaultConfigPath  = "rune-savior.yaml"
	DefaultArchivePath = "archive.db"
)

var (
	ErrNoCommand = errors.New("no subcommand given")
	ErrNoArchive = errors.New("no archive configured")
)

func DefaultConfig() Config {
	return Config{
		Archive:  DefaultArchivePath,
		Revision: -1,
	}
}

// LoadConfig reads the YAML config at path over the defaults. An empty path
// reads DefaultConfigPath when it exists.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		if !CheckExistence(DefaultConfigPath) {
			return config, nil
		}
		path = DefaultConfigPath
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrap(err, "LoadConfig ReadFile error")
		return config, err
	}
	if err := yaml.Unmarshal(bs, &config); err != nil {
		err := errors.Wrapf(err, "LoadConfig %s", path)
		return config, err
	}
	return config, nil
}

// Override applies the values set on the command line.
func (c Config) Override(args Args) Config {
	if args.Archive != "" {
		c.Archive = args.Archive
	}
	if args.Revision != nil {
		c.Revision = *args.Revision
	}
	if args.Workers != nil {
		c.Workers = *args.Workers
	}
	if args.Debug {
		c.Debug = true
	}
	return c
}
