package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/pornin/go-kyber/kyber"
)

const (
	paramsFlag     = "params"
	logLevelFlag   = "loglevel"
	configFlag     = "config"
	iterationsFlag = "iterations"
	workersFlag    = "workers"

	defaultParams     = "Kyber768"
	defaultLogLevel   = "info"
	defaultIterations = 10

	settingsKey = "settings"
)

// fileConfig is the layout of the optional YAML configuration file.
type fileConfig struct {
	Params     string `yaml:"params"`
	LogLevel   string `yaml:"loglevel"`
	Iterations int    `yaml:"iterations"`
}

// settings are the resolved global options shared by all commands.
type settings struct {
	params     *kyber.Params
	paramsSet  bool
	iterations int
	log        *zerolog.Logger
}

func readConfigFile(path string) (*fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open config file %s", path)
	}
	defer file.Close()

	var cfg fileConfig
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "cannot parse config file %s", path)
	}
	if cfg.Iterations < 0 {
		return nil, errors.Errorf("config file %s: negative iterations", path)
	}
	return &cfg, nil
}

// resolve picks a value with precedence flag > env > config file > default.
// The urfave flag layer already merges flag and environment values.
func resolve(c *cli.Context, flag string, fromFile string, def string) (string, bool) {
	if v := c.String(flag); c.IsSet(flag) && v != "" {
		return v, true
	}
	if fromFile != "" {
		return fromFile, true
	}
	return def, false
}

func loadSettings(c *cli.Context) (*settings, error) {
	cfg := &fileConfig{}
	if path := c.String(configFlag); path != "" {
		var err error
		if cfg, err = readConfigFile(path); err != nil {
			return nil, err
		}
	}

	level, _ := resolve(c, logLevelFlag, cfg.LogLevel, defaultLogLevel)
	log := createLogger(level, c.App.ErrWriter)

	name, paramsSet := resolve(c, paramsFlag, cfg.Params, defaultParams)
	p, err := kyber.ParamsByName(name)
	if err != nil {
		return nil, errors.Wrapf(err, "parameter set %q", name)
	}

	iterations := cfg.Iterations
	if iterations == 0 {
		iterations = defaultIterations
	}
	return &settings{
		params:     p,
		paramsSet:  paramsSet,
		iterations: iterations,
		log:        log,
	}, nil
}

// before runs ahead of every command and stores the resolved settings in
// the app metadata.
func before(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[settingsKey] = s
	return nil
}

func settingsFromContext(c *cli.Context) *settings {
	return c.App.Metadata[settingsKey].(*settings)
}

// iterationsFromContext returns the command-level iteration count if
// given, or the resolved global one.
func iterationsFromContext(c *cli.Context) (int, error) {
	n := settingsFromContext(c).iterations
	if c.IsSet(iterationsFlag) {
		n = c.Int(iterationsFlag)
	}
	if n <= 0 {
		return 0, errors.Errorf("iterations must be positive, got %d", n)
	}
	return n, nil
}
