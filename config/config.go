package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/wmw9/twitchvod"
)

const (
	appDir   = "twitchvod"
	fileName = "twitchvod.yaml"
)

var validate = validator.New()

// DefaultPath is twitchvod/twitchvod.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the executor table at path. A missing file is an empty table.
// Names are lower-cased, as viper keys are case-insensitive. Each entry must be a
// list of strings; scalars and non-string items are rejected.
func Load(path string) (map[string]*Command, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return map[string]*Command{}, nil
	}

	// Executor names may contain dots; only "::" nests.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", twitchvod.ErrConfigParse, err)
	}

	raw := map[string][]string{}
	strict := func(c *mapstructure.DecoderConfig) {
		c.WeaklyTypedInput = false
		c.DecodeHook = nil
	}
	if err := v.Unmarshal(&raw, strict); err != nil {
		return nil, fmt.Errorf("%w: %v", twitchvod.ErrConfigParse, err)
	}

	executors := make(map[string]*Command, len(raw))
	for name, templates := range raw {
		cmd, err := NewCommand(name, templates)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", twitchvod.ErrConfigParse, err)
		}
		executors[name] = cmd
	}
	return executors, nil
}
