package config

import (
	"fmt"
	"reflect"

	"github.com/spf13/viper"
	"github.com/wmw9/twitchvod"
)

type Settings struct {
	// Executor table; empty means DefaultPath.
	ConfigFile string `mapstructure:"TWITCHVOD_CONFIG"`

	// Video API
	APIURL   string `mapstructure:"TWITCHVOD_API_URL" validate:"required,url"`
	ClientID string `mapstructure:"TWITCHVOD_CLIENT_ID" validate:"required"`

	Debug bool `mapstructure:"TWITCHVOD_DEBUG"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(v *viper.Viper, s Settings) {
	typ := reflect.TypeOf(s)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			_ = v.BindEnv(tag)
		}
	}
}

// LoadSettings reads the TWITCHVOD_* environment variables.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	bindEnv(v, Settings{})
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("TWITCHVOD_API_URL", twitchvod.API_URL)
	v.SetDefault("TWITCHVOD_CLIENT_ID", twitchvod.CLIENT_ID)

	s := Settings{}
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	if s.ConfigFile == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locate config file: %w", err)
		}
		s.ConfigFile = path
	}
	return &s, nil
}
