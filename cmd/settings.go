package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: --min-lanes is FERRYSIM_MIN_LANES.
const envPrefix = "FERRYSIM"

// settings resolves a value from a changed flag, then the environment.
// Keys that are set in neither leave the destination untouched, so callers
// apply settings last, over defaults and any experiment file.
type settings struct {
	v *viper.Viper
}

func newSettings(fs *pflag.FlagSet) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return &settings{v: v}, nil
}

func (s *settings) intVar(key string, dst *int) {
	if s.v.IsSet(key) {
		*dst = s.v.GetInt(key)
	}
}

func (s *settings) int64Var(key string, dst *int64) {
	if s.v.IsSet(key) {
		*dst = s.v.GetInt64(key)
	}
}

func (s *settings) stringVar(key string, dst *string) {
	if s.v.IsSet(key) {
		*dst = s.v.GetString(key)
	}
}

// stringsVar accepts a comma-separated list from the environment as well as
// a repeated or comma-separated flag.
func (s *settings) stringsVar(key string, dst *[]string) {
	if !s.v.IsSet(key) {
		return
	}
	var out []string
	switch raw := s.v.Get(key).(type) {
	case string:
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	default:
		out = s.v.GetStringSlice(key)
	}
	*dst = out
}
