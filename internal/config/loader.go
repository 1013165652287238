/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/utils/ptr"

	"github.com/samueltardieu/assignments/pkg/config"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ASSIGN"

// Configuration keys, shared by flags, environment and config file.
const (
	KeyMult        = "mult"
	KeyPower       = "power"
	KeyNumSlots    = "num-slots"
	KeyVerbose     = "verbose"
	KeyOutput      = "output"
	KeySolver      = "solver"
	KeyDelimiter   = "delimiter"
	KeyConfig      = "config"
	KeyMetricsFile = "metrics-file"
)

// Options are the settings that do not belong to config.Config.
type Options struct {
	// ConfigFile is the YAML file values were read from, if any.
	ConfigFile string
	// MetricsFile receives the run metrics when set.
	MetricsFile string
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.Int64P(KeyMult, "m", def.Mult, "multiplicative coefficient for ranks")
	fs.IntP(KeyPower, "p", def.Power, "power coefficient for ranks")
	fs.IntP(KeyNumSlots, "n", 0, "number of slots (default: the number of agents)")
	fs.BoolP(KeyVerbose, "v", false, "print achieved ranks and totals")
	fs.StringP(KeyOutput, "o", string(def.Output),
		fmt.Sprintf("output format (%s)", joinFormats(config.Formats)))
	fs.String(KeySolver, def.Solver,
		fmt.Sprintf("assignment solver (%s)", strings.Join(config.Solvers, "|")))
	fs.String(KeyDelimiter, string(def.Delimiter), `input field delimiter, a single character or \t`)
	fs.String(KeyConfig, "", "YAML configuration file")
	fs.String(KeyMetricsFile, "", "write run metrics in prometheus text format to this file")
}

// NewViper returns a viper instance bound to fs and to the environment.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

// Load reads the configuration from v. The returned config.Config has been validated.
func Load(v *viper.Viper) (config.Config, Options, error) {
	opts := Options{
		ConfigFile:  v.GetString(KeyConfig),
		MetricsFile: v.GetString(KeyMetricsFile),
	}
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, opts, fmt.Errorf("reading config file %s: %w", opts.ConfigFile, err)
		}
	}

	cfg := config.Default()
	var err error
	if cfg.Mult, err = cast.ToInt64E(v.Get(KeyMult)); err != nil {
		return cfg, opts, config.NewInvalidValueError(config.InvalidMult, "mult", v.Get(KeyMult), "must be an integer")
	}
	if cfg.Power, err = cast.ToIntE(v.Get(KeyPower)); err != nil {
		return cfg, opts, config.NewInvalidValueError(config.InvalidPower, "power", v.Get(KeyPower), "must be an integer")
	}
	if v.IsSet(KeyNumSlots) {
		n, err := cast.ToIntE(v.Get(KeyNumSlots))
		if err != nil {
			return cfg, opts, config.NewInvalidValueError(config.InvalidNumSlots, "numSlots", v.Get(KeyNumSlots), "must be an integer")
		}
		cfg.NumSlots = ptr.To(n)
	}
	if cfg.Verbose, err = cast.ToBoolE(v.Get(KeyVerbose)); err != nil {
		return cfg, opts, fmt.Errorf("%s: %w", KeyVerbose, err)
	}
	cfg.Output = config.Format(strings.ToLower(v.GetString(KeyOutput)))
	cfg.Solver = strings.ToLower(v.GetString(KeySolver))
	if cfg.Delimiter, err = ParseDelimiter(v.GetString(KeyDelimiter)); err != nil {
		return cfg, opts, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, opts, err
	}
	return cfg, opts, nil
}

// ParseDelimiter converts a delimiter setting into a rune. `\t` and "tab" name the tab character.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, config.NewInvalidValueError(config.InvalidDelimiter, "delimiter", s, "must be a single character")
	}
	return r, nil
}

func joinFormats(formats []config.Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}
