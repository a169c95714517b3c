package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "erasedbench"
	configFileType = "yaml"
	envPrefix      = "ERASEDBENCH"

	cfgKeyElements    = "elements"
	cfgKeyRounds      = "rounds"
	cfgKeyScenarios   = "scenarios"
	cfgKeyProfile     = "profile"
	cfgKeyProfilePath = "profile_path"
	cfgKeyVerbose     = "verbose"
	cfgKeyTrace       = "trace"
)

type config struct {
	Elements    int
	Rounds      int
	Scenarios   []string
	Profile     string
	ProfilePath string
	Verbose     bool
	Trace       bool
}

// loadConfig layers flags over ERASEDBENCH_* environment variables over
// the optional configuration file. Without an explicit file, erasedbench.yaml
// is looked up in the working directory and a missing file is not an error.
func loadConfig(flags *pflag.FlagSet, configFile string) (config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyElements, 1<<16)
	v.SetDefault(cfgKeyRounds, 100)
	v.SetDefault(cfgKeyProfile, "none")
	v.SetDefault(cfgKeyProfilePath, ".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		cfgKeyElements:    "elements",
		cfgKeyRounds:      "rounds",
		cfgKeyScenarios:   "scenario",
		cfgKeyProfile:     "profile",
		cfgKeyProfilePath: "profile-path",
		cfgKeyVerbose:     "verbose",
		cfgKeyTrace:       "trace",
	}

	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return config{}, fmt.Errorf("bind flag %q: %w", flag, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := config{
		Elements:    v.GetInt(cfgKeyElements),
		Rounds:      v.GetInt(cfgKeyRounds),
		Scenarios:   v.GetStringSlice(cfgKeyScenarios),
		Profile:     v.GetString(cfgKeyProfile),
		ProfilePath: v.GetString(cfgKeyProfilePath),
		Verbose:     v.GetBool(cfgKeyVerbose),
		Trace:       v.GetBool(cfgKeyTrace),
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Elements < 0 {
		return fmt.Errorf("elements must not be negative, got %d", c.Elements)
	}

	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}

	switch c.Profile {
	case "none", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile %q, expected one of none, cpu, mem", c.Profile)
	}

	return nil
}
