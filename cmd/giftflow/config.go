package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/giftflow/builder"
	"github.com/katalvlaran/giftflow/flow"
)

const envPrefix = "GIFTFLOW"

const (
	modeMaxFlow = "maxflow"
	modeMinCost = "mincost"
)

// config is the merged view of flags, environment and config file.
type config struct {
	Input            string `mapstructure:"input" validate:"required"`
	Mode             string `mapstructure:"mode" validate:"oneof=maxflow mincost"`
	Format           string `mapstructure:"format" validate:"oneof=text json"`
	RankCost         string `mapstructure:"rank-cost" validate:"oneof=none linear"`
	PairCapacity     int64  `mapstructure:"pair-capacity" validate:"gte=0"`
	AllotmentPairs   bool   `mapstructure:"allotment-pairs"`
	DefaultCapacity  int64  `mapstructure:"default-capacity" validate:"gte=0"`
	MaxAugmentations int    `mapstructure:"max-augmentations" validate:"gte=0"`
	IgnoreUnknown    bool   `mapstructure:"ignore-unknown"`
	LogLevel         string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogFormat        string `mapstructure:"log-format" validate:"oneof=text json"`
}

var configValidate = validator.New()

// registerSolveFlags declares every config key as a flag with its default.
func registerSolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "problem file (YAML), - for stdin")
	f.StringP("mode", "m", modeMaxFlow, "solver: maxflow or mincost")
	f.StringP("format", "f", "text", "output format: text or json")
	f.String("rank-cost", "none", "item→recipient cost: none or linear (wishlist position)")
	f.Int64("pair-capacity", builder.DefaultPairCapacity, "capacity of every item→recipient edge")
	f.Bool("allotment-pairs", false, "use the recipient's max allotment as item→recipient capacity")
	f.Int64("default-capacity", flow.DefaultEdgeCapacity, "capacity for edges without an explicit one")
	f.Int("max-augmentations", 0, "augmentation budget, 0 for unlimited")
	f.Bool("ignore-unknown", false, "drop wishlist entries naming undeclared items")
	f.String("log-level", "warn", "debug, info, warn or error")
	f.String("log-format", "text", "log format: text or json")
}

// loadConfig merges flags, GIFTFLOW_* variables and the optional config file,
// in that order of precedence, and validates the result.
func loadConfig(cmd *cobra.Command, configFile string) (config, error) {
	var cfg config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cfg, fmt.Errorf("binding flags: %w", err)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := configValidate.Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// builderOptions translates cfg into builder options.
func (c config) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithPairCapacity(c.PairCapacity)}
	if c.AllotmentPairs {
		opts = append(opts, builder.WithAllotmentPairCapacity())
	}
	if c.RankCost == "linear" {
		opts = append(opts, builder.WithLinearRankCost())
	}
	if c.IgnoreUnknown {
		opts = append(opts, builder.WithUnknownReferences(builder.IgnoreUnknown))
	}

	return opts
}
