package main

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/cssmod/internal/cssmod"
)

const defaultConfigPath = ".cssmod.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return errors.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSMOD_* prefix)
	if err := k.Load(env.Provider("CSSMOD_", ".", func(s string) string {
		// CSSMOD_ROOT -> root
		// CSSMOD_CONVERT_DIFF -> convert.diff
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSMOD_")),
			"_", ".",
		)
	}), nil); err != nil {
		return errors.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConvertConfig constructs the converter Config from koanf state.
func buildConvertConfig() cssmod.Config {
	config := cssmod.Config{
		Root:             getStringWithFallback("root", "root", "frontend/src"),
		Quiet:            getBoolWithFallback("quiet", "quiet", false),
		UseColors:        getBoolWithFallback("color", "color", false),
		ShowDiff:         getBoolWithFallback("diff", "convert.diff", false),
		RespectGitignore: getBoolWithFallback("gitignore", "convert.gitignore", true),
	}

	// Flag and config file share the "files" key
	if files := k.Strings("files"); len(files) > 0 {
		config.Files = files
	} else {
		config.Files = append([]string(nil), cssmod.DefaultFiles...)
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
