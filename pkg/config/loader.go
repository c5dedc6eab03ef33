package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override configuration
const EnvPrefix = "SHARELINK_"

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile is an explicit configuration file. It must exist.
	ConfigFile string
	// ProjectRoot is where .sharelink.toml is looked up. Empty means the working directory.
	ProjectRoot string
	// Flags holds explicitly set command-line values keyed by their config key
	Flags map[string]interface{}

	SkipFiles bool
	SkipEnv   bool
}

// Load builds the effective configuration. Later layers win:
// embedded defaults, user config file, project config file, explicit
// config file, environment, flags.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. Configuration files
	if !opts.SkipFiles {
		optional := []string{paths.UserConfigFile()}
		if project := projectConfigPath(opts); project != "" {
			optional = append(optional, project)
		}
		for _, path := range optional {
			loaded, err := loadOptionalFile(k, path)
			if err != nil {
				return nil, err
			}
			if loaded {
				sources = append(sources, path)
			}
		}
	}

	if opts.ConfigFile != "" {
		path := paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.FromFS(err, errors.ErrConfigLoad, "stat config file", path)
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag values")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	cfg.Roots.Shared = paths.ExpandHome(cfg.Roots.Shared)
	cfg.Roots.Project = paths.ExpandHome(cfg.Roots.Project)
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func projectConfigPath(opts LoadOptions) string {
	root := opts.ProjectRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		root = wd
	}
	return paths.ProjectConfigPath(paths.ExpandHome(root))
}

func loadOptionalFile(k *koanf.Koanf, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.FromFS(err, errors.ErrConfigLoad, "stat config file", path)
	}
	if err := loadFile(k, path); err != nil {
		return false, err
	}
	return true, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, fmt.Sprintf("failed to load config from %s", path)).
			WithDetail("path", path)
	}
	return nil
}
