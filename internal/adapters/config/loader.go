// Package config provides the configuration loader for stylecache.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// SupportedVersion is the only config schema version understood by this loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds stylecache.yaml for cwd and returns the resolved configuration. The
// STYLECACHE_CONFIG environment variable names the file explicitly. Without a file the
// defaults apply with cwd as root.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	configPath, found := l.findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(cwd), nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := l.toDomain(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		return filepath.Clean(explicit), true
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

//nolint:cyclop // flat field-by-field mapping
func (l *Loader) toDomain(configPath string, file *File) (*domain.Config, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q in %s, expected %q",
			file.Version, domain.ConfigFileName, SupportedVersion))
	}
	if len(file.Extra) > 0 {
		keys := make([]string, 0, len(file.Extra))
		for k := range file.Extra {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		l.Logger.Warn(fmt.Sprintf("ignoring unknown keys in %s: %s", domain.ConfigFileName, strings.Join(keys, ", ")))
	}

	root := resolveRoot(configPath, file.Root)
	cfg := domain.DefaultConfig(root)

	if file.Cache.Dir != "" {
		cfg.CacheDir = resolvePath(root, file.Cache.Dir)
	}
	if file.Cache.URL != "" {
		cfg.CacheURL = file.Cache.URL
	}

	for i, m := range file.Mounts {
		if m.URL == "" || m.Dir == "" {
			return nil, zerr.With(domain.ErrInvalidMount, "index", i)
		}
		dir := resolvePath(root, m.Dir)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			l.Logger.Warn(fmt.Sprintf("mount directory %s for %s does not exist", dir, m.URL))
		}
		cfg.Mounts = append(cfg.Mounts, domain.Mount{URL: m.URL, Dir: dir})
	}

	if file.Compiler.Binary != "" {
		cfg.CompilerBinary = file.Compiler.Binary
	}
	if file.Compiler.Style != "" {
		if !domain.ValidStyle(file.Compiler.Style) {
			return nil, zerr.With(domain.ErrInvalidStyle, "style", file.Compiler.Style)
		}
		cfg.Style = file.Compiler.Style
	}
	cfg.CompilerIdentity = file.Compiler.Identity

	timeout, err := parseDuration(file.Compiler.Timeout, "compiler.timeout")
	if err != nil {
		return nil, err
	}
	cfg.CompilerTimeout = timeout

	cfg.Minify = file.Output.Minify
	cfg.QualifiedHandles = file.Handles.Qualified

	for k, v := range file.Template.Vars {
		cfg.TemplateVars[k] = v
	}

	debounce, err := parseDuration(file.Watch.Debounce, "watch.debounce")
	if err != nil {
		return nil, err
	}
	if debounce > 0 {
		cfg.Debounce = debounce
	}

	return cfg, nil
}

func parseDuration(s, field string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", field)
	}
	if d < 0 {
		return 0, zerr.With(zerr.Wrap(errors.New("duration must not be negative"), domain.ErrConfigParseFailed.Error()), "field", field)
	}
	return d, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
