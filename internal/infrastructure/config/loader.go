package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a config that decoded but cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all loaded configurations
type Config struct {
	Tuning *TuningConfig
	Stage  *StageConfig
}

// Loader loads configuration files using fs.FS interface.
// Files are decoded as YAML or JSON by extension.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads a tuning file on top of DefaultTuning
func (l *Loader) LoadTuning(name string) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := l.decode(name, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", name, err)
	}
	return cfg, nil
}

// LoadStage loads stages/<name>.json, falling back to .yaml
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	file := "stages/" + name + ".json"
	if _, err := fs.Stat(l.fsys, file); errors.Is(err, fs.ErrNotExist) {
		file = "stages/" + name + ".yaml"
	}

	var cfg StageConfig
	if err := l.decode(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	if len(cfg.Layers.Collision) == 0 {
		return nil, fmt.Errorf("stage %s: %w: no collision rows", name, ErrInvalidConfig)
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = 1
	}
	return &cfg, nil
}

// LoadScript reads a script file
func (l *Loader) LoadScript(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}
	return data, nil
}

// LoadAll loads the tuning file and a stage
func (l *Loader) LoadAll(tuning, stage string) (*Config, error) {
	t, err := l.LoadTuning(tuning)
	if err != nil {
		return nil, err
	}

	s, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &Config{
		Tuning: t,
		Stage:  s,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	case ".json":
		err = json.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported config format: %s", name)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
