package filter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/laplacian/laplacian"
	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a YAML document that cannot be decoded.
var ErrBadConfig = errors.New("filter: bad configuration")

// Config is one filter entry of a pipeline configuration file.
type Config struct {
	Name   string           `yaml:"name"`
	Params laplacian.Params `yaml:"params"`
}

// LoadConfig decodes a single YAML document into a Config. Layout grids
// written as YAML sequences arrive as nested []any and are accepted by
// laplacian.Filter.Configure as they are.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if cfg.Params == nil {
		cfg.Params = laplacian.Params{}
	}
	return cfg, nil
}

// LoadConfigFile opens path and decodes it with LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	defer fh.Close()
	return LoadConfig(fh)
}

// LoadParams decodes a YAML document and returns only its params section.
func LoadParams(r io.Reader) (laplacian.Params, error) {
	cfg, err := LoadConfig(r)
	if err != nil {
		return nil, err
	}
	return cfg.Params, nil
}

// FromConfig builds a named adapter from cfg and configures it. Options
// passed explicitly override the name from cfg.
func FromConfig(cfg Config, opts ...Option) (*Laplacian, laplacian.Outcome, error) {
	f := NewLaplacian(append([]Option{WithName(cfg.Name)}, opts...)...)
	outcome, err := f.Configure(cfg.Params)
	if err != nil {
		return nil, outcome, err
	}
	return f, outcome, nil
}
