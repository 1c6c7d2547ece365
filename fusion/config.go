package fusion

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-directory run configuration file name.
const ConfigFile = ".csfuse.yaml"

// Config mirrors the .csfuse.yaml file found in the input directory. Nil
// and empty values mean "not set"; explicit command-line flags win over it.
type Config struct {
	Root             string   `yaml:"root,omitempty"`
	Output           string   `yaml:"output,omitempty"`
	Recursive        *bool    `yaml:"recursive,omitempty"`
	Annotate         *bool    `yaml:"annotate,omitempty"`
	IncludeGenerated *bool    `yaml:"includeGenerated,omitempty"`
	ExcludeSuffixes  []string `yaml:"excludeSuffixes,omitempty"`
}

// LoadConfig reads .csfuse.yaml from the input directory. A missing file
// yields an empty config.
func LoadConfig(ctx context.Context, inputDir string) (*Config, error) {
	fs := afs.New()
	location := url.Join(inputDir, ConfigFile)
	if ok, _ := fs.Exists(ctx, location); !ok {
		return &Config{}, nil
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return config, nil
}
