package config

import (
	"strings"

	"github.com/corpix/revip"

	"github.com/corpix/sigli/log"
)

type (
	Config          = revip.Config
	Defaultable     = revip.Defaultable
	ErrFileNotFound = revip.ErrFileNotFound
	ErrMarshal      = revip.ErrMarshal
	ErrPostprocess  = revip.ErrPostprocess
	ErrUnmarshal    = revip.ErrUnmarshal
	Expandable      = revip.Expandable
	Marshaler       = revip.Marshaler
	Option          = revip.SourceOption
	Container       = revip.Container
	Unmarshaler     = revip.Unmarshaler
	Validatable     = revip.Validatable
)

//

type BaseConfig struct {
	Log *log.Config `yaml:"log"`
}

func (c *BaseConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
}

func (c *BaseConfig) LogConfig() *log.Config { return c.Log }

//

var (
	FromEnviron    = revip.FromEnviron
	FromFile       = revip.FromFile
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
)

// Sources lists files in the order given followed by the environment,
// so environment variables override file values.
// Empty paths are skipped and an empty prefix disables the environment source.
func Sources(paths []string, envPrefix string, unmarshaler Unmarshaler) []Option {
	sources := make([]Option, 0, len(paths)+1)
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		sources = append(sources, FromFile(path, unmarshaler))
	}
	if envPrefix != "" {
		sources = append(sources, FromEnviron(strings.ToUpper(envPrefix)))
	}
	return sources
}

// Prepare loads cfg from sources, fills defaults and expands values.
// Validation is optional so broken configuration can still be shown.
func Prepare(cfg Config, validate bool, sources ...Option) error {
	_, err := Load(cfg, sources...)
	if err != nil {
		return err
	}

	if validate {
		return Postprocess(cfg, WithDefaults(), WithExpansion(), WithValidation())
	}
	return Postprocess(cfg, WithDefaults(), WithExpansion())
}
