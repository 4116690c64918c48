package settings

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var packagedDefaults []byte

// packagedFile mirrors the bundled configuration layout:
//
//	Settings:
//	  Url: http://localhost:8080
//	  Records: 100
//	  Days: 7
//
// Pointer fields distinguish a missing key from a zero value.
type packagedFile struct {
	Settings *struct {
		URL     *string `yaml:"Url"`
		Records *int    `yaml:"Records"`
		Days    *int    `yaml:"Days"`
	} `yaml:"Settings"`
}

// Provider holds the packaged default settings. It is built once at
// startup and only read afterwards.
type Provider struct {
	defaults domain.Settings
	err      error
}

// NewProvider parses the defaults bundled into the binary.
func NewProvider() *Provider {
	return NewProviderFromBytes(packagedDefaults)
}

// NewProviderFromFile parses defaults from path instead of the bundled copy.
// A missing or unreadable file yields a Provider whose Defaults fail.
func NewProviderFromFile(path string) *Provider {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Provider{err: fmt.Errorf("%w: reading defaults %s: %v", ErrConfiguration, path, err)}
	}
	return NewProviderFromBytes(data)
}

// NewProviderFromBytes parses defaults from raw YAML.
func NewProviderFromBytes(data []byte) *Provider {
	s, err := parseDefaults(data)
	return &Provider{defaults: s, err: err}
}

// Defaults returns the packaged settings, or ErrConfiguration if they
// could not be loaded.
func (p *Provider) Defaults() (domain.Settings, error) {
	if p.err != nil {
		return domain.Settings{}, p.err
	}
	return p.defaults, nil
}

func parseDefaults(data []byte) (domain.Settings, error) {
	if len(data) == 0 {
		return domain.Settings{}, fmt.Errorf("%w: packaged defaults are empty", ErrConfiguration)
	}

	var f packagedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: parsing packaged defaults: %v", ErrConfiguration, err)
	}
	if f.Settings == nil {
		return domain.Settings{}, fmt.Errorf("%w: packaged defaults have no Settings section", ErrConfiguration)
	}

	switch {
	case f.Settings.URL == nil:
		return domain.Settings{}, fmt.Errorf("%w: Settings.Url is missing", ErrConfiguration)
	case f.Settings.Records == nil:
		return domain.Settings{}, fmt.Errorf("%w: Settings.Records is missing", ErrConfiguration)
	case f.Settings.Days == nil:
		return domain.Settings{}, fmt.Errorf("%w: Settings.Days is missing", ErrConfiguration)
	}

	s := domain.Settings{
		URL:        *f.Settings.URL,
		MaxRecords: *f.Settings.Records,
		MaxDays:    *f.Settings.Days,
	}
	if err := s.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return s, nil
}
