// pkg/container/compose_validate.go
//
// Native YAML validation for generated docker-compose.yml manifests.
// Rendering happens before anything touches the host, so a template drift
// (e.g. a placeholder that never got substituted) must surface here as a
// hard error rather than ending up inside a running "secret" field.

package container

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ComposeConfig is the subset of a compose manifest this tool generates
// and therefore validates.
type ComposeConfig struct {
	Services map[string]ComposeService `yaml:"services"`
	Networks map[string]ComposeNetwork `yaml:"networks,omitempty"`
	Volumes  map[string]ComposeVolume  `yaml:"volumes,omitempty"`
	Version  string                    `yaml:"version,omitempty"`
}

// ComposeService mirrors the service fields the generated manifest uses.
type ComposeService struct {
	Image         string            `yaml:"image,omitempty"`
	ContainerName string            `yaml:"container_name,omitempty"`
	Environment   map[string]string `yaml:"environment,omitempty"`
	Ports         []string          `yaml:"ports,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	Networks      []string          `yaml:"networks,omitempty"`
	Restart       string            `yaml:"restart,omitempty"`
}

type ComposeNetwork struct {
	External bool   `yaml:"external,omitempty"`
	Name     string `yaml:"name,omitempty"`
}

type ComposeVolume struct {
	Name string `yaml:"name,omitempty"`
}

// ValidationError describes a manifest validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("compose manifest field %q: %s", e.Field, e.Message)
	}
	return "compose manifest: " + e.Message
}

// ValidateManifest parses a rendered compose manifest and rejects it when
// it is not valid YAML, has no services, or still contains any of the
// forbidden placeholder literals.
func ValidateManifest(data []byte, forbidden ...string) (*ComposeConfig, error) {
	content := string(data)
	for _, marker := range forbidden {
		if marker == "" {
			continue
		}
		if strings.Contains(content, marker) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("placeholder %q was not substituted", marker),
			}
		}
	}

	var cfg ComposeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse compose manifest: %w", err)
	}

	if len(cfg.Services) == 0 {
		return nil, &ValidationError{Field: "services", Message: "no services defined"}
	}
	for name, svc := range cfg.Services {
		if svc.Image == "" {
			return nil, &ValidationError{
				Field:   "services." + name + ".image",
				Message: "image reference is required",
			}
		}
	}

	return &cfg, nil
}
