package recognition

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// overlayFile is the YAML shape of a pattern overlay. Overlays extend the
// built-in catalog with site-specific declarative rules; custom predicate
// functions cannot be expressed in a file.
type overlayFile struct {
	Patterns []overlayPattern `yaml:"patterns"`
}

type overlayPattern struct {
	Type           string              `yaml:"type"`
	Tags           []string            `yaml:"tags"`
	ClassKeywords  []string            `yaml:"classKeywords"`
	CSS            map[string][]string `yaml:"css"`
	ContentRegex   string              `yaml:"contentRegex"`
	AriaRole       string              `yaml:"ariaRole"`
	Context        map[string]bool     `yaml:"context"`
	BaseConfidence int                 `yaml:"baseConfidence"`
	Priority       int                 `yaml:"priority"`
}

// LoadOverlay reads extra declarative patterns from a YAML file. The result
// feeds NewRegistry together with the built-ins, so overlay mistakes fail at
// startup with a *PatternError like any other bad definition.
func LoadOverlay(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern overlay: %w", err)
	}
	return parseOverlay(data)
}

func parseOverlay(data []byte) ([]Pattern, error) {
	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse pattern overlay: %w", err)
	}

	patterns := make([]Pattern, 0, len(file.Patterns))
	for _, op := range file.Patterns {
		p := Pattern{
			Type:           ComponentType(op.Type),
			Tags:           op.Tags,
			ClassKeywords:  op.ClassKeywords,
			ContentRegex:   op.ContentRegex,
			AriaRole:       op.AriaRole,
			Context:        op.Context,
			BaseConfidence: op.BaseConfidence,
			Priority:       op.Priority,
		}
		if len(op.CSS) > 0 {
			p.CSS = CSSIs(op.CSS)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// RegistryWithOverlay builds a registry from the built-in catalog plus the
// overlay at path. An empty path yields the default registry.
func RegistryWithOverlay(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	extra, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(append(builtinPatterns(), extra...))
}
