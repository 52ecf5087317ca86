package recognition

import (
	"sort"
	"sync"
)

// Priority bands for registered patterns. Higher values are scanned first,
// which decides equal-confidence ties. Use increments of 50 for future
// insertions between bands.
const (
	PriorityGeneric     = 100 // bare semantic tags: p, img, table
	PriorityStructural  = 200 // layout regions: header, footer, section, nav
	PrioritySpecialized = 300 // class/context-qualified variants: hero, card, price list
	PriorityOverride    = 400 // unambiguous signals: ARIA roles, input types
)

// Registry is the immutable, priority-sorted pattern list. Built once,
// validated at construction, never mutated afterward; safe for concurrent
// reads without synchronization.
type Registry struct {
	patterns []*compiledPattern
}

// NewRegistry validates and compiles patterns into a registry. The list is
// stable-sorted by priority descending: ties preserve registration order.
// Any invalid pattern fails construction with a *PatternError — programmer
// errors surface at startup, never at classification time.
func NewRegistry(patterns []Pattern) (*Registry, error) {
	compiled := make([]*compiledPattern, 0, len(patterns))
	for i, p := range patterns {
		cp, err := compile(p, i)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, cp)
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &Registry{patterns: compiled}, nil
}

// MustNewRegistry is NewRegistry for pattern sets known valid at compile
// time, such as the built-in catalog.
func MustNewRegistry(patterns []Pattern) *Registry {
	reg, err := NewRegistry(patterns)
	if err != nil {
		panic(err)
	}
	return reg
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry of built-in patterns, built lazily once.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = MustNewRegistry(builtinPatterns())
	})
	return defaultRegistry
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}

// PatternInfo is the auditable summary of one registered rule.
type PatternInfo struct {
	Type           ComponentType `json:"type"`
	Tags           []string      `json:"tags,omitempty"`
	ClassKeywords  []string      `json:"class_keywords,omitempty"`
	ContentRegex   string        `json:"content_regex,omitempty"`
	AriaRole       string        `json:"aria_role,omitempty"`
	BaseConfidence int           `json:"base_confidence"`
	Priority       int           `json:"priority"`
	HasCSS         bool          `json:"has_css"`
	HasContext     bool          `json:"has_context"`
}

// Inventory lists every pattern in scan order so reviewers can audit the
// rule set.
func (r *Registry) Inventory() []PatternInfo {
	out := make([]PatternInfo, 0, len(r.patterns))
	for _, p := range r.patterns {
		out = append(out, PatternInfo{
			Type:           p.Type,
			Tags:           p.Tags,
			ClassKeywords:  p.ClassKeywords,
			ContentRegex:   p.ContentRegex,
			AriaRole:       p.AriaRole,
			BaseConfidence: p.BaseConfidence,
			Priority:       p.Priority,
			HasCSS:         p.CSS != nil,
			HasContext:     len(p.Context) > 0,
		})
	}
	return out
}
