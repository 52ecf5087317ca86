package recognition

// contentPatterns covers text-bearing components.
func contentPatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeHeading,
			Tags:           []string{"h1", "h2", "h3", "h4", "h5", "h6"},
			BaseConfidence: 90,
			Priority:       PriorityGeneric,
		},
		{
			// Hero-scale headings carry display classes even outside <h*>.
			Type:           TypeHeroHeading,
			Tags:           []string{"h1", "h2"},
			ClassKeywords:  []string{"hero", "display", "headline"},
			Context:        map[string]bool{"insideHero": true},
			BaseConfidence: 94,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeParagraph,
			Tags:           []string{"p"},
			BaseConfidence: 88,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeText,
			Tags:           []string{"span", "strong", "em", "small", "b", "u", "mark"},
			BaseConfidence: 70,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeBlockquote,
			Tags:           []string{"blockquote", "q"},
			BaseConfidence: 90,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeCodeBlock,
			Tags:           []string{"pre", "code"},
			BaseConfidence: 90,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeTestimonial,
			ClassKeywords:  []string{"testimonial", "review", "quote"},
			BaseConfidence: 88,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeLabel,
			Tags:           []string{"label"},
			BaseConfidence: 90,
			Priority:       PriorityGeneric,
		},
	}
}
