package recognition

// feedbackPatterns covers badges, alerts, disclosure widgets, and overlays.
func feedbackPatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeBadge,
			ClassKeywords:  []string{"badge", "chip", "pill"},
			BaseConfidence: 85,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeAlert,
			AriaRole:       "alert",
			BaseConfidence: 92,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeAlert,
			ClassKeywords:  []string{"alert", "notice", "warning", "toast"},
			BaseConfidence: 85,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeTooltip,
			AriaRole:       "tooltip",
			BaseConfidence: 92,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeTooltip,
			ClassKeywords:  []string{"tooltip", "popover"},
			BaseConfidence: 85,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeProgressBar,
			Tags:           []string{"progress", "meter"},
			BaseConfidence: 95,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeProgressBar,
			AriaRole:       "progressbar",
			BaseConfidence: 92,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeAccordion,
			Tags:           []string{"details"},
			BaseConfidence: 88,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeAccordion,
			ClassKeywords:  []string{"accordion", "collapse", "expandable"},
			BaseConfidence: 86,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeTabs,
			AriaRole:       "tablist",
			BaseConfidence: 92,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeTabs,
			ClassKeywords:  []string{"tabs", "tab-list"},
			BaseConfidence: 85,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeModal,
			AriaRole:       "dialog",
			BaseConfidence: 92,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeModal,
			Tags:           []string{"dialog"},
			BaseConfidence: 94,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeModal,
			ClassKeywords:  []string{"modal", "popup", "lightbox"},
			BaseConfidence: 85,
			Priority:       PrioritySpecialized,
		},
	}
}
