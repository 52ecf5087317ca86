package recognition

// listPatterns covers lists, tables, and their navigation-flavored variants.
func listPatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeList,
			Tags:           []string{"ul", "dl"},
			BaseConfidence: 85,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeOrderedList,
			Tags:           []string{"ol"},
			BaseConfidence: 86,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeListItem,
			Tags:           []string{"li", "dt", "dd"},
			BaseConfidence: 84,
			Priority:       PriorityGeneric,
		},
		{
			// Lists naming plans and amounts are price lists, not plain lists:
			// higher priority plus the class and currency signals outscore the
			// generic rule.
			Type:           TypePriceList,
			Tags:           []string{"ul", "ol"},
			ClassKeywords:  []string{"price", "pricing", "plan"},
			ContentRegex:   currencyPattern,
			BaseConfidence: 92,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeMenu,
			Tags:           []string{"ul", "ol"},
			Context:        map[string]bool{"insideNav": true},
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeBreadcrumb,
			ClassKeywords:  []string{"breadcrumb", "crumbs"},
			BaseConfidence: 92,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeTable,
			Tags:           []string{"table"},
			BaseConfidence: 92,
			Priority:       PriorityGeneric,
		},
	}
}
