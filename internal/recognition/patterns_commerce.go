package recognition

// commercePatterns covers pricing and product components.
func commercePatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypePricingTable,
			ClassKeywords:  []string{"pricing", "price-table", "plans"},
			ContentRegex:   currencyPattern,
			BaseConfidence: 92,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypePricingCard,
			ClassKeywords:  []string{"plan", "tier", "pricing-card"},
			ContentRegex:   currencyPattern,
			Context:        map[string]bool{"insideCard": true},
			BaseConfidence: 92,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeProductCard,
			ClassKeywords:  []string{"product", "item-card"},
			ContentRegex:   currencyPattern,
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
	}
}
