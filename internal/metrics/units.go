package metrics

import "strings"

type unitRule struct {
	keywords []string
	unit     string
}

// unitRules are checked in order against the lowercased header.
var unitRules = []unitRule{
	{keywords: []string{"price", "cost", "revenue"}, unit: "$"},
	{keywords: []string{"percent", "rate"}, unit: "%"},
	{keywords: []string{"quantity", "count"}, unit: "units"},
}

// DetectUnit infers a display unit from a column header.
func DetectUnit(header string) string {
	lower := strings.ToLower(header)
	for _, rule := range unitRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.unit
			}
		}
	}
	return ""
}
