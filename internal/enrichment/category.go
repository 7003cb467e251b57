package enrichment

import (
	"strings"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/universe"
)

// InferCategory matches the lower-cased "<related> <source>" text against the
// ordered rules; the first rule with a matching keyword wins.
func InferCategory(related, source string, rules []universe.CategoryRule, fallback models.Category) models.Category {
	text := strings.ToLower(related + " " + source)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	return fallback
}
