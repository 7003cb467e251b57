package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/universe"
)

func TestInferCategory(t *testing.T) {
	reg := universe.Default()
	rules, def := reg.CategoryRules(), reg.DefaultCategory()

	cases := []struct {
		name    string
		related string
		source  string
		want    models.Category
	}{
		{name: "energy desk", related: "XOM", source: "Reuters Energy Desk", want: models.CategoryEnergy},
		{name: "no match defaults", related: "AAPL", source: "Reuters", want: models.CategoryTechnology},
		{name: "empty defaults", want: models.CategoryTechnology},
		{name: "pharma", related: "PFE", source: "FiercePharma", want: models.CategoryHealthcare},
		{name: "bank", related: "", source: "American Banker", want: models.CategoryFinance},
		{name: "financ prefix", related: "", source: "Financial Times", want: models.CategoryFinance},
		{name: "ticker keyword", related: "JPM", source: "CNBC", want: models.CategoryFinance},
		// healthcare is checked before finance
		{name: "order is significant", related: "", source: "Health Finance Daily", want: models.CategoryHealthcare},
		{name: "case insensitive", related: "", source: "OIL PRICE", want: models.CategoryEnergy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InferCategory(tc.related, tc.source, rules, def))
		})
	}
}
