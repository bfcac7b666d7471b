package classify

import (
	"strings"

	"github.com/Rana718/petseed/internal/types"
)

const Unknown = "unknown"

// Keyword maps a text fragment to a species category.
type Keyword struct {
	Term     string
	Category string
}

// SpeciesKeywords is checked in order; the first term found wins. Longer
// plural forms precede their singular so "GATOS" is not shadowed by "GATO".
var SpeciesKeywords = []Keyword{
	{"CACHORRO", "CACHORRO"},
	{"CAES", "CACHORRO"},
	{"CAO", "CACHORRO"},
	{"DOG", "CACHORRO"},
	{"GATOS", "GATO"},
	{"GATO", "GATO"},
	{"CAT", "GATO"},
	{"PEIXES", "PEIXE"},
	{"PEIXE", "PEIXE"},
	{"FISH", "PEIXE"},
	{"PASSARO", "PASSARO"},
	{"BIRD", "PASSARO"},
	{"HAMSTER", "HAMSTER"},
	{"COELHO", "COELHO"},
}

// Species classifies p with SpeciesKeywords. Matching is case-sensitive over
// name, description and SKU.
func Species(p types.Product) string {
	return SpeciesWith(SpeciesKeywords, p)
}

func SpeciesWith(keywords []Keyword, p types.Product) string {
	for _, kw := range keywords {
		if strings.Contains(p.Name, kw.Term) ||
			strings.Contains(p.Description, kw.Term) ||
			strings.Contains(p.SKU, kw.Term) {
			return kw.Category
		}
	}
	return Unknown
}

// ForSpecies returns the products whose category matches one of the given
// species names, ignoring case.
func ForSpecies(products []types.Product, speciesNames []string) []types.Product {
	if len(speciesNames) == 0 {
		return nil
	}

	var matched []types.Product
	for _, p := range products {
		category := Species(p)
		if category == Unknown {
			continue
		}
		for _, name := range speciesNames {
			if strings.EqualFold(name, category) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}
