package models

import (
	"fmt"
	"strings"
)

// Attribute is a single resolved fact about a product. Attributes keep their
// insertion order so the rendered fact sheet is deterministic.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductFacts holds the facts resolved for one matched product, tagged by the
// product identifier so multiple matches stay distinguishable.
type ProductFacts struct {
	ProductID  int         `json:"product_id"`
	Title      string      `json:"title"`
	Attributes []Attribute `json:"attributes"`
}

// FactSet is the minimal grounding data handed to response synthesis. An empty
// FactSet is valid and means "no match"; the synthesizer must then apologize
// rather than invent product data.
type FactSet struct {
	Products []ProductFacts `json:"products"`
}

// Empty reports whether the set contains no facts at all.
func (fs FactSet) Empty() bool {
	return len(fs.Products) == 0
}

// Render produces the human-readable fact sheet embedded in the synthesis
// prompt. This rendering is the only catalog data the LLM ever sees.
func (fs FactSet) Render() string {
	if fs.Empty() {
		return "No relevant product data found."
	}

	var sb strings.Builder
	for i, p := range fs.Products {
		fmt.Fprintf(&sb, "%d. %s (product #%d)\n", i+1, p.Title, p.ProductID)
		for _, a := range p.Attributes {
			fmt.Fprintf(&sb, "   - %s: %s\n", a.Name, a.Value)
		}
	}
	return sb.String()
}
