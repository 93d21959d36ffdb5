package service

import (
	"strconv"
	"strings"

	"github.com/ahstack/shopchat/internal/models"
)

// maxMatches caps how many matched products enter the fact sheet, keeping the
// synthesis prompt bounded.
const maxMatches = 5

// defaultMinRating is used for rating filters when the extractor found no
// explicit threshold.
const defaultMinRating = 4.0

// FactResolver deterministically maps an Intent onto catalog records and
// selects the attributes the goal asks for. Resolve is a pure function of its
// inputs: same intent and snapshot, same FactSet.
//
// Numeric thresholds are inclusive throughout: a product passes a rating
// filter when Rating >= MinRating.
type FactResolver struct{}

// NewFactResolver returns a resolver. It holds no state; the constructor
// exists for symmetry with the other services.
func NewFactResolver() *FactResolver {
	return &FactResolver{}
}

// Resolve selects the matching products and produces the minimal fact set for
// the intent. An empty FactSet is the "no match" signal, never an error.
func (r *FactResolver) Resolve(intent models.Intent, products []models.Product) models.FactSet {
	if intent.Goal == models.GoalUnknown && intent.Entity == "" {
		return models.FactSet{}
	}

	matched := r.match(intent, products)

	if intent.Goal == models.GoalRatingFilter {
		min := defaultMinRating
		if intent.Criteria.MinRating != nil {
			min = *intent.Criteria.MinRating
		}
		// The entity (usually a category) narrows the candidates when it
		// matched anything; otherwise the filter runs over the full catalog.
		candidates := matched
		if len(candidates) == 0 {
			candidates = products
		}
		matched = filterByMinRating(candidates, min)
	}

	if len(matched) > maxMatches {
		matched = matched[:maxMatches]
	}

	fs := models.FactSet{}
	for _, p := range matched {
		fs.Products = append(fs.Products, models.ProductFacts{
			ProductID:  p.ID,
			Title:      p.Title,
			Attributes: selectAttributes(intent.Goal, p),
		})
	}
	return fs
}

// match finds the products the entity refers to. Exact case-insensitive title
// equality wins outright; otherwise every title-substring match is kept so
// ambiguity stays visible to the synthesizer. Description and category are a
// secondary tier consulted only when titles match nothing.
func (r *FactResolver) match(intent models.Intent, products []models.Product) []models.Product {
	entity := strings.ToLower(strings.TrimSpace(intent.Entity))
	if entity == "" {
		return nil
	}

	if intent.Goal == models.GoalCategoryQuery {
		return matchField(products, entity, func(p models.Product) string { return p.Category })
	}

	var exact, partial []models.Product
	for _, p := range products {
		title := strings.ToLower(p.Title)
		switch {
		case title == entity:
			exact = append(exact, p)
		case strings.Contains(title, entity):
			partial = append(partial, p)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	if len(partial) > 0 {
		return partial
	}

	// Secondary tier: description or category mentions.
	return matchField(products, entity, func(p models.Product) string {
		return p.Description + " " + p.Category
	})
}

func matchField(products []models.Product, entity string, field func(models.Product) string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(field(p)), entity) {
			out = append(out, p)
		}
	}
	return out
}

func filterByMinRating(products []models.Product, min float64) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Rating >= min {
			out = append(out, p)
		}
	}
	return out
}

// selectAttributes picks only the fields relevant to the goal, so the
// synthesizer never sees catalog data wider than the question.
func selectAttributes(goal models.Goal, p models.Product) []models.Attribute {
	var attrs []models.Attribute
	add := func(name, value string) {
		if value != "" {
			attrs = append(attrs, models.Attribute{Name: name, Value: value})
		}
	}

	switch goal {
	case models.GoalPriceQuery:
		add("price", formatFloat(p.Price))
		if p.DiscountPercentage > 0 {
			add("discount percentage", formatFloat(p.DiscountPercentage))
		}
	case models.GoalAvailability:
		add("stock", strconv.Itoa(p.Stock))
		add("price", formatFloat(p.Price))
	case models.GoalRatingFilter, models.GoalReviewRequest:
		add("rating", formatFloat(p.Rating))
		add("price", formatFloat(p.Price))
	case models.GoalCategoryQuery:
		add("category", p.Category)
		add("price", formatFloat(p.Price))
		add("rating", formatFloat(p.Rating))
	default:
		// general_info, and unknown goals that still named a product.
		add("price", formatFloat(p.Price))
		add("rating", formatFloat(p.Rating))
		add("stock", strconv.Itoa(p.Stock))
		add("warranty", p.WarrantyInformation)
		add("shipping", p.ShippingInformation)
		add("brand", p.Brand)
	}
	return attrs
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
