package lookup

import (
	"github.com/vfg2006/cookaing-api/internal/domain"
)

const DefaultBudgetThreshold = 30.0

var glutenFreeTags = []string{"gluten-free", "gluten free", "glutenfree"}

// FilterByPreferences remove produtos que falham em alguma preferência pedida explicitamente.
// Preferência ausente ou falsa não restringe nada.
func FilterByPreferences(products []domain.AffiliateProduct, prefs *domain.ContactPreferences, budgetThreshold float64) []domain.AffiliateProduct {
	if prefs == nil {
		return products
	}
	if budgetThreshold <= 0 {
		budgetThreshold = DefaultBudgetThreshold
	}

	filtered := make([]domain.AffiliateProduct, 0, len(products))
	for _, product := range products {
		if satisfiesPreferences(product, prefs, budgetThreshold) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

func satisfiesPreferences(product domain.AffiliateProduct, prefs *domain.ContactPreferences, budgetThreshold float64) bool {
	if isSet(prefs.Vegan) && !product.HasTag("vegan") {
		return false
	}

	if isSet(prefs.GlutenFree) && !hasAnyTag(product, glutenFreeTags) {
		return false
	}

	if isSet(prefs.Organic) && !product.HasTag("organic") {
		return false
	}

	if isSet(prefs.BudgetFriendly) {
		if price, ok := product.PriceValue(); ok && price > budgetThreshold {
			return false
		}
	}

	for name, wanted := range prefs.Extra {
		if wanted && !product.HasTag(name) {
			return false
		}
	}

	return true
}

func isSet(flag *bool) bool {
	return flag != nil && *flag
}

func hasAnyTag(product domain.AffiliateProduct, tags []string) bool {
	for _, tag := range tags {
		if product.HasTag(tag) {
			return true
		}
	}
	return false
}
