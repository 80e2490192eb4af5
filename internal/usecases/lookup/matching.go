package lookup

import (
	"strings"

	"github.com/vfg2006/cookaing-api/internal/domain"
)

// filterByParams aplica os filtros de categoria, faixa de preço e tags
func filterByParams(products []domain.AffiliateProduct, params domain.ProductLookupParams) []domain.AffiliateProduct {
	filtered := make([]domain.AffiliateProduct, 0, len(products))
	for _, product := range products {
		if matchesCategory(product, params.Category) &&
			matchesPriceRange(product, params.PriceRange) &&
			matchesAnyTag(product, params.Tags) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

func matchesCategory(product domain.AffiliateProduct, category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Attributes.Category), category)
}

// matchesPriceRange é inclusivo nas duas pontas. Produto sem preço não satisfaz uma faixa informada.
func matchesPriceRange(product domain.AffiliateProduct, priceRange *domain.PriceRange) bool {
	if priceRange == nil || (priceRange.Min == nil && priceRange.Max == nil) {
		return true
	}

	price, ok := product.PriceValue()
	if !ok {
		return false
	}

	if priceRange.Min != nil && price < *priceRange.Min {
		return false
	}
	if priceRange.Max != nil && price > *priceRange.Max {
		return false
	}
	return true
}

func matchesAnyTag(product domain.AffiliateProduct, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if product.HasTag(tag) {
			return true
		}
	}
	return false
}
