package domain

import (
	"strconv"
	"strings"
	"time"
)

type ProductSource string

const (
	ProductSourceAmazon ProductSource = "amazon"
	ProductSourceStatic ProductSource = "static"
)

// ProductAttributes corresponde ao JSON livre gravado em attributes_json
type ProductAttributes struct {
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Features []string `json:"features,omitempty"`
	ASIN     string   `json:"asin,omitempty"`
}

type AffiliateProduct struct {
	ID         int64             `json:"id"`
	OrgID      int               `json:"org_id"`
	Source     ProductSource     `json:"source"`
	SKU        string            `json:"sku"`
	Name       string            `json:"name"`
	URL        string            `json:"url"`
	Price      *string           `json:"price"`
	ImageURL   string            `json:"image_url"`
	Attributes ProductAttributes `json:"attributes_json"`
	CreatedAt  time.Time         `json:"created_at"`
}

// PriceValue converte o preço decimal. ok é falso quando o preço é desconhecido ou inválido.
func (p AffiliateProduct) PriceValue() (float64, bool) {
	if p.Price == nil {
		return 0, false
	}

	raw := strings.TrimPrefix(strings.TrimSpace(*p.Price), "$")
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// HasTag verifica, sem diferenciar maiúsculas, se o produto possui a tag
// ou se o nome do produto contém a tag
func (p AffiliateProduct) HasTag(tag string) bool {
	needle := strings.ToLower(strings.TrimSpace(tag))
	if needle == "" {
		return false
	}

	for _, t := range p.Attributes.Tags {
		if strings.ToLower(t) == needle {
			return true
		}
	}

	return strings.Contains(strings.ToLower(p.Name), needle)
}
