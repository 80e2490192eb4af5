package domain

type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// ContactPreferences são as preferências do contato. Ponteiro nil significa "sem restrição".
type ContactPreferences struct {
	Vegan          *bool           `json:"vegan,omitempty"`
	GlutenFree     *bool           `json:"glutenFree,omitempty"`
	Organic        *bool           `json:"organic,omitempty"`
	BudgetFriendly *bool           `json:"budgetFriendly,omitempty"`
	Extra          map[string]bool `json:"extra,omitempty"`
}

type ProductLookupParams struct {
	OrgID              int                 `json:"-"`
	Tags               []string            `json:"tags"`
	Attributes         map[string]any      `json:"attributes,omitempty"`
	Category           string              `json:"category,omitempty"`
	PriceRange         *PriceRange         `json:"priceRange,omitempty"`
	Limit              int                 `json:"limit,omitempty"`
	ContactPreferences *ContactPreferences `json:"contactPreferences,omitempty"`
}

// ContentArtifact é o conteúdo gerado que recebe os produtos afiliados
type ContentArtifact struct {
	ContentID *int64 `json:"contentId,omitempty"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	Niche     string `json:"niche,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

type AffiliateLink struct {
	ProductID int64   `json:"productId"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	Price     *string `json:"price"`
	Source    string  `json:"source"`
}

type EnrichedContent struct {
	ContentArtifact
	EnrichedContent string             `json:"enrichedContent"`
	Products        []AffiliateProduct `json:"products"`
	Links           []AffiliateLink    `json:"links"`
}
