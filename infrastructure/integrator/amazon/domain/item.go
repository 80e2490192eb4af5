package amazondomain

// SearchItemsRequest é o corpo da operação SearchItems da Product Advertising API 5.0
type SearchItemsRequest struct {
	Keywords    string   `json:"Keywords"`
	SearchIndex string   `json:"SearchIndex"`
	ItemCount   int      `json:"ItemCount"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
	Resources   []string `json:"Resources"`
}

type SearchItemsResponse struct {
	SearchResult *SearchResult `json:"SearchResult,omitempty"`
	Errors       []ErrorDetail `json:"Errors,omitempty"`
}

type SearchResult struct {
	TotalResultCount int    `json:"TotalResultCount"`
	Items            []Item `json:"Items"`
}

type ErrorDetail struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type Item struct {
	ASIN            string           `json:"ASIN"`
	DetailPageURL   string           `json:"DetailPageURL"`
	ItemInfo        *ItemInfo        `json:"ItemInfo,omitempty"`
	Images          *Images          `json:"Images,omitempty"`
	Offers          *Offers          `json:"Offers,omitempty"`
	CustomerReviews *CustomerReviews `json:"CustomerReviews,omitempty"`
}

type ItemInfo struct {
	Title           *DisplayValue    `json:"Title,omitempty"`
	Features        *DisplayValues   `json:"Features,omitempty"`
	Classifications *Classifications `json:"Classifications,omitempty"`
}

type DisplayValue struct {
	DisplayValue string `json:"DisplayValue"`
}

type DisplayValues struct {
	DisplayValues []string `json:"DisplayValues"`
}

type Classifications struct {
	ProductGroup *DisplayValue `json:"ProductGroup,omitempty"`
	Binding      *DisplayValue `json:"Binding,omitempty"`
}

type Images struct {
	Primary *ImageSet `json:"Primary,omitempty"`
}

type ImageSet struct {
	Large  *Image `json:"Large,omitempty"`
	Medium *Image `json:"Medium,omitempty"`
}

type Image struct {
	URL    string `json:"URL"`
	Height int    `json:"Height"`
	Width  int    `json:"Width"`
}

type Offers struct {
	Listings []Listing `json:"Listings"`
}

type Listing struct {
	Price *Price `json:"Price,omitempty"`
}

type Price struct {
	Amount        float64 `json:"Amount"`
	Currency      string  `json:"Currency"`
	DisplayAmount string  `json:"DisplayAmount"`
}

type CustomerReviews struct {
	StarRating *StarRating `json:"StarRating,omitempty"`
	Count      int         `json:"Count"`
}

type StarRating struct {
	Value float64 `json:"Value"`
}

// Title retorna o título de exibição ou vazio
func (i Item) Title() string {
	if i.ItemInfo == nil || i.ItemInfo.Title == nil {
		return ""
	}
	return i.ItemInfo.Title.DisplayValue
}

// Category usa o ProductGroup como categoria do produto
func (i Item) Category() string {
	if i.ItemInfo == nil || i.ItemInfo.Classifications == nil || i.ItemInfo.Classifications.ProductGroup == nil {
		return ""
	}
	return i.ItemInfo.Classifications.ProductGroup.DisplayValue
}

func (i Item) Features() []string {
	if i.ItemInfo == nil || i.ItemInfo.Features == nil {
		return nil
	}
	return i.ItemInfo.Features.DisplayValues
}

// ImageURL prefere a imagem grande e recorre à média
func (i Item) ImageURL() string {
	if i.Images == nil || i.Images.Primary == nil {
		return ""
	}
	if i.Images.Primary.Large != nil {
		return i.Images.Primary.Large.URL
	}
	if i.Images.Primary.Medium != nil {
		return i.Images.Primary.Medium.URL
	}
	return ""
}

// PriceAmount retorna o preço da primeira oferta
func (i Item) PriceAmount() (float64, bool) {
	if i.Offers == nil || len(i.Offers.Listings) == 0 || i.Offers.Listings[0].Price == nil {
		return 0, false
	}
	return i.Offers.Listings[0].Price.Amount, true
}

func (i Item) Rating() *float64 {
	if i.CustomerReviews == nil || i.CustomerReviews.StarRating == nil {
		return nil
	}
	rating := i.CustomerReviews.StarRating.Value
	return &rating
}
