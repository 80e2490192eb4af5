package lookup

import (
	"github.com/vfg2006/cookaing-api/internal/domain"
)

func staticProduct(sku, name, url, price, category string, tags ...string) domain.AffiliateProduct {
	return domain.AffiliateProduct{
		Source: domain.ProductSourceStatic,
		SKU:    sku,
		Name:   name,
		URL:    url,
		Price:  &price,
		Attributes: domain.ProductAttributes{
			Category: category,
			Tags:     tags,
		},
	}
}

// DefaultStaticProducts é a tabela de sugestões usada quando nenhuma outra camada retorna produtos
var DefaultStaticProducts = []domain.AffiliateProduct{
	staticProduct("static-chef-knife", "Professional Chef's Knife 8\"", "https://www.amazon.com/dp/B00004RFMT",
		"29.95", "Kitchen Tools", "knife", "cutlery", "essentials"),
	staticProduct("static-cast-iron", "Pre-Seasoned Cast Iron Skillet 12\"", "https://www.amazon.com/dp/B00006JSUA",
		"24.90", "Cookware", "skillet", "cast iron", "gluten-free"),
	staticProduct("static-dutch-oven", "Enameled Dutch Oven 6 Qt", "https://www.amazon.com/dp/B000N501BK",
		"79.99", "Cookware", "dutch oven", "baking", "braising"),
	staticProduct("static-cutting-board", "Bamboo Cutting Board Set", "https://www.amazon.com/dp/B07S9TJ6VK",
		"19.99", "Kitchen Tools", "cutting board", "organic", "eco-friendly"),
	staticProduct("static-spice-rack", "Organic Spice Starter Set", "https://www.amazon.com/dp/B08L5Q5ZQZ",
		"27.50", "Pantry", "spices", "organic", "vegan", "gluten-free"),
	staticProduct("static-plant-cookbook", "The Plant-Based Cookbook", "https://www.amazon.com/dp/B08FF1QY3S",
		"18.49", "Books", "cookbook", "vegan", "plant-based"),
	staticProduct("static-gf-flour", "Gluten-Free All Purpose Flour Blend", "https://www.amazon.com/dp/B00B04EDJ2",
		"12.99", "Pantry", "baking", "gluten-free", "flour"),
	staticProduct("static-air-fryer", "Digital Air Fryer 5.8 Qt", "https://www.amazon.com/dp/B07FDJMC9Q",
		"89.99", "Appliances", "air fryer", "healthy", "quick meals"),
	staticProduct("static-stand-mixer", "Tilt-Head Stand Mixer", "https://www.amazon.com/dp/B00005UP2P",
		"299.99", "Appliances", "mixer", "baking", "desserts"),
	staticProduct("static-meal-prep", "Glass Meal Prep Containers (10 pack)", "https://www.amazon.com/dp/B0721MDHCW",
		"24.99", "Storage", "meal prep", "storage", "budget"),
	staticProduct("static-thermometer", "Instant Read Meat Thermometer", "https://www.amazon.com/dp/B01IHHLB3W",
		"15.99", "Kitchen Tools", "thermometer", "grilling", "bbq"),
	staticProduct("static-olive-oil", "Organic Extra Virgin Olive Oil 1L", "https://www.amazon.com/dp/B00GGBLPVU",
		"16.75", "Pantry", "olive oil", "organic", "vegan", "gluten-free"),
}
