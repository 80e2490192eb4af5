package amazon

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon/amazonclient"
	amazondomain "github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/pkg/utils"
)

type AmazonIntegrator struct {
	Client amazonclient.Client
}

func New(client amazonclient.Client) *AmazonIntegrator {
	return &AmazonIntegrator{
		Client: client,
	}
}

// SearchProducts busca no catálogo externo e converte os itens para produtos afiliados ainda não persistidos
func (s *AmazonIntegrator) SearchProducts(ctx context.Context, keywords string, limit int) ([]domain.AffiliateProduct, error) {
	items, err := s.Client.SearchItems(ctx, keywords, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"keywords": keywords,
			"error":    err.Error(),
		}).Error("catalog: failed to search items from API")
		return nil, err
	}

	products := make([]domain.AffiliateProduct, 0, len(items))
	for _, item := range items {
		product := FactoryAffiliateProduct(item)
		if product == nil {
			logrus.WithField("asin", item.ASIN).Debug("catalog: item without title or url ignored")
			continue
		}
		products = append(products, *product)
	}

	logrus.WithFields(logrus.Fields{
		"keywords": keywords,
		"items":    len(items),
		"products": len(products),
	}).Debug("catalog: successfully retrieved items")

	return products, nil
}

// FactoryAffiliateProduct retorna nil quando o item não tem título ou link
func FactoryAffiliateProduct(item amazondomain.Item) *domain.AffiliateProduct {
	title := item.Title()
	if title == "" || item.DetailPageURL == "" {
		return nil
	}

	product := &domain.AffiliateProduct{
		Source:   domain.ProductSourceAmazon,
		Name:     title,
		URL:      item.DetailPageURL,
		ImageURL: item.ImageURL(),
		Attributes: domain.ProductAttributes{
			Category: item.Category(),
			Features: item.Features(),
			Rating:   item.Rating(),
			ASIN:     item.ASIN,
		},
	}

	if amount, ok := item.PriceAmount(); ok {
		price := utils.FormatDecimal(amount)
		product.Price = &price
	}

	return product
}
