package lookup

import (
	"context"

	"github.com/vfg2006/cookaing-api/internal/domain"
)

// CatalogSearcher busca produtos em um catálogo externo de afiliados
type CatalogSearcher interface {
	SearchProducts(ctx context.Context, keywords string, limit int) ([]domain.AffiliateProduct, error)
}

// Lookuper é o contrato exposto aos handlers HTTP
type Lookuper interface {
	LookupProducts(ctx context.Context, params domain.ProductLookupParams) []domain.AffiliateProduct
	Enrich(ctx context.Context, artifact domain.ContentArtifact, params domain.ProductLookupParams) (*domain.EnrichedContent, error)
	ListProducts(ctx context.Context, orgID int, limit int) ([]domain.AffiliateProduct, error)
}
