package lookup

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/infrastructure/repository"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/pkg/log"
	"github.com/vfg2006/cookaing-api/pkg/utils"
)

const (
	DefaultLimit        = 3
	defaultDBScanLimit  = 100
	defaultKeywords     = "cooking"
	affiliateDisclosure = "As an Amazon Associate we earn from qualifying purchases."
)

// Tier é uma camada da cadeia de busca. Erro ou lista vazia fazem a busca seguir para a próxima.
type Tier struct {
	Name  string
	Fetch func(ctx context.Context, params domain.ProductLookupParams) ([]domain.AffiliateProduct, error)
}

type Service struct {
	cfg            config.Lookup
	partnerTag     string
	productRepo    repository.AffiliateProductRepository
	catalog        CatalogSearcher
	staticProducts []domain.AffiliateProduct
	tiers          []Tier
}

// NewService monta a cadeia banco → catálogo externo → tabela estática.
// catalog nil desabilita a camada externa.
func NewService(
	cfg config.Lookup,
	amazonCfg config.Amazon,
	productRepo repository.AffiliateProductRepository,
	catalog CatalogSearcher,
) *Service {
	s := &Service{
		cfg:            cfg,
		partnerTag:     amazonCfg.PartnerTag,
		productRepo:    productRepo,
		staticProducts: DefaultStaticProducts,
	}

	if catalog != nil && amazonCfg.HasCredentials() {
		s.catalog = catalog
	}

	s.tiers = s.buildTiers()
	return s
}

// WithStaticProducts substitui a tabela de sugestões estáticas
func (s *Service) WithStaticProducts(products []domain.AffiliateProduct) *Service {
	s.staticProducts = products
	s.tiers = s.buildTiers()
	return s
}

func (s *Service) buildTiers() []Tier {
	tiers := []Tier{{Name: "database", Fetch: s.fetchFromDatabase}}
	if s.catalog != nil {
		tiers = append(tiers, Tier{Name: "catalog", Fetch: s.fetchFromCatalog})
	}
	return append(tiers, Tier{Name: "static", Fetch: s.fetchFromStatic})
}

// LookupProducts nunca falha: no pior caso retorna lista vazia
func (s *Service) LookupProducts(ctx context.Context, params domain.ProductLookupParams) []domain.AffiliateProduct {
	products, tier := firstNonEmpty(ctx, s.tiers, params)

	products = FilterByPreferences(products, params.ContactPreferences, s.cfg.BudgetThreshold)

	limit := params.Limit
	if limit <= 0 {
		limit = s.defaultLimit()
	}
	if len(products) > limit {
		products = products[:limit]
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"tier":     tier,
		"returned": len(products),
	}).Debug("Busca de produtos afiliados concluída")

	return products
}

// firstNonEmpty percorre as camadas em ordem e devolve o primeiro resultado não vazio.
// A última camada é devolvida mesmo vazia.
func firstNonEmpty(ctx context.Context, tiers []Tier, params domain.ProductLookupParams) ([]domain.AffiliateProduct, string) {
	for i, tier := range tiers {
		products, err := safeFetch(ctx, tier, params)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"tier":  tier.Name,
				"error": err.Error(),
			}).Warn("Falha na camada de busca, seguindo para a próxima")
			continue
		}

		if len(products) > 0 || i == len(tiers)-1 {
			return products, tier.Name
		}
	}

	return []domain.AffiliateProduct{}, ""
}

func safeFetch(ctx context.Context, tier Tier, params domain.ProductLookupParams) (products []domain.AffiliateProduct, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic na camada %s: %v", tier.Name, r)
		}
	}()
	return tier.Fetch(ctx, params)
}

func (s *Service) fetchFromDatabase(ctx context.Context, params domain.ProductLookupParams) ([]domain.AffiliateProduct, error) {
	scanLimit := s.cfg.DBScanLimit
	if scanLimit <= 0 {
		scanLimit = defaultDBScanLimit
	}

	products, err := s.productRepo.GetAffiliateProducts(ctx, params.OrgID, scanLimit)
	if err != nil {
		return nil, err
	}

	return filterByParams(products, params), nil
}

// fetchFromCatalog persiste cada item retornado com um SKU sintético.
// Falha ao persistir um item é registrada e o item continua no resultado.
func (s *Service) fetchFromCatalog(ctx context.Context, params domain.ProductLookupParams) ([]domain.AffiliateProduct, error) {
	keywords := catalogKeywords(params)

	limit := params.Limit
	if limit <= 0 {
		limit = s.defaultLimit()
	}

	products, err := s.catalog.SearchProducts(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx)
	for i := range products {
		products[i].OrgID = params.OrgID
		products[i].Source = domain.ProductSourceAmazon
		tagWithLookup(&products[i], params)

		id, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Warn("Erro ao gerar SKU do produto do catálogo")
			continue
		}
		products[i].SKU = "amazon-" + id

		if _, err := s.productRepo.CreateAffiliateProduct(ctx, &products[i]); err != nil {
			logger.WithFields(log.Fields{
				"sku":   products[i].SKU,
				"error": err.Error(),
			}).Warn("Erro ao persistir produto do catálogo, mantendo no resultado")
		}
	}

	return products, nil
}

// tagWithLookup grava as tags e a categoria da consulta no produto persistido,
// para que a mesma consulta seja atendida pelo banco na próxima vez
func tagWithLookup(product *domain.AffiliateProduct, params domain.ProductLookupParams) {
	for _, tag := range params.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.ContainsFunc(product.Attributes.Tags, func(t string) bool {
			return strings.EqualFold(t, tag)
		}) {
			continue
		}
		product.Attributes.Tags = append(product.Attributes.Tags, tag)
	}

	if product.Attributes.Category == "" {
		product.Attributes.Category = strings.TrimSpace(params.Category)
	}
}

func (s *Service) fetchFromStatic(_ context.Context, params domain.ProductLookupParams) ([]domain.AffiliateProduct, error) {
	products := make([]domain.AffiliateProduct, len(s.staticProducts))
	copy(products, s.staticProducts)
	for i := range products {
		products[i].OrgID = params.OrgID
	}
	return filterByParams(products, params), nil
}

func catalogKeywords(params domain.ProductLookupParams) string {
	if len(params.Tags) > 0 {
		return strings.Join(params.Tags, " ")
	}
	if params.Category != "" {
		return params.Category
	}
	return defaultKeywords
}

func (s *Service) defaultLimit() int {
	if s.cfg.DefaultLimit > 0 {
		return s.cfg.DefaultLimit
	}
	return DefaultLimit
}

// Enrich busca produtos e os anexa ao conteúdo como links de afiliado
func (s *Service) Enrich(ctx context.Context, artifact domain.ContentArtifact, params domain.ProductLookupParams) (*domain.EnrichedContent, error) {
	if strings.TrimSpace(artifact.Content) == "" {
		return nil, ErrContentRequired
	}

	if len(params.Tags) == 0 && params.Category == "" && artifact.Niche != "" {
		params.Category = artifact.Niche
	}

	products := s.LookupProducts(ctx, params)
	if len(products) == 0 && params.Category == artifact.Niche && artifact.Niche != "" {
		params.Category = ""
		products = s.LookupProducts(ctx, params)
	}

	links := make([]domain.AffiliateLink, 0, len(products))
	for _, product := range products {
		links = append(links, domain.AffiliateLink{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			URL:       s.withPartnerTag(product.URL),
			Price:     product.Price,
			Source:    string(product.Source),
		})
	}

	return &domain.EnrichedContent{
		ContentArtifact: artifact,
		EnrichedContent: renderEnrichedContent(artifact.Content, links),
		Products:        products,
		Links:           links,
	}, nil
}

// withPartnerTag adiciona o parâmetro tag quando há partner tag e a URL ainda não possui um
func (s *Service) withPartnerTag(rawURL string) string {
	if s.partnerTag == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	if query.Get("tag") != "" {
		return rawURL
	}

	query.Set("tag", s.partnerTag)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func renderEnrichedContent(content string, links []domain.AffiliateLink) string {
	if len(links) == 0 {
		return content
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(content, "\n"))
	b.WriteString("\n\nRecommended products:\n")
	for _, link := range links {
		if link.Price != nil {
			fmt.Fprintf(&b, "- %s ($%s): %s\n", link.Name, *link.Price, link.URL)
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", link.Name, link.URL)
		}
	}
	b.WriteString("\n")
	b.WriteString(affiliateDisclosure)

	return b.String()
}

func (s *Service) ListProducts(ctx context.Context, orgID int, limit int) ([]domain.AffiliateProduct, error) {
	if limit <= 0 {
		limit = defaultDBScanLimit
	}

	products, err := s.productRepo.GetAffiliateProducts(ctx, orgID, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"org_id": orgID,
			"error":  err.Error(),
		}).Error("Erro ao listar produtos afiliados")
		return nil, fmt.Errorf("%w: %v", ErrListProducts, err)
	}

	return products, nil
}
