package lookup

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/cookaing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/internal/usecases/lookup/mocks"
	"go.uber.org/mock/gomock"
)

var (
	lookupCfg = config.Lookup{DefaultLimit: 3, DBScanLimit: 100, BudgetThreshold: 30}
	amazonCfg = config.Amazon{AccessKey: "ak", SecretKey: "sk", PartnerTag: "cookaing-20"}
)

type lookupFixture struct {
	repo    *repomocks.MockAffiliateProductRepository
	catalog *mocks.MockCatalogSearcher
	service *Service
}

func newLookupFixture(t *testing.T, amazon config.Amazon) lookupFixture {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockAffiliateProductRepository(ctrl)
	catalog := mocks.NewMockCatalogSearcher(ctrl)

	return lookupFixture{
		repo:    repo,
		catalog: catalog,
		service: NewService(lookupCfg, amazon, repo, catalog),
	}
}

func TestLookupProducts_DatabaseTierWins(t *testing.T) {
	f := newLookupFixture(t, amazonCfg)

	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 7, 100).Return([]domain.AffiliateProduct{
		product("Vegan Protein Bars", "20.00", "vegan"),
		product("Beef Jerky", "15.00", "snack"),
	}, nil)

	got := f.service.LookupProducts(context.Background(), domain.ProductLookupParams{OrgID: 7, Tags: []string{"vegan"}})

	assert.Equal(t, []string{"Vegan Protein Bars"}, names(got))
}

func TestLookupProducts_CatalogTierPersistsResults(t *testing.T) {
	f := newLookupFixture(t, amazonCfg)

	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 7, 100).Return([]domain.AffiliateProduct{}, nil)
	f.catalog.EXPECT().SearchProducts(gomock.Any(), "cast iron", 2).Return([]domain.AffiliateProduct{
		{Name: "Cast Iron Skillet", URL: "https://amazon.com/dp/A1", Price: strPtr("24.90")},
		{Name: "Cast Iron Grill Pan", URL: "https://amazon.com/dp/A2", Price: strPtr("31.00")},
	}, nil)

	var persisted []domain.AffiliateProduct
	f.repo.EXPECT().CreateAffiliateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.AffiliateProduct) (*domain.AffiliateProduct, error) {
			persisted = append(persisted, *p)
			if len(persisted) == 2 {
				return nil, errors.New("unique violation")
			}
			p.ID = int64(len(persisted))
			return p, nil
		}).Times(2)

	got := f.service.LookupProducts(context.Background(), domain.ProductLookupParams{
		OrgID: 7, Tags: []string{"cast", "iron"}, Limit: 2,
	})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	for _, p := range persisted {
		assert.Equal(t, 7, p.OrgID)
		assert.Equal(t, domain.ProductSourceAmazon, p.Source)
		assert.True(t, strings.HasPrefix(p.SKU, "amazon-"))
	}
	assert.NotEqual(t, persisted[0].SKU, persisted[1].SKU)
	assert.Equal(t, "Cast Iron Grill Pan", got[1].Name)
}

func TestLookupProducts_RepeatedLookupServedByDatabase(t *testing.T) {
	f := newLookupFixture(t, amazonCfg)

	var stored []domain.AffiliateProduct
	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 7, 100).DoAndReturn(
		func(context.Context, int, int) ([]domain.AffiliateProduct, error) {
			return stored, nil
		}).Times(2)
	f.catalog.EXPECT().SearchProducts(gomock.Any(), "vegan baking", 3).Return([]domain.AffiliateProduct{
		{Name: "Silicone Mat", URL: "https://amazon.com/dp/B1", Price: strPtr("12.00")},
	}, nil).Times(1)
	f.repo.EXPECT().CreateAffiliateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.AffiliateProduct) (*domain.AffiliateProduct, error) {
			p.ID = int64(len(stored) + 1)
			stored = append(stored, *p)
			return p, nil
		}).Times(1)

	params := domain.ProductLookupParams{OrgID: 7, Tags: []string{"vegan", "baking"}, Category: "bakeware"}

	first := f.service.LookupProducts(context.Background(), params)
	require.Len(t, first, 1)
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"vegan", "baking"}, stored[0].Attributes.Tags)
	assert.Equal(t, "bakeware", stored[0].Attributes.Category)

	second := f.service.LookupProducts(context.Background(), params)
	require.Len(t, second, 1)
	assert.Equal(t, int64(1), second[0].ID)
	assert.Len(t, stored, 1)
}

func TestTagWithLookup_KeepsExistingAttributes(t *testing.T) {
	p := domain.AffiliateProduct{
		Name:       "Dutch Oven",
		Attributes: domain.ProductAttributes{Category: "Kitchen", Tags: []string{"Vegan"}},
	}

	tagWithLookup(&p, domain.ProductLookupParams{Tags: []string{"vegan", " stew "}, Category: "cookware"})

	assert.Equal(t, []string{"Vegan", "stew"}, p.Attributes.Tags)
	assert.Equal(t, "Kitchen", p.Attributes.Category)
}

func TestLookupProducts_FallsBackToStatic(t *testing.T) {
	staticTable := []domain.AffiliateProduct{
		product("Organic Vegan Spice Kit", "27.50", "organic", "vegan"),
		product("Smoked Paprika", "8.00", "spices"),
	}

	tests := []struct {
		name   string
		amazon config.Amazon
		setup  func(f lookupFixture)
	}{
		{
			name:   "Banco vazio e catálogo sem credenciais",
			amazon: config.Amazon{},
			setup: func(f lookupFixture) {
				f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 1, 100).Return(nil, nil)
			},
		},
		{
			name:   "Erro no banco e catálogo vazio",
			amazon: amazonCfg,
			setup: func(f lookupFixture) {
				f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 1, 100).Return(nil, errors.New("db down"))
				f.catalog.EXPECT().SearchProducts(gomock.Any(), "vegan", 3).Return([]domain.AffiliateProduct{}, nil)
			},
		},
		{
			name:   "Erro no banco e no catálogo",
			amazon: amazonCfg,
			setup: func(f lookupFixture) {
				f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 1, 100).Return(nil, errors.New("db down"))
				f.catalog.EXPECT().SearchProducts(gomock.Any(), "vegan", 3).Return(nil, errors.New("throttled"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLookupFixture(t, tt.amazon)
			f.service.WithStaticProducts(staticTable)
			tt.setup(f)

			got := f.service.LookupProducts(context.Background(), domain.ProductLookupParams{
				OrgID:              1,
				Tags:               []string{"vegan"},
				ContactPreferences: &domain.ContactPreferences{Vegan: boolPtr(true)},
			})

			assert.Equal(t, []string{"Organic Vegan Spice Kit"}, names(got))
		})
	}
}

func TestLookupProducts_PanicInTierFallsThrough(t *testing.T) {
	f := newLookupFixture(t, config.Amazon{})

	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, int, int) ([]domain.AffiliateProduct, error) {
			panic("nil pointer")
		})

	got := f.service.LookupProducts(context.Background(), domain.ProductLookupParams{})

	assert.Len(t, got, DefaultLimit)
	for _, p := range got {
		assert.Equal(t, domain.ProductSourceStatic, p.Source)
	}
}

func TestLookupProducts_NoFiltersRespectsLimit(t *testing.T) {
	for _, limit := range []int{0, 1, 3, 5, 50} {
		f := newLookupFixture(t, config.Amazon{})
		f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		got := f.service.LookupProducts(context.Background(), domain.ProductLookupParams{Limit: limit})

		expected := limit
		if expected <= 0 {
			expected = DefaultLimit
		}
		if expected > len(DefaultStaticProducts) {
			expected = len(DefaultStaticProducts)
		}
		assert.Len(t, got, expected)
	}
}

func TestLookupProducts_BudgetFriendly(t *testing.T) {
	f := newLookupFixture(t, config.Amazon{})
	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	got := f.service.LookupProducts(context.Background(), domain.ProductLookupParams{
		Limit:              20,
		ContactPreferences: &domain.ContactPreferences{BudgetFriendly: boolPtr(true)},
	})

	require.NotEmpty(t, got)
	for _, p := range got {
		price, ok := p.PriceValue()
		if ok {
			assert.LessOrEqual(t, price, 30.0, p.Name)
		}
	}
}

func TestEnrich(t *testing.T) {
	f := newLookupFixture(t, config.Amazon{PartnerTag: "cookaing-20"})
	f.service.WithStaticProducts([]domain.AffiliateProduct{
		{Name: "Air Fryer", URL: "https://www.amazon.com/dp/B07FDJMC9Q", Price: strPtr("89.99"), Source: domain.ProductSourceStatic,
			Attributes: domain.ProductAttributes{Category: "Appliances", Tags: []string{"air fryer"}}},
		{Name: "Tagged Link", URL: "https://www.amazon.com/dp/B0X?tag=other-20", Source: domain.ProductSourceStatic,
			Attributes: domain.ProductAttributes{Tags: []string{"air fryer"}}},
	})
	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	enriched, err := f.service.Enrich(context.Background(),
		domain.ContentArtifact{Title: "Crispy Tofu", Content: "Try this crispy tofu recipe."},
		domain.ProductLookupParams{Tags: []string{"air fryer"}},
	)

	require.NoError(t, err)
	require.Len(t, enriched.Links, 2)
	assert.Equal(t, "https://www.amazon.com/dp/B07FDJMC9Q?tag=cookaing-20", enriched.Links[0].URL)
	assert.Equal(t, "https://www.amazon.com/dp/B0X?tag=other-20", enriched.Links[1].URL)
	assert.Contains(t, enriched.EnrichedContent, "Try this crispy tofu recipe.")
	assert.Contains(t, enriched.EnrichedContent, "- Air Fryer ($89.99): https://www.amazon.com/dp/B07FDJMC9Q?tag=cookaing-20")
	assert.True(t, strings.HasSuffix(enriched.EnrichedContent, affiliateDisclosure))
}

func TestEnrich_RequiresContent(t *testing.T) {
	f := newLookupFixture(t, amazonCfg)

	enriched, err := f.service.Enrich(context.Background(), domain.ContentArtifact{Content: "  "}, domain.ProductLookupParams{})

	assert.ErrorIs(t, err, ErrContentRequired)
	assert.Nil(t, enriched)
}

func TestListProducts(t *testing.T) {
	f := newLookupFixture(t, amazonCfg)
	f.repo.EXPECT().GetAffiliateProducts(gomock.Any(), 7, 100).Return(nil, errors.New("db down"))

	products, err := f.service.ListProducts(context.Background(), 7, 0)

	assert.ErrorIs(t, err, ErrListProducts)
	assert.Nil(t, products)
}
