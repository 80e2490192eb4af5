package amazonclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	amazondomain "github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/cookaing-api/internal/config"
)

const (
	signingService    = "ProductAdvertisingAPI"
	searchItemsPath   = "/paapi5/searchitems"
	searchItemsTarget = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems"
)

type Client interface {
	SearchItems(ctx context.Context, keywords string, itemCount int) ([]amazondomain.Item, error)
}

// SearchCache é o cache opcional das respostas de busca
type SearchCache interface {
	Get(ctx context.Context, keywords string, dest any) (bool, error)
	Set(ctx context.Context, keywords string, value any) error
}

type AmazonClient struct {
	httpClient  *http.Client
	cfg         config.Amazon
	baseURL     string
	signer      *v4.Signer
	credentials aws.CredentialsProvider
	cache       SearchCache
	now         func() time.Time
}

// NewClient cria o cliente da Product Advertising API. cache pode ser nil.
func NewClient(cfg config.Amazon, cache SearchCache) Client {
	baseURL := cfg.Host
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &AmazonClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg:         cfg,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		signer:      v4.NewSigner(),
		credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		cache:       cache,
		now:         time.Now,
	}
}
