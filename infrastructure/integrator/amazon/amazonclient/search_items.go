package amazonclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var searchResources = []string{
	"Images.Primary.Large",
	"ItemInfo.Title",
	"ItemInfo.Features",
	"ItemInfo.Classifications",
	"Offers.Listings.Price",
	"CustomerReviews.StarRating",
}

// SearchItems busca produtos por palavra-chave, consultando o cache antes da API
func (c *AmazonClient) SearchItems(ctx context.Context, keywords string, itemCount int) ([]amazondomain.Item, error) {
	if itemCount <= 0 || itemCount > 10 {
		itemCount = 10
	}

	cacheKey := fmt.Sprintf("%s|%d", keywords, itemCount)
	if c.cache != nil {
		var cached []amazondomain.Item
		found, err := c.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logrus.WithError(err).Warn("Falha ao consultar cache do catálogo, seguindo para a API")
		} else if found {
			logrus.WithField("keywords", keywords).Debug("Busca do catálogo atendida pelo cache")
			return cached, nil
		}
	}

	payload, err := json.Marshal(amazondomain.SearchItemsRequest{
		Keywords:    keywords,
		SearchIndex: "All",
		ItemCount:   itemCount,
		PartnerTag:  c.cfg.PartnerTag,
		PartnerType: "Associates",
		Marketplace: c.cfg.Marketplace,
		Resources:   searchResources,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar requisição SearchItems")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchItemsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Content-Encoding", "amz-1.0")
	req.Header.Set("X-Amz-Target", searchItemsTarget)

	if err := c.sign(ctx, req, payload); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var response amazondomain.SearchItemsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar resposta (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &amazondomain.APIError{StatusCode: resp.StatusCode, Errors: response.Errors}
		if !apiErr.IsNoResults() {
			return nil, apiErr
		}
	}

	items := make([]amazondomain.Item, 0)
	if response.SearchResult != nil {
		items = response.SearchResult.Items
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, items); err != nil {
			logrus.WithError(err).Warn("Falha ao gravar busca no cache do catálogo")
		}
	}

	return items, nil
}

func (c *AmazonClient) sign(ctx context.Context, req *http.Request, payload []byte) error {
	creds, err := c.credentials.Retrieve(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao obter credenciais")
	}

	hash := sha256.Sum256(payload)
	err = c.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(hash[:]), signingService, c.cfg.Region, c.now())
	if err != nil {
		return errors.Wrap(err, "erro ao assinar a requisição")
	}

	return nil
}
