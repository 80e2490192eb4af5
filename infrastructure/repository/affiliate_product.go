package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cookaing-api/infrastructure/database/postgres"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

const affiliateProductsTable = "affiliate_products"

var affiliateProductColumns = []string{
	"id", "org_id", "source", "sku", "name", "url", "price", "image_url", "attributes_json", "created_at",
}

type AffiliateProductRepository interface {
	GetAffiliateProducts(ctx context.Context, orgID int, limit int) ([]domain.AffiliateProduct, error)
	CreateAffiliateProduct(ctx context.Context, product *domain.AffiliateProduct) (*domain.AffiliateProduct, error)
	DeleteProductsOlderThan(ctx context.Context, source domain.ProductSource, cutoff time.Time) (int64, error)
}

type affiliateProductRepository struct {
	conn *postgres.Connection
}

func NewAffiliateProductRepository(conn *postgres.Connection) AffiliateProductRepository {
	return &affiliateProductRepository{
		conn: conn,
	}
}

// GetAffiliateProducts retorna os produtos mais recentes da organização, limitado a limit linhas
func (r *affiliateProductRepository) GetAffiliateProducts(ctx context.Context, orgID int, limit int) ([]domain.AffiliateProduct, error) {
	queryBuilder := squirrel.
		Select(affiliateProductColumns...).
		From(affiliateProductsTable).
		Where(squirrel.Eq{"org_id": orgID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos afiliados: %w", err)
	}
	defer rows.Close()

	products := make([]domain.AffiliateProduct, 0)
	for rows.Next() {
		product, err := scanAffiliateProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar produto afiliado: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return products, nil
}

func (r *affiliateProductRepository) CreateAffiliateProduct(ctx context.Context, product *domain.AffiliateProduct) (*domain.AffiliateProduct, error) {
	attributes, err := json.Marshal(product.Attributes)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar atributos: %w", err)
	}

	query, args, err := squirrel.
		Insert(affiliateProductsTable).
		Columns("org_id", "source", "sku", "name", "url", "price", "image_url", "attributes_json").
		Values(product.OrgID, product.Source, product.SKU, product.Name, product.URL, product.Price, product.ImageURL, attributes).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir produto afiliado: %w", err)
	}

	return product, nil
}

// DeleteProductsOlderThan remove produtos da origem informada criados antes de cutoff
func (r *affiliateProductRepository) DeleteProductsOlderThan(ctx context.Context, source domain.ProductSource, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(affiliateProductsTable).
		Where(squirrel.Eq{"source": source}).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover produtos antigos: %w", err)
	}

	return result.RowsAffected()
}

func scanAffiliateProduct(rows *sql.Rows) (*domain.AffiliateProduct, error) {
	var (
		product    domain.AffiliateProduct
		price      sql.NullString
		imageURL   sql.NullString
		attributes []byte
	)

	if err := rows.Scan(
		&product.ID,
		&product.OrgID,
		&product.Source,
		&product.SKU,
		&product.Name,
		&product.URL,
		&price,
		&imageURL,
		&attributes,
		&product.CreatedAt,
	); err != nil {
		return nil, err
	}

	if price.Valid {
		product.Price = &price.String
	}
	product.ImageURL = imageURL.String

	if len(attributes) > 0 {
		if err := json.Unmarshal(attributes, &product.Attributes); err != nil {
			return nil, err
		}
	}

	return &product, nil
}
