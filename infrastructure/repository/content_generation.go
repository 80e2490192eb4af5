package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cookaing-api/infrastructure/database/postgres"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

const contentGenerationsTable = "content_generations"

type ContentGenerationRepository interface {
	CreateContentGeneration(ctx context.Context, content *domain.ContentGeneration) (*domain.ContentGeneration, error)
}

type contentGenerationRepository struct {
	conn *postgres.Connection
}

func NewContentGenerationRepository(conn *postgres.Connection) ContentGenerationRepository {
	return &contentGenerationRepository{
		conn: conn,
	}
}

func (r *contentGenerationRepository) CreateContentGeneration(ctx context.Context, content *domain.ContentGeneration) (*domain.ContentGeneration, error) {
	metadata, err := json.Marshal(content.Metadata)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar metadata: %w", err)
	}

	query, args, err := squirrel.
		Insert(contentGenerationsTable).
		Columns("org_id", "niche", "platform", "content_type", "title", "content", "status", "metadata").
		Values(content.OrgID, content.Niche, content.Platform, content.ContentType, content.Title, content.Content, content.Status, metadata).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&content.ID, &content.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir conteúdo gerado: %w", err)
	}

	return content, nil
}
