package domain

import "time"

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// ContentGeneration é o registro entregue ao colaborador de persistência de conteúdo
type ContentGeneration struct {
	ID          int64          `json:"id"`
	OrgID       int            `json:"org_id"`
	Niche       string         `json:"niche"`
	Platform    string         `json:"platform"`
	ContentType string         `json:"content_type"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Status      ContentStatus  `json:"status"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
}
