package domain

import "time"

type SeasonalTemplates struct {
	Blog   string `json:"blog" yaml:"blog"`
	Social string `json:"social" yaml:"social"`
}

// SeasonalEvent é um evento do calendário já resolvido para a próxima ocorrência
type SeasonalEvent struct {
	Name         string            `json:"name"`
	Date         time.Time         `json:"date"`
	LeadTimeDays int               `json:"leadTimeDays"`
	Category     string            `json:"category"`
	Keywords     []string          `json:"keywords"`
	Templates    SeasonalTemplates `json:"templates"`
}

// SeasonalConfig é a configuração de uma execução do gerador sazonal
type SeasonalConfig struct {
	Enabled      bool     `json:"enabled"`
	LeadTimeDays int      `json:"leadTimeDays"`
	Holidays     []string `json:"holidays"`
	AutoPublish  bool     `json:"autoPublish"`
	Platforms    []string `json:"platforms"`
	OrgID        int      `json:"orgId"`
}

type UpcomingEvent struct {
	Name      string   `json:"name"`
	Date      string   `json:"date"`
	DaysUntil int      `json:"daysUntil"`
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
}

type ProcessedEvent struct {
	UpcomingEvent
	GeneratedRecords int    `json:"generatedRecords"`
	Error            string `json:"error,omitempty"`
}

type SeasonalRunResult struct {
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt time.Time        `json:"completedAt"`
	Processed   []ProcessedEvent `json:"processed"`
	Failed      []ProcessedEvent `json:"failed"`
}
