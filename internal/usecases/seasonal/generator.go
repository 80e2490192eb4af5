package seasonal

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/vfg2006/cookaing-api/infrastructure/repository"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/pkg/log"
	"github.com/vfg2006/cookaing-api/pkg/utils"
)

const (
	SourceSeasonalGenerator = "seasonal_generator"

	blogPlatform    = "blog"
	blogContentType = "blog_post"
	socialType      = "social_caption"
)

var DefaultPlatforms = []string{"tiktok", "instagram", "youtube", "twitter"}

type Generator struct {
	now         func() time.Time
	calendar    []CalendarEntry
	templates   *TemplateRenderer
	contentRepo repository.ContentGenerationRepository
}

type Option func(*Generator)

// WithClock substitui o relógio usado para calcular os dias até cada evento
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(calendar []CalendarEntry, contentRepo repository.ContentGenerationRepository, opts ...Option) *Generator {
	g := &Generator{
		now:         time.Now,
		calendar:    calendar,
		templates:   NewTemplateRenderer(),
		contentRepo: contentRepo,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// UpcomingEvents resolve o calendário e devolve os eventos habilitados dentro da janela,
// ordenados por dias restantes e depois por nome
func (g *Generator) UpcomingEvents(ctx context.Context, cfg domain.SeasonalConfig) []domain.SeasonalEvent {
	now := g.now()
	res := newResolver(g.calendar, now.Location())

	enabled := make(map[string]bool, len(cfg.Holidays))
	for _, holiday := range cfg.Holidays {
		enabled[NormalizeName(holiday)] = true
	}

	events := make([]domain.SeasonalEvent, 0)
	for _, entry := range g.calendar {
		if !enabled[NormalizeName(entry.Name)] {
			continue
		}

		date, err := res.next(entry, now)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"event_name": entry.Name,
				"error":      err.Error(),
			}).Warn("Não foi possível calcular a data do evento sazonal")
			continue
		}

		leadTime := cfg.LeadTimeDays
		if leadTime <= 0 {
			leadTime = entry.LeadTimeDays
		}

		daysUntil := utils.DaysUntil(now, date)
		if daysUntil <= 0 || daysUntil > leadTime {
			continue
		}

		events = append(events, domain.SeasonalEvent{
			Name:         entry.Name,
			Date:         date,
			LeadTimeDays: leadTime,
			Category:     entry.Category,
			Keywords:     slices.Clone(entry.Keywords),
			Templates:    entry.Templates,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		di, dj := utils.DaysUntil(now, events[i].Date), utils.DaysUntil(now, events[j].Date)
		if di != dj {
			return di < dj
		}
		return events[i].Name < events[j].Name
	})

	return events
}

// GetUpcomingEventsPreview não tem efeitos colaterais
func (g *Generator) GetUpcomingEventsPreview(ctx context.Context, cfg domain.SeasonalConfig) []domain.UpcomingEvent {
	now := g.now()
	events := g.UpcomingEvents(ctx, cfg)

	preview := make([]domain.UpcomingEvent, 0, len(events))
	for _, event := range events {
		preview = append(preview, toUpcoming(event, now))
	}
	return preview
}

func toUpcoming(event domain.SeasonalEvent, now time.Time) domain.UpcomingEvent {
	return domain.UpcomingEvent{
		Name:      event.Name,
		Date:      event.Date.Format(time.DateOnly),
		DaysUntil: utils.DaysUntil(now, event.Date),
		Category:  event.Category,
		Keywords:  event.Keywords,
	}
}

// GenerateSeasonalContent sintetiza um post de blog e uma legenda por plataforma para cada evento próximo.
// Falha em um evento é registrada e não interrompe os demais.
func (g *Generator) GenerateSeasonalContent(ctx context.Context, cfg domain.SeasonalConfig) (*domain.SeasonalRunResult, error) {
	result := &domain.SeasonalRunResult{
		StartedAt: g.now(),
		Processed: make([]domain.ProcessedEvent, 0),
		Failed:    make([]domain.ProcessedEvent, 0),
	}

	logger := log.ForContext(ctx)
	if !cfg.Enabled {
		logger.Info("Geração sazonal desabilitada, nada a fazer")
		result.CompletedAt = g.now()
		return result, nil
	}

	platforms := cfg.Platforms
	if len(platforms) == 0 {
		platforms = DefaultPlatforms
	}

	now := g.now()
	for _, event := range g.UpcomingEvents(ctx, cfg) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		processed := domain.ProcessedEvent{UpcomingEvent: toUpcoming(event, now)}

		generated, err := g.generateForEvent(ctx, cfg, event, processed.DaysUntil, platforms)
		processed.GeneratedRecords = generated
		if err != nil {
			processed.Error = err.Error()
			result.Failed = append(result.Failed, processed)
			logger.WithFields(log.Fields{
				"event_name": event.Name,
				"error":      err.Error(),
			}).Error("Erro ao gerar conteúdo sazonal, seguindo para o próximo evento")
			continue
		}

		result.Processed = append(result.Processed, processed)
		logger.WithFields(log.Fields{
			"event_name": event.Name,
			"days_until": processed.DaysUntil,
			"records":    generated,
		}).Info("Conteúdo sazonal gerado")
	}

	result.CompletedAt = g.now()
	return result, nil
}

func (g *Generator) generateForEvent(
	ctx context.Context,
	cfg domain.SeasonalConfig,
	event domain.SeasonalEvent,
	daysUntil int,
	platforms []string,
) (int, error) {
	status := domain.ContentStatusDraft
	if cfg.AutoPublish {
		status = domain.ContentStatusPublished
	}

	eventDate := event.Date.Format(time.DateOnly)
	bindings := map[string]any{
		"event_name": event.Name,
		"event_date": eventDate,
		"days_until": daysUntil,
		"keywords":   event.Keywords,
		"category":   event.Category,
	}

	blogTemplate := event.Templates.Blog
	if blogTemplate == "" {
		blogTemplate = defaultBlogTemplate
	}
	socialTemplate := event.Templates.Social
	if socialTemplate == "" {
		socialTemplate = defaultSocialTemplate
	}

	blog, err := g.templates.Render(blogTemplate, withPlatform(bindings, blogPlatform))
	if err != nil {
		return 0, fmt.Errorf("blog: %w", err)
	}

	records := []*domain.ContentGeneration{{
		OrgID:       cfg.OrgID,
		Niche:       event.Category,
		Platform:    blogPlatform,
		ContentType: blogContentType,
		Title:       fmt.Sprintf("%s Recipes and Ideas", event.Name),
		Content:     blog,
		Status:      status,
	}}

	for _, platform := range platforms {
		caption, err := g.templates.Render(socialTemplate, withPlatform(bindings, platform))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", platform, err)
		}

		records = append(records, &domain.ContentGeneration{
			OrgID:       cfg.OrgID,
			Niche:       event.Category,
			Platform:    platform,
			ContentType: socialType,
			Title:       fmt.Sprintf("%s %s caption", event.Name, platform),
			Content:     fitPlatform(platform, caption),
			Status:      status,
		})
	}

	generated := 0
	for _, record := range records {
		record.Metadata = map[string]any{
			"source":     SourceSeasonalGenerator,
			"event_name": event.Name,
			"event_date": eventDate,
			"days_until": daysUntil,
			"keywords":   event.Keywords,
		}

		if _, err := g.contentRepo.CreateContentGeneration(ctx, record); err != nil {
			return generated, fmt.Errorf("erro ao persistir conteúdo %s: %w", record.Platform, err)
		}
		generated++
	}

	return generated, nil
}

func withPlatform(bindings map[string]any, platform string) map[string]any {
	out := maps.Clone(bindings)
	out["platform"] = platform
	return out
}
