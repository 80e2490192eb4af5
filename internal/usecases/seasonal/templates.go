package seasonal

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/osteele/liquid"
)

const (
	defaultBlogTemplate = `# {{ event_name }}: {{ keywords | first | capitalize }} Ideas for Your Kitchen

{{ event_name }} is on {{ event_date }} and there are only {{ days_until }} days left to plan.
This guide covers {{ keywords | join: ", " }} so you can cook with confidence.

{% for keyword in keywords %}## {{ keyword | capitalize }}
Simple {{ keyword }} recipes and tips to make this {{ category }} season delicious.

{% endfor %}Happy cooking and happy {{ event_name }}!`

	defaultSocialTemplate = `{{ event_name }} is {{ days_until }} days away! Get ready with {{ keywords | join: ", " }}. {{ keywords | hashtags }}`

	twitterMaxLength = 280
)

// TemplateRenderer renderiza templates Liquid com cache dos templates já interpretados
type TemplateRenderer struct {
	engine *liquid.Engine
	mu     sync.RWMutex
	cache  map[string]*liquid.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	engine := liquid.NewEngine()

	// {{ keywords | hashtags }} → "#mealprep #healthyrecipes"
	engine.RegisterFilter("hashtags", func(values []string) string {
		tags := make([]string, 0, len(values))
		for _, value := range values {
			if tag := toHashtag(value); tag != "" {
				tags = append(tags, tag)
			}
		}
		return strings.Join(tags, " ")
	})

	return &TemplateRenderer{
		engine: engine,
		cache:  make(map[string]*liquid.Template),
	}
}

func (r *TemplateRenderer) Render(source string, bindings map[string]any) (string, error) {
	tpl, err := r.parse(source)
	if err != nil {
		return "", err
	}

	out, renderErr := tpl.RenderString(bindings)
	if renderErr != nil {
		return "", fmt.Errorf("erro ao renderizar template: %w", renderErr)
	}

	return strings.TrimSpace(out), nil
}

func (r *TemplateRenderer) parse(source string) (*liquid.Template, error) {
	r.mu.RLock()
	tpl, ok := r.cache[source]
	r.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, parseErr := r.engine.ParseString(source)
	if parseErr != nil {
		return nil, fmt.Errorf("erro ao interpretar template: %w", parseErr)
	}

	r.mu.Lock()
	r.cache[source] = tpl
	r.mu.Unlock()

	return tpl, nil
}

func toHashtag(keyword string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(keyword) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// fitPlatform ajusta a legenda aos limites de cada plataforma
func fitPlatform(platform, caption string) string {
	if platform != "twitter" && platform != "x" {
		return caption
	}

	runes := []rune(caption)
	if len(runes) <= twitterMaxLength {
		return caption
	}
	return strings.TrimSpace(string(runes[:twitterMaxLength-3])) + "..."
}
