package seasonal

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vfg2006/cookaing-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed calendar.yaml
var defaultCalendar []byte

// DateRule descreve como obter a data de um evento em um ano
type DateRule struct {
	Month      int    `yaml:"month"`
	Day        int    `yaml:"day"`
	Weekday    string `yaml:"weekday"`
	Nth        int    `yaml:"nth"`
	OffsetFrom string `yaml:"offset_from"`
	OffsetDays int    `yaml:"offset_days"`
}

type CalendarEntry struct {
	Name         string                   `yaml:"name"`
	Category     string                   `yaml:"category"`
	LeadTimeDays int                      `yaml:"lead_time_days"`
	Keywords     []string                 `yaml:"keywords"`
	Rule         DateRule                 `yaml:"rule"`
	Templates    domain.SeasonalTemplates `yaml:"templates"`
}

type calendarFile struct {
	Events []CalendarEntry `yaml:"events"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LoadCalendar lê o calendário do arquivo informado ou, com path vazio, o calendário embutido
func LoadCalendar(path string) ([]CalendarEntry, error) {
	data := defaultCalendar
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler calendário %s: %w", path, err)
		}
		data = raw
	}

	return ParseCalendar(data)
}

func ParseCalendar(data []byte) ([]CalendarEntry, error) {
	var file calendarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao interpretar calendário: %w", err)
	}

	names := make(map[string]bool, len(file.Events))
	for _, entry := range file.Events {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("evento sem nome no calendário")
		}
		key := NormalizeName(entry.Name)
		if names[key] {
			return nil, fmt.Errorf("evento duplicado no calendário: %s", entry.Name)
		}
		names[key] = true
	}

	for _, entry := range file.Events {
		if err := entry.Rule.validate(names); err != nil {
			return nil, fmt.Errorf("regra inválida para %s: %w", entry.Name, err)
		}
	}

	return file.Events, nil
}

func (r DateRule) validate(names map[string]bool) error {
	if r.OffsetFrom != "" {
		if !names[NormalizeName(r.OffsetFrom)] {
			return fmt.Errorf("evento de referência %q não existe", r.OffsetFrom)
		}
		return nil
	}

	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("mês %d fora do intervalo", r.Month)
	}

	if r.Weekday != "" {
		if _, ok := weekdays[strings.ToLower(r.Weekday)]; !ok {
			return fmt.Errorf("dia da semana %q desconhecido", r.Weekday)
		}
		if r.Nth == 0 || r.Nth < -1 || r.Nth > 5 {
			return fmt.Errorf("nth %d inválido", r.Nth)
		}
		return nil
	}

	if r.Day < 1 || r.Day > 31 {
		return fmt.Errorf("dia %d fora do intervalo", r.Day)
	}
	return nil
}

// NormalizeName converte "Valentine's Day" em "valentines_day"
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("'", "", "’", "").Replace(name)
	return strings.Join(strings.Fields(name), "_")
}

// resolver calcula datas de eventos, inclusive os relativos a outros eventos
type resolver struct {
	byName map[string]CalendarEntry
	loc    *time.Location
}

func newResolver(entries []CalendarEntry, loc *time.Location) *resolver {
	byName := make(map[string]CalendarEntry, len(entries))
	for _, entry := range entries {
		byName[NormalizeName(entry.Name)] = entry
	}
	return &resolver{byName: byName, loc: loc}
}

// next retorna a próxima ocorrência do evento em ou após o dia de today
func (r *resolver) next(entry CalendarEntry, today time.Time) (time.Time, error) {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, r.loc)

	date, err := r.occurrence(entry, start.Year(), 0)
	if err != nil {
		return time.Time{}, err
	}
	if date.Before(start) {
		return r.occurrence(entry, start.Year()+1, 0)
	}
	return date, nil
}

func (r *resolver) occurrence(entry CalendarEntry, year int, depth int) (time.Time, error) {
	if depth > len(r.byName) {
		return time.Time{}, fmt.Errorf("referência circular no evento %s", entry.Name)
	}

	rule := entry.Rule
	switch {
	case rule.OffsetFrom != "":
		base, ok := r.byName[NormalizeName(rule.OffsetFrom)]
		if !ok {
			return time.Time{}, fmt.Errorf("evento de referência %q não existe", rule.OffsetFrom)
		}
		date, err := r.occurrence(base, year, depth+1)
		if err != nil {
			return time.Time{}, err
		}
		return date.AddDate(0, 0, rule.OffsetDays), nil

	case rule.Weekday != "":
		weekday, ok := weekdays[strings.ToLower(rule.Weekday)]
		if !ok {
			return time.Time{}, fmt.Errorf("dia da semana %q desconhecido", rule.Weekday)
		}
		return nthWeekday(year, time.Month(rule.Month), weekday, rule.Nth, r.loc), nil

	default:
		return time.Date(year, time.Month(rule.Month), rule.Day, 0, 0, 0, 0, r.loc), nil
	}
}

// nthWeekday retorna o n-ésimo dia da semana do mês. n=-1 retorna a última ocorrência.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int, loc *time.Location) time.Time {
	if n < 0 {
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
		diff := (int(last.Weekday()) - int(weekday) + 7) % 7
		return last.AddDate(0, 0, -diff)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	diff := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, diff+(n-1)*7)
}
