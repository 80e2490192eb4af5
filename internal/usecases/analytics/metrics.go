package analytics

import (
	"strconv"

	"github.com/vfg2006/cookaing-api/internal/domain"
)

// SafeDivide retorna ok=false quando o denominador é zero
func SafeDivide(numerator, denominator float64) (float64, bool) {
	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}

// Ratio é uma taxa derivada. Defined é falso quando o denominador era zero.
type Ratio struct {
	Value   float64
	Defined bool
}

func ratio(numerator, denominator, scale float64) Ratio {
	value, ok := SafeDivide(numerator, denominator)
	return Ratio{Value: value * scale, Defined: ok}
}

// FormatMetric renderiza "0" para denominador zero e duas casas decimais nos demais casos
func FormatMetric(r Ratio) string {
	if !r.Defined {
		return "0"
	}
	return strconv.FormatFloat(r.Value, 'f', 2, 64)
}

// Counters são os contadores usados nas fórmulas das taxas
type Counters struct {
	Views       int64
	Clicks      int64
	Conversions int64
	Revenue     float64
	AdSpend     float64
}

type Metrics struct {
	ClickThroughRate Ratio
	ConversionRate   Ratio
	ROI              Ratio
	CPC              Ratio
	CPM              Ratio
}

func Derive(c Counters) Metrics {
	views, clicks := float64(c.Views), float64(c.Clicks)

	return Metrics{
		ClickThroughRate: ratio(clicks, views, 100),
		ConversionRate:   ratio(float64(c.Conversions), clicks, 100),
		ROI:              ratio(c.Revenue-c.AdSpend, c.AdSpend, 100),
		CPC:              ratio(c.AdSpend, clicks, 1),
		CPM:              ratio(c.AdSpend, views, 1000),
	}
}

func (m Metrics) Format() domain.DerivedMetrics {
	return domain.DerivedMetrics{
		ClickThroughRate: FormatMetric(m.ClickThroughRate),
		ConversionRate:   FormatMetric(m.ConversionRate),
		ROI:              FormatMetric(m.ROI),
		CPC:              FormatMetric(m.CPC),
		CPM:              FormatMetric(m.CPM),
	}
}

// summaryAccumulator soma contadores brutos e recalcula as taxas no total
type summaryAccumulator struct {
	summary domain.MetricsSummary
}

func (a *summaryAccumulator) add(record *domain.PerformanceAnalytics) {
	s := &a.summary
	s.Records++
	s.Views += record.Views
	s.Likes += record.Likes
	s.Comments += record.Comments
	s.Shares += record.Shares
	s.Saves += record.Saves
	s.Clicks += record.Clicks
	s.Conversions += record.Conversions
	s.Revenue += parseAmount(record.Revenue)
	s.Commission += parseAmount(record.Commission)
	s.AdSpend += parseAmount(record.AdSpend)
}

func (a *summaryAccumulator) counters() Counters {
	return Counters{
		Views:       a.summary.Views,
		Clicks:      a.summary.Clicks,
		Conversions: a.summary.Conversions,
		Revenue:     a.summary.Revenue,
		AdSpend:     a.summary.AdSpend,
	}
}

func (a *summaryAccumulator) result() domain.MetricsSummary {
	s := a.summary
	s.Revenue = roundMoney(s.Revenue)
	s.Commission = roundMoney(s.Commission)
	s.AdSpend = roundMoney(s.AdSpend)
	s.DerivedMetrics = Derive(a.counters()).Format()
	return s
}
