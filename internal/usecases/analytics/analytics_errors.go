package analytics

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrPlatformRequired     = errors.New("platform é obrigatório")
	ErrContentRefRequired   = errors.New("contentId ou scheduledPostId é obrigatório")
	ErrMetricsRequired      = errors.New("metrics é obrigatório")
	ErrNegativeCounter      = errors.New("contadores não podem ser negativos")
	ErrInvalidAmount        = errors.New("valor monetário inválido")
	ErrInvalidMetric        = errors.New("métrica desconhecida")
	ErrContentIDsRequired   = errors.New("contentIds é obrigatório")
	ErrInvalidWebhookSecret = errors.New("segredo do webhook inválido")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AnalyticsError é um erro com contexto adicional para as métricas de desempenho
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
