package amazondomain

import "fmt"

// APIError representa uma resposta de erro da Product Advertising API
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("amazon paapi: status %d", e.StatusCode)
	}
	return fmt.Sprintf("amazon paapi: status %d: %s: %s", e.StatusCode, e.Errors[0].Code, e.Errors[0].Message)
}

// IsThrottled indica que a cota de requisições foi excedida
func (e *APIError) IsThrottled() bool {
	if e.StatusCode == 429 {
		return true
	}
	for _, detail := range e.Errors {
		if detail.Code == "TooManyRequests" {
			return true
		}
	}
	return false
}

// IsNoResults indica uma busca válida que não encontrou itens
func (e *APIError) IsNoResults() bool {
	return len(e.Errors) > 0 && e.Errors[0].Code == "NoResults"
}
