package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/cookaing-api/internal/domain"
)

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
