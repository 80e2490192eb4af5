package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/pkg/log"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			orgID, _ := r.Context().Value(log.OrgIDKey).(int)
			assert.Equal(t, claims.UserOrgID, orgID)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{
			name:       "Rota pública dispensa token",
			path:       "/v1/performance/webhook",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem header de autorização",
			path:       "/v1/affiliates/lookup",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Header sem Bearer",
			path:       "/v1/affiliates/lookup",
			header:     "abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token inválido",
			path:       "/v1/affiliates/lookup",
			header:     "Bearer abc",
			validator:  fakeValidator{err: errors.New("expirado")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido propaga claims e organização",
			path:       "/v1/affiliates/lookup",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: &domain.Claims{UserID: 1, UserOrgID: 7, UserRoleID: RoleCreator}},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	handler := AdminOrOperator()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/seasonal/run", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	creator := &domain.Claims{UserID: 2, UserRoleID: RoleCreator}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(contextWithClaims(req, creator)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	operator := &domain.Claims{UserID: 3, UserRoleID: RoleOperator}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(contextWithClaims(req, operator)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "boom")
}
