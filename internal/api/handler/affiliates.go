package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/internal/usecases/lookup"
	"github.com/vfg2006/cookaing-api/pkg/apiErrors"
	"github.com/vfg2006/cookaing-api/pkg/log"
)

type EnrichRequest struct {
	domain.ContentArtifact
	Lookup domain.ProductLookupParams `json:"lookup"`
}

// LookupProducts nunca falha por indisponibilidade das fontes: sempre há resposta
func LookupProducts(service lookup.Lookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		var params domain.ProductLookupParams
		if err := decodeBody(r, &params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}
		params.OrgID = claims.UserOrgID

		products := service.LookupProducts(r.Context(), params)

		writeSuccess(w, http.StatusOK, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

func EnrichContent(service lookup.Lookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req EnrichRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
			return
		}
		req.Lookup.OrgID = claims.UserOrgID

		enriched, err := service.Enrich(r.Context(), req.ContentArtifact, req.Lookup)
		if err != nil {
			if errors.Is(err, lookup.ErrContentRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conteúdo é obrigatório", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enriquecer conteúdo")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao enriquecer conteúdo")
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{"enriched": enriched})
	}
}

func ListAffiliateProducts(service lookup.Lookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", raw)
				return
			}
			limit = parsed
		}

		products, err := service.ListProducts(r.Context(), claims.UserOrgID, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar produtos afiliados")
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos afiliados")
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}
