package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/adreport-api/infrastructure/repository"
	"github.com/vfg2006/adreport-api/internal/usecases/advertising"
	"github.com/vfg2006/adreport-api/pkg/apiErrors"
	"github.com/vfg2006/adreport-api/pkg/log"
)

func ListAds(service advertising.AdService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID, ok := userIDFromQuery(w, r)
		if !ok {
			return
		}

		ads, err := service.ListAds(userID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("ads: falha ao listar campanhas")

			writeStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"ads": ads}); err != nil {
			logger.WithError(err).Error("ads: falha ao codificar resposta")
		}
	})
}

func CreateAd(service advertising.AdService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req advertising.CreateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		ad, err := service.CreateAd(&req)
		if err != nil {
			handleCreateAdError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id": ad.UserID,
			"ad_id":   ad.ID,
		}).Info("ads: campanha criada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Campanha criada com sucesso",
			"adId":    ad.ID,
		})
	})
}

func handleCreateAdError(w http.ResponseWriter, logger log.Logger, err error) {
	var validationErr *advertising.ValidationError
	switch {
	case errors.Is(err, advertising.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", nil)

	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Message, map[string]any{
			"field": validationErr.Field,
		})

	case errors.Is(err, repository.ErrStoreUnavailable):
		logger.WithError(err).Error("ads: banco de dados indisponível")
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, "Serviço temporariamente indisponível", nil)

	default:
		logger.WithError(err).Error("ads: erro inesperado ao criar campanha")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// userIDFromQuery lê e valida o parâmetro userId da query string
func userIDFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	userIDStr := r.URL.Query().Get("userId")
	if userIDStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro userId não fornecido", nil)
		return 0, false
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro userId inválido", nil)
		return 0, false
	}

	return userID, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, "Serviço temporariamente indisponível", nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
