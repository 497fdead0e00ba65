package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/snapshotting"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

// ComposeDashboard monta o dashboard a partir de um payload de conta enviado
// no corpo da requisição, sem persistir nada
func ComposeDashboard(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: composing dashboard from request payload")

		var payload domain.AccountData
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("dashboard: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.ComposeDashboard(&payload)
		if err != nil {
			logger.WithError(err).Warn("dashboard: failed to compose dashboard")
			writeAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetAccountDashboard retorna o dashboard consolidado da conta
func GetAccountDashboard(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("dashboard: fetching account dashboard")

		result, err := service.GetDashboard(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("dashboard: failed to get account dashboard")

			writeSnapshotError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RefreshAccountDashboard recompõe o dashboard da conta a partir do último
// payload sincronizado
func RefreshAccountDashboard(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("dashboard: refreshing account dashboard")

		entry, err := service.RefreshDashboard(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("dashboard: failed to refresh account dashboard")

			writeSnapshotError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(&domain.DashboardResult{DashboardData: entry.Dashboard}); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, analyzing.ErrMissingRankings):
		apiErrors.WriteError(w, apiErrors.ErrMissingRankingsData, "Payload sem dados de rankings", nil)
	case errors.Is(err, analyzing.ErrMissingConversion):
		apiErrors.WriteError(w, apiErrors.ErrMissingConversionData, "Payload sem dados de conversão", nil)
	case errors.Is(err, analyzing.ErrInvalidPayload):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAnalysisPayload, "Payload de análise inválido", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao compor dashboard", nil)
	}
}

func writeSnapshotError(w http.ResponseWriter, err error, accountID string) {
	var snapshotErr *snapshotting.SnapshotError
	if errors.As(err, &snapshotErr) {
		apiErrors.WriteError(w, snapshotErr.Code, snapshotErr.Error(), map[string]interface{}{
			"account_id": snapshotErr.AccountID,
		})
		return
	}

	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, snapshotting.ErrNoAccountData):
		apiErrors.WriteError(w, apiErrors.ErrAnalysisNotFound, "Nenhum dado sincronizado para a conta", map[string]interface{}{
			"account_id": accountID,
		})
	case errors.Is(err, snapshotting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
			"account_id": accountID,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dashboard da conta", nil)
	}
}
