package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/scheduler"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAccountData      = "account-data"
	CronJobTypeDashboardRefresh = "dashboard-refresh"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AccountDataSyncService  *scheduler.AccountDataSyncService
	DashboardRefreshService *scheduler.DashboardRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeAccountData:
			// Executar sincronização de dados das contas
			if services.AccountDataSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de dados das contas não disponível", nil)
				return
			}
			services.AccountDataSyncService.TriggerManualSync()

		case CronJobTypeDashboardRefresh:
			// Executar recomposição dos dashboards
			if services.DashboardRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recomposição de dashboards não disponível", nil)
				return
			}
			services.DashboardRefreshService.TriggerManualRefresh()

		case CronJobTypeAll:
			// Executar todas as sincronizações
			if services.AccountDataSyncService != nil {
				services.AccountDataSyncService.TriggerManualSync()
			}
			if services.DashboardRefreshService != nil {
				services.DashboardRefreshService.TriggerManualRefresh()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: account-data, dashboard-refresh, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"account-data":      services.AccountDataSyncService.GetStatus(),
			"dashboard-refresh": services.DashboardRefreshService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
