package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DatasetVersioner informa a versão do conjunto de vendas carregado (0 = nada carregado)
type DatasetVersioner interface {
	DatasetVersion() uint64
}

// parseFilters lê os filtros da query string (periodo, canal, regiao, categoria,
// produto, valorMinimo, valorMaximo). Parâmetros ausentes viram "sem filtro".
func parseFilters(r *http.Request) (domain.SalesFilters, error) {
	query := r.URL.Query()

	filters := domain.SalesFilters{
		Period:   strings.TrimSpace(query.Get("periodo")),
		Channel:  strings.TrimSpace(query.Get("canal")),
		Region:   strings.TrimSpace(query.Get("regiao")),
		Category: strings.TrimSpace(query.Get("categoria")),
		Product:  strings.TrimSpace(query.Get("produto")),
	}

	minAmount, err := parseAmount(query.Get("valorMinimo"))
	if err != nil {
		return filters, errors.Wrapf(filtering.ErrInvalidFilter, "valorMinimo %q", query.Get("valorMinimo"))
	}
	filters.MinAmount = minAmount

	maxAmount, err := parseAmount(query.Get("valorMaximo"))
	if err != nil {
		return filters, errors.Wrapf(filtering.ErrInvalidFilter, "valorMaximo %q", query.Get("valorMaximo"))
	}
	filters.MaxAmount = maxAmount

	return filters.Normalize(), nil
}

func parseAmount(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// parseLimit lê o parâmetro limite; ausente resulta em 0 (padrão do serviço)
func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limite"))
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.Errorf("limite inválido: %q", raw)
	}
	return limit, nil
}

// requireDataset responde 503 enquanto a primeira carga do conjunto de vendas não terminou
func requireDataset(w http.ResponseWriter, r *http.Request, dataset DatasetVersioner) bool {
	if dataset.DatasetVersion() > 0 {
		return true
	}

	log.ForContext(r.Context()).Warn("dashboard: requisição recebida antes da carga do conjunto de vendas")
	apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Conjunto de vendas ainda não carregado, tente novamente em instantes", nil)
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	writeJSONStatus(w, r, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleServiceError traduz erros dos casos de uso para a resposta padronizada
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var reportErr *reporting.ReportError
	var exportErr *exporting.ExportError

	switch {
	case errors.As(err, &reportErr):
		logger.Warn(message)
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)

	case errors.As(err, &exportErr):
		logger.Error(message)
		apiErrors.WriteError(w, exportErr.Code, message, exportErr.Details)

	case errors.Is(err, filtering.ErrInvalidFilter):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)

	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
