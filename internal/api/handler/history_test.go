package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/strategic-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetSalesHistory(t *testing.T) {
	t.Run("Sem banco de dados", func(t *testing.T) {
		rec := httptest.NewRecorder()
		GetSalesHistory(nil, "arquivo:vendas.csv").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/history", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Usa a fonte configurada por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockMonthlySalesSnapshotRepository(ctrl)
		repo.EXPECT().ListBySource(gomock.Any(), "postgres").Return(nil, nil)

		rec := httptest.NewRecorder()
		GetSalesHistory(repo, "postgres").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/history", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"resumos":[]`)
	})

	t.Run("Fonte informada na query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockMonthlySalesSnapshotRepository(ctrl)
		repo.EXPECT().ListBySource(gomock.Any(), "api:vendas.local").Return([]*domain.MonthlySalesSnapshot{
			{Period: "03/2024", Source: "api:vendas.local", Transactions: 10},
		}, nil)

		rec := httptest.NewRecorder()
		GetSalesHistory(repo, "postgres").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/history?fonte=api:vendas.local", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"period":"03/2024"`)
	})

	t.Run("Erro no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockMonthlySalesSnapshotRepository(ctrl)
		repo.EXPECT().ListBySource(gomock.Any(), "postgres").Return(nil, errors.New("conexão recusada"))

		rec := httptest.NewRecorder()
		GetSalesHistory(repo, "postgres").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/history", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrDatabaseOperation)
	})
}
