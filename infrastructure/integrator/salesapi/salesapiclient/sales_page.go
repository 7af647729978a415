package salesapiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SalesPageParams parâmetros de consulta; campos vazios não são enviados
type SalesPageParams struct {
	Page      int
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Channel   string
	Region    string
}

// SalesPageResponse resposta paginada da API de vendas
type SalesPageResponse struct {
	Data       []domain.Sale `json:"dados"`
	Total      int           `json:"total"`
	Page       int           `json:"pagina"`
	TotalPages int           `json:"totalPaginas"`
}

func (c *SalesAPIClient) GetSalesPage(ctx context.Context, params SalesPageParams) (SalesPageResponse, error) {
	var response SalesPageResponse

	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("pagina", strconv.Itoa(params.Page))
	if params.StartDate != "" {
		query.Set("dataInicio", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("dataFim", params.EndDate)
	}
	if params.Channel != "" {
		query.Set("canal", params.Channel)
	}
	if params.Region != "" {
		query.Set("regiao", params.Region)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição da página %d falhou com status: %s", params.Page, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
