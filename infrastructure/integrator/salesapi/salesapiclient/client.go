package salesapiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/strategic-dashboard-api/internal/config"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	GetSalesPage(ctx context.Context, params SalesPageParams) (SalesPageResponse, error)
}

type SalesAPIClient struct {
	httpClient *http.Client
	config     config.SalesAPI
}

func NewClient(cfg config.SalesAPI) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &SalesAPIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
