package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

func contextWithUser(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		origin      string
		method      string
		wantAllowed bool
		wantCode    int
	}{
		{name: "Origem liberada", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, wantAllowed: true, wantCode: http.StatusOK},
		{name: "Origem não liberada", origins: []string{"http://localhost:3000"}, origin: "http://malicioso.com", method: http.MethodGet, wantCode: http.StatusOK},
		{name: "Curinga libera qualquer origem", origins: []string{"*"}, origin: "http://painel.local", method: http.MethodGet, wantAllowed: true, wantCode: http.StatusOK},
		{name: "Preflight responde sem chamar o handler", origins: []string{"*"}, origin: "http://painel.local", method: http.MethodOptions, wantAllowed: true, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
			assert.Equal(t, tt.method != http.MethodOptions, called)
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("Bloqueia após esgotar o burst", func(t *testing.T) {
		limiter := NewRateLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 0.001, Burst: 2})
		handler := RateLimit(limiter)(okHandler())

		codes := make([]int, 0, 3)
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.RemoteAddr = "10.0.0.2:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Trocar o X-Forwarded-For não renova o limite", func(t *testing.T) {
		limiter := NewRateLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 0.001, Burst: 1})
		handler := RateLimit(limiter)(okHandler())

		codes := make([]int, 0, 3)
		for _, forwarded := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
			req.RemoteAddr = "200.1.1.1:5000"
			req.Header.Set("X-Forwarded-For", forwarded)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
		assert.Equal(t, 1, limiter.tracked())
	})

	t.Run("Desabilitado libera tudo", func(t *testing.T) {
		limiter := NewRateLimiter(config.RateLimit{Enabled: false, RequestsPerSecond: 0.001, Burst: 1})
		for range 5 {
			assert.True(t, limiter.Allow("10.0.0.1"))
		}
		assert.Zero(t, limiter.tracked())
	})

	t.Run("Descarta IPs inativos", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		limiter := NewRateLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 10, Burst: 10})
		limiter.now = func() time.Time { return now }

		limiter.Allow("10.0.0.1")
		limiter.Allow("10.0.0.2")
		require.Equal(t, 2, limiter.tracked())

		now = now.Add(visitorTTL + time.Second)
		limiter.Allow("10.0.0.3")
		assert.Equal(t, 1, limiter.tracked())
	})
}

func TestClientIP(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimit{TrustedProxies: []string{"10.0.0.0/8", "192.168.0.1", "lixo"}})

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "Sem cabeçalhos usa a conexão",
			remoteAddr: "192.168.0.10:4000",
			want:       "192.168.0.10",
		},
		{
			name:       "Cliente direto não escolhe o próprio IP",
			remoteAddr: "200.1.1.1:4000",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"},
			want:       "200.1.1.1",
		},
		{
			name:       "Proxy confiável com X-Forwarded-For",
			remoteAddr: "10.0.0.1:4000",
			headers:    map[string]string{"X-Forwarded-For": "200.1.1.1, 10.0.0.7"},
			want:       "200.1.1.1",
		},
		{
			name:       "Entrada forjada à esquerda é ignorada",
			remoteAddr: "10.0.0.1:4000",
			headers:    map[string]string{"X-Forwarded-For": "9.9.9.9, 200.1.1.1"},
			want:       "200.1.1.1",
		},
		{
			name:       "Proxy confiável com X-Real-IP",
			remoteAddr: "192.168.0.1:4000",
			headers:    map[string]string{"X-Real-IP": "172.16.0.5"},
			want:       "172.16.0.5",
		},
		{
			name:       "Cabeçalho inválido mantém a conexão",
			remoteAddr: "10.0.0.1:4000",
			headers:    map[string]string{"X-Forwarded-For": "não-é-ip", "X-Real-IP": "também-não"},
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			assert.Equal(t, tt.want, limiter.clientIP(req))
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
		w.(http.Flusher).Flush()
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/stream", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get("X-Correlation-ID"))
	assert.True(t, rec.Flushed)
}

func TestLoggingMiddleware_ReusesIncomingCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	incoming := "5f0c8a3e-2b7d-4c1e-9a6f-1d2e3f4a5b6c"
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("X-Correlation-ID", incoming)

	rec := httptest.NewRecorder()
	LoggingMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get("X-Correlation-ID"))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
