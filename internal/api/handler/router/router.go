package router

import (
	"net/http"
	"slices"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithPrefix registra as rotas sob um prefixo comum, ex.: "/v1/dashboard"
	WithPrefix = func(prefix string, routes ...Route) ConfigRouter {
		return func(router *Router) {
			prefixed := make([]Route, 0, len(routes))
			for _, route := range routes {
				route.Path = joinPath(prefix, route.Path)
				prefixed = append(prefixed, route)
			}
			router.AddRoutes(prefixed...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem declarada
}

// Router envolve o httprouter respondendo 404/405 no mesmo formato JSON da API
type Router struct {
	router     *httprouter.Router
	registered *[]string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", map[string]string{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})

	router := &Router{
		router:     hr,
		registered: &[]string{},
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra cada rota encadeando seus middlewares com alice
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := alice.New(toConstructors(route.Middlewares)...).Then(route.Handler)
		r.router.Handler(route.Method, route.Path, handler)
		*r.registered = append(*r.registered, route.Method+" "+route.Path)
	}
}

// Routes lista "MÉTODO caminho" das rotas registradas, em ordem alfabética
func (r Router) Routes() []string {
	routes := slices.Clone(*r.registered)
	slices.Sort(routes)
	return routes
}

func toConstructors(middlewares []func(http.Handler) http.Handler) []alice.Constructor {
	constructors := make([]alice.Constructor, 0, len(middlewares))
	for _, m := range middlewares {
		constructors = append(constructors, m)
	}
	return constructors
}

func joinPath(prefix, path string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if path == "" || path == "/" {
		return prefix
	}
	return prefix + "/" + strings.TrimPrefix(path, "/")
}
