// Package router manages HTTP route registration.
package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers routes under the versioned API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// PublicRouteRegistrar registers routes at the engine root. The scan
// surface (short links, QR assets, embeds, health) lives outside the
// versioned API because those URLs end up on printed media.
type PublicRouteRegistrar interface {
	RegisterPublicRoutes(engine *gin.Engine)
}

// Router manages HTTP route registration
type Router struct {
	engine           *gin.Engine
	apiVersion       string
	registrars       []RouteRegistrar
	publicRegistrars []PublicRouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// RegisterPublic adds a PublicRouteRegistrar to be registered later
func (r *Router) RegisterPublic(registrar PublicRouteRegistrar) *Router {
	r.publicRegistrars = append(r.publicRegistrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	for _, registrar := range r.publicRegistrars {
		registrar.RegisterPublicRoutes(r.engine)
	}
}
