// Package router wires domain routes onto the Fiber app.
package router

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "fullsco_api/internal/api/base/handler"
	basesvc "fullsco_api/internal/api/base/service"
)

// CRUDHandler is the uniform REST surface of an entity
type CRUDHandler interface {
	List(c fiber.Ctx) error
	GetById(c fiber.Ctx) error
	GetBySlug(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// CRUDConfig selects which CRUD routes an entity exposes
type CRUDConfig struct {
	List   bool // GET /
	Get    bool // GET /:id
	Slug   bool // GET /slug/:slug
	Create bool // POST /
	Update bool // PUT and PATCH /:id
	Delete bool // DELETE /:id
}

var (
	// ReadWriteConfig exposes full CRUD
	ReadWriteConfig = CRUDConfig{
		List: true, Get: true,
		Create: true, Update: true, Delete: true,
	}

	// SlugConfig is full CRUD plus lookup by slug
	SlugConfig = CRUDConfig{
		List: true, Get: true, Slug: true,
		Create: true, Update: true, Delete: true,
	}

	// AppendOnlyConfig has no update route
	AppendOnlyConfig = CRUDConfig{
		List: true, Get: true,
		Create: true, Delete: true,
	}
)

// RoutePrefix holds the API prefixes
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

// NewRoutePrefix returns the default prefixes
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Deps are the dependencies domains build their services and handlers from
type Deps struct {
	Stores         *basesvc.StoreProvider
	RequestTimeout time.Duration
	UploadDir      string
	Environment    string
}

// Router is handed to every domain's Register
type Router struct {
	app  *fiber.App
	deps Deps
}

// NewRouter returns a Router for app
func NewRouter(app *fiber.App, deps Deps) *Router {
	return &Router{
		app:  app,
		deps: deps,
	}
}

// Stores returns the store provider
func (r *Router) Stores() *basesvc.StoreProvider {
	return r.deps.Stores
}

// Deps returns all dependencies
func (r *Router) Deps() Deps {
	return r.deps
}

// NewBaseHandler returns a BaseHandler using the configured request timeout
func (r *Router) NewBaseHandler(module, collection string) *basehdl.BaseHandler {
	return basehdl.NewBaseHandler(module, collection, r.deps.RequestTimeout)
}

// RegisterRouteWithMiddleware registers one route inside a group so middlewares are attached
// with Use, which Fiber v3 applies reliably. Path is relative to prefix.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case fiber.MethodGet:
		routeGroup.Get(path, handler)
	case fiber.MethodPost:
		routeGroup.Post(path, handler)
	case fiber.MethodPut:
		routeGroup.Put(path, handler)
	case fiber.MethodPatch:
		routeGroup.Patch(path, handler)
	case fiber.MethodDelete:
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes registers the routes enabled in config under prefix.
// Domain specific routes sharing the prefix must be registered first so /:id does not shadow them.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, middlewares ...fiber.Handler) {
	if config.List {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/", middlewares, h.List)
	}
	if config.Slug {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/slug/:slug", middlewares, h.GetBySlug)
	}
	if config.Get {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/:id", middlewares, h.GetById)
	}
	if config.Create {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPost, "/", middlewares, h.Create)
	}
	if config.Update {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPut, "/:id", middlewares, h.Update)
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodPatch, "/:id", middlewares, h.Update)
	}
	if config.Delete {
		RegisterRouteWithMiddleware(router, prefix, fiber.MethodDelete, "/:id", middlewares, h.Delete)
	}
}

// RegisterFunc registers one domain's routes under v1
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mounts /health and every domain under /api/v1. Domains are passed in by the
// caller so this package never imports them.
func SetupRoutes(app *fiber.App, deps Deps, regs ...RegisterFunc) error {
	r := NewRouter(app, deps)

	system := basehdl.NewSystemHandler(deps.Stores, deps.Environment)
	app.Get("/health", system.HandleHealth)

	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	v1.Get("/health", system.HandleHealth)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
