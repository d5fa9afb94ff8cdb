package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/app/tenant"
)

// RouterDeps bundles everything the public and admin APIs need.
type RouterDeps struct {
	Tenant     *tenant.Resolver
	Menu       *MenuHandler
	Cart       *CartHandler
	Order      *OrderHandler
	Admin      *AdminHandler
	BaseDomain string
	AdminToken string
	Logger     logger.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(LoggingMiddleware(deps.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public storefront API, scoped to the tenant resolved from the host.
	r.Route("/api", func(r chi.Router) {
		r.Use(SessionMiddleware)
		r.Use(TenantMiddleware(deps.Tenant, deps.BaseDomain))

		r.Get("/restaurant", deps.Menu.GetRestaurant)
		r.Get("/categories", deps.Menu.ListCategories)
		r.Get("/menu", deps.Menu.ListMenu)
		r.Get("/menu/featured", deps.Menu.ListFeatured)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", deps.Cart.GetCart)
			r.Post("/items", deps.Cart.AddItem)
			r.Patch("/items/{itemID}", deps.Cart.UpdateItem)
			r.Delete("/items/{itemID}", deps.Cart.RemoveItem)
			r.Delete("/", deps.Cart.ClearCart)
		})

		r.Post("/checkout", deps.Order.Checkout)
		r.Get("/orders/{number}/status", deps.Order.GetOrderStatus)
		r.Get("/orders/{number}/history", deps.Order.GetOrderHistory)
	})

	// Admin API, host-independent and token-gated.
	r.Route("/admin", func(r chi.Router) {
		r.Use(AdminAuthMiddleware(deps.AdminToken))

		r.Post("/restaurants", deps.Admin.CreateRestaurant)
		r.Get("/restaurants", deps.Admin.ListRestaurants)
		r.Put("/restaurants/{restaurantID}", deps.Admin.UpdateRestaurant)
		r.Get("/restaurants/{restaurantID}/orders", deps.Admin.ListOrders)
		r.Post("/categories", deps.Admin.CreateCategory)
		r.Put("/categories/{categoryID}", deps.Admin.UpdateCategory)
		r.Post("/menu-items", deps.Admin.CreateMenuItem)
		r.Put("/menu-items/{itemID}", deps.Admin.UpdateMenuItem)
		r.Get("/stations", deps.Admin.GetStationsStatus)
	})

	return r
}
