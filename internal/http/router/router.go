package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/retail-pos/docs"
	"github.com/rogerio-castellano/retail-pos/internal/http/handlers"
	mw "github.com/rogerio-castellano/retail-pos/internal/http/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(mw.RateLimitMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/login", handlers.LoginHandler)
	r.Post("/refresh", handlers.RefreshHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)

		r.Post("/admin/users", handlers.CreateUserHandler)

		r.Get("/shops", handlers.GetShopsHandler)

		r.Post("/brands", handlers.CreateBrandHandler)
		r.Get("/brands", handlers.GetBrandsHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products/{id}/variants", handlers.CreateVariantHandler)
		r.Get("/products/{id}/variants", handlers.GetVariantsHandler)

		r.Route("/stock-units", func(r chi.Router) {
			r.Post("/", handlers.CreateStockUnitHandler)
			r.Get("/", handlers.GetStockUnitsHandler)
			r.Get("/{id}", handlers.GetStockUnitHandler)
			r.Delete("/{id}", handlers.DeleteStockUnitHandler)
		})

		r.Route("/stock-batches", func(r chi.Router) {
			r.Post("/", handlers.CreateStockBatchHandler)
			r.Get("/", handlers.GetStockBatchesHandler)
			r.Post("/import", handlers.ImportStockBatchesHandler)
			r.Get("/{id}", handlers.GetStockBatchHandler)
			r.Delete("/{id}", handlers.DeleteStockBatchHandler)
			r.Post("/{id}/adjust", handlers.AdjustStockBatchHandler)
			r.Get("/{id}/movements", handlers.GetBatchMovementsHandler)
			r.Get("/{id}/movements/export", handlers.ExportBatchMovementsHandler)
		})

		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	})

	return r
}
