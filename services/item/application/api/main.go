package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemhub/pkg/app"
	"github.com/ghuser/itemhub/pkg/config"
	"github.com/ghuser/itemhub/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router. The static
// async routes are matched before the {id} wildcard by chi's routing rules.
func ItemRoutes(r chi.Router, a *app.Application, cfg *config.Config) {
	svcs := appsvcs.NewServices(a, cfg)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)

			// Async variants: pool-dispatched with timeout/fallback translation.
			r.Get("/by-id", handlers.NewGetItemAsyncHandler(svcs).Execute)
			r.Post("/create", handlers.NewPostItemAsyncHandler(svcs).Execute)
			r.Put("/update", handlers.NewPutItemAsyncHandler(svcs).Execute)
			r.Delete("/delete", handlers.NewDeleteItemAsyncHandler(svcs).Execute)
			r.Get("/search", handlers.NewSearchItemsAsyncHandler(svcs).Execute)
			r.Get("/info", handlers.NewGetItemInfoHandler(svcs).Execute)
		})
	})
}
