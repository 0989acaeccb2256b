package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "paint-quote/http-server/admin/get"
	removeadmin "paint-quote/http-server/admin/remove"
	saveadmin "paint-quote/http-server/admin/save"
	updateadmin "paint-quote/http-server/admin/update"
	getconfigs "paint-quote/http-server/area-configs/get"
	saveconfigs "paint-quote/http-server/area-configs/save"
	"paint-quote/http-server/areas/calculate"
	getareas "paint-quote/http-server/areas/get"
	"paint-quote/http-server/generate-report/quotation"
	"paint-quote/http-server/labour/quick"
	"paint-quote/http-server/materials/calculation"
	getsummary "paint-quote/http-server/summary/get"
	"paint-quote/internal/config"
	"paint-quote/internal/middleware/auth"
	"paint-quote/internal/service/export"
	"paint-quote/internal/service/quote"
	"paint-quote/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, quotes *quote.QuoteService, exports *export.ExportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Post("/api/areas/calculate", calculate.CalculateRoomArea(log))
	router.Post("/api/materials/calculation", calculation.CalculateMaterial(log, quotes))
	router.Post("/api/labour/estimate", quick.EstimateLabour(log))

	router.Route("/api/projects/{id}", func(r chi.Router) {
		r.Get("/rooms/areas", getareas.GetRoomAreas(log, quotes))
		r.Get("/area-configs", getconfigs.GetAreaConfigs(log, quotes))
		r.Put("/area-configs", saveconfigs.SaveAreaConfigs(log, quotes))
		r.Get("/summary", getsummary.GetProjectSummary(log, quotes))
		r.Get("/quotation", quotation.DownloadQuotation(log, exports))
	})

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/categories", getadmin.GetCategories(log, storage))
	adminRouter.Post("/categories", saveadmin.SaveCategory(log, storage))
	adminRouter.Put("/categories/{id}", updateadmin.RenameCategory(log, storage))
	adminRouter.Delete("/categories/{id}", removeadmin.DeleteCategory(log, storage))
	adminRouter.Post("/products", saveadmin.SaveProduct(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
