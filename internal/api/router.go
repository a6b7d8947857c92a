package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/reliefops/finance/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api/fin", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/expenses", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateExpense)
			r.Get("/", h.Expenses)
			r.Get("/{id}", h.Expense)
			r.Put("/{id}", h.UpdateExpense)
			r.Delete("/{id}", h.DeleteExpense)
			r.Post("/{id}/documents", h.AttachDocument)
			r.Get("/{id}/documents", h.ExpenseDocuments)
		})

		r.Route("/services", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreatePaymentService)
			r.Get("/", h.PaymentServices)
			r.Get("/{id}", h.PaymentService)
			r.Put("/{id}", h.UpdatePaymentService)
			r.Delete("/{id}", h.DeletePaymentService)
		})

		r.Route("/organisations", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateOrganisation)
			r.Get("/", h.Organisations)
			r.Get("/{id}", h.Organisation)
		})

		r.Route("/schema", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/refs/{key}", h.ReferenceField)
			r.Get("/{table}", h.TableSchema)
		})

		r.Route("/private/v1/services", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Put("/{id}/token", h.UpdateServiceToken)
		})
	})

	return mux
}
