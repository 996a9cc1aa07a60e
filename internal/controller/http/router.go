package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func orderID(r *http.Request) string {
	return chi.URLParam(r, "orderID")
}

func InitRoutes(r *chi.Mux, c *Controller) *chi.Mux {

	r.Get("/ping", c.Ping)

	r.Route("/api/v1/panel", func(r chi.Router) {
		r.Route("/shell", func(r chi.Router) {
			r.Get("/", c.GetShell)
			r.Post("/tab", c.SelectTab)
			r.Post("/modal", c.SetShellModal)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", c.GetOrders)
			r.Post("/refresh", c.RefreshOrders)
			r.Put("/controls", c.SetControls)
			r.Put("/drafts", c.UpdateDrafts)
			r.Post("/modal", c.SetOrdersModal)
			r.Delete("/detail", c.CloseOrderDetail)

			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", c.GetOrderDetail)
				r.Post("/accept", c.AcceptOrder)
				r.Post("/reject", c.RejectOrder)
				r.Post("/shipping", c.SubmitShipping)
				r.Post("/proof", c.UpdateProof)
				r.Post("/messages", c.SendMessage)
			})
		})
	})

	return r
}
