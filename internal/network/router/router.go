package router

import (
	"time"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/config"
	"github.com/denmor86/ya-shopadmin/internal/network/handlers"
	"github.com/denmor86/ya-shopadmin/internal/network/middleware"
	"github.com/denmor86/ya-shopadmin/internal/services"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

const orderChangesWait = 30 * time.Second

type Router struct {
	Config   config.Config
	Identity *services.Identity
	Sessions *services.Sessions
	// ChangesWait - сколько long-poll ждёт замены списка заказов
	ChangesWait time.Duration
}

func NewRouter(config config.Config, backend *client.Client) *Router {
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, backend),
		Sessions: services.NewSessions(backend, config.Dashboard),

		ChangesWait: orderChangesWait,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Post("/user/login", handlers.LoginHandler(router.Identity, router.Sessions))
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Post("/user/logout", handlers.LogoutHandler(router.Sessions))

			r.Group(func(r chi.Router) {
				r.Use(middleware.SessionHandle(router.Sessions))
				r.Get("/notifications", handlers.NotificationsHandler())

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", handlers.GetOrdersHandler())
					r.Post("/reload", handlers.ReloadOrdersHandler())
					r.Get("/changes", handlers.WaitOrdersHandler(router.ChangesWait))
					r.Post("/{orderID}/request-proof", handlers.RequestProofHandler())
					r.Post("/{orderID}/actions/{action}", handlers.OrderActionHandler())
				})
				r.Route("/categories", func(r chi.Router) {
					r.Get("/", handlers.GetCategoriesHandler())
					r.Post("/", handlers.AddCategoryHandler())
					r.Post("/subcategories", handlers.AddSubcategoryHandler())
					r.Delete("/subcategories", handlers.DeleteSubcategoryHandler())
					r.Delete("/{categoryID}", handlers.DeleteCategoryHandler())
				})
				r.Route("/offers", func(r chi.Router) {
					r.Get("/", handlers.GetOffersHandler())
					r.Post("/", handlers.AddOfferHandler())
					r.Delete("/{offerID}", handlers.DeleteOfferHandler())
				})
				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", handlers.GetTestimonialsHandler())
					r.Post("/", handlers.SaveTestimonialHandler())
					r.Patch("/reorder", handlers.ReorderTestimonialsHandler())
					r.Put("/{testimonialID}", handlers.SaveTestimonialHandler())
					r.Delete("/{testimonialID}", handlers.DeleteTestimonialHandler())
					r.Patch("/{testimonialID}/status", handlers.TestimonialStatusHandler())
				})
			})
		})
	})
	return r
}
