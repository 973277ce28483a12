// Package routes wires the handler packages to the router.
package routes

import (
	"itinero/auth"
	"itinero/cart"
	"itinero/checkout"
	"itinero/follows"
	"itinero/itineraries"
	"itinero/middleware"
	"itinero/newsletter"
	"itinero/payments"
	"itinero/purchases"
	"itinero/ratelim"
	"itinero/store"
	"itinero/uploads"

	"github.com/julienschmidt/httprouter"
)

// Deps carries everything the handlers need; built once in main.
type Deps struct {
	Stores      store.Stores
	Sessions    payments.SessionCreator
	CartRepo    cart.Repository
	BaseURL     string
	RateLimiter *ratelim.RateLimiter
}

func RoutesWrapper(router *httprouter.Router, deps Deps) {
	AddAuthRoutes(router, deps)
	AddItineraryRoutes(router, deps)
	AddCheckoutRoutes(router, deps)
	AddCartRoutes(router, deps)
	AddFollowRoutes(router, deps)
	AddNewsletterRoutes(router, deps)
}

func AddAuthRoutes(router *httprouter.Router, deps Deps) {
	h := &auth.Handler{Users: deps.Stores.Users, BaseURL: deps.BaseURL}
	limit := deps.RateLimiter.Limit
	limitedAuth := middleware.Chain(limit, middleware.Authenticate)

	router.POST("/api/auth/register", limit(h.Register))
	router.POST("/api/auth/login", limit(h.Login))
	router.POST("/api/auth/refresh", limit(h.Refresh))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.POST("/api/auth/resend", limitedAuth(h.Resend))
	router.GET("/auth/confirm", limit(h.Confirm))
}

func AddItineraryRoutes(router *httprouter.Router, deps Deps) {
	h := &itineraries.Handler{
		Store:     deps.Stores.Itineraries,
		Users:     deps.Stores.Users,
		Purchases: deps.Stores.Purchases,
		BaseURL:   deps.BaseURL,
	}
	up := &uploads.Handler{Store: deps.Stores.Itineraries, BaseURL: deps.BaseURL}

	router.GET("/api/itineraries", h.Query)                                  // Browse with filters
	router.GET("/api/itineraries/mine", middleware.Authenticate(h.Mine))     // Caller's own itineraries
	router.GET("/api/itineraries/all/:id", h.Get)                            // Fetch a single itinerary
	router.POST("/api/itineraries", middleware.Authenticate(h.Create))       // Create a new itinerary
	router.PUT("/api/itineraries/:id", middleware.Authenticate(h.Update))    // Update an itinerary
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(h.Delete)) // Delete an itinerary
	router.PUT("/api/itineraries/:id/publish", middleware.Authenticate(h.Publish))
	router.GET("/api/itineraries/all/:id/pdf", middleware.Authenticate(h.ExportPDF))
	router.POST("/api/itineraries/:id/image", middleware.Authenticate(up.UploadMainImage))
}

func AddCheckoutRoutes(router *httprouter.Router, deps Deps) {
	svc := &checkout.Service{
		Itineraries: deps.Stores.Itineraries,
		Purchases:   deps.Stores.Purchases,
		Users:       deps.Stores.Users,
		Sessions:    deps.Sessions,
		BaseURL:     deps.BaseURL,
	}
	ph := &purchases.Handler{
		Purchases:   deps.Stores.Purchases,
		Itineraries: deps.Stores.Itineraries,
	}

	// Anonymous checkout is allowed; identity only gates duplicate checks.
	router.POST("/api/checkout", middleware.OptionalAuth(svc.Checkout))
	router.GET("/api/checkout/config", checkout.Config)
	router.POST("/api/checkout/webhook", svc.Webhook)
	router.GET("/api/purchases", middleware.Authenticate(ph.List))
}

func AddCartRoutes(router *httprouter.Router, deps Deps) {
	h := &cart.Handler{Repo: deps.CartRepo}

	router.GET("/api/cart", middleware.Authenticate(h.Get))
	router.POST("/api/cart", middleware.Authenticate(h.Mutate))
	router.DELETE("/api/cart", middleware.Authenticate(h.Clear))
}

func AddFollowRoutes(router *httprouter.Router, deps Deps) {
	h := &follows.Handler{Follows: deps.Stores.Follows, Users: deps.Stores.Users}

	router.GET("/api/follows", middleware.Authenticate(h.Following))
	router.POST("/api/follows/:userid", middleware.Authenticate(h.Follow))
	router.DELETE("/api/follows/:userid", middleware.Authenticate(h.Unfollow))
}

func AddNewsletterRoutes(router *httprouter.Router, deps Deps) {
	h := &newsletter.Handler{Newsletter: deps.Stores.Newsletter}

	router.POST("/api/newsletter", deps.RateLimiter.Limit(h.Subscribe))
}
