// Package router assembles the gin route table for the site.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "classifieds_backend/internal/feature/auth/transport/handler"
	listingshandler "classifieds_backend/internal/feature/listings/transport/handler"
	"classifieds_backend/internal/platform/http/handler"
	"classifieds_backend/internal/platform/session"
)

// NewRouter builds the gin engine with all site routes.
//
// The session middleware restores the principal on every request; the public
// group sends logged-in visitors to their profile, the auth group sends
// anonymous visitors to the login page (as a redirect, never an error).
func NewRouter(authH *authhandler.AuthHandler, listingsH *listingshandler.ListingsHandler,
	resolver session.Resolver, uploadRoot string) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*.html")
	// Uploaded images are served under the same path the templates reference.
	r.Static("/public/uploads", uploadRoot)
	r.Static("/public/js", "public/js")

	r.Use(session.Restore(resolver))

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Navigation and category pages; logged-in users land on their profile.
	public := r.Group("/", session.RedirectAuthenticated())
	{
		public.GET("/", page("home.html"))
		public.GET("/about", page("about.html"))
		public.GET("/contact", page("contact.html"))
		public.GET("/housing", listingsH.Category("housing"))
		public.GET("/jobs", listingsH.Category("jobs"))
		public.GET("/services", listingsH.Category("services"))
		public.GET("/forSale", listingsH.Category("forSale"))
		public.GET("/other", listingsH.Category("other"))
	}

	// Credential flows
	r.GET("/login", authH.ShowLogin)
	r.POST("/login", authH.Login)
	r.GET("/register", authH.ShowRegister)
	r.POST("/register", authH.Register)
	r.GET("/logout", authH.Logout)

	// Authenticated routes
	auth := r.Group("/", session.AuthRequired())
	{
		auth.GET("/profile", authH.Profile)
		auth.GET("/messages", authH.Messages)
		auth.GET("/changePassword", authH.ChangePassword)
		auth.GET("/uploads", listingsH.ShowUploads)
		auth.POST("/uploads", listingsH.CreateListing)
		auth.GET("/contents", listingsH.ShowContents)
		auth.POST("/contents", listingsH.DeleteListing)
		auth.POST("/updateCateg/:id", listingsH.UpdateCategory)
		auth.POST("/updateCategType/:id", listingsH.UpdateType)
		auth.POST("/updateCategDescription/:id", listingsH.UpdateDescription)
	}

	return r
}

// page returns a handler rendering a static navigation template.
func page(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{})
	}
}
