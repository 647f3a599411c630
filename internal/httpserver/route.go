package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/trendyfy/storefront/internal/middleware/auth"
	"github.com/trendyfy/storefront/internal/transport"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	ContactHandler *ContactHTTP
	SearchHandler  *SearchHTTP

	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// 10 attempts per 15 minutes on auth, 5 submissions per hour on
	// contact, both keyed by client IP
	authLimiter := rateLimiter(rate.Limit(10.0/(15*60)), 10, 15*time.Minute, "Too many attempts, please try again later")
	contactLimiter := rateLimiter(rate.Limit(5.0/3600), 5, time.Hour, "Too many contact submissions, please try again later")

	api := e.Group("/api", auth.ResolveIdentity(d.JWTSecret))

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", d.AuthHandler.Signup, authLimiter)
	authGroup.POST("/login", d.AuthHandler.Login, authLimiter)
	authGroup.POST("/logout", d.AuthHandler.Logout)
	authGroup.GET("/me", d.AuthHandler.Me)

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/featured", d.CatalogHandler.GetFeatured)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("/:id", d.CatalogHandler.GetProduct)

	cart := api.Group("/cart")
	cart.GET("/count", d.CartHandler.CartCount)
	cart.GET("", d.CartHandler.GetCart, auth.RequireAuth)
	cart.POST("", d.CartHandler.AddToCart, auth.RequireAuth)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity, auth.RequireAuth)
	cart.DELETE("/:id", d.CartHandler.RemoveEntry, auth.RequireAuth)

	api.POST("/contact", d.ContactHandler.Submit, contactLimiter)
}

func rateLimiter(limit rate.Limit, burst int, window time.Duration, msg string) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, transport.ErrorResponse{Error: msg})
		},
	})
}
