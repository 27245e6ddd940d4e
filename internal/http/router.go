package api

import (
	"log"
	stdhttp "net/http"

	"drivent/internal/config"
	h "drivent/internal/http/handlers"
	"drivent/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Bookings h.BookingHandler
	Sessions middleware.SessionChecker
	Ping     h.Pinger
}

func NewRouter(env config.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	r.GET("/health/db", h.DBHealth(deps.Ping))

	bookings := r.Group("/bookings", middleware.Auth(env.JWTSecret, deps.Sessions))
	bookings.GET("", deps.Bookings.Get)
	bookings.GET("/voucher", deps.Bookings.Voucher)
	bookings.POST("", deps.Bookings.Create)
	bookings.PUT("/:bookingId", deps.Bookings.Update)

	return r
}
