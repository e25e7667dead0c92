package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bloglist/api/dto"
	"bloglist/api/handlers"
	"bloglist/api/middleware"
	"bloglist/services"
)

// Deps carries the constructed services the router wires into handlers.
type Deps struct {
	Blogs *services.BlogService
	Users *services.UserService
	Auth  *services.AuthService

	// Ping reports backing-store health. Nil skips the check.
	Ping func(ctx context.Context) error
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/blogs", handlers.ListBlogsHandler(deps.Blogs))
		api.GET("/blogs/:id", handlers.GetBlogHandler(deps.Blogs))
		api.POST("/blogs", handlers.CreateBlogHandler(deps.Blogs))
		api.PUT("/blogs/:id", handlers.UpdateBlogHandler(deps.Blogs))
		api.DELETE("/blogs/:id", handlers.DeleteBlogHandler(deps.Blogs))

		api.GET("/users", handlers.ListUsersHandler(deps.Users))
		api.POST("/users", handlers.RegisterUserHandler(deps.Users))

		api.POST("/login", handlers.LoginHandler(deps.Auth))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "unknown endpoint"})
	})

	return r
}
