// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fmt"

	"postboard/config"
	"postboard/internal/delivery/http/middleware"
	"postboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverheadKB leaves room for multipart boundaries and headers around an upload.
const multipartOverheadKB = 1024

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	FileHandler    *handler.FileHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	fileHandler    *handler.FileHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		fileHandler:    params.FileHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// UploadPath is exempt from the global body limit and carries its own.
const UploadPath = "/upload"

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Identity
	e.POST("/register", r.authHandler.Register)
	e.GET("/confirm/:token", r.authHandler.Confirm)
	e.POST("/token", r.authHandler.Token)
	e.GET("/users", r.authHandler.ListUsers)

	// Posts, comments and likes
	e.POST("/post", r.postHandler.CreatePost, authenticated)
	e.GET("/posts", r.postHandler.ListPosts)
	e.GET("/posts/:post_id", r.postHandler.GetPost)
	e.GET("/posts/:post_id/comments", r.postHandler.ListCommentsOnPost)
	e.GET("/posts/:post_id/qrcode", r.postHandler.PostQRCode)
	e.GET("/comments", r.postHandler.ListComments)
	e.POST("/comment", r.postHandler.CreateComment, authenticated)
	e.POST("/like", r.postHandler.LikePost, authenticated)

	// Files
	uploadLimit := echomiddleware.BodyLimit(fmt.Sprintf("%dKB", r.config.Storage.MaxUploadBytes/1024+multipartOverheadKB))
	e.POST(UploadPath, r.fileHandler.Upload, uploadLimit, authenticated)
	e.GET("/files", r.fileHandler.List)
	e.GET("/files/*", r.fileHandler.Download)
}

// RegisterTestRoutes mounts the debugging routes when they are enabled.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test", r.authMiddleware.Authenticate)
	{
		testGroup.POST("/send-email", r.testHandler.SendEmail)
		testGroup.GET("/whoami", r.testHandler.WhoAmI)
	}
}
