package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vportnov/user-service/internal/api/rest/handler"
	"github.com/vportnov/user-service/internal/api/rest/middleware"
	"github.com/vportnov/user-service/internal/logger"
	"github.com/vportnov/user-service/internal/model"
)

// Router assembles the HTTP routing tree.
type Router struct {
	userService handler.UserService
	tokens      middleware.TokenParser
	ctxManager  model.ContextManager
	logger      *logger.Logger
}

// New creates a new Router.
func New(
	userService handler.UserService,
	tokens middleware.TokenParser,
	ctxManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService: userService,
		tokens:      tokens,
		ctxManager:  ctxManager,
		logger:      logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	users := handler.NewUser(r.userService, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.ctxManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/users", users.Create)
		v1.GET("/users", users.Find)
		v1.GET("/users/:id", users.Get)
		v1.PATCH("/users/:id", users.Update)
		v1.DELETE("/users/:id", users.Delete)

		// The authorized-user lookup lives outside /users/:id so the id
		// routes stay purely parametric.
		v1.GET("/me", authenticate.Handle, users.Me)
	}

	return engine
}
