// Package server builds the gin engine and mounts the API routes.
package server

import (
	"time"

	"github.com/GanderM1/testforgenew/config"
	"github.com/GanderM1/testforgenew/internal/auth"
	adminctrl "github.com/GanderM1/testforgenew/internal/controller/admin"
	userctrl "github.com/GanderM1/testforgenew/internal/controller/user"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

const requestIDHeader = "X-Request-ID"

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("request_id", param.Request.Header.Get(requestIDHeader)).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Controllers groups every handler the API mounts.
type Controllers struct {
	fx.In

	AdminTests  *adminctrl.AdminTestController
	AdminGroups *adminctrl.GroupController
	UserTests   *userctrl.UserTestController
	Auth        *userctrl.AuthController
	Groups      *userctrl.GroupController
	Health      *userctrl.HealthController
}

// RegisterRoutes mounts the API under /api. Everything except login and
// health requires a bearer token.
func RegisterRoutes(router *gin.Engine, tokens *auth.TokenManager, users repository.UserRepository, ctrl Controllers) {
	api := router.Group("/api")
	api.POST("/auth/login", ctrl.Auth.Login)
	api.GET("/health", ctrl.Health.Health)

	authed := api.Group("", auth.Middleware(tokens, users))
	authors := auth.RequireRole(model.RoleTeacher, model.RoleAdmin)
	admins := auth.RequireRole(model.RoleAdmin)

	authed.GET("/profile", ctrl.Auth.Profile)

	tests := authed.Group("/tests")
	{
		tests.GET("", ctrl.UserTests.GetAllTests)
		tests.GET("/:id", ctrl.UserTests.GetTestDetails)
		tests.GET("/:id/check-access", ctrl.UserTests.CheckAccess)
		tests.POST("/:id/submit", ctrl.UserTests.SubmitTest)

		tests.POST("", authors, ctrl.AdminTests.CreateTest)
		tests.PUT("/:id", authors, ctrl.AdminTests.UpdateTest)
		tests.DELETE("/:id", authors, ctrl.AdminTests.DeleteTest)
		tests.DELETE("/:id/questions/:questionId", authors, ctrl.AdminTests.DeleteQuestion)
		tests.GET("/:id/statistics", authors, ctrl.AdminTests.GetTestStatistics)
	}

	authed.GET("/students/my-stats", ctrl.UserTests.GetMyStats)

	groups := authed.Group("/groups")
	{
		groups.GET("", ctrl.Groups.ListGroups)
		groups.POST("", admins, ctrl.AdminGroups.CreateGroup)
		groups.DELETE("/:id", admins, ctrl.AdminGroups.DeleteGroup)
		groups.GET("/:id/tests", authors, ctrl.AdminGroups.GetGroupTests)
	}
}
