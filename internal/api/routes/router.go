package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/api/handlers"
	"github.com/linskybing/design-review/internal/api/middleware"
	"go.uber.org/zap"
)

type Options struct {
	CorsOrigins   []string
	DefaultUserID string
	// UploadRPS limits file uploads per client IP. Zero disables the limit.
	UploadRPS   float64
	UploadBurst int
}

// RegisterRoutes mounts every endpoint on r. Identity runs on /api and
// /uploads so mutations are attributed to the caller.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, opts Options) {
	r.GET("/", h.System.Root)
	r.GET("/health", h.System.Health)

	identity := middleware.Identity(opts.DefaultUserID)
	uploadLimit := middleware.NewRateLimiter(opts.UploadRPS, opts.UploadBurst).Middleware()

	r.GET("/uploads/*key", identity, h.File.ServeFile)

	api := r.Group("/api")
	api.Use(identity)
	{
		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
		}

		drawings := api.Group("/drawings")
		{
			drawings.GET("", h.Drawing.ListDrawings)
			drawings.GET("/:id", h.Drawing.GetDrawing)
			drawings.GET("/:id/versions", h.Drawing.ListVersions)
			drawings.POST("/:id/versions", h.Drawing.CreateVersion)
			drawings.POST("/:id/versions/upload", uploadLimit, h.Drawing.UploadVersion)
			drawings.GET("/:id/annotations", h.Annotation.ListAnnotations)
		}

		annotations := api.Group("/annotations")
		{
			annotations.POST("", h.Annotation.CreateAnnotation)
			annotations.PUT("/:id/resolve", h.Annotation.ResolveAnnotation)
			annotations.PUT("/:id/unresolve", h.Annotation.UnresolveAnnotation)
			annotations.DELETE("/:id", h.Annotation.DeleteAnnotation)
			annotations.POST("/:id/replies", h.Annotation.AddReply)
		}

		workflows := api.Group("/workflows")
		{
			workflows.GET("", h.Workflow.ListWorkflows)
			workflows.GET("/:id", h.Workflow.GetWorkflow)
			workflows.POST("", h.Workflow.CreateWorkflow)
			workflows.PUT("/:id/status", h.Workflow.UpdateStatus)
		}

		users := api.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/me", h.User.GetCurrentUser)
			users.GET("/:id", h.User.GetUserByID)
		}

		api.POST("/upload", uploadLimit, h.File.UploadFile)
		api.GET("/audit/logs", h.Audit.GetAuditLogs)
	}
}

// NewEngine builds a gin engine with the standard middleware chain and all
// routes registered.
func NewEngine(h *handlers.Handlers, log *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORSMiddleware(opts.CorsOrigins))
	r.MaxMultipartMemory = 32 << 20

	RegisterRoutes(r, h, opts)
	return r
}
