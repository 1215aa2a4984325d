// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"academy/config"
	"academy/internal/delivery/api/middleware"
	"academy/internal/delivery/api/router/handler"
	"academy/internal/domain/entity"
	"academy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// UploadPrefix is the route prefix whose bodies are bounded by the upload limit
// instead of the JSON body limit.
const UploadPrefix = "/api/uploads"

// multipartOverhead covers boundaries and part headers on top of the file bytes.
const multipartOverhead = 1 << 20

type RouterParams struct {
	fx.In

	HealthHandler      *handler.HealthHandler
	AuthHandler        *handler.AuthHandler
	ProgramHandler     *handler.ProgramHandler
	CoachHandler       *handler.CoachHandler
	TestimonialHandler *handler.TestimonialHandler
	FacilityHandler    *handler.FacilityHandler
	GalleryHandler     *handler.GalleryHandler
	ContactHandler     *handler.ContactHandler
	StudentHandler     *handler.StudentHandler
	SettingHandler     *handler.SettingHandler
	UploadHandler      *handler.UploadHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Gatherer           prometheus.Gatherer
	Config             *config.Config
}

// crudHandler is implemented by every handler.ResourceHandler instantiation.
type crudHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// access describes who may read and who may create records of a resource.
type access struct {
	publicRead   bool
	publicCreate bool
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
	auth   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params, auth: params.AuthMiddleware}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.params.HealthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.params.Gatherer)))

	api := e.Group("/api")

	r.registerAuth(api.Group("/auth"))

	r.registerResource(api, "/programs", r.params.ProgramHandler, access{publicRead: true})
	r.registerResource(api, "/coaches", r.params.CoachHandler, access{publicRead: true})
	r.registerResource(api, "/testimonials", r.params.TestimonialHandler, access{publicRead: true, publicCreate: true})
	r.registerResource(api, "/facilities", r.params.FacilityHandler, access{publicRead: true})
	r.registerResource(api, "/gallery", r.params.GalleryHandler, access{publicRead: true})
	r.registerResource(api, "/contact", r.params.ContactHandler, access{publicCreate: true})
	r.registerResource(api, "/students", r.params.StudentHandler, access{publicCreate: true})

	settings := api.Group("/settings")
	{
		settings.GET("", r.params.SettingHandler.List)
		settings.GET("/:key", r.params.SettingHandler.Get)
		settings.PUT("/:key", r.params.SettingHandler.Set, r.adminOnly()...)
		settings.DELETE("/:key", r.params.SettingHandler.Delete, r.adminOnly()...)
	}

	uploadCfg := r.params.Config.Upload
	uploadLimit := echomiddleware.BodyLimit(
		strconv.FormatInt(uploadCfg.MaxFileSize*int64(uploadCfg.MaxFiles)+multipartOverhead, 10) + "B")

	uploads := e.Group(UploadPrefix)
	{
		uploads.POST("/image", r.params.UploadHandler.UploadImage, append(r.adminOnly(), uploadLimit)...)
		uploads.POST("/images", r.params.UploadHandler.UploadImages, append(r.adminOnly(), uploadLimit)...)
		uploads.GET("/:filename", r.params.UploadHandler.Serve)
		uploads.DELETE("/:filename", r.params.UploadHandler.Delete, r.adminOnly()...)
	}
}

func (r *router) registerAuth(authGroup *echo.Group) {
	h := r.params.AuthHandler

	authGroup.POST("/login", h.Login, middleware.NewLoginRateLimiter(r.params.Config))
	authGroup.POST("/refresh", h.Refresh)
	authGroup.GET("/profile", h.GetProfile, r.auth.Authenticate)
	authGroup.POST("/change-password", h.ChangePassword, r.auth.Authenticate)

	admins := authGroup.Group("/admins", r.auth.Authenticate, r.auth.RequireRole(entity.RoleSuperAdmin))
	{
		admins.POST("", h.CreateAdmin)
		admins.GET("", h.ListAdmins)
	}
}

// registerResource mounts the five CRUD routes. Updates and deletes always need an admin.
func (r *router) registerResource(api *echo.Group, path string, h crudHandler, acc access) {
	group := api.Group(path)

	read := r.adminOnly()
	if acc.publicRead {
		read = []echo.MiddlewareFunc{r.auth.OptionalAuthenticate}
	}
	group.GET("", h.List, read...)
	group.GET("/:id", h.Get, read...)

	create := r.adminOnly()
	if acc.publicCreate {
		// Admins submitting through the public route keep their privileges.
		create = []echo.MiddlewareFunc{r.auth.OptionalAuthenticate}
	}
	group.POST("", h.Create, create...)

	group.PUT("/:id", h.Update, r.adminOnly()...)
	group.DELETE("/:id", h.Delete, r.adminOnly()...)
}

func (r *router) adminOnly() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{r.auth.Authenticate, r.auth.RequireRole(entity.RoleAdmin)}
}
