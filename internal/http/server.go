// README: API gateway; registers the page and API routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/http/handlers"
	"tabiplan/internal/http/middleware"
	"tabiplan/internal/maps"
	"tabiplan/internal/modules/limiter"
	"tabiplan/internal/modules/usage"
	"tabiplan/internal/service"
)

// ServerDeps carries everything the routes need. Usage, Limiter, Places, and
// Routes are optional; leave them nil when their backend is not configured.
type ServerDeps struct {
	Planner  *service.Planner
	Usage    *usage.Service
	Limiter  *limiter.Service
	Places   *maps.PlacesService
	Routes   *maps.RouteService
	ModelTag string
}

type Server struct {
	planner  *service.Planner
	usage    *usage.Service
	limiter  *limiter.Service
	places   *maps.PlacesService
	routes   *maps.RouteService
	modelTag string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:  deps.Planner,
		usage:    deps.Usage,
		limiter:  deps.Limiter,
		places:   deps.Places,
		routes:   deps.Routes,
		modelTag: deps.ModelTag,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", s.handlePage)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	planHandler := handlers.NewPlanHandler(s.planner)
	r.POST("/api/plan", middleware.RateLimit(s.limiter), planHandler.Generate)

	personaHandler := handlers.NewPersonaHandler()
	r.GET("/api/personas", personaHandler.List)

	// Handlers take interfaces; build them only from non-nil services so a
	// disabled module stays a plain nil inside the handler.
	mapsHandler := handlers.NewMapsHandler(nil, nil)
	if s.places != nil && s.routes != nil {
		mapsHandler = handlers.NewMapsHandler(s.places, s.routes)
	}
	r.GET("/api/spots", mapsHandler.Spots)
	r.GET("/api/estimate", mapsHandler.Estimate)

	usageHandler := handlers.NewUsageHandler(nil)
	if s.usage != nil {
		usageHandler = handlers.NewUsageHandler(s.usage)
	}
	r.GET("/api/usage", usageHandler.Summary)

	return r
}
