package api

import (
	"net/http"

	"nutrisnap/internal/gateway"
	"nutrisnap/internal/monitoring"
	"nutrisnap/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the HTTP surface of the tracker: meal logging, reports, settings,
// AI analysis and the live dashboard feed.
type Server struct {
	Router *gin.Engine

	meals        *store.MealLog
	settings     *store.Settings
	testimonials *store.Testimonials
	estimator    gateway.Estimator
	metrics      *monitoring.MetricsCollector
	monitor      *monitoring.Monitor
	logger       *zap.Logger
	tokenSecret  []byte
	hub          *Hub
}

// Deps carries everything the server needs. TokenSecret may be empty, which
// disables device-token authentication (local single-user mode).
type Deps struct {
	Meals        *store.MealLog
	Settings     *store.Settings
	Testimonials *store.Testimonials
	Estimator    gateway.Estimator
	Metrics      *monitoring.MetricsCollector
	Monitor      *monitoring.Monitor
	Logger       *zap.Logger
	TokenSecret  string
}

// NewServer wires the router.
func NewServer(deps Deps) *Server {
	s := &Server{
		Router:       gin.Default(),
		meals:        deps.Meals,
		settings:     deps.Settings,
		testimonials: deps.Testimonials,
		estimator:    deps.Estimator,
		metrics:      deps.Metrics,
		monitor:      deps.Monitor,
		logger:       deps.Logger,
		tokenSecret:  []byte(deps.TokenSecret),
	}
	s.hub = newHub(deps.Logger)

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "NutriSnap API is running"})
	})
	s.Router.POST("/token", s.IssueToken)
	s.Router.GET("/ws", s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	if len(s.tokenSecret) > 0 {
		v1.Use(s.authMiddleware())
	}
	{
		// Meal log
		v1.POST("/meals", s.LogMeal)
		v1.GET("/meals", s.ListMeals)
		v1.DELETE("/meals/:id", s.DeleteMeal)

		// Dashboard and reports
		v1.GET("/summary/today", s.TodaySummary)
		v1.GET("/reports", s.Reports)
		v1.GET("/streak", s.Streak)
		v1.GET("/share", s.ShareText)

		// Settings and feedback
		v1.GET("/settings", s.GetSettings)
		v1.PUT("/settings/goals", s.UpdateGoals)
		v1.PUT("/settings/profile", s.UpdateProfile)
		v1.POST("/feedback/positive", s.PositiveFeedback)
		v1.POST("/feedback/negative", s.NegativeFeedback)

		// AI estimation
		v1.POST("/analyze/image", s.AnalyzeImage)
		v1.POST("/analyze/description", s.AnalyzeDescription)
		v1.POST("/analyze/barcode", s.AnalyzeBarcode)
		v1.POST("/suggestions", s.SuggestMeals)

		// Testimonials
		v1.GET("/testimonials", s.ListTestimonials)
		v1.POST("/testimonials", s.AddTestimonial)

		// Status
		v1.GET("/metrics", s.StatusMetrics)
	}
}
