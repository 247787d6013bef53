package api

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"nutrisnap/internal/gateway"
	"nutrisnap/internal/models"
	"nutrisnap/internal/reports"

	"github.com/gin-gonic/gin"
)

// TodaySummaryResponse is the dashboard payload, also pushed over the
// websocket after every log or delete.
type TodaySummaryResponse struct {
	Date      string                   `json:"date"`
	Totals    models.NutrientProfile   `json:"totals"`
	Nutrients []reports.NutrientStatus `json:"nutrients"`
	Streak    int                      `json:"streak"`
}

func (s *Server) buildTodaySummary(now time.Time) TodaySummaryResponse {
	meals := s.meals.Meals()
	totals := reports.TodayTotals(meals, now)
	goals := s.settings.Get().DailyGoals
	return TodaySummaryResponse{
		Date:      now.Format("2006-01-02"),
		Totals:    totals,
		Nutrients: reports.Statuses(totals, goals),
		Streak:    reports.CurrentStreak(meals, now),
	}
}

// Meal log handlers

func (s *Server) LogMeal(c *gin.Context) {
	var draft models.MealDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if draft.DishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dishName is required"})
		return
	}
	if !models.ValidMealType(draft.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type: " + string(draft.MealType)})
		return
	}

	meal := s.meals.Add(draft)
	s.hub.BroadcastSummary(s.buildTodaySummary(time.Now()))
	c.JSON(http.StatusCreated, meal)
}

func (s *Server) ListMeals(c *gin.Context) {
	c.JSON(http.StatusOK, s.meals.Meals())
}

func (s *Server) DeleteMeal(c *gin.Context) {
	if !s.meals.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	s.hub.BroadcastSummary(s.buildTodaySummary(time.Now()))
	c.JSON(http.StatusOK, gin.H{"message": "Meal removed"})
}

// Dashboard and report handlers

func (s *Server) TodaySummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.buildTodaySummary(time.Now()))
}

func (s *Server) Streak(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streak": reports.CurrentStreak(s.meals.Meals(), time.Now())})
}

// reportPeriods computes the chart buckets for the requested granularity:
// a fixed trailing week for daily charts, everything since the first logged
// meal for weekly and monthly ones.
func (s *Server) reportPeriods(granularity string, now time.Time) ([]reports.AggregatedPeriod, bool) {
	meals := s.meals.Meals()

	switch granularity {
	case "daily":
		// An empty log has no chart at all; zero-filled day bars only appear
		// once something has been logged.
		if len(meals) == 0 {
			return []reports.AggregatedPeriod{}, true
		}
		return reports.AggregateRange(meals, now.AddDate(0, 0, -6), now, reports.Daily), true
	case "weekly", "monthly":
		if len(meals) == 0 {
			return []reports.AggregatedPeriod{}, true
		}
		first := meals[0].LoggedAt
		for _, m := range meals {
			if m.LoggedAt.Before(first) {
				first = m.LoggedAt
			}
		}
		g := reports.Weekly
		if granularity == "monthly" {
			g = reports.Monthly
		}
		return reports.AggregateRange(meals, first.In(now.Location()), now, g), true
	}
	return nil, false
}

func (s *Server) Reports(c *gin.Context) {
	granularity := c.DefaultQuery("granularity", "daily")
	periods, ok := s.reportPeriods(granularity, time.Now())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be daily, weekly or monthly"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"granularity": granularity, "periods": periods})
}

func (s *Server) ShareText(c *gin.Context) {
	granularity := c.DefaultQuery("granularity", "daily")
	periods, ok := s.reportPeriods(granularity, time.Now())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be daily, weekly or monthly"})
		return
	}

	titles := map[string]string{
		"daily":   "My Daily Nutrition Report",
		"weekly":  "My Weekly Nutrition Report",
		"monthly": "My Monthly Nutrition Report",
	}
	text := reports.Summary(titles[granularity], periods, s.settings.Get().DailyGoals)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Settings handlers

func (s *Server) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.Get())
}

func (s *Server) UpdateGoals(c *gin.Context) {
	var patch models.GoalsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.settings.UpdateGoals(patch))
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.settings.UpdateProfile(patch))
}

type feedbackRequest struct {
	DishName string `json:"dishName" binding:"required"`
}

func (s *Server) PositiveFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.settings.AddPositiveFeedback(req.DishName))
}

func (s *Server) NegativeFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.settings.AddNegativeFeedback(req.DishName))
}

// AI estimation handlers

type analyzeImageRequest struct {
	Photo       string `json:"photo" binding:"required"` // base64 or data URI
	MIME        string `json:"mime"`
	PortionSize string `json:"portionSize"`
}

type analyzeDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
	PortionSize string `json:"portionSize"`
}

// decodePhoto accepts either plain base64 or a data URI and returns the raw
// bytes plus the MIME type when the URI carries one.
func decodePhoto(photo, mime string) ([]byte, string, error) {
	if strings.HasPrefix(photo, "data:") {
		rest := strings.TrimPrefix(photo, "data:")
		if semi := strings.Index(rest, ";base64,"); semi >= 0 {
			mime = rest[:semi]
			photo = rest[semi+len(";base64,"):]
		}
	}
	data, err := base64.StdEncoding.DecodeString(photo)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

// estimationFailed reports a gateway failure as a retryable error. Nothing is
// committed to the meal log on this path.
func estimationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})
}

func (s *Server) AnalyzeImage(c *gin.Context) {
	var req analyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, mime, err := decodePhoto(req.Photo, req.MIME)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo encoding"})
		return
	}

	start := time.Now()
	estimate, err := s.estimator.AnalyzeImage(c.Request.Context(), gateway.ImageInput{
		Data:        data,
		MIME:        mime,
		PortionSize: req.PortionSize,
	})
	s.recordEstimate("image", start, err)
	if err != nil {
		estimationFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

func (s *Server) AnalyzeDescription(c *gin.Context) {
	var req analyzeDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	estimate, err := s.estimator.AnalyzeDescription(c.Request.Context(), gateway.DescriptionInput{
		Description: req.Description,
		PortionSize: req.PortionSize,
	})
	s.recordEstimate("description", start, err)
	if err != nil {
		estimationFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

func (s *Server) AnalyzeBarcode(c *gin.Context) {
	var req analyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, mime, err := decodePhoto(req.Photo, req.MIME)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo encoding"})
		return
	}

	start := time.Now()
	estimate, err := s.estimator.AnalyzeBarcode(c.Request.Context(), gateway.ImageInput{Data: data, MIME: mime})
	s.recordEstimate("barcode", start, err)
	if err != nil {
		estimationFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

type suggestRequest struct {
	Language string `json:"language"`
}

func (s *Server) SuggestMeals(c *gin.Context) {
	var req suggestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	settings := s.settings.Get()
	remaining := settings.DailyGoals.Calories - reports.TodayTotals(s.meals.Meals(), time.Now()).Calories
	if remaining < 0 {
		remaining = 0
	}

	start := time.Now()
	plan, err := s.estimator.SuggestMeals(c.Request.Context(), gateway.SuggestionInput{
		Language:           req.Language,
		DietaryPreference:  settings.Profile.DietaryPreference,
		Allergies:          settings.Profile.Allergies,
		Likes:              settings.Profile.Likes,
		Dislikes:           settings.Profile.Dislikes,
		RemainingCalories:  remaining,
		PositiveFeedbackOn: settings.Profile.PositiveFeedbackOn,
		NegativeFeedbackOn: settings.Profile.NegativeFeedbackOn,
	})
	s.recordEstimate("suggest", start, err)
	if err != nil {
		estimationFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) recordEstimate(kind string, start time.Time, err error) {
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordEstimate(kind, elapsed, err)
	}
	if s.monitor != nil {
		s.monitor.RecordEstimate(kind, elapsed, err)
	}
}

// Testimonial handlers

type testimonialRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
}

func (s *Server) AddTestimonial(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := s.testimonials.Add(models.Testimonial{
		Name:   req.Name,
		Avatar: req.Avatar,
		Rating: req.Rating,
		Text:   req.Text,
	})
	c.JSON(http.StatusCreated, item)
}

func (s *Server) ListTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, s.testimonials.List())
}

// StatusMetrics returns the in-process monitor counters.
func (s *Server) StatusMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
