package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the NutriSnap API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("NUTRISNAP_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		BaseURL: baseURL,
		Token:   os.Getenv("NUTRISNAP_TOKEN"),
		UseMock: false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *ApiClient) do(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(data))
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Nutrients mirrors the server's nutrient profile
type Nutrients struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Fiber     float64 `json:"fiber"`
	Sodium    float64 `json:"sodium"`
	Sugar     float64 `json:"sugar"`
	Potassium float64 `json:"potassium"`
	VitaminC  float64 `json:"vitaminC"`
	Calcium   float64 `json:"calcium"`
	Iron      float64 `json:"iron"`
}

// Meal represents a logged meal
type Meal struct {
	Nutrients
	ID          string    `json:"id"`
	DishName    string    `json:"dishName"`
	Ingredients []string  `json:"ingredients,omitempty"`
	MealType    string    `json:"mealType,omitempty"`
	LoggedAt    time.Time `json:"loggedAt"`
}

// NutrientStatus is one row of the today-summary progress table
type NutrientStatus struct {
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
	Ratio   float64 `json:"ratio"`
	State   string  `json:"state"`
}

// TodaySummary is the dashboard payload
type TodaySummary struct {
	Date      string           `json:"date"`
	Totals    Nutrients        `json:"totals"`
	Nutrients []NutrientStatus `json:"nutrients"`
	Streak    int              `json:"streak"`
}

// Estimate is the AI analysis of a described dish
type Estimate struct {
	Nutrients
	DishName    string   `json:"dishName"`
	Confidence  float64  `json:"confidence"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// GetTodaySummary retrieves the current day's totals, progress and streak
func (c *ApiClient) GetTodaySummary() (*TodaySummary, error) {
	if c.UseMock {
		return c.mockSummary(), nil
	}

	var summary TodaySummary
	if err := c.do("GET", "/api/v1/summary/today", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMeals retrieves the full meal log, newest first
func (c *ApiClient) GetMeals() ([]Meal, error) {
	if c.UseMock {
		return c.mockMeals(), nil
	}

	var meals []Meal
	if err := c.do("GET", "/api/v1/meals", nil, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// AnalyzeDescription asks the server to estimate nutrition for a dish description
func (c *ApiClient) AnalyzeDescription(description string) (*Estimate, error) {
	if c.UseMock {
		return &Estimate{
			Nutrients: Nutrients{Calories: 450, Protein: 30, Carbs: 40, Fats: 18},
			DishName:  description, Confidence: 0.8,
		}, nil
	}

	var estimate Estimate
	payload := map[string]string{"description": description}
	if err := c.do("POST", "/api/v1/analyze/description", payload, &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// LogMeal appends an estimated meal to the log
func (c *ApiClient) LogMeal(estimate *Estimate, mealType string) (*Meal, error) {
	if c.UseMock {
		return &Meal{
			Nutrients: estimate.Nutrients,
			ID:        fmt.Sprintf("mock-%d", time.Now().Unix()),
			DishName:  estimate.DishName,
			MealType:  mealType,
			LoggedAt:  time.Now(),
		}, nil
	}

	payload := struct {
		Estimate
		MealType string `json:"mealType,omitempty"`
	}{Estimate: *estimate, MealType: mealType}

	var meal Meal
	if err := c.do("POST", "/api/v1/meals", payload, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal from the log by ID
func (c *ApiClient) DeleteMeal(id string) error {
	if c.UseMock {
		return nil
	}
	return c.do("DELETE", "/api/v1/meals/"+id, nil, nil)
}

// GetShareText retrieves the shareable report text for a granularity
func (c *ApiClient) GetShareText(granularity string) (string, error) {
	if c.UseMock {
		return "NutriSnap Report (mock)", nil
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := c.do("GET", "/api/v1/share?granularity="+granularity, nil, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// Mock data generators
func (c *ApiClient) mockSummary() *TodaySummary {
	return &TodaySummary{
		Date:   time.Now().Format("2006-01-02"),
		Totals: Nutrients{Calories: 1250, Protein: 82, Carbs: 130, Fats: 45},
		Nutrients: []NutrientStatus{
			{Name: "Calories", Unit: "kcal", Current: 1250, Goal: 2000, Ratio: 0.625, State: "on_track"},
			{Name: "Protein", Unit: "g", Current: 82, Goal: 120, Ratio: 0.683, State: "on_track"},
			{Name: "Carbs", Unit: "g", Current: 130, Goal: 250, Ratio: 0.52, State: "on_track"},
			{Name: "Fats", Unit: "g", Current: 45, Goal: 70, Ratio: 0.643, State: "on_track"},
		},
		Streak: 3,
	}
}

func (c *ApiClient) mockMeals() []Meal {
	return []Meal{
		{
			Nutrients: Nutrients{Calories: 420, Protein: 24, Carbs: 45, Fats: 16},
			ID:        "mock-1", DishName: "Oatmeal with Berries", MealType: "breakfast",
			LoggedAt: time.Now().Add(-5 * time.Hour),
		},
		{
			Nutrients: Nutrients{Calories: 830, Protein: 58, Carbs: 85, Fats: 29},
			ID:        "mock-2", DishName: "Chicken Burrito Bowl", MealType: "lunch",
			LoggedAt: time.Now().Add(-1 * time.Hour),
		},
	}
}
