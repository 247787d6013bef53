package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff453a"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd60a"))
)

// Model defines the application state
type Model struct {
	mainMenu    list.Model
	todayView   table.Model
	mealList    list.Model
	summary     TodaySummary
	pendingMeal *Estimate
	textInput   textinput.Model
	spinner     spinner.Model
	client      *ApiClient
	loading     bool
	currentView string
	status      string
	error       string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize main menu items
	items := []list.Item{
		item{title: "Today", desc: "Totals, goal progress and streak for today"},
		item{title: "Meal Log", desc: "Browse and delete logged meals"},
		item{title: "Log a Meal", desc: "Describe a dish and log the AI estimate"},
		item{title: "Weekly Report", desc: "Shareable summary of the last weeks"},
		item{title: "Exit", desc: "Exit the application"},
	}

	// Initialize main menu
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "NutriSnap CLI"

	// Initialize today view
	columns := []table.Column{
		{Title: "Nutrient", Width: 12},
		{Title: "Current", Width: 10},
		{Title: "Goal", Width: 10},
		{Title: "Progress", Width: 10},
		{Title: "State", Width: 10},
	}
	todayTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(13),
	)

	// Initialize meal log view
	mealList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	mealList.Title = "Meal Log"

	// Initialize text input
	ti := textinput.New()
	ti.Placeholder = "Describe what you ate..."
	ti.CharLimit = 256
	ti.Width = 60

	// Initialize API client
	client := NewApiClient()

	return Model{
		mainMenu:    mainMenu,
		todayView:   todayTable,
		mealList:    mealList,
		spinner:     s,
		textInput:   ti,
		client:      client,
		currentView: "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView != "log_meal" {
				return m, tea.Quit
			}
		case "enter":
			if m.currentView == "main" {
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Today":
						m.currentView = "today"
						m.loading = true
						return m, fetchSummary(m.client)
					case "Meal Log":
						m.currentView = "meals"
						m.loading = true
						return m, fetchMeals(m.client)
					case "Log a Meal":
						m.currentView = "log_meal"
						m.pendingMeal = nil
						m.error = ""
						m.status = ""
						m.textInput.SetValue("")
						m.textInput.Focus()
						return m, nil
					case "Weekly Report":
						m.currentView = "report"
						m.loading = true
						return m, fetchReport(m.client)
					}
				}
			} else if m.currentView == "log_meal" {
				if m.pendingMeal != nil {
					// Second enter confirms the estimate
					return m, logMeal(m.client, m.pendingMeal)
				}
				description := m.textInput.Value()
				if description == "" {
					m.error = "Please describe the meal first"
					return m, nil
				}
				m.loading = true
				m.error = ""
				return m, analyzeMeal(m.client, description)
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
				m.status = ""
			}
		case "d":
			if m.currentView == "meals" {
				if selected, ok := m.mealList.SelectedItem().(mealItem); ok {
					return m, deleteMeal(m.client, selected.id)
				}
			}
		}
	case summaryMsg:
		m.loading = false
		m.summary = msg.summary
		m.todayView.SetRows(summaryRows(msg.summary))
		return m, nil
	case mealsMsg:
		m.loading = false
		m.mealList.SetItems(convertMealsToItems(msg.meals))
		return m, nil
	case estimateMsg:
		m.loading = false
		m.pendingMeal = msg.estimate
		return m, nil
	case reportMsg:
		m.loading = false
		m.status = msg.text
		return m, nil
	case errorMsg:
		m.loading = false
		m.error = msg.err
		return m, nil
	case confirmMsg:
		m.error = ""
		m.status = successStyle.Render(msg.message)
		if m.currentView == "log_meal" {
			m.pendingMeal = nil
			m.textInput.SetValue("")
			return m, nil
		}
		return m, fetchMeals(m.client)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "today":
		m.todayView, cmd = m.todayView.Update(msg)
	case "meals":
		m.mealList, cmd = m.mealList.Update(msg)
	case "log_meal":
		m.textInput, cmd = m.textInput.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "today":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Loading today's summary...")
		}
		header := titleStyle.Render("Today") + "  " +
			infoStyle.Render(fmt.Sprintf("Streak: %d days", m.summary.Streak))
		return docStyle.Render(header + "\n\n" + m.todayView.View() + "\n\nPress 'esc' to go back")
	case "meals":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Loading meal log...")
		}
		help := "\nPress 'd' to delete the selected meal, 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		if m.status != "" {
			help += m.status + "\n"
		}
		return docStyle.Render(titleStyle.Render("Meal Log") + "\n\n" + m.mealList.View() + help)
	case "log_meal":
		return docStyle.Render(logMealView(m))
	case "report":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " Building report...")
		}
		if m.error != "" {
			return docStyle.Render(errorStyle.Render(m.error) + "\n\nPress 'esc' to go back")
		}
		return docStyle.Render(titleStyle.Render("Weekly Report") + "\n\n" + m.status + "\n\nPress 'esc' to go back")
	default:
		return "Loading..."
	}
}

// logMealView renders the describe-analyze-confirm flow
func logMealView(m Model) string {
	view := titleStyle.Render("Log a Meal") + "\n\n"

	if m.loading {
		return view + m.spinner.View() + " Analyzing..."
	}

	if m.pendingMeal != nil {
		e := m.pendingMeal
		view += fmt.Sprintf("Dish: %s (confidence %.0f%%)\n", e.DishName, e.Confidence*100)
		view += fmt.Sprintf("Calories: %.0f kcal\n", e.Calories)
		view += fmt.Sprintf("Protein: %.1fg  Carbs: %.1fg  Fats: %.1fg\n\n", e.Protein, e.Carbs, e.Fats)
		view += "Press 'enter' to log this meal, 'esc' to discard\n"
	} else {
		view += m.textInput.View() + "\n\nPress 'enter' to analyze, 'esc' to go back\n"
	}

	if m.error != "" {
		view += errorStyle.Render(m.error) + "\n"
	}
	if m.status != "" {
		view += m.status + "\n"
	}
	return view
}

// Custom message types for the tea.Model
type summaryMsg struct {
	summary TodaySummary
}

type mealsMsg struct {
	meals []Meal
}

type estimateMsg struct {
	estimate *Estimate
}

type reportMsg struct {
	text string
}

type errorMsg struct {
	err string
}

type confirmMsg struct {
	message string
}

// mealItem represents a meal in the list
type mealItem struct {
	id    string
	title string
	desc  string
}

func (i mealItem) Title() string       { return i.title }
func (i mealItem) Description() string { return i.desc }
func (i mealItem) FilterValue() string { return i.title }

// fetchSummary retrieves today's summary from the API
func fetchSummary(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.GetTodaySummary()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching summary: %v", err)}
		}
		return summaryMsg{summary: *summary}
	}
}

// fetchMeals retrieves the meal log from the API
func fetchMeals(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		meals, err := client.GetMeals()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching meals: %v", err)}
		}
		return mealsMsg{meals: meals}
	}
}

// analyzeMeal sends a dish description for AI estimation
func analyzeMeal(client *ApiClient, description string) tea.Cmd {
	return func() tea.Msg {
		estimate, err := client.AnalyzeDescription(description)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error analyzing meal: %v", err)}
		}
		return estimateMsg{estimate: estimate}
	}
}

// logMeal confirms a pending estimate into the meal log
func logMeal(client *ApiClient, estimate *Estimate) tea.Cmd {
	return func() tea.Msg {
		meal, err := client.LogMeal(estimate, "")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error logging meal: %v", err)}
		}
		return confirmMsg{message: fmt.Sprintf("Logged %s (%.0f kcal)", meal.DishName, meal.Calories)}
	}
}

// deleteMeal removes a meal from the log
func deleteMeal(client *ApiClient, id string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteMeal(id); err != nil {
			return errorMsg{err: fmt.Sprintf("Error deleting meal: %v", err)}
		}
		return confirmMsg{message: "Meal deleted"}
	}
}

// fetchReport retrieves the weekly share text
func fetchReport(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		text, err := client.GetShareText("weekly")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error building report: %v", err)}
		}
		return reportMsg{text: text}
	}
}

// summaryRows converts nutrient statuses to table rows
func summaryRows(summary TodaySummary) []table.Row {
	rows := make([]table.Row, len(summary.Nutrients))
	for i, n := range summary.Nutrients {
		state := n.State
		switch state {
		case "over":
			state = overStyle.Render(state)
		case "warning":
			state = warningStyle.Render(state)
		}
		rows[i] = table.Row{
			n.Name,
			fmt.Sprintf("%.0f %s", n.Current, n.Unit),
			fmt.Sprintf("%.0f %s", n.Goal, n.Unit),
			fmt.Sprintf("%.0f%%", n.Ratio*100),
			state,
		}
	}
	return rows
}

// convertMealsToItems converts API meals to list items
func convertMealsToItems(meals []Meal) []list.Item {
	items := make([]list.Item, len(meals))
	for i, meal := range meals {
		title := meal.DishName
		if meal.MealType != "" {
			title = fmt.Sprintf("%s (%s)", meal.DishName, meal.MealType)
		}
		items[i] = mealItem{
			id:    meal.ID,
			title: title,
			desc: fmt.Sprintf("%.0f kcal - P %.0fg / C %.0fg / F %.0fg - %s",
				meal.Calories, meal.Protein, meal.Carbs, meal.Fats,
				meal.LoggedAt.Format("Mon 15:04")),
		}
	}
	return items
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
