// rental-report logs in to the bookkeeping API and shows the monthly report
// for one month in the terminal.
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(18)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepEnteringMonth
	stepLoggingIn
	stepFetchingReport
	stepShowingReport
)

type model struct {
	client       *apiClient
	step         step
	email        string
	password     string
	month        string
	token        string
	currentInput string
	message      string
	report       *monthlyReport
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type reportMsg struct{ report *monthlyReport }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(client *apiClient, month string) model {
	return model{
		client: client,
		step:   stepEnteringEmail,
		month:  month,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func loginUser(client *apiClient, email, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := client.login(email, password)
		if err != nil {
			return errMsg{fmt.Errorf("login failed: %w", err)}
		}
		return loginSuccessMsg{token: token}
	}
}

func fetchReport(client *apiClient, token, month string) tea.Cmd {
	return func() tea.Msg {
		report, err := client.monthlyReport(token, month)
		if err != nil {
			return errMsg{fmt.Errorf("report failed: %w", err)}
		}
		return reportMsg{report: report}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			return m.submit()

		default:
			if m.step == stepShowingReport {
				switch msg.String() {
				case "q":
					m.quitting = true
					return m, tea.Quit
				case "m":
					m.step = stepEnteringMonth
					m.currentInput = ""
					m.message = ""
				}
				return m, nil
			}
			if m.step <= stepEnteringMonth && msg.Type == tea.KeyRunes {
				m.currentInput += string(msg.Runes)
			}
		}

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepFetchingReport
		m.message = successStyle.Render("✓ Logged in as " + m.email)
		return m, fetchReport(m.client, m.token, m.month)

	case reportMsg:
		m.report = msg.report
		m.step = stepShowingReport

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		if m.token == "" {
			m.step = stepEnteringEmail
			m.password = ""
		} else {
			m.step = stepEnteringMonth
		}
		m.currentInput = ""
	}

	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringEmail:
		if m.currentInput != "" {
			m.email = m.currentInput
			m.currentInput = ""
			m.step = stepEnteringPassword
		}

	case stepEnteringPassword:
		if m.currentInput != "" {
			m.password = m.currentInput
			m.currentInput = ""
			if m.month == "" {
				m.step = stepEnteringMonth
				return m, nil
			}
			m.step = stepLoggingIn
			m.message = "Logging in..."
			return m, loginUser(m.client, m.email, m.password)
		}

	case stepEnteringMonth:
		if m.currentInput == "" {
			m.currentInput = time.Now().Format("2006-01")
		}
		m.month = m.currentInput
		m.currentInput = ""
		if m.token != "" {
			m.step = stepFetchingReport
			return m, fetchReport(m.client, m.token, m.month)
		}
		m.step = stepLoggingIn
		m.message = "Logging in..."
		return m, loginUser(m.client, m.email, m.password)

	case stepShowingReport:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Rental Bookkeeping Report") + "\n")

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your email:") + "\n")
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:") + "\n")
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringMonth:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Report month (YYYY-MM, empty for current):") + "\n")
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepFetchingReport:
		s.WriteString(m.message + "\n")
		s.WriteString(fmt.Sprintf("Loading report for %s...\n", m.month))

	case stepShowingReport:
		s.WriteString(renderReport(m.report))
		s.WriteString("\nPress m for another month, Enter or q to quit\n")
	}

	return s.String()
}

func renderReport(r *monthlyReport) string {
	var s strings.Builder
	row := func(label string, value float64, style lipgloss.Style) {
		s.WriteString(labelStyle.Render(label) + style.Render(formatAmount(value)) + "\n")
	}
	plain := lipgloss.NewStyle()

	s.WriteString(promptStyle.Render("Month "+r.Month) + "\n\n")
	row("Income", r.TotalIncome, plain)
	row("Expenses", r.TotalExpenses, plain)
	row("Commission (15%)", r.Commission, plain)
	if r.NetProfit < 0 {
		row("Net profit", r.NetProfit, lossStyle)
	} else {
		row("Net profit", r.NetProfit, successStyle)
	}

	if len(r.ExpensesByCategory) > 0 {
		s.WriteString("\n" + promptStyle.Render("Expenses by category") + "\n")
		categories := make([]string, 0, len(r.ExpensesByCategory))
		for c := range r.ExpensesByCategory {
			categories = append(categories, c)
		}
		slices.Sort(categories)
		for _, c := range categories {
			s.WriteString(categoryStyle.Render(labelStyle.Render(c)+formatAmount(r.ExpensesByCategory[c])) + "\n")
		}
	}
	return s.String()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func main() {
	var apiURL, month string

	flagSet := pflag.NewFlagSet("rental-report", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api", envOr("RENTAL_API_URL", "http://localhost:3536"), "base URL of the bookkeeping API")
	flagSet.StringVarP(&month, "month", "m", "", "report month as YYYY-MM (asked interactively when empty)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	p := tea.NewProgram(initialModel(newAPIClient(apiURL), month))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
