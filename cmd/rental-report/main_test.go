package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "right" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok","user":{"id":"u1"}}`))
	})
	mux.HandleFunc("/api/reports/monthly", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(monthlyReport{
			Month:              r.URL.Query().Get("month"),
			TotalIncome:        2500,
			TotalExpenses:      150,
			Commission:         375,
			NetProfit:          1975,
			ExpensesByCategory: map[string]float64{"Limpeza": 150},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginAndReport(t *testing.T) {
	client := newAPIClient(fakeAPI(t).URL + "/")

	if _, err := client.login("ana@example.com", "wrong"); err == nil || !strings.Contains(err.Error(), "Invalid credentials (401)") {
		t.Fatalf("login with wrong password err = %v", err)
	}

	token, err := client.login("ana@example.com", "right")
	if err != nil || token != "tok" {
		t.Fatalf("login = %q, %v", token, err)
	}
	report, err := client.monthlyReport(token, "2025-01")
	if err != nil {
		t.Fatalf("monthlyReport: %v", err)
	}
	if report.Month != "2025-01" || report.NetProfit != 1975 || report.ExpensesByCategory["Limpeza"] != 150 {
		t.Fatalf("report = %+v", report)
	}
}

func typeText(t *testing.T, m model, text string) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(model)
}

func press(t *testing.T, m model, key tea.KeyType) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(model), cmd
}

func TestModelWalksThroughLoginToReport(t *testing.T) {
	m := initialModel(newAPIClient(fakeAPI(t).URL), "2025-01")

	m = typeText(t, m, "ana@example.com")
	m, _ = press(t, m, tea.KeyEnter)
	if m.step != stepEnteringPassword || m.email != "ana@example.com" {
		t.Fatalf("after email: step=%v email=%q", m.step, m.email)
	}
	if !strings.Contains(m.View(), "password") {
		t.Fatalf("password prompt missing: %q", m.View())
	}

	m = typeText(t, m, "right")
	m, cmd := press(t, m, tea.KeyEnter)
	if m.step != stepLoggingIn || cmd == nil {
		t.Fatalf("after password: step=%v cmd=%v", m.step, cmd)
	}

	next, cmd := m.Update(cmd())
	m = next.(model)
	if m.step != stepFetchingReport || m.token != "tok" || cmd == nil {
		t.Fatalf("after login: step=%v token=%q", m.step, m.token)
	}

	next, _ = m.Update(cmd())
	m = next.(model)
	if m.step != stepShowingReport {
		t.Fatalf("after report: step=%v message=%q", m.step, m.message)
	}
	view := m.View()
	for _, want := range []string{"2025-01", "2500.00", "375.00", "1975.00", "Limpeza"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelReturnsToEmailOnLoginFailure(t *testing.T) {
	m := initialModel(newAPIClient(fakeAPI(t).URL), "2025-01")
	m = typeText(t, m, "ana@example.com")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "wrong")
	m, cmd := press(t, m, tea.KeyEnter)

	next, _ := m.Update(cmd())
	m = next.(model)
	if m.step != stepEnteringEmail || m.password != "" {
		t.Fatalf("after failed login: step=%v password=%q", m.step, m.password)
	}
	if !strings.Contains(m.View(), "login failed") {
		t.Fatalf("error not shown: %q", m.View())
	}
}

func TestModelAsksForMonthWhenNotPreset(t *testing.T) {
	m := initialModel(newAPIClient("http://unused"), "")
	m = typeText(t, m, "ana@example.com")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "pw")
	m, cmd := press(t, m, tea.KeyEnter)
	if m.step != stepEnteringMonth || cmd != nil {
		t.Fatalf("step=%v cmd=%v, want month prompt", m.step, cmd)
	}

	m = typeText(t, m, "2024-12")
	m, cmd = press(t, m, tea.KeyEnter)
	if m.month != "2024-12" || m.step != stepLoggingIn || cmd == nil {
		t.Fatalf("step=%v month=%q", m.step, m.month)
	}
}
