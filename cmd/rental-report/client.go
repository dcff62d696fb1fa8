package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type monthlyReport struct {
	Month              string             `json:"month"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	Commission         float64            `json:"commission"`
	NetProfit          float64            `json:"net_profit"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// login returns the bearer token for the given credentials.
func (c *apiClient) login(email, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response without token")
	}
	return result.Token, nil
}

func (c *apiClient) monthlyReport(token, month string) (*monthlyReport, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/reports/monthly?month="+url.QueryEscape(month), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var report monthlyReport
	if err := c.do(req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *apiClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Detail == "" {
			body.Detail = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s (%d)", body.Detail, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
