package entities

// MonthlyReport aggregates one reporting month for a user.
type MonthlyReport struct {
	Month              string             `json:"month"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	Commission         float64            `json:"commission"`
	NetProfit          float64            `json:"net_profit"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}

type MonthIncome struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
}

type MonthExpenses struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
}

type MonthEnergy struct {
	Month  string  `json:"month"`
	Energy float64 `json:"energy"`
}

type PropertyIncome struct {
	PropertyID string  `json:"property_id"`
	Property   string  `json:"property"`
	Income     float64 `json:"income"`
}

// PropertySummary is the per-property view. Month is empty when the summary
// covers every month. NetProfit does not deduct commission.
type PropertySummary struct {
	PropertyID         string             `json:"property_id"`
	Month              string             `json:"month"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	NetProfit          float64            `json:"net_profit"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}
