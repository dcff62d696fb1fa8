package services

import (
	"cmp"
	"slices"

	"rental-api/entities"

	"github.com/shopspring/decimal"
)

// CommissionRate is the share of income deducted as management commission.
var CommissionRate = decimal.RequireFromString("0.15")

// MonthTotal is one bucket of a by-month grouping.
type MonthTotal struct {
	Month string
	Total float64
}

// MonthlyReport aggregates the transactions of a single month. Callers pass
// the transactions already filtered to month; other months are ignored.
func MonthlyReport(month string, transactions []entities.Transaction) entities.MonthlyReport {
	income, expenses := decimal.Zero, decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for i := range transactions {
		t := &transactions[i]
		if t.Date != month {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case entities.TransactionIncome:
			income = income.Add(amount)
		case entities.TransactionExpense:
			expenses = expenses.Add(amount)
			if t.HasCategory() {
				byCategory[*t.Category] = byCategory[*t.Category].Add(amount)
			}
		}
	}

	commission := income.Mul(CommissionRate)
	return entities.MonthlyReport{
		Month:              month,
		TotalIncome:        income.InexactFloat64(),
		TotalExpenses:      expenses.InexactFloat64(),
		Commission:         commission.InexactFloat64(),
		NetProfit:          income.Sub(expenses).Sub(commission).InexactFloat64(),
		ExpensesByCategory: floats(byCategory),
	}
}

// GroupByMonth sums the amounts of transactions accepted by keep, one bucket
// per distinct date, in ascending month order.
func GroupByMonth(transactions []entities.Transaction, keep func(*entities.Transaction) bool) []MonthTotal {
	sums := map[string]decimal.Decimal{}
	for i := range transactions {
		t := &transactions[i]
		if keep != nil && !keep(t) {
			continue
		}
		sums[t.Date] = sums[t.Date].Add(decimal.NewFromFloat(t.Amount))
	}

	totals := make([]MonthTotal, 0, len(sums))
	for month, sum := range sums {
		totals = append(totals, MonthTotal{Month: month, Total: sum.InexactFloat64()})
	}
	slices.SortFunc(totals, func(a, b MonthTotal) int {
		return entities.CompareMonthKeys(a.Month, b.Month)
	})
	return totals
}

func IsIncome(t *entities.Transaction) bool { return t.Type == entities.TransactionIncome }

func IsExpense(t *entities.Transaction) bool { return t.Type == entities.TransactionExpense }

// IsEnergyExpense matches expenses tagged exactly with the energy category.
func IsEnergyExpense(t *entities.Transaction) bool {
	return t.Type == entities.TransactionExpense && t.Category != nil && *t.Category == entities.CategoryEnergy
}

// IncomeByProperty sums income per property id. Names come from properties;
// ids with no matching property keep an empty name.
func IncomeByProperty(properties []entities.Property, transactions []entities.Transaction) []entities.PropertyIncome {
	names := make(map[string]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}

	sums := map[string]decimal.Decimal{}
	for i := range transactions {
		t := &transactions[i]
		if !IsIncome(t) {
			continue
		}
		sums[t.PropertyID] = sums[t.PropertyID].Add(decimal.NewFromFloat(t.Amount))
	}

	out := make([]entities.PropertyIncome, 0, len(sums))
	for id, sum := range sums {
		out = append(out, entities.PropertyIncome{PropertyID: id, Property: names[id], Income: sum.InexactFloat64()})
	}
	slices.SortFunc(out, func(a, b entities.PropertyIncome) int {
		return cmp.Or(cmp.Compare(a.Property, b.Property), cmp.Compare(a.PropertyID, b.PropertyID))
	})
	return out
}

// PropertySummary totals one property's transactions, optionally for a single
// month. Net profit here is income minus expenses, without commission.
func PropertySummary(propertyID, month string, transactions []entities.Transaction) entities.PropertySummary {
	income, expenses := decimal.Zero, decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for i := range transactions {
		t := &transactions[i]
		if t.PropertyID != propertyID || (month != "" && t.Date != month) {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case entities.TransactionIncome:
			income = income.Add(amount)
		case entities.TransactionExpense:
			expenses = expenses.Add(amount)
			if t.HasCategory() {
				byCategory[*t.Category] = byCategory[*t.Category].Add(amount)
			}
		}
	}

	return entities.PropertySummary{
		PropertyID:         propertyID,
		Month:              month,
		TotalIncome:        income.InexactFloat64(),
		TotalExpenses:      expenses.InexactFloat64(),
		NetProfit:          income.Sub(expenses).InexactFloat64(),
		ExpensesByCategory: floats(byCategory),
	}
}

// Months lists the distinct grouping keys, newest first.
func Months(transactions []entities.Transaction) []string {
	seen := map[string]struct{}{}
	months := []string{}
	for _, t := range transactions {
		if _, ok := seen[t.Date]; ok {
			continue
		}
		seen[t.Date] = struct{}{}
		months = append(months, t.Date)
	}
	slices.SortFunc(months, func(a, b string) int {
		return entities.CompareMonthKeys(b, a)
	})
	return months
}

func floats(sums map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(sums))
	for k, v := range sums {
		out[k] = v.InexactFloat64()
	}
	return out
}
