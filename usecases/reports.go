package usecases

import (
	"context"

	"rental-api/entities"
	"rental-api/repositories"
	"rental-api/services"
)

// ReportUseCase loads the owner's ledger and hands it to the aggregations in
// services. Reports read every matching transaction; nothing is cached.
type ReportUseCase struct {
	transactions repositories.TransactionRepository
	properties   repositories.PropertyRepository
}

func NewReportUseCase(transactions repositories.TransactionRepository, properties repositories.PropertyRepository) *ReportUseCase {
	return &ReportUseCase{transactions: transactions, properties: properties}
}

// Monthly reports on transactions dated exactly month. An empty month matches
// nothing and yields a zero report.
func (uc *ReportUseCase) Monthly(ctx context.Context, userID, month string) (entities.MonthlyReport, error) {
	if month == "" {
		return services.MonthlyReport(month, nil), nil
	}
	txs, err := uc.transactions.Find(ctx, userID, repositories.TransactionFilter{Month: month})
	if err != nil {
		return entities.MonthlyReport{}, err
	}
	return services.MonthlyReport(month, txs), nil
}

func (uc *ReportUseCase) IncomeByMonth(ctx context.Context, userID string) ([]entities.MonthIncome, error) {
	totals, err := uc.byMonth(ctx, userID, repositories.TransactionFilter{Type: entities.TransactionIncome}, services.IsIncome)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MonthIncome, len(totals))
	for i, t := range totals {
		out[i] = entities.MonthIncome{Month: t.Month, Income: t.Total}
	}
	return out, nil
}

func (uc *ReportUseCase) ExpensesByMonth(ctx context.Context, userID string) ([]entities.MonthExpenses, error) {
	totals, err := uc.byMonth(ctx, userID, repositories.TransactionFilter{Type: entities.TransactionExpense}, services.IsExpense)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MonthExpenses, len(totals))
	for i, t := range totals {
		out[i] = entities.MonthExpenses{Month: t.Month, Expenses: t.Total}
	}
	return out, nil
}

func (uc *ReportUseCase) EnergyComparison(ctx context.Context, userID string) ([]entities.MonthEnergy, error) {
	filter := repositories.TransactionFilter{Type: entities.TransactionExpense, Category: entities.CategoryEnergy}
	totals, err := uc.byMonth(ctx, userID, filter, services.IsEnergyExpense)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MonthEnergy, len(totals))
	for i, t := range totals {
		out[i] = entities.MonthEnergy{Month: t.Month, Energy: t.Total}
	}
	return out, nil
}

func (uc *ReportUseCase) IncomeByProperty(ctx context.Context, userID, month string) ([]entities.PropertyIncome, error) {
	if month == "" {
		return []entities.PropertyIncome{}, nil
	}
	txs, err := uc.transactions.Find(ctx, userID, repositories.TransactionFilter{Month: month, Type: entities.TransactionIncome})
	if err != nil {
		return nil, err
	}
	props, err := uc.properties.List(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return services.IncomeByProperty(props, txs), nil
}

// PropertySummary fails with entities.ErrNotFound unless userID owns the property.
func (uc *ReportUseCase) PropertySummary(ctx context.Context, userID, propertyID, month string) (entities.PropertySummary, error) {
	if _, err := uc.properties.Get(ctx, userID, propertyID); err != nil {
		return entities.PropertySummary{}, err
	}
	txs, err := uc.transactions.Find(ctx, userID, repositories.TransactionFilter{PropertyID: propertyID, Month: month})
	if err != nil {
		return entities.PropertySummary{}, err
	}
	return services.PropertySummary(propertyID, month, txs), nil
}

func (uc *ReportUseCase) Months(ctx context.Context, userID string) ([]string, error) {
	txs, err := uc.transactions.Find(ctx, userID, repositories.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return services.Months(txs), nil
}

func (uc *ReportUseCase) byMonth(ctx context.Context, userID string, filter repositories.TransactionFilter, keep func(*entities.Transaction) bool) ([]services.MonthTotal, error) {
	txs, err := uc.transactions.Find(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return services.GroupByMonth(txs, keep), nil
}
