package httpHandler

import (
	"net/http"

	"rental-api/usecases"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	useCase *usecases.ReportUseCase
}

func NewReportHandler(useCase *usecases.ReportUseCase) *ReportHandler {
	return &ReportHandler{useCase: useCase}
}

// monthParam reads the month query parameter. An explicit empty value is
// accepted and matches no transactions.
func monthParam(c *gin.Context) (string, bool) {
	month, ok := c.GetQuery("month")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "month query parameter is required"})
	}
	return month, ok
}

// GetMonthlyReport handles GET /api/reports/monthly?month=
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}
	report, err := h.useCase.Monthly(c.Request.Context(), CurrentUserID(c), month)
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetIncomeByMonth handles GET /api/reports/income-by-month
func (h *ReportHandler) GetIncomeByMonth(c *gin.Context) {
	rows, err := h.useCase.IncomeByMonth(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetExpensesByMonth handles GET /api/reports/expenses-by-month
func (h *ReportHandler) GetExpensesByMonth(c *gin.Context) {
	rows, err := h.useCase.ExpensesByMonth(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetEnergyComparison handles GET /api/reports/energy-comparison
func (h *ReportHandler) GetEnergyComparison(c *gin.Context) {
	rows, err := h.useCase.EnergyComparison(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetIncomeByProperty handles GET /api/reports/income-by-property?month=
func (h *ReportHandler) GetIncomeByProperty(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}
	rows, err := h.useCase.IncomeByProperty(c.Request.Context(), CurrentUserID(c), month)
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetMonths handles GET /api/reports/months
func (h *ReportHandler) GetMonths(c *gin.Context) {
	months, err := h.useCase.Months(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, months)
}
