package httpHandler

import (
	"net/http"

	"rental-api/usecases"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	useCase *usecases.TransactionUseCase
}

func NewTransactionHandler(useCase *usecases.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{useCase: useCase}
}

// TransactionRequest mirrors the stored fields. Amount is a pointer so a
// missing amount is rejected while an explicit 0 is accepted.
type TransactionRequest struct {
	PropertyID  string   `json:"property_id" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount" binding:"required"`
	Description *string  `json:"description"`
	Date        string   `json:"date" binding:"required"`
}

func (r TransactionRequest) input() usecases.TransactionInput {
	return usecases.TransactionInput{
		PropertyID:  r.PropertyID,
		Type:        r.Type,
		Category:    r.Category,
		Amount:      *r.Amount,
		Description: r.Description,
		Date:        r.Date,
	}
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tx, err := h.useCase.Create(c.Request.Context(), CurrentUserID(c), req.input())
	if err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, tx)
}

// GetTransactions handles GET /api/transactions?month=
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	txs, err := h.useCase.List(c.Request.Context(), CurrentUserID(c), c.Query("month"))
	if err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, txs)
}

// UpdateTransaction handles PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tx, err := h.useCase.Update(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
