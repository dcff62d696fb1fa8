package httpHandler

import (
	"net/http"

	"rental-api/usecases"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	useCase *usecases.PropertyUseCase
	reports *usecases.ReportUseCase
}

func NewPropertyHandler(useCase *usecases.PropertyUseCase, reports *usecases.ReportUseCase) *PropertyHandler {
	return &PropertyHandler{useCase: useCase, reports: reports}
}

type PropertyRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	ImageURL *string `json:"image_url"`
}

func (r PropertyRequest) input() usecases.PropertyInput {
	return usecases.PropertyInput{Name: r.Name, Type: r.Type, ImageURL: r.ImageURL}
}

// CreateProperty handles POST /api/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	prop, err := h.useCase.Create(c.Request.Context(), CurrentUserID(c), req.input())
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}
	c.JSON(http.StatusOK, prop)
}

// GetProperties handles GET /api/properties
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	props, err := h.useCase.List(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}
	c.JSON(http.StatusOK, props)
}

// GetProperty handles GET /api/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	prop, err := h.useCase.Get(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}
	c.JSON(http.StatusOK, prop)
}

// UpdateProperty handles PUT /api/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	prop, err := h.useCase.Update(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}
	c.JSON(http.StatusOK, prop)
}

// DeleteProperty handles DELETE /api/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Property not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// GetPropertySummary handles GET /api/properties/:id/summary?month=
func (h *PropertyHandler) GetPropertySummary(c *gin.Context) {
	summary, err := h.reports.PropertySummary(c.Request.Context(), CurrentUserID(c), c.Param("id"), c.Query("month"))
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}
