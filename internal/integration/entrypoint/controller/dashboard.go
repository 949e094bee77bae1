// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the monthly summary endpoint.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	input := dashboard.GetSummaryInput{
		OwnerID: ownerID,
		Month:   ctx.Query("month"),
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var ledgerErr *domainerror.LedgerError
		if errors.As(err, &ledgerErr) && ledgerErr.Code == domainerror.ErrCodeInvalidMonth {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: ledgerErr.Message,
				Code:  string(ledgerErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
