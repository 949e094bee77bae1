// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerboard/backend/internal/application/usecase/currency"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/dto"
)

// RateController handles the blue rate endpoints.
type RateController struct {
	getRateUseCase    *currency.GetRateUseCase
	updateRateUseCase *currency.UpdateRateUseCase
}

// NewRateController creates a new rate controller instance.
func NewRateController(
	getRateUseCase *currency.GetRateUseCase,
	updateRateUseCase *currency.UpdateRateUseCase,
) *RateController {
	return &RateController{
		getRateUseCase:    getRateUseCase,
		updateRateUseCase: updateRateUseCase,
	}
}

// Get handles GET /rate requests.
func (c *RateController) Get(ctx *gin.Context) {
	output, err := c.getRateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read rate",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RateResponse{Rate: output.Rate})
}

// Update handles PUT /rate requests.
func (c *RateController) Update(ctx *gin.Context) {
	var req dto.UpdateRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.updateRateUseCase.Execute(ctx.Request.Context(), currency.UpdateRateInput{
		Rate: req.Rate,
	})
	if err != nil {
		var rateErr *domainerror.RateError
		if errors.As(err, &rateErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: rateErr.Message,
				Code:  string(rateErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update rate",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RateResponse{Rate: output.Rate})
}
