// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/application/usecase/ledger"
	"github.com/ledgerboard/backend/internal/domain/entity"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles the unified ledger endpoints.
type LedgerController struct {
	getItemsUseCase   *ledger.GetItemsUseCase
	insertUseCase     *ledger.InsertItemUseCase
	updateUseCase     *ledger.UpdateItemUseCase
	toggleUseCase     *ledger.TogglePaidUseCase
	addPaymentUseCase *ledger.AddPaymentUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	getItemsUseCase *ledger.GetItemsUseCase,
	insertUseCase *ledger.InsertItemUseCase,
	updateUseCase *ledger.UpdateItemUseCase,
	toggleUseCase *ledger.TogglePaidUseCase,
	addPaymentUseCase *ledger.AddPaymentUseCase,
) *LedgerController {
	return &LedgerController{
		getItemsUseCase:   getItemsUseCase,
		insertUseCase:     insertUseCase,
		updateUseCase:     updateUseCase,
		toggleUseCase:     toggleUseCase,
		addPaymentUseCase: addPaymentUseCase,
	}
}

// GetItems handles GET /ledger/items requests.
func (c *LedgerController) GetItems(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	input := ledger.GetItemsInput{
		OwnerID: ownerID,
		Month:   ctx.Query("month"),
		Filter: ledger.Filter{
			Status:        ctx.Query("status"),
			Type:          ctx.Query("type"),
			Category:      ctx.Query("category"),
			PaymentMethod: ctx.Query("payment_method"),
		},
		Sort: ledger.SortKey(ctx.Query("sort")),
	}

	output, err := c.getItemsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerItemsResponse(output))
}

// InsertItem handles POST /ledger/items requests.
func (c *LedgerController) InsertItem(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	var req dto.InsertItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := dto.ParseDate(req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_date format, expected YYYY-MM-DD"})
			return
		}
		dueDate = &parsed
	}

	input := ledger.InsertItemInput{
		OwnerID:       ownerID,
		Type:          entity.ItemType(req.Type),
		Name:          req.Name,
		Amount:        req.Amount,
		Currency:      entity.Currency(req.Currency),
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		DueDate:       dueDate,
		IsRecurring:   req.IsRecurring,
		Probability:   entity.IncomeProbability(req.Probability),
		Month:         ctx.Query("month"),
	}

	output, err := c.insertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InsertItemResponse{
		ID:    output.ID.String(),
		Items: dto.ToUnifiedItemResponses(output.Items),
	})
}

// UpdateItem handles PATCH /ledger/items/:type/:id requests.
func (c *LedgerController) UpdateItem(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	itemType, itemID, ok := c.parseItemPath(ctx)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := ledger.UpdateItemInput{
		OwnerID:       ownerID,
		ID:            itemID,
		Type:          itemType,
		Name:          req.Name,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		IsRecurring:   req.IsRecurring,
		IsActive:      req.IsActive,
		ReceiptURL:    req.ReceiptURL,
		Month:         ctx.Query("month"),
	}

	if req.Currency != nil {
		cur := entity.Currency(*req.Currency)
		input.Currency = &cur
	}
	if req.Probability != nil {
		prob := entity.IncomeProbability(*req.Probability)
		input.Probability = &prob
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			input.ClearDueDate = true
		} else {
			parsed, err := dto.ParseDate(*req.DueDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_date format, expected YYYY-MM-DD"})
				return
			}
			input.DueDate = &parsed
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateItemResponse{
		Items: dto.ToUnifiedItemResponses(output.Items),
	})
}

// TogglePaid handles POST /ledger/items/:type/:id/toggle requests.
func (c *LedgerController) TogglePaid(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	itemType, itemID, ok := c.parseItemPath(ctx)
	if !ok {
		return
	}

	input := ledger.TogglePaidInput{
		OwnerID: ownerID,
		ID:      itemID,
		Type:    itemType,
		Month:   ctx.Query("month"),
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TogglePaidResponse{
		Paid:  output.Paid,
		Items: dto.ToUnifiedItemResponses(output.Items),
	})
}

// AddPayment handles POST /ledger/items/:type/:id/payments requests.
func (c *LedgerController) AddPayment(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	itemType, itemID, ok := c.parseItemPath(ctx)
	if !ok {
		return
	}

	var req dto.AddPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		parsed, err := dto.ParseDate(req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment_date format, expected YYYY-MM-DD"})
			return
		}
		paymentDate = parsed
	}

	input := ledger.AddPaymentInput{
		OwnerID:       ownerID,
		ItemID:        itemID,
		ItemType:      itemType,
		Amount:        req.Amount,
		Currency:      entity.Currency(req.Currency),
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Month:         ctx.Query("month"),
	}

	output, err := c.addPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddPaymentResponse{
		Payment:   dto.ToPaymentResponse(output.Payment),
		TotalPaid: output.Summary.TotalPaid,
		Remaining: output.Summary.Remaining,
		Progress:  output.Summary.Progress,
		Completed: output.Completed,
		Items:     dto.ToUnifiedItemResponses(output.Items),
	})
}

// parseItemPath extracts and validates the item type and ID path parameters.
func (c *LedgerController) parseItemPath(ctx *gin.Context) (entity.ItemType, uuid.UUID, bool) {
	itemType := entity.ItemType(ctx.Param("type"))
	switch itemType {
	case entity.ItemTypeExpense, entity.ItemTypeDebt, entity.ItemTypeIncome:
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item type",
			Code:  string(domainerror.ErrCodeInvalidItemType),
		})
		return "", uuid.Nil, false
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid item ID format"})
		return "", uuid.Nil, false
	}

	return itemType, itemID, true
}

// handleLedgerError maps ledger and payment errors to HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		statusCode := http.StatusInternalServerError
		if paymentErr.Code == domainerror.ErrCodeInvalidPaymentAmount {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrItemNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Item not found",
			Code:  string(domainerror.ErrCodeItemNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeItemPartiallyPaid:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidItemType,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeMissingItemFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
