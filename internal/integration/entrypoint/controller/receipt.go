// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerboard/backend/internal/application/usecase/receipt"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerboard/backend/internal/integration/entrypoint/middleware"
)

// ReceiptController handles receipt upload endpoints.
type ReceiptController struct {
	uploadUseCase *receipt.UploadReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(uploadUseCase *receipt.UploadReceiptUseCase) *ReceiptController {
	return &ReceiptController{
		uploadUseCase: uploadUseCase,
	}
}

// Upload handles POST /receipts requests. The file is sent as multipart form
// data under the "file" field.
func (c *ReceiptController) Upload(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Owner not resolved"})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), receipt.UploadReceiptInput{
		OwnerID:  ownerID,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrReceiptTooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Error: "Receipt file too large",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store receipt",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ReceiptResponse{URL: output.URL})
}
