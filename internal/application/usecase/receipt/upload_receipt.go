// Package receipt contains the receipt attachment use case.
package receipt

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/application/adapter"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// MaxReceiptSizeBytes caps uploaded receipt files at 10 MB.
const MaxReceiptSizeBytes = 10 << 20

// UploadReceiptInput represents the input for a receipt upload.
type UploadReceiptInput struct {
	OwnerID  uuid.UUID
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadReceiptOutput carries the stored file's public URL.
type UploadReceiptOutput struct {
	URL string
}

// UploadReceiptUseCase stores a receipt file and returns its URL. The URL is
// then attached to an expense through the regular item update flow.
type UploadReceiptUseCase struct {
	storage adapter.ReceiptStorage
}

// NewUploadReceiptUseCase creates a new UploadReceiptUseCase instance.
func NewUploadReceiptUseCase(storage adapter.ReceiptStorage) *UploadReceiptUseCase {
	return &UploadReceiptUseCase{
		storage: storage,
	}
}

// Execute performs the upload.
func (uc *UploadReceiptUseCase) Execute(ctx context.Context, input UploadReceiptInput) (*UploadReceiptOutput, error) {
	if input.Size > MaxReceiptSizeBytes {
		return nil, domainerror.ErrReceiptTooLarge
	}

	url, err := uc.storage.Save(ctx, input.Filename, input.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrReceiptUploadFailed, err)
	}

	return &UploadReceiptOutput{URL: url}, nil
}
