// Package receipt contains the receipt attachment use case.
package receipt

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// fakeStorage records the last save and can be forced to fail.
type fakeStorage struct {
	savedName string
	savedData string
	failWith  error
}

func (s *fakeStorage) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.savedName = filename
	s.savedData = string(data)
	return "http://localhost:8080/receipts/stored.pdf", nil
}

func TestUploadReceipt(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("stores the file and returns its URL", func(t *testing.T) {
		store := &fakeStorage{}
		uc := NewUploadReceiptUseCase(store)

		out, err := uc.Execute(ctx, UploadReceiptInput{
			OwnerID:  ownerID,
			Filename: "invoice.pdf",
			Size:     13,
			Content:  strings.NewReader("receipt bytes"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.URL != "http://localhost:8080/receipts/stored.pdf" {
			t.Errorf("unexpected url %q", out.URL)
		}
		if store.savedName != "invoice.pdf" || store.savedData != "receipt bytes" {
			t.Errorf("unexpected save %q / %q", store.savedName, store.savedData)
		}
	})

	t.Run("oversized files are rejected before any write", func(t *testing.T) {
		store := &fakeStorage{}
		uc := NewUploadReceiptUseCase(store)

		_, err := uc.Execute(ctx, UploadReceiptInput{
			OwnerID:  ownerID,
			Filename: "huge.pdf",
			Size:     MaxReceiptSizeBytes + 1,
			Content:  strings.NewReader("x"),
		})
		if !errors.Is(err, domainerror.ErrReceiptTooLarge) {
			t.Fatalf("expected ErrReceiptTooLarge, got %v", err)
		}
		if store.savedName != "" {
			t.Error("expected no save for an oversized file")
		}
	})

	t.Run("a file at the limit is accepted", func(t *testing.T) {
		store := &fakeStorage{}
		uc := NewUploadReceiptUseCase(store)

		_, err := uc.Execute(ctx, UploadReceiptInput{
			OwnerID:  ownerID,
			Filename: "exact.pdf",
			Size:     MaxReceiptSizeBytes,
			Content:  strings.NewReader("x"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage failures surface as upload errors", func(t *testing.T) {
		store := &fakeStorage{failWith: errors.New("disk full")}
		uc := NewUploadReceiptUseCase(store)

		_, err := uc.Execute(ctx, UploadReceiptInput{
			OwnerID:  ownerID,
			Filename: "invoice.pdf",
			Size:     1,
			Content:  strings.NewReader("x"),
		})
		if !errors.Is(err, domainerror.ErrReceiptUploadFailed) {
			t.Fatalf("expected ErrReceiptUploadFailed, got %v", err)
		}
	})
}
