// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/integration/entrypoint/dto"
)

// OwnerIDHeader is the request header carrying the owner identity. There is
// no authentication layer; callers are trusted and the header exists so a
// single deployment can hold ledgers for more than one owner.
const OwnerIDHeader = "X-Owner-ID"

// ownerIDKey is the Gin context key for the resolved owner ID.
const ownerIDKey = "owner_id"

// Identity resolves the owner for each request. A missing header falls back
// to the configured default owner; a malformed header is rejected.
func Identity(defaultOwnerID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := defaultOwnerID

		if header := c.GetHeader(OwnerIDHeader); header != "" {
			parsed, err := uuid.Parse(header)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid " + OwnerIDHeader + " header",
				})
				c.Abort()
				return
			}
			ownerID = parsed
		}

		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

// GetOwnerIDFromContext extracts the resolved owner ID from the Gin context.
func GetOwnerIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, exists := c.Get(ownerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := ownerID.(uuid.UUID)
	return id, ok
}
