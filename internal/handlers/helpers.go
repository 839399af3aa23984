package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/logger"
	"atelier/internal/models"
	"atelier/internal/services"
	"atelier/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return userID.(string), nil
}

// parsePathID validates a UUID path parameter and returns it.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// auditActor returns the authenticated user's ID and email for audit rows.
func auditActor(c *gin.Context) (string, string) {
	return c.GetString("userID"), c.GetString("email")
}

// parseEntryFilter builds an EntryFilter from the shared ledger/report query
// parameters: kind, status, category_id, payee_id, search (payee name),
// from, to (YYYY-MM-DD).
func parseEntryFilter(c *gin.Context) (services.EntryFilter, error) {
	var filter services.EntryFilter

	if kind := c.Query("kind"); kind != "" {
		k := models.EntryKind(kind)
		if k != models.EntryKindIncome && k != models.EntryKindExpense {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
		}
		filter.Kind = &k
	}
	if status := c.Query("status"); status != "" {
		s := models.EntryStatus(status)
		if s != models.EntryStatusPending && s != models.EntryStatusPaid {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be pending or paid")
		}
		filter.Status = &s
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		if !uuid.IsValid(categoryID) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category_id")
		}
		filter.CategoryID = &categoryID
	}
	if payeeID := c.Query("payee_id"); payeeID != "" {
		if !uuid.IsValid(payeeID) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid payee_id")
		}
		filter.PayeeID = &payeeID
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be YYYY-MM-DD")
		}
		// Include the whole end day.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}

	return filter, nil
}
