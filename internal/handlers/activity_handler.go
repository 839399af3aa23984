package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/services"
)

// ActivityHandler handles agenda activity requests
type ActivityHandler struct {
	activityService services.ActivityServicer
	auditService    services.AuditServicer
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService services.ActivityServicer, auditService services.AuditServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, auditService: auditService}
}

// ActivityRequest represents the request payload for creating or updating an activity
type ActivityRequest struct {
	Responsible string     `json:"responsible" binding:"required,max=255"`
	Description string     `json:"description" binding:"required,max=2000"`
	ClientName  string     `json:"client_name" binding:"max=255"`
	RequestedAt *time.Time `json:"requested_at"`
	PerformedAt *time.Time `json:"performed_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	Status      string     `json:"status" binding:"max=50"`
	Attachment  string     `json:"attachment" binding:"max=500"`
}

func (r *ActivityRequest) toModel() *models.Activity {
	return &models.Activity{
		Responsible: r.Responsible,
		Description: r.Description,
		ClientName:  r.ClientName,
		RequestedAt: r.RequestedAt,
		PerformedAt: r.PerformedAt,
		DeliveredAt: r.DeliveredAt,
		Status:      r.Status,
		Attachment:  r.Attachment,
	}
}

// CreateActivity handles the creation of a new activity
// @Summary     Create an activity
// @Description Add a new agenda activity
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ActivityRequest true "Activity details"
// @Success     201 {object} models.Activity "Activity created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	activity, err := h.activityService.CreateActivity(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "create", "activity", activity.ID, map[string]any{"responsible": activity.Responsible})

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

// ListActivities handles listing activities
// @Summary     List activities
// @Description List agenda activities, most recently requested first
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Activity] "Paginated activities"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.activityService.ListActivities(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetActivity handles retrieving a single activity
// @Summary     Get activity by ID
// @Description Get an agenda activity by ID
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Activity ID"
// @Success     200 {object} models.Activity "Activity details"
// @Failure     400 {object} ErrorResponse "Invalid activity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Router      /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	activity, err := h.activityService.GetActivityByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// UpdateActivity handles updating an activity
// @Summary     Update activity
// @Description Update an existing agenda activity
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Activity ID"
// @Param       request body ActivityRequest true "Updated activity details"
// @Success     200 {object} models.Activity "Updated activity"
// @Failure     400 {object} ErrorResponse "Invalid input or activity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Router      /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	activity, err := h.activityService.UpdateActivity(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "update", "activity", activity.ID, nil)

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// DeleteActivity handles deleting an activity
// @Summary     Delete activity
// @Description Delete an agenda activity by ID
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Activity ID"
// @Success     200 {object} MessageResponse "Activity deleted"
// @Failure     400 {object} ErrorResponse "Invalid activity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Router      /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.activityService.DeleteActivity(id); err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "delete", "activity", id, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
