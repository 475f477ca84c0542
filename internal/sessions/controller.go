package sessions

import (
	"context"
	"errors"
	"net/http"

	"parkpass/internal/booking"
	"parkpass/internal/shared/utils/response"
	"parkpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
	logger  *logger.Logger
}

func NewController(service Service, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Controller{
		service: service,
		logger:  log,
	}
}

// GetCatalog godoc
// @Summary      Ticket catalog
// @Description  Prices, parks, promotion banner and advisory text
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.StandardApiResponse{data=CatalogResponse}
// @Router       /catalog [get]
func (c *Controller) GetCatalog(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, "Catalog retrieved successfully", c.service.Catalog(ctx.Request.Context()))
}

// CreateSession godoc
// @Summary      Start a booking session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions [post]
func (c *Controller) CreateSession(ctx *gin.Context) {
	response.Success(ctx, http.StatusCreated, "Booking session started", c.service.Create(ctx.Request.Context()))
}

// GetSession godoc
// @Summary      Get booking session state
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /sessions/{id} [get]
func (c *Controller) GetSession(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	resp, err := c.service.Get(ctx.Request.Context(), id)
	c.respond(ctx, "Booking session retrieved", resp, err)
}

// EndSession godoc
// @Summary      End a booking session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /sessions/{id} [delete]
func (c *Controller) EndSession(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	if err := c.service.End(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, nil, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Booking session ended", nil)
}

// SetTicketCount godoc
// @Summary      Set a ticket count
// @Description  The value is free text; unparsable or negative input counts as 0
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Session ID"
// @Param        category  path      string           true  "adult, child or senior"
// @Param        request   body      SetCountRequest  true  "Count"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      400  {object}  response.StandardApiResponse
// @Failure      409  {object}  response.StandardApiResponse
// @Router       /sessions/{id}/tickets/{category} [put]
func (c *Controller) SetTicketCount(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	category := booking.Category(ctx.Param("category"))
	if !category.IsValid() {
		response.Error(ctx, http.StatusBadRequest, "Invalid ticket category", nil, nil)
		return
	}
	var request SetCountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.SetCount(ctx.Request.Context(), id, category, string(request.Value))
	c.respond(ctx, "Ticket count updated", resp, err)
}

// SetLocation godoc
// @Summary      Select the park
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Session ID"
// @Param        request  body      SetLocationRequest  true  "Location"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      422  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/location [put]
func (c *Controller) SetLocation(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	var request SetLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.SetLocation(ctx.Request.Context(), id, request.Location)
	c.respond(ctx, "Location updated", resp, err)
}

// SetDate godoc
// @Summary      Select the visit date
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Session ID"
// @Param        request  body      SetDateRequest  true  "Date as YYYY-MM-DD"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      400  {object}  response.StandardApiResponse
// @Failure      422  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/date [put]
func (c *Controller) SetDate(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	var request SetDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.SetDate(ctx.Request.Context(), id, request.Date)
	c.respond(ctx, "Visit date updated", resp, err)
}

// SetName godoc
// @Summary      Set the customer name
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Session ID"
// @Param        request  body      SetNameRequest  true  "Name"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/name [put]
func (c *Controller) SetName(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	var request SetNameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.SetName(ctx.Request.Context(), id, request.Name)
	c.respond(ctx, "Name updated", resp, err)
}

// Submit godoc
// @Summary      Submit the booking for an offer
// @Description  Validates the order and asks the Offer Service for the final figures
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      409  {object}  response.StandardApiResponse
// @Failure      422  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      502  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/submit [post]
func (c *Controller) Submit(ctx *gin.Context) {
	c.action(ctx, "Booking offer received", c.service.Submit)
}

// Back godoc
// @Summary      Return from review to editing
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      409  {object}  response.StandardApiResponse
// @Router       /sessions/{id}/back [post]
func (c *Controller) Back(ctx *gin.Context) {
	c.action(ctx, "Returned to booking", c.service.Back)
}

// Confirm godoc
// @Summary      Confirm the reviewed booking
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Failure      409  {object}  response.StandardApiResponse
// @Router       /sessions/{id}/confirm [post]
func (c *Controller) Confirm(ctx *gin.Context) {
	c.action(ctx, "Booking confirmed", c.service.Confirm)
}

// DismissAdvisory godoc
// @Summary      Dismiss the child ticket advisory
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/advisory/dismiss [post]
func (c *Controller) DismissAdvisory(ctx *gin.Context) {
	c.action(ctx, "Advisory dismissed", c.service.DismissAdvisory)
}

// DismissConfirmation godoc
// @Summary      Dismiss the confirmation overlay
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/confirmation/dismiss [post]
func (c *Controller) DismissConfirmation(ctx *gin.Context) {
	c.action(ctx, "Confirmation dismissed", c.service.DismissConfirmation)
}

// Reset godoc
// @Summary      Start the booking over
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.StandardApiResponse{data=SessionResponse}
// @Router       /sessions/{id}/reset [post]
func (c *Controller) Reset(ctx *gin.Context) {
	c.action(ctx, "Booking reset", c.service.Reset)
}

type sessionAction func(ctx context.Context, id string) (*SessionResponse, error)

func (c *Controller) action(ctx *gin.Context, message string, fn sessionAction) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}
	resp, err := fn(ctx.Request.Context(), id)
	c.respond(ctx, message, resp, err)
}

func (c *Controller) sessionID(ctx *gin.Context) (string, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid session ID", nil, nil)
		return "", false
	}
	return id.String(), true
}

func (c *Controller) respond(ctx *gin.Context, message string, resp *SessionResponse, err error) {
	if err != nil {
		c.fail(ctx, resp, err)
		return
	}
	response.Success(ctx, http.StatusOK, message, resp)
}

// fail maps workflow errors to HTTP statuses. Customer-facing failures carry
// the session so the client can show the status message in place.
func (c *Controller) fail(ctx *gin.Context, resp *SessionResponse, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		c.logger.LogHTTPError(ctx, err, status)
	}

	var data interface{}
	if resp != nil {
		data = resp
	}
	response.Error(ctx, status, err.Error(), data, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidDate), errors.Is(err, booking.ErrUnknownCategory):
		return http.StatusBadRequest
	case booking.IsValidation(err):
		return http.StatusUnprocessableEntity
	case booking.IsServiceError(err):
		return http.StatusBadGateway
	case errors.Is(err, booking.ErrSubmissionInFlight),
		errors.Is(err, booking.ErrSubmissionDiscarded),
		errors.Is(err, booking.ErrNotEditable),
		errors.Is(err, booking.ErrNotInReview):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
