package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/backend/internal/services"
)

// TicketHandler handles entry-related HTTP requests
type TicketHandler struct {
	ticketService *services.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// SubmitTicket handles POST /tickets
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var req services.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ticket, err := h.ticketService.SubmitTicket(c, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidGameID), errors.Is(err, services.ErrInvalidNumbers):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoUpcomingDraw):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		}
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetSchedule handles GET /schedule
func (h *TicketHandler) GetSchedule(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "1"))
	if count < 1 {
		count = 1
	}
	if count > 30 {
		count = 30
	}

	schedules, err := h.ticketService.UpcomingSchedules(time.Now().UTC(), count)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetTicketsByGameID handles GET /tickets/game/:gameId
func (h *TicketHandler) GetTicketsByGameID(c *gin.Context) {
	gameID := c.Param("gameId")

	tickets, err := h.ticketService.GetTicketsByGameID(c, gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tickets: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// GetTicketsByContest handles GET /tickets/contest/:contest
func (h *TicketHandler) GetTicketsByContest(c *gin.Context) {
	contest := c.Param("contest")

	tickets, err := h.ticketService.GetTicketsByContest(c, contest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tickets: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, tickets)
}
