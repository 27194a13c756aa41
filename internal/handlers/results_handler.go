package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResultsHandler handles draw-result and winner HTTP requests
type ResultsHandler struct {
	resultsService *services.ResultsService
	notifications  *services.NotificationService
}

// NewResultsHandler creates a new ResultsHandler
func NewResultsHandler(resultsService *services.ResultsService, notifications *services.NotificationService) *ResultsHandler {
	return &ResultsHandler{
		resultsService: resultsService,
		notifications:  notifications,
	}
}

// PublishResult handles POST /results
func (h *ResultsHandler) PublishResult(c *gin.Context) {
	var result models.DrawResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.resultsService.PublishResult(c, &result); err != nil {
		if errors.Is(err, services.ErrInvalidWinningNumbers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish result"})
		return
	}

	if err := h.notifications.AnnounceResult(&result); err != nil {
		// Publication succeeded; the announcement can be retried manually.
		c.JSON(http.StatusOK, gin.H{"result": result, "announcement": "failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "announcement": "sent"})
}

// GetResults handles GET /results
func (h *ResultsHandler) GetResults(c *gin.Context) {
	results, err := h.resultsService.GetResults(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get results: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetResult handles GET /results/:contest
func (h *ResultsHandler) GetResult(c *gin.Context) {
	contest := c.Param("contest")
	drawDate := c.Query("drawDate")

	result, err := h.resultsService.GetResult(c, contest, drawDate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get result"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ComputeWinners handles POST /winners/compute
func (h *ResultsHandler) ComputeWinners(c *gin.Context) {
	winners, err := h.resultsService.ComputeWinners(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute winners: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, winners)
}

// GetWinnersReport handles GET /winners/report
func (h *ResultsHandler) GetWinnersReport(c *gin.Context) {
	contest := c.Query("contest")

	report, err := h.resultsService.WinnersReport(c, contest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// AnnounceWinners handles POST /winners/announce/:contest
func (h *ResultsHandler) AnnounceWinners(c *gin.Context) {
	contest := c.Param("contest")

	report, err := h.resultsService.WinnersReport(c, contest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load winners: " + err.Error()})
		return
	}

	var winners []models.Winner
	winners = append(winners, report.GrandPrize...)
	winners = append(winners, report.SecondPrize...)
	winners = append(winners, report.ThirdPrize...)
	winners = append(winners, report.Consolation...)

	if err := h.notifications.AnnounceWinners(contest, winners); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to announce winners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announced": len(winners), "contest": contest})
}
