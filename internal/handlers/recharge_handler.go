package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// RechargeHandler handles recharge and validation HTTP requests
type RechargeHandler struct {
	rechargeService *services.RechargeService
}

// NewRechargeHandler creates a new RechargeHandler
func NewRechargeHandler(rechargeService *services.RechargeService) *RechargeHandler {
	return &RechargeHandler{
		rechargeService: rechargeService,
	}
}

// GetRechargesByGameID handles GET /recharges/game/:gameId
func (h *RechargeHandler) GetRechargesByGameID(c *gin.Context) {
	gameID := c.Param("gameId")

	recharges, err := h.rechargeService.GetRechargesByGameID(c, gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recharges: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, recharges)
}

// GetAllRecharges handles GET /recharges
func (h *RechargeHandler) GetAllRecharges(c *gin.Context) {
	recharges, err := h.rechargeService.GetAllRecharges(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recharges: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, recharges)
}

// InvalidateRecharge handles POST /recharges/:rechargeId/invalidate
func (h *RechargeHandler) InvalidateRecharge(c *gin.Context) {
	rechargeID := c.Param("rechargeId")

	if err := h.rechargeService.InvalidateRecharge(c, rechargeID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recharge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invalidate recharge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "invalidated", "rechargeId": rechargeID})
}

// ReinstateRecharge handles POST /recharges/:rechargeId/reinstate
func (h *RechargeHandler) ReinstateRecharge(c *gin.Context) {
	rechargeID := c.Param("rechargeId")

	if err := h.rechargeService.ReinstateRecharge(c, rechargeID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recharge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reinstate recharge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "valid", "rechargeId": rechargeID})
}

// RunValidation handles POST /validation/run
func (h *RechargeHandler) RunValidation(c *gin.Context) {
	run, err := h.rechargeService.RunValidation(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation run failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetValidationStats handles GET /validation/stats
func (h *RechargeHandler) GetValidationStats(c *gin.Context) {
	run, err := h.rechargeService.RunValidation(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation run failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, run.Stats)
}
