package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-yield/internal/strategy"
)

// StrategyHandler lists the placement strategies the engine compares.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler { return &StrategyHandler{} }

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": strategy.Catalog()})
}
