package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-yield/internal/api/models"
	"solar-yield/internal/model"
	"solar-yield/internal/sim"
)

// SimulateHandler runs comparison simulations.
type SimulateHandler struct {
	engine *sim.Engine
}

func NewSimulateHandler(engine *sim.Engine) *SimulateHandler {
	if engine == nil {
		engine = sim.New()
	}
	return &SimulateHandler{engine: engine}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cfg := model.SimulationConfig{
		Location: model.Location{
			Name:           req.Location.Name,
			Latitude:       req.Location.Latitude,
			Longitude:      req.Location.Longitude,
			UTCOffsetHours: req.Location.UTCOffsetHours,
		},
		Year:            req.Year,
		PanelAreaM2:     req.PanelAreaM2,
		PanelEfficiency: req.PanelEfficiency,
	}
	if req.CustomTilt != nil {
		cfg.CustomTilt = &model.Tilt{
			EastWestDeg:   req.CustomTilt.EastWestDeg,
			NorthSouthDeg: req.CustomTilt.NorthSouthDeg,
		}
	}

	report, err := h.engine.Run(c.Request.Context(), cfg)
	if err != nil {
		// The ErrorHandler middleware maps the taxonomy to a status.
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{Status: "ok", Report: report})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{
		Code:    code,
		Message: message,
	}})
}
