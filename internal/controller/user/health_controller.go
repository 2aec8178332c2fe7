package user

import (
	"net/http"
	"time"

	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Service health
// @Description Pings the database.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Failure 503 {object} dto.HealthDTO
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	resp := dto.HealthDTO{Status: "OK", Timestamp: time.Now().UTC(), DBStatus: "connected"}
	status := http.StatusOK

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		log.Error().Err(err).Msg("Health: database ping failed")
		resp.Status = "ERROR"
		resp.DBStatus = "disconnected"
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}
