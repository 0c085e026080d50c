package ports

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordGuardDecision(outcome domain.Outcome)
}
