package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type recordingMetrics struct {
	mu        sync.Mutex
	requests  int
	decisions []domain.Outcome
}

func (m *recordingMetrics) RecordMetrics(*gin.Context, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

func (m *recordingMetrics) RecordGuardDecision(outcome domain.Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, outcome)
}
