package api

import (
	"github.com/yida7942-create/gmat-tutor/internal/services"
	"github.com/yida7942-create/gmat-tutor/internal/worker"
)

// Server holds the HTTP layer's dependencies. Handlers are thin; all
// business logic lives in the services.
type Server struct {
	Practice  services.PracticeService
	Analytics services.AnalyticsService
	Tutor     services.TutorService
	Session   services.SessionService
	Pool      *worker.Pool
}
