package worker

import (
	"github.com/spec-kit/request-tracker/internal/service"
)

// StartAuditWorker registers the audit handlers on the event bus.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
