package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction is one audit record
type AuditAction struct {
	Action       string         `json:"action"`
	ResourceID   string         `json:"resource_id"`
	ResourceType string         `json:"resource_type"`
	IP           string         `json:"ip"`
	UserAgent    string         `json:"user_agent"`
	RequestID    string         `json:"request_id"`
	Details      map[string]any `json:"details"`
	Timestamp    time.Time      `json:"timestamp"`
}

// LogAction writes an audit record for the current request
func LogAction(action string, c fiber.Ctx, details map[string]any) {
	if details == nil {
		details = make(map[string]any)
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		RequestID: RequestID(c),
		Details:   details,
		Timestamp: time.Now(),
	}
	if v, ok := details["resource_id"].(string); ok {
		audit.ResourceID = v
	}
	if v, ok := details["resource_type"].(string); ok {
		audit.ResourceType = v
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        audit.Action,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"request_id":    audit.RequestID,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogCRUD records a create, update or delete on a resource
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]any) {
	if details == nil {
		details = make(map[string]any)
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}
