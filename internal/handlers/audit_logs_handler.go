package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/httpresp"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	var logs []models.AuditLog
	if err := h.db.WithContext(c.Request.Context()).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.FromDB(c, err, "audit_logs_not_found")
		return
	}

	httpresp.List(c, logs)
}
