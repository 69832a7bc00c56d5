package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Organization").
		First(&user, userID).Error; err != nil {
		httperr.FromDB(c, err, "user_not_found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"full_name":       user.FullName,
			"email":           user.Email,
			"role":            user.Role,
			"organization_id": user.OrganizationID,
		},
		"organization": gin.H{
			"id":     user.Organization.ID,
			"name":   user.Organization.Name,
			"slug":   user.Organization.Slug,
			"status": user.Organization.Status,
		},
	})
}
