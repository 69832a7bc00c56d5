package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

// PublicHandler serves the unauthenticated storefront reads consumed by the
// booking bot and panel. The slug resolves to an organization first; after
// that the same tenant scoping applies as everywhere else.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

func (h *PublicHandler) findOrganization(c *gin.Context) (*models.Organization, bool) {
	slug := c.Param("slug")

	var org models.Organization
	if err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", slug).
		First(&org).Error; err != nil {
		httperr.NotFound(c, "organization_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &org, true
}

// ListServices — GET /services/:slug
func (h *PublicHandler) ListServices(c *gin.Context) {
	org, ok := h.findOrganization(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("organization_id = ? AND active = true", org.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.FromDB(c, err, "organization_not_found")
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListProfessionals — GET /barbers/:slug
func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	org, ok := h.findOrganization(c)
	if !ok {
		return
	}

	var professionals []models.Professional
	if err := h.db.WithContext(c.Request.Context()).
		Where("organization_id = ? AND active = true", org.ID).
		Order("name ASC").
		Find(&professionals).Error; err != nil {
		httperr.FromDB(c, err, "organization_not_found")
		return
	}

	c.JSON(http.StatusOK, professionals)
}
