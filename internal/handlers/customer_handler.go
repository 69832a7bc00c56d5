package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).
		Where("organization_id = ? AND active = true", organizationID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Order("name ASC").Find(&customers).Error; err != nil {
		httperr.FromDB(c, err, "customer_not_found")
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer := models.Customer{
		OrganizationID: organizationID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Notes:          req.Notes,
		Active:         true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&customer).Error; err != nil {
		httperr.FromDB(c, err, "customer_not_found")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&customer).Error; err != nil {
		httperr.FromDB(c, err, "customer_not_found")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&customer).Error; err != nil {
		httperr.FromDB(c, err, "customer_not_found")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)
	id := c.Param("id")

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Customer{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Update("active", false)

	if res.Error != nil {
		httperr.FromDB(c, res.Error, "customer_not_found")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
