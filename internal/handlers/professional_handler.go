package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/httperr"
	infraRepo "github.com/barberflow/barberflow-api/internal/infra/repository"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/models"
	"github.com/barberflow/barberflow-api/internal/storage"
)

type ProfessionalHandler struct {
	db       *gorm.DB
	repo     *infraRepo.ProfessionalGormRepository
	uploader *storage.Uploader
}

// NewProfessionalHandler wires the roster CRUD plus the replace-all saves.
// uploader may be nil when avatar storage is not configured.
func NewProfessionalHandler(
	db *gorm.DB,
	repo *infraRepo.ProfessionalGormRepository,
	uploader *storage.Uploader,
) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, repo: repo, uploader: uploader}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type UpdateProfessionalRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

type ServiceAssignmentConfig struct {
	ServiceID         uint `json:"service_id" binding:"required"`
	Enabled           bool `json:"enabled"`
	CustomDurationMin *int `json:"custom_duration_min"`
}

type ServiceAssignmentsUpdateRequest struct {
	Services []ServiceAssignmentConfig `json:"services" binding:"required"`
}

// --------- CRUD ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	var professionals []models.Professional
	if err := h.db.WithContext(c.Request.Context()).
		Where("organization_id = ? AND active = true", organizationID).
		Order("name ASC").
		Find(&professionals).Error; err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	professional := models.Professional{
		OrganizationID: organizationID,
		Name:           req.Name,
		Phone:          req.Phone,
		Active:         true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&professional).Error; err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusCreated, professional)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)
	id := c.Param("id")

	var professional models.Professional
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&professional).Error; err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		professional.Name = *req.Name
	}
	if req.Phone != nil {
		professional.Phone = *req.Phone
	}
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&professional).Error; err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, professional)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)
	id := c.Param("id")

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Professional{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Update("active", false)

	if res.Error != nil {
		httperr.FromDB(c, res.Error, "professional_not_found")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Schedule (replace-all) ---------

func (h *ProfessionalHandler) GetSchedule(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	professionalID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	hours, err := h.repo.ListWorkingHours(c.Request.Context(), organizationID, professionalID)
	if err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *ProfessionalHandler) UpdateSchedule(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	professionalID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Only active days are persisted; the save replaces the full set.
	var hours []models.WorkingHours
	for _, d := range req.Days {
		if !d.Active {
			continue
		}
		if d.StartTime == "" || d.EndTime == "" {
			httperr.BadRequest(c, "invalid_request", "Dia ativo sem horário de início ou fim.")
			return
		}
		hours = append(hours, models.WorkingHours{
			ProfessionalID: professionalID,
			Weekday:        d.Weekday,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
		})
	}

	if err := h.repo.ReplaceWorkingHours(
		c.Request.Context(), organizationID, professionalID, hours,
	); err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Service assignments (replace-all) ---------

func (h *ProfessionalHandler) GetServiceAssignments(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	professionalID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.repo.ListServiceAssignments(c.Request.Context(), organizationID, professionalID)
	if err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *ProfessionalHandler) UpdateServiceAssignments(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	professionalID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ServiceAssignmentsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var assignments []models.ProfessionalService
	for _, s := range req.Services {
		if !s.Enabled {
			continue
		}
		assignments = append(assignments, models.ProfessionalService{
			ProfessionalID:    professionalID,
			ServiceID:         s.ServiceID,
			CustomDurationMin: s.CustomDurationMin,
			Enabled:           true,
		})
	}

	// Service ownership is checked inside the replace transaction, so the
	// validated set cannot change between the check and the insert.
	if err := h.repo.ReplaceServiceAssignments(
		c.Request.Context(), organizationID, professionalID, assignments,
	); err != nil {
		if errors.Is(err, infraRepo.ErrForeignService) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Avatar ---------

func (h *ProfessionalHandler) UploadAvatar(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	if h.uploader == nil {
		httperr.Unavailable(c, "storage_not_configured", "Upload de avatar indisponível.")
		return
	}

	professionalID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var professional models.Professional
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND organization_id = ?", professionalID, organizationID).
		First(&professional).Error; err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Arquivo de avatar obrigatório.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar_file", "Arquivo de avatar inválido.")
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeAvatar(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", organizationID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", "Erro ao enviar avatar.")
		return
	}

	professional.AvatarURL = url
	if err := h.db.WithContext(c.Request.Context()).Save(&professional).Error; err != nil {
		httperr.FromDB(c, err, "professional_not_found")
		return
	}

	c.JSON(http.StatusOK, professional)
}
