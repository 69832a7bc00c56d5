package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/audit"
	"github.com/barberflow/barberflow-api/internal/auth"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenManager
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, audit: audit}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login verifies credentials and issues a session token. The password check
// is bcrypt only — the legacy fixed bypass password was a backdoor and is
// intentionally gone.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Email is globally unique, so this lookup is not tenant-scoped.
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Organization").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.FromDB(c, err, "invalid_credentials")
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if user.Organization.Status != models.OrgStatusActive {
		httperr.Forbidden(c, "account_suspended", "Conta suspensa.")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.OrganizationID, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OrganizationID: user.OrganizationID,
		UserID:         &user.ID,
		Action:         "user_logged_in",
		Entity:         "user",
		EntityID:       &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"full_name":       user.FullName,
			"email":           user.Email,
			"role":            user.Role,
			"organization_id": user.OrganizationID,
		},
		"organization": gin.H{
			"id":   user.Organization.ID,
			"name": user.Organization.Name,
			"slug": user.Organization.Slug,
		},
		"token": token,
	})
}

// Register is a stub: organizations and their owners are seeded out-of-band
// (cmd/seed). Self-registration never shipped.
func (h *AuthHandler) Register(c *gin.Context) {
	httperr.Write(c, http.StatusNotImplemented, "not_implemented",
		"Cadastro ainda não disponível. Fale com o suporte.")
}
