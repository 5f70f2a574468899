package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kugicode/catalog-service/internal/middleware"
	"github.com/kugicode/catalog-service/internal/service"
)

// IdentityHandler handles account and session HTTP requests.
type IdentityHandler struct {
	identity service.IdentityService
	cookies  *CookieHelper
	logger   *zap.Logger
}

// NewIdentityHandler creates a new IdentityHandler instance.
func NewIdentityHandler(identity service.IdentityService, cookies *CookieHelper, logger *zap.Logger) *IdentityHandler {
	return &IdentityHandler{
		identity: identity,
		cookies:  cookies,
		logger:   logger,
	}
}

// CredentialsRequest represents the register and login request payload.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user with a unique username
// @Tags identity
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /register [post]
func (h *IdentityHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.identity.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"userId":  user.ID.Hex(),
	})
}

// Login godoc
// @Summary Log in
// @Description Match credentials and establish a session cookie
// @Tags identity
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *IdentityHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.identity.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	h.cookies.SetSessionCookie(c, sess.Token)
	c.JSON(http.StatusOK, gin.H{"message": "logged in successfully"})
}

// Logout godoc
// @Summary Log out
// @Description Destroy the current session; succeeds even without one
// @Tags identity
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /logout [post]
func (h *IdentityHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := h.identity.Logout(c.Request.Context(), sess); err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	h.cookies.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Profile godoc
// @Summary Get own profile
// @Description Return the user record for the current session
// @Tags identity
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /profile [get]
func (h *IdentityHandler) Profile(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	user, err := h.identity.Profile(c.Request.Context(), sess)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteAccount godoc
// @Summary Delete own account
// @Description Remove the user record and destroy the session
// @Tags identity
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [delete]
func (h *IdentityHandler) DeleteAccount(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := h.identity.DeleteAccount(c.Request.Context(), sess); err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	h.cookies.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
