package handlers

import (
	"net/http"

	"roster-portal-backend/internal/auth"
	"roster-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for user accounts and the roster
// submission
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Profile"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes an account. Only the account owner may delete it.
// @Summary Delete account
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 204 "Account deleted"
// @Failure 409 {object} ErrorResponse "Not the account owner"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	callerID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userService.Delete(callerID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type submitRegistrationRequest struct {
	Category string `json:"category" binding:"required"`
}

// SubmitRegistration submits the caller's roster for registration
// @Summary Submit roster registration
// @Description Render the caller's roster into a summary email, deliver it to the registration inbox and mark the organization as registered. A registered organization cannot be submitted again.
// @Tags users
// @Accept json
// @Produce json
// @Param request body object true "Category"
// @Success 200 {object} map[string]string "Registration submitted"
// @Failure 409 {object} ErrorResponse "Organization already registered"
// @Security BearerAuth
// @Router /users/register [post]
func (h *UserHandler) SubmitRegistration(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req submitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.SubmitRegistration(userID, req.Category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inscrição enviada"})
}
