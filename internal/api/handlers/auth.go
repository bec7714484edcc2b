package handlers

import (
	"net/http"

	"roster-portal-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup, signin and password reset
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp registers a new account with its organization
// @Summary Sign up
// @Description Register a new account together with its organization. The signup document must be a PDF of at most 1MB, sent as the multipart field "document".
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param email formData string true "Email"
// @Param rg formData string true "RG"
// @Param birthdate formData string true "Birthdate"
// @Param phone formData string true "Phone"
// @Param password formData string true "Password"
// @Param confirm_password formData string true "Password confirmation"
// @Param organization_name formData string true "Organization name"
// @Param cnpj formData string true "CNPJ"
// @Param document formData file true "Signup document (PDF, max 1MB)"
// @Success 201 {object} auth.TokenResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Email, RG, organization or CNPJ already taken"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	req := &auth.SignUpRequest{
		FirstName:        c.PostForm("first_name"),
		LastName:         c.PostForm("last_name"),
		Email:            c.PostForm("email"),
		RG:               c.PostForm("rg"),
		Birthdate:        c.PostForm("birthdate"),
		Phone:            c.PostForm("phone"),
		Password:         c.PostForm("password"),
		ConfirmPassword:  c.PostForm("confirm_password"),
		OrganizationName: c.PostForm("organization_name"),
		CNPJ:             c.PostForm("cnpj"),
	}

	document, err := formUpload(c, "document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signup document is required"})
		return
	}

	token, err := h.authService.SignUp(req, document)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, token)
}

// SignIn verifies credentials and returns a token
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.SignInRequest true "Credentials"
// @Success 200 {object} auth.TokenResponse "Authenticated"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req auth.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.SignIn(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

type resetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type updatePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Code            string `json:"code" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// SendResetCode emails a verification code for the password reset flow
// @Summary Request password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object true "Email"
// @Success 200 {object} map[string]string "Code sent"
// @Failure 404 {object} ErrorResponse "Unknown email"
// @Router /auth/reset [post]
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.SendResetCode(req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Código enviado"})
}

// VerifyResetCode checks a previously emailed verification code
// @Summary Verify password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object true "Email and code"
// @Success 200 {object} map[string]string "Code valid"
// @Failure 401 {object} ErrorResponse "Wrong code"
// @Router /auth/reset/verify [post]
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.VerifyResetCode(req.Email, req.Code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Código válido"})
}

// UpdatePassword completes the password reset flow
// @Summary Update password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object true "Email, code and new password"
// @Success 200 {object} map[string]string "Password updated"
// @Failure 401 {object} ErrorResponse "Wrong code"
// @Failure 409 {object} ErrorResponse "Passwords do not match"
// @Router /auth/reset/password [patch]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.UpdatePassword(req.Email, req.Code, req.Password, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha atualizada"})
}
