package handlers

import (
	"net/http"

	"roster-portal-backend/internal/auth"
	"roster-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GestorHandler handles HTTP requests for the gestor roster
type GestorHandler struct {
	gestorService *service.GestorService
}

// NewGestorHandler creates a new gestor handler
func NewGestorHandler(gestorService *service.GestorService) *GestorHandler {
	return &GestorHandler{
		gestorService: gestorService,
	}
}

// CreateGestor creates a new gestor
// @Summary Create gestor
// @Description Admit a new gestor into the caller's roster. Each team seats at most one gestor and the RG must be free.
// @Tags gestors
// @Accept json
// @Produce json
// @Param gestor body service.StaffRequest true "Gestor data"
// @Success 201 {object} service.StaffResponse "Gestor created"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Admission rejected"
// @Security BearerAuth
// @Router /gestors [post]
func (h *GestorHandler) CreateGestor(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gestor, err := h.gestorService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gestor)
}

// ListGestors lists the caller's gestors
// @Summary List gestors
// @Tags gestors
// @Produce json
// @Param team query string false "Filter by team substring"
// @Success 200 {array} service.StaffResponse "Gestors"
// @Security BearerAuth
// @Router /gestors [get]
func (h *GestorHandler) ListGestors(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	gestors, err := h.gestorService.List(userID, c.Query("team"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gestors)
}

// UpdateGestor updates an existing gestor
// @Summary Update gestor
// @Description Re-admit an existing gestor with the full payload. A team change is checked against the new team's seat.
// @Tags gestors
// @Accept json
// @Produce json
// @Param id path string true "Gestor ID (UUID)"
// @Param gestor body service.StaffRequest true "Gestor data"
// @Success 200 {object} service.StaffResponse "Gestor updated"
// @Failure 404 {object} ErrorResponse "Gestor or organization not found"
// @Failure 409 {object} ErrorResponse "Admission rejected"
// @Security BearerAuth
// @Router /gestors/{id} [put]
func (h *GestorHandler) UpdateGestor(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	gestorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gestor ID"})
		return
	}

	var req service.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gestor, err := h.gestorService.Update(userID, gestorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gestor)
}

// DeleteGestor deletes a gestor
// @Summary Delete gestor
// @Tags gestors
// @Produce json
// @Param id path string true "Gestor ID (UUID)"
// @Success 204 "Gestor deleted"
// @Failure 404 {object} ErrorResponse "Gestor not found"
// @Security BearerAuth
// @Router /gestors/{id} [delete]
func (h *GestorHandler) DeleteGestor(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	gestorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gestor ID"})
		return
	}

	if err := h.gestorService.Delete(userID, gestorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
