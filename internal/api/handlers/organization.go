package handlers

import (
	"net/http"

	"roster-portal-backend/internal/auth"
	"roster-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	organizationService *service.OrganizationService
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(organizationService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: organizationService,
	}
}

// CreateOrganization creates a new organization for the caller
// @Summary Create organization
// @Description Create an organization with its signup attachment. The attachment must be a PDF of at most 1MB, sent as the multipart field "attachment".
// @Tags organizations
// @Accept multipart/form-data
// @Produce json
// @Param organization_name formData string true "Organization name"
// @Param cnpj formData string true "CNPJ"
// @Param attachment formData file true "Signup attachment (PDF, max 1MB)"
// @Success 201 {object} service.OrganizationResponse "Organization created"
// @Failure 409 {object} ErrorResponse "Name or CNPJ already taken, or bad attachment"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	req := &service.OrganizationRequest{
		OrganizationName: c.PostForm("organization_name"),
		CNPJ:             c.PostForm("cnpj"),
	}

	attachment, err := formUpload(c, "attachment")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attachment is required"})
		return
	}

	org, err := h.organizationService.Create(userID, req, attachment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations lists the caller's organizations
// @Summary List own organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgs, err := h.organizationService.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetOrganization retrieves one of the caller's organizations
// @Summary Get organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Organization"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	org, err := h.organizationService.Get(userID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateTeamDocuments replaces the organization's team documents file
// @Summary Update team documents
// @Description Replace the team documents file with a PDF of at most 3MB, sent as the multipart field "documents". Replacing documents clears the registered flag.
// @Tags organizations
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param documents formData file true "Team documents (PDF, max 3MB)"
// @Success 200 {object} service.OrganizationResponse "Organization updated"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Bad attachment"
// @Security BearerAuth
// @Router /organizations/{id}/documents [patch]
func (h *OrganizationHandler) UpdateTeamDocuments(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	documents, err := formUpload(c, "documents")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Documents file is required"})
		return
	}

	org, err := h.organizationService.UpdateTeamDocuments(userID, orgID, documents)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization deletes one of the caller's organizations
// @Summary Delete organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deleted"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	if err := h.organizationService.Delete(userID, orgID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
