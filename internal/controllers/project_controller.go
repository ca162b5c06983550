package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"folio-be/internal/middleware"
	"folio-be/internal/models"
	"folio-be/internal/repository"
	"folio-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService service.ProjectService
}

func NewProjectController(projectService service.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// parseID parses a numeric path parameter
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// List handles GET /api/projects
func (pc *ProjectController) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	projects, err := pc.projectService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects
func (pc *ProjectController) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create project"})
		return
	}

	userID := middleware.CurrentUserID(c)

	project, err := pc.projectService.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Update handles PUT /api/projects/:id
func (pc *ProjectController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update project"})
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update project"})
		return
	}

	userID := middleware.CurrentUserID(c)

	project, err := pc.projectService.Update(id, userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id
func (pc *ProjectController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete project"})
		return
	}

	userID := middleware.CurrentUserID(c)

	if err := pc.projectService.Delete(id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
