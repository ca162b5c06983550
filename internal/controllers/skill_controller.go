package controllers

import (
	"errors"
	"net/http"

	"folio-be/internal/middleware"
	"folio-be/internal/models"
	"folio-be/internal/repository"
	"folio-be/internal/service"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	skillService service.SkillService
}

func NewSkillController(skillService service.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// List handles GET /api/skills
func (sc *SkillController) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	skills, err := sc.skillService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get skills"})
		return
	}

	c.JSON(http.StatusOK, skills)
}

// Create handles POST /api/skills
func (sc *SkillController) Create(c *gin.Context) {
	var req models.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create skill"})
		return
	}

	userID := middleware.CurrentUserID(c)

	skill, err := sc.skillService.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create skill"})
		return
	}

	c.JSON(http.StatusOK, skill)
}

// Update handles PUT /api/skills/:id
func (sc *SkillController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update skill"})
		return
	}

	var req models.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update skill"})
		return
	}

	userID := middleware.CurrentUserID(c)

	skill, err := sc.skillService.Update(id, userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update skill"})
		return
	}

	c.JSON(http.StatusOK, skill)
}

// Delete handles DELETE /api/skills/:id
func (sc *SkillController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete skill"})
		return
	}

	userID := middleware.CurrentUserID(c)

	if err := sc.skillService.Delete(id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
