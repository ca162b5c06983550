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

type AchievementController struct {
	achievementService service.AchievementService
}

func NewAchievementController(achievementService service.AchievementService) *AchievementController {
	return &AchievementController{achievementService: achievementService}
}

// List handles GET /api/achievements
func (ac *AchievementController) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	achievements, err := ac.achievementService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get achievements"})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// Create handles POST /api/achievements
func (ac *AchievementController) Create(c *gin.Context) {
	var req models.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create achievement"})
		return
	}

	userID := middleware.CurrentUserID(c)

	achievement, err := ac.achievementService.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create achievement"})
		return
	}

	c.JSON(http.StatusOK, achievement)
}

// Update handles PUT /api/achievements/:id
func (ac *AchievementController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update achievement"})
		return
	}

	var req models.UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update achievement"})
		return
	}

	userID := middleware.CurrentUserID(c)

	achievement, err := ac.achievementService.Update(id, userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Achievement not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update achievement"})
		return
	}

	c.JSON(http.StatusOK, achievement)
}

// Delete handles DELETE /api/achievements/:id
func (ac *AchievementController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete achievement"})
		return
	}

	userID := middleware.CurrentUserID(c)

	if err := ac.achievementService.Delete(id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Achievement not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete achievement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Achievement deleted successfully"})
}
