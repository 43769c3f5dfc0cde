package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/services"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

func (fc *FavoriteController) Create(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	var in services.FavoriteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	favorite, err := fc.favorites.Create(userID, in)
	if err != nil {
		respondError(c, "create favorite", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "favorite added", "favorite": favorite})
}

func (fc *FavoriteController) ListForUser(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	favorites, err := fc.favorites.ListForUser(userID)
	if err != nil {
		respondError(c, "list favorites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (fc *FavoriteController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := fc.favorites.Delete(id); err != nil {
		respondError(c, "delete favorite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite deleted", "id": id})
}
