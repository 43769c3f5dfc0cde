package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/auth"
	"transit_companion/internal/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.Register(in)
	if err != nil {
		respondError(c, "register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user":    user,
		"token":   auth.GenerateToken(),
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.Login(in.Email, in.Password)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    user,
		"token":   auth.GenerateToken(),
	})
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := uc.users.Get(id)
	if err != nil {
		respondError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) List(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := uc.users.List(skip, limit, boolQuery(c, "active_only", false))
	if err != nil {
		respondError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (uc *UserController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := uc.users.Update(id, patch)
	if err != nil {
		respondError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": user})
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6,max=100"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := uc.users.ChangePassword(id, in.CurrentPassword, in.NewPassword); err != nil {
		respondError(c, "change password", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated", "id": id})
}

func (uc *UserController) Deactivate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := uc.users.Deactivate(id); err != nil {
		respondError(c, "deactivate user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deactivated", "id": id})
}
