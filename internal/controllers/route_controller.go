package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/services"
)

type RouteController struct {
	routes *services.RouteService
}

func NewRouteController(routes *services.RouteService) *RouteController {
	return &RouteController{routes: routes}
}

func (rc *RouteController) Create(c *gin.Context) {
	var in services.RouteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route, err := rc.routes.Create(in)
	if err != nil {
		respondError(c, "create route", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "route created", "route": route})
}

func (rc *RouteController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	route, err := rc.routes.Get(id)
	if err != nil {
		respondError(c, "get route", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (rc *RouteController) List(c *gin.Context) {
	skip, limit := pagination(c)
	routes, err := rc.routes.List(skip, limit)
	if err != nil {
		respondError(c, "list routes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (rc *RouteController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.RoutePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route, err := rc.routes.Update(id, patch)
	if err != nil {
		respondError(c, "update route", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route updated", "route": route})
}

func (rc *RouteController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.routes.Delete(id); err != nil {
		respondError(c, "delete route", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted", "id": id})
}

func (rc *RouteController) Search(c *gin.Context) {
	routes, err := rc.routes.Search(c.Param("term"))
	if err != nil {
		respondError(c, "search routes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}
