package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (nc *NotificationController) Create(c *gin.Context) {
	var in services.NotificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	notif, err := nc.notifications.Create(in)
	if err != nil {
		respondError(c, "create notification", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "notification created", "notification": notif})
}

func (nc *NotificationController) ListForUser(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	notifs, err := nc.notifications.ListForUser(userID, boolQuery(c, "unread_only", false))
	if err != nil {
		respondError(c, "list notifications", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	// body is optional; an empty body marks the notification read
	in := struct {
		Read *bool `json:"read"`
	}{}
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	read := true
	if in.Read != nil {
		read = *in.Read
	}
	notif, err := nc.notifications.MarkRead(id, read)
	if err != nil {
		respondError(c, "mark notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification updated", "notification": notif})
}

func (nc *NotificationController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := nc.notifications.Delete(id); err != nil {
		respondError(c, "delete notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification deleted", "id": id})
}

func (nc *NotificationController) Broadcast(c *gin.Context) {
	var in services.NotificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	count, err := nc.notifications.Broadcast(in)
	if err != nil {
		respondError(c, "broadcast notification", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "notification broadcast", "count": count})
}
