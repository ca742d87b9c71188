package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUsername extracts the username from the Gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}

// GetCartSession resolves the cart session key for the request. A client may
// pin a session with the X-Cart-Session header; otherwise the cart follows
// the authenticated user.
func GetCartSession(c *gin.Context) string {
	if session := c.GetHeader("X-Cart-Session"); session != "" {
		return session
	}
	if userID := GetUserID(c); userID != nil {
		return userID.String()
	}
	return ""
}
