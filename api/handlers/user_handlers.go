package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloglist/api/dto"
	"bloglist/services"
)

// ListUsersHandler returns all users with the ids of the blogs they own.
func ListUsersHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// RegisterUserHandler creates a new user account.
func RegisterUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
			return
		}

		user, err := svc.Register(c.Request.Context(), req.Username, req.Name, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
