package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloglist/api/dto"
	"bloglist/services"
)

// LoginHandler exchanges valid credentials for a signed token.
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
			return
		}

		token, user, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.LoginResponse{
			Token:    token,
			Username: user.Username,
			Name:     user.Name,
		})
	}
}
