package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/api/dto"
	"bloglist/services"
)

// blogIDParam validates the id path parameter before any store access.
// A malformed id is a 400, distinct from a well-formed id that matches
// nothing (404).
func blogIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func blogInputFromRequest(req dto.BlogRequest) services.BlogInput {
	return services.BlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
}

// ListBlogsHandler returns all blogs with their owners resolved.
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// GetBlogHandler returns a single blog by id.
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := blogIDParam(c)
		if !ok {
			return
		}

		blog, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// CreateBlogHandler persists a new blog for the authenticated user.
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
			return
		}

		blog, err := svc.Create(c.Request.Context(), bearerToken(c), blogInputFromRequest(req))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// UpdateBlogHandler replaces the mutable blog fields wholesale.
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := blogIDParam(c)
		if !ok {
			return
		}

		var req dto.BlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
			return
		}

		blog, err := svc.Update(c.Request.Context(), bearerToken(c), id, blogInputFromRequest(req))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// DeleteBlogHandler removes a blog. Deleting an id that is already gone is
// still a 204.
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := blogIDParam(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), bearerToken(c), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
