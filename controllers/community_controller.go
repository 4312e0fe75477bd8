package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/purushotham2628/fitness-diet-app/services"
)

type CommunityController struct {
	community *services.CommunityService
}

func NewCommunityController(community *services.CommunityService) *CommunityController {
	return &CommunityController{community: community}
}

func (cc *CommunityController) ListPosts(c *gin.Context) {
	posts, err := cc.community.ListPosts(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (cc *CommunityController) CreatePost(c *gin.Context) {
	var input services.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	post, err := cc.community.CreatePost(c.Request.Context(), c.GetUint("userID"), input)
	if err != nil {
		if errors.Is(err, services.ErrFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (cc *CommunityController) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or unauthorized"})
		return
	}

	err = cc.community.DeletePost(c.Request.Context(), c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (cc *CommunityController) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	result, err := cc.community.ToggleLike(c.Request.Context(), c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}
	c.JSON(http.StatusOK, result)
}
