package handler

import (
	"net/http"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/service"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/response"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/storage"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlogHandler struct {
	service      service.BlogService
	imageStorage storage.ImageStorage
}

func NewBlogHandler(s service.BlogService, imageStorage storage.ImageStorage) *BlogHandler {
	return &BlogHandler{service: s, imageStorage: imageStorage}
}

// List returns published posts, optionally filtered by ?category= (slug or id).
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.GetPublished(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *BlogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"hits": []service.PostHit{}})
		return
	}

	hits, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

func (h *BlogHandler) GetComments(c *gin.Context) {
	comments, err := h.service.GetComments(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	var input dto.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.FormatValidationError(err)})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), c.Param("slug"), input, response.OptionalUserID(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *BlogHandler) AdminList(c *gin.Context) {
	posts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *BlogHandler) Create(c *gin.Context) {
	var input dto.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.FormatValidationError(err)})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), input, response.OptionalUserID(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid post id"})
		return
	}

	var input dto.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.FormatValidationError(err)})
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid post id"})
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// UploadImage stores an editor image and returns its public URL.
func (h *BlogHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "could not read uploaded image"})
		return
	}
	defer file.Close()

	url, err := h.imageStorage.UploadImage(c.Request.Context(), file, "blog", fileHeader.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
