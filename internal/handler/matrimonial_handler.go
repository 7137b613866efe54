package handler

import (
	"net/http"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/service"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/response"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatrimonialHandler struct {
	service service.MatrimonialService
}

func NewMatrimonialHandler(s service.MatrimonialService) *MatrimonialHandler {
	return &MatrimonialHandler{service: s}
}

// Submit handles the multipart biodata form. The optional photo part is
// streamed to image storage before the profile row is written.
func (h *MatrimonialHandler) Submit(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.MatrimonialInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.FormatValidationError(err)})
		return
	}

	var photo *dto.PhotoFile
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "could not read uploaded photo"})
			return
		}
		defer file.Close()
		photo = &dto.PhotoFile{Reader: file, FileName: fileHeader.Filename}
	}

	profile, err := h.service.Upsert(c.Request.Context(), userID, input, photo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "biodata saved",
		"profile": profile,
	})
}

func (h *MatrimonialHandler) Mine(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	profile, err := h.service.GetMine(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": true, "profile": profile})
}

func (h *MatrimonialHandler) AdminList(c *gin.Context) {
	profiles, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *MatrimonialHandler) AdminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid profile id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}
