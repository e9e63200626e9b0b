package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawhaven/shelter-backend/internal/models"
	"github.com/pawhaven/shelter-backend/internal/service"
)

// maxPhotoBytes caps uploaded pet photos at 5MB.
const maxPhotoBytes = 5 << 20

// PetPhotoHandler uploads a pet's picture to object storage and stores the
// resulting URL on the pet record.
type PetPhotoHandler struct {
	db     *gorm.DB
	photos *service.PhotoService
}

// NewPetPhotoHandler creates a new PetPhotoHandler instance
func NewPetPhotoHandler(db *gorm.DB, photos *service.PhotoService) *PetPhotoHandler {
	return &PetPhotoHandler{db: db, photos: photos}
}

func (h *PetPhotoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pets/:id/photo", h.Upload)
}

func (h *PetPhotoHandler) Upload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondErrors(c, http.StatusNotFound, "pet not found")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondErrors(c, http.StatusNotFound, "pet not found")
		} else {
			respondErrors(c, http.StatusInternalServerError, "failed to load pet")
		}
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		respondErrors(c, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		respondErrors(c, http.StatusBadRequest, "photo must be 5MB or smaller")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !service.SupportedPhotoType(contentType) {
		respondErrors(c, http.StatusBadRequest, "photo must be a JPEG, PNG, GIF or WebP image")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to read photo")
		return
	}

	url, err := h.photos.UploadPetPhoto(c.Request.Context(), pet.ID, data, contentType)
	if err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to store photo")
		return
	}

	pet.Picture = url
	if err := h.db.Model(&pet).Update("picture", url).Error; err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to update pet")
		return
	}

	c.JSON(http.StatusOK, pet)
}
