package restaurant

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RiniPat/aaDinehub/internal/apperr"
	"github.com/RiniPat/aaDinehub/internal/qr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploader stores an image and returns its public URL. Nil when image
// storage is not configured.
type Uploader interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Handler struct {
	service  *Service
	uploader Uploader
}

func NewHandler(service *Service, uploader Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

type createRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Address     string `json:"address"`
	CuisineType string `json:"cuisineType"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

// POST /restaurants
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	restaurant, err := h.service.Create(c.GetInt("userID"), CreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Address:     req.Address,
		CuisineType: req.CuisineType,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// GET /restaurants — owned only
func (h *Handler) ListMine(c *gin.Context) {
	restaurants, err := h.service.ListByOwner(c.GetInt("userID"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if restaurants == nil {
		restaurants = []*Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

// GET /restaurants/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	restaurant, err := h.service.GetByID(id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GET /restaurants/slug/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	restaurant, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GET /restaurants/:id/qr
func (h *Handler) QRCode(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	restaurant, err := h.service.GetByID(id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	url := qr.PublicURL(requestScheme(c), c.Request.Host, restaurant.Slug)
	dataURL, err := qr.DataURL(url)
	if err != nil {
		apperr.Respond(c, apperr.Upstream("Failed to generate QR code", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"qrCodeUrl": dataURL})
}

// POST /restaurants/:id/cover
func (h *Handler) UploadCover(c *gin.Context) {
	if h.uploader == nil {
		apperr.Respond(c, apperr.Upstream("Image storage is not configured", nil))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("covers/%d/%s%s", id, uuid.New().String(), ext)

	url, err := h.uploader.Upload(c.Request.Context(), key, file)
	if err != nil {
		apperr.Respond(c, apperr.Upstream("Failed to upload image", err))
		return
	}

	if err := h.service.SetCoverImage(id, c.GetInt("userID"), url); err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coverImage": url})
}

func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
