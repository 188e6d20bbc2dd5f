package menu

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RiniPat/aaDinehub/internal/apperr"

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

type createMenuRequest struct {
	RestaurantID int    `json:"restaurantId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"isActive"`
}

// POST /menus
func (h *Handler) CreateMenu(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	m, err := h.service.CreateMenu(CreateMenuInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		IsActive:     isActive,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// GET /menus/:id
func (h *Handler) GetMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid menu id"})
		return
	}

	m, err := h.service.GetMenu(id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /restaurants/:id/menus
func (h *Handler) ListForRestaurant(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	menus, err := h.service.ListForRestaurant(restaurantID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

type createItemRequest struct {
	MenuID          int    `json:"menuId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	ImageURL        string `json:"imageUrl"`
	IsAvailable     *bool  `json:"isAvailable"`
	IsBestseller    bool   `json:"isBestseller"`
	IsChefsPick     bool   `json:"isChefsPick"`
	IsTodaysSpecial bool   `json:"isTodaysSpecial"`
}

// POST /menu-items
func (h *Handler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := h.service.CreateItem(CreateItemInput{
		MenuID:          req.MenuID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		IsAvailable:     isAvailable,
		IsBestseller:    req.IsBestseller,
		IsChefsPick:     req.IsChefsPick,
		IsTodaysSpecial: req.IsTodaysSpecial,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PATCH /menu-items/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid item id"})
		return
	}

	var patch ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	item, err := h.service.UpdateItem(id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /menu-items/:id — idempotent
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid item id"})
		return
	}

	if err := h.service.DeleteItem(id); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type generateRequest struct {
	RestaurantID int    `json:"restaurantId"`
	Cuisine      string `json:"cuisine"`
	Tone         string `json:"tone"`
}

// POST /menus/generate — returns the draft for review; persisting it
// is a separate, later step.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	draft, err := h.service.GenerateDraft(c.Request.Context(), req.RestaurantID, req.Cuisine, req.Tone)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// POST /menu-items/:id/image
func (h *Handler) UploadItemImage(c *gin.Context) {
	if h.uploader == nil {
		apperr.Respond(c, apperr.Upstream("Image storage is not configured", nil))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid item id"})
		return
	}

	if _, err := h.service.GetItem(id); err != nil {
		apperr.Respond(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("items/%d/%s%s", id, uuid.New().String(), ext)

	url, err := h.uploader.Upload(c.Request.Context(), key, file)
	if err != nil {
		apperr.Respond(c, apperr.Upstream("Failed to upload image", err))
		return
	}

	item, err := h.service.UpdateItem(id, ItemPatch{ImageURL: &url})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, item)
}
