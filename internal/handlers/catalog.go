package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kugicode/catalog-service/internal/middleware"
	"github.com/kugicode/catalog-service/internal/models"
	"github.com/kugicode/catalog-service/internal/service"
)

// CatalogHandler handles item HTTP requests.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// CreateItemRequest represents the item creation payload.
type CreateItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// List godoc
// @Summary List all items
// @Description Return every item in the catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Item
// @Router /items [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create an item
// @Description Add an item owned by the current session's user
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item fields"
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /items [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.catalog.Create(c.Request.Context(), sess, req.Name, req.Price)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Get godoc
// @Summary Get an item by id
// @Tags catalog
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update godoc
// @Summary Update an item by id
// @Description Merge only the provided fields into the item
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param request body models.ItemUpdate true "Fields to merge"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	var update models.ItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	modified, err := h.catalog.UpdateByID(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	message := "item updated successfully"
	if !modified {
		message = "item found, but no changes applied"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ListMine godoc
// @Summary List own items
// @Description Return the items owned by the current session's user
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Item
// @Failure 401 {object} map[string]string
// @Router /my-items [get]
func (h *CatalogHandler) ListMine(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	items, err := h.catalog.ListMine(c.Request.Context(), sess)
	if err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteMine godoc
// @Summary Delete an own item by id
// @Description Remove an item only if it belongs to the current session's user
// @Tags catalog
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /my-items/{id} [delete]
func (h *CatalogHandler) DeleteMine(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := h.catalog.DeleteMine(c.Request.Context(), sess, c.Param("id")); err != nil {
		RespondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted successfully"})
}
