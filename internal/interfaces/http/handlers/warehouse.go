// internal/interfaces/http/handlers/warehouse.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"gorm.io/gorm"
)

// WarehouseHandler handles warehouse topology endpoints
type WarehouseHandler struct {
	warehouseService *warehouse.Service
	config           *config.Config
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(db *gorm.DB, cfg *config.Config) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseService: warehouse.NewService(db, cfg),
		config:           cfg,
	}
}

// GetWarehouses handles GET /warehouses
func (h *WarehouseHandler) GetWarehouses(c *gin.Context) {
	warehouses, err := h.warehouseService.GetWarehouses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve warehouses",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouses retrieved successfully",
		"data":    warehouses,
	})
}

// GetWarehouse handles GET /warehouses/:id
func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid warehouse ID",
		})
		return
	}

	wh, err := h.warehouseService.GetWarehouse(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouse retrieved successfully",
		"data":    wh,
	})
}

// CreateWarehouse handles POST /warehouses
func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var req warehouse.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	wh, err := h.warehouseService.CreateWarehouse(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Warehouse created successfully",
		"data":    wh,
	})
}

// GetSubLocations handles GET /locations?warehouse_id=N
func (h *WarehouseHandler) GetSubLocations(c *gin.Context) {
	var warehouseID *uint
	if raw := c.Query("warehouse_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid warehouse_id parameter",
			})
			return
		}
		id := uint(parsed)
		warehouseID = &id
	}

	locations, err := h.warehouseService.GetSubLocations(warehouseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve sub-locations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sub-locations retrieved successfully",
		"data":    locations,
	})
}

// CreateSubLocation handles POST /locations
func (h *WarehouseHandler) CreateSubLocation(c *gin.Context) {
	var req warehouse.CreateSubLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	location, err := h.warehouseService.CreateSubLocation(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sub-location created successfully",
		"data":    location,
	})
}
