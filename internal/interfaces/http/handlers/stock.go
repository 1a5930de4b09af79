// internal/interfaces/http/handlers/stock.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// StockHandler handles stock level and movement endpoints
type StockHandler struct {
	inventoryService *inventory.Service
	config           *config.Config
}

// NewStockHandler creates a new stock handler
func NewStockHandler(db *gorm.DB, cfg *config.Config) *StockHandler {
	return &StockHandler{
		inventoryService: inventory.NewService(db, cfg),
		config:           cfg,
	}
}

// GetStocks handles GET /stocks?product_id=N&warehouse_id=N
func (h *StockHandler) GetStocks(c *gin.Context) {
	var filter inventory.StockFilter

	if raw := c.Query("product_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id parameter"})
			return
		}
		id := uint(parsed)
		filter.ProductID = &id
	}
	if raw := c.Query("warehouse_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid warehouse_id parameter"})
			return
		}
		id := uint(parsed)
		filter.WarehouseID = &id
	}

	stocks, err := h.inventoryService.GetStocks(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve stocks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stocks retrieved successfully",
		"data":    stocks,
	})
}

// GetMoveHistory handles GET /moves?product_id=N&move_type=IN&limit=N
func (h *StockHandler) GetMoveHistory(c *gin.Context) {
	var filter inventory.MoveHistoryFilter

	if raw := c.Query("product_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id parameter"})
			return
		}
		id := uint(parsed)
		filter.ProductID = &id
	}
	filter.MoveType = inventory.MoveType(c.Query("move_type"))
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		filter.Limit = limit
	}

	moves, err := h.inventoryService.GetMoveHistory(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve move history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Move history retrieved successfully",
		"data":    moves,
	})
}

// FindNearestStock handles GET /stocks/nearest?warehouse_id=N&product_id=N
func (h *StockHandler) FindNearestStock(c *gin.Context) {
	warehouseID, err := strconv.ParseUint(c.Query("warehouse_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid warehouse_id parameter"})
		return
	}
	productID, err := strconv.ParseUint(c.Query("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id parameter"})
		return
	}

	minQty := h.config.Inventory.AbundanceMinQuantity
	if raw := c.Query("min_quantity"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_quantity parameter"})
			return
		}
		minQty = parsed
	}

	result, err := h.inventoryService.FindNearestAbundantStock(uint(warehouseID), uint(productID), minQty)
	if err != nil {
		respondError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No warehouse with sufficient stock found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nearest stock located successfully",
		"data":    result,
	})
}
