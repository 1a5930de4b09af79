// internal/interfaces/http/handlers/operations.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/domain/operations"
	"gorm.io/gorm"
)

// OperationsHandler handles operation document endpoints: receipts,
// deliveries, internal transfers and stock adjustments
type OperationsHandler struct {
	operationsService *operations.Service
	config            *config.Config
}

// NewOperationsHandler creates a new operations handler
func NewOperationsHandler(db *gorm.DB, cfg *config.Config) *OperationsHandler {
	return &OperationsHandler{
		operationsService: operations.NewService(db, cfg),
		config:            cfg,
	}
}

// RECEIPTS

// CreateReceipt handles POST /receipts
func (h *OperationsHandler) CreateReceipt(c *gin.Context) {
	var req operations.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	receipt, err := h.operationsService.CreateReceipt(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Receipt created successfully",
		"data":    receipt,
	})
}

// GetReceipts handles GET /receipts
func (h *OperationsHandler) GetReceipts(c *gin.Context) {
	receipts, err := h.operationsService.GetReceipts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve receipts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipts retrieved successfully",
		"data":    receipts,
	})
}

// GetReceipt handles GET /receipts/:id
func (h *OperationsHandler) GetReceipt(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt ID"})
		return
	}

	receipt, err := h.operationsService.GetReceipt(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipt retrieved successfully",
		"data":    receipt,
	})
}

// UpdateReceipt handles PUT /receipts/:id
func (h *OperationsHandler) UpdateReceipt(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt ID"})
		return
	}

	var req operations.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	receipt, err := h.operationsService.UpdateReceipt(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipt updated successfully",
		"data":    receipt,
	})
}

// DeleteReceipt handles DELETE /receipts/:id
func (h *OperationsHandler) DeleteReceipt(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt ID"})
		return
	}

	if err := h.operationsService.DeleteReceipt(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipt deleted successfully",
	})
}

// ValidateReceipt handles POST /receipts/:id/validate
func (h *OperationsHandler) ValidateReceipt(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt ID"})
		return
	}

	receipt, err := h.operationsService.ValidateReceipt(id, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipt validated successfully",
		"data":    receipt,
	})
}

// DELIVERIES

// CreateDelivery handles POST /deliveries
func (h *OperationsHandler) CreateDelivery(c *gin.Context) {
	var req operations.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	delivery, err := h.operationsService.CreateDelivery(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Delivery created successfully",
		"data":    delivery,
	})
}

// GetDeliveries handles GET /deliveries
func (h *OperationsHandler) GetDeliveries(c *gin.Context) {
	deliveries, err := h.operationsService.GetDeliveries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve deliveries",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deliveries retrieved successfully",
		"data":    deliveries,
	})
}

// GetDelivery handles GET /deliveries/:id
func (h *OperationsHandler) GetDelivery(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	delivery, err := h.operationsService.GetDelivery(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery retrieved successfully",
		"data":    delivery,
	})
}

// UpdateDelivery handles PUT /deliveries/:id
func (h *OperationsHandler) UpdateDelivery(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	var req operations.UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	delivery, err := h.operationsService.UpdateDelivery(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery updated successfully",
		"data":    delivery,
	})
}

// DeleteDelivery handles DELETE /deliveries/:id
func (h *OperationsHandler) DeleteDelivery(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	if err := h.operationsService.DeleteDelivery(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery deleted successfully",
	})
}

// ValidateDelivery handles POST /deliveries/:id/validate
func (h *OperationsHandler) ValidateDelivery(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	delivery, err := h.operationsService.ValidateDelivery(id, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery validated successfully",
		"data":    delivery,
	})
}

// TRANSFERS

// CreateTransfer handles POST /transfers
func (h *OperationsHandler) CreateTransfer(c *gin.Context) {
	var req operations.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	transfer, err := h.operationsService.CreateTransfer(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Transfer created successfully",
		"data":    transfer,
	})
}

// GetTransfers handles GET /transfers
func (h *OperationsHandler) GetTransfers(c *gin.Context) {
	transfers, err := h.operationsService.GetTransfers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve transfers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transfers retrieved successfully",
		"data":    transfers,
	})
}

// GetTransfer handles GET /transfers/:id
func (h *OperationsHandler) GetTransfer(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID"})
		return
	}

	transfer, err := h.operationsService.GetTransfer(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transfer retrieved successfully",
		"data":    transfer,
	})
}

// UpdateTransfer handles PUT /transfers/:id
func (h *OperationsHandler) UpdateTransfer(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID"})
		return
	}

	var req operations.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	transfer, err := h.operationsService.UpdateTransfer(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transfer updated successfully",
		"data":    transfer,
	})
}

// DeleteTransfer handles DELETE /transfers/:id
func (h *OperationsHandler) DeleteTransfer(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID"})
		return
	}

	if err := h.operationsService.DeleteTransfer(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transfer deleted successfully",
	})
}

// ValidateTransfer handles POST /transfers/:id/validate
func (h *OperationsHandler) ValidateTransfer(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID"})
		return
	}

	transfer, err := h.operationsService.ValidateTransfer(id, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transfer validated successfully",
		"data":    transfer,
	})
}

// ADJUSTMENTS

// CreateAdjustment handles POST /adjustments
func (h *OperationsHandler) CreateAdjustment(c *gin.Context) {
	var req operations.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	adjustment, err := h.operationsService.CreateAdjustment(&req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Adjustment recorded successfully",
		"data":    adjustment,
	})
}

// GetAdjustments handles GET /adjustments
func (h *OperationsHandler) GetAdjustments(c *gin.Context) {
	adjustments, err := h.operationsService.GetAdjustments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve adjustments",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Adjustments retrieved successfully",
		"data":    adjustments,
	})
}

// GetAdjustment handles GET /adjustments/:id
func (h *OperationsHandler) GetAdjustment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid adjustment ID"})
		return
	}

	adjustment, err := h.operationsService.GetAdjustment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Adjustment retrieved successfully",
		"data":    adjustment,
	})
}
