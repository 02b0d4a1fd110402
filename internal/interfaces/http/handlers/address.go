// internal/interfaces/http/handlers/address.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/address"
)

// AddressHandler handles address book endpoints
type AddressHandler struct {
	directory *address.Directory
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(directory *address.Directory) *AddressHandler {
	return &AddressHandler{directory: directory}
}

// GetAddresses handles GET /addresses
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	selected := ""
	if addr := h.directory.Selected(); addr != nil {
		selected = addr.ID
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Addresses retrieved successfully",
		"data": gin.H{
			"addresses":   h.directory.List(),
			"selected_id": selected,
		},
	})
}

// CreateAddress handles POST /addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req address.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	addr, err := h.directory.Add(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create address",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address created successfully",
		"data":    addr,
	})
}

// DeleteAddress handles DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	if err := h.directory.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Address not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted successfully",
	})
}

// SelectAddress handles PUT /addresses/:id/select
func (h *AddressHandler) SelectAddress(c *gin.Context) {
	if err := h.directory.Select(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Address not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address selected successfully",
		"data":    h.directory.Selected(),
	})
}

// GetDefaultAddress handles GET /addresses/default
func (h *AddressHandler) GetDefaultAddress(c *gin.Context) {
	addr := h.directory.DefaultOrFirst()
	if addr == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No addresses found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default address retrieved successfully",
		"data":    addr,
	})
}
