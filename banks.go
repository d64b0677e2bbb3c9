package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/ledger"
)

// Bank handler functions

type bankRequest struct {
	Name    string `json:"name" binding:"required"`
	Balance string `json:"balance"`
	Color   string `json:"color"`
}

// @Summary Get all banks
// @Description Retrieve all of the caller's banks with their current balances
// @Tags banks
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {array} Bank "List of banks"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/banks [get]
func getBanks(c *gin.Context) {
	banks, err := service.ListBanks(c.Request.Context(), ownerFrom(c))
	if err != nil {
		log.Printf("Error fetching banks: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	result := make([]Bank, 0, len(banks))
	for _, b := range banks {
		result = append(result, convertBank(b))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get bank
// @Description Retrieve a single bank by ID
// @Tags banks
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Bank ID"
// @Success 200 {object} Bank "Bank"
// @Failure 403 {object} map[string]interface{} "Owned by another user"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Router /api/banks/{id} [get]
func getBank(c *gin.Context) {
	b, err := service.GetBank(c.Request.Context(), ownerFrom(c), c.Param("id"))
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, convertBank(b))
}

// @Summary Create bank
// @Description Register a new bank. The submitted balance becomes the opening balance.
// @Tags banks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param bank body bankRequest true "Bank data (name required)"
// @Success 201 {object} Bank "Created bank"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Bank name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/banks [post]
func createBank(c *gin.Context) {
	var req bankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	opening := decimal.Zero
	if req.Balance != "" {
		var err error
		if opening, err = parseAmount(req.Balance); err != nil {
			statusCode, message := handleStoreError(err)
			c.JSON(statusCode, gin.H{"error": message})
			return
		}
	}

	b, err := service.CreateBank(c.Request.Context(), ownerFrom(c), ledger.Bank{
		Name:    req.Name,
		Balance: opening,
		Color:   req.Color,
	})
	if err != nil {
		log.Printf("Error creating bank: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertBank(b))
}

// @Summary Update bank
// @Description Rename or recolor a bank. The balance is maintained by reconciliation and cannot be edited here.
// @Tags banks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Bank ID"
// @Param bank body bankRequest true "Updated bank data"
// @Success 200 {object} Bank "Updated bank"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Failure 409 {object} map[string]interface{} "Bank name already in use"
// @Router /api/banks/{id} [put]
func updateBank(c *gin.Context) {
	var req bankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	b, err := service.UpdateBank(c.Request.Context(), ownerFrom(c), c.Param("id"), req.Name, req.Color)
	if err != nil {
		log.Printf("Error updating bank: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertBank(b))
}

// @Summary Delete bank
// @Description Delete a bank. Its transactions and transfers are removed with it, and each removed transfer's effect on the bank at its other end is reversed.
// @Tags banks
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Bank ID"
// @Success 200 {object} map[string]interface{} "Bank deleted successfully"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Router /api/banks/{id} [delete]
func deleteBank(c *gin.Context) {
	if err := service.DeleteBank(c.Request.Context(), ownerFrom(c), c.Param("id")); err != nil {
		log.Printf("Error deleting bank: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank deleted successfully"})
}
