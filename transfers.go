package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/ledger"
)

// Transfer handler functions. Transfers support create and delete only;
// editing one means deleting it and recreating it.

type transferRequest struct {
	FromBankID string `json:"from_bank_id" binding:"required"`
	ToBankID   string `json:"to_bank_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
}

// @Summary Get transfers
// @Description Retrieve the caller's transfers, most recent first. bank_id matches either side.
// @Tags transfers
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param bank_id query string false "Filter by bank (either side)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} Transfer "List of transfers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transfers [get]
func getTransfers(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	transfers, err := service.ListTransfers(c.Request.Context(), ownerFrom(c), f)
	if err != nil {
		log.Printf("Error fetching transfers: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	result := make([]Transfer, 0, len(transfers))
	for _, tr := range transfers {
		result = append(result, convertTransfer(tr))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Create transfer
// @Description Move funds between two distinct banks: the source is debited and the destination credited in the same database transaction.
// @Tags transfers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param transfer body transferRequest true "Transfer data"
// @Success 201 {object} Transfer "Created transfer"
// @Failure 400 {object} map[string]interface{} "Bad request (including from_bank_id == to_bank_id)"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transfers [post]
func createTransfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	tr, err := service.CreateTransfer(c.Request.Context(), ownerFrom(c), ledger.Transfer{
		FromBankID: req.FromBankID,
		ToBankID:   req.ToBankID,
		Amount:     amount,
		Date:       date,
		Notes:      req.Notes,
	})
	if err != nil {
		log.Printf("Error creating transfer: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertTransfer(tr))
}

// @Summary Delete transfer
// @Description Delete a transfer, restoring both bank balances.
// @Tags transfers
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Transfer ID"
// @Success 200 {object} map[string]interface{} "Transfer deleted successfully"
// @Failure 404 {object} map[string]interface{} "Transfer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transfers/{id} [delete]
func deleteTransfer(c *gin.Context) {
	if err := service.DeleteTransfer(c.Request.Context(), ownerFrom(c), c.Param("id")); err != nil {
		log.Printf("Error deleting transfer: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer deleted successfully"})
}
