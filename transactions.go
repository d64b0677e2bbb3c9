package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/ledger"
)

// Transaction handler functions

type transactionRequest struct {
	BankID     string `json:"bank_id" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=income expense"`
	Amount     string `json:"amount" binding:"required"`
	Date       string `json:"date"`
	Category   string `json:"category"`
	Notes      string `json:"notes"`
	PersonName string `json:"person_name"`
}

func (req transactionRequest) toDomain() (ledger.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return ledger.Transaction{}, err
	}
	return ledger.Transaction{
		BankID:     req.BankID,
		Type:       ledger.EntryType(req.Type),
		Amount:     amount,
		Date:       date,
		Category:   req.Category,
		Notes:      req.Notes,
		PersonName: req.PersonName,
	}, nil
}

// @Summary Get transactions
// @Description Retrieve the caller's transactions, most recent first. Supports bank_id, type, category, person, from and to query filters.
// @Tags transactions
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param bank_id query string false "Filter by bank"
// @Param type query string false "Filter by type (income or expense)"
// @Param category query string false "Filter by category"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} Transaction "List of transactions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	txs, err := service.ListTransactions(c.Request.Context(), ownerFrom(c), f)
	if err != nil {
		log.Printf("Error fetching transactions: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	result := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		result = append(result, convertTransaction(t))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Create transaction
// @Description Record an income or expense entry. The bank's balance is adjusted by the signed amount in the same database transaction.
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param transaction body transactionRequest true "Transaction data"
// @Success 201 {object} Transaction "Created transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	input, err := req.toDomain()
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	t, err := service.CreateTransaction(c.Request.Context(), ownerFrom(c), input)
	if err != nil {
		log.Printf("Error creating transaction: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertTransaction(t))
}

// @Summary Update transaction
// @Description Edit a transaction in place. The stored entry's effect is reversed against its original bank and the new state applied against the submitted bank.
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Transaction ID"
// @Param transaction body transactionRequest true "Updated transaction data"
// @Success 200 {object} Transaction "Updated transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [put]
func updateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	input, err := req.toDomain()
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	t, err := service.UpdateTransaction(c.Request.Context(), ownerFrom(c), c.Param("id"), input)
	if err != nil {
		log.Printf("Error updating transaction: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertTransaction(t))
}

// @Summary Delete transaction
// @Description Delete a transaction and reverse its balance effect.
// @Tags transactions
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction deleted successfully"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	if err := service.DeleteTransaction(c.Request.Context(), ownerFrom(c), c.Param("id")); err != nil {
		log.Printf("Error deleting transaction: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
