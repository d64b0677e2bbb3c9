package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/ledger"
)

// Credit handler functions. Credits are an independent IOU ledger; they
// never touch a bank balance.

type creditRequest struct {
	PersonName  string `json:"person_name" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=owe_me i_owe"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (req creditRequest) toDomain() (ledger.Credit, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return ledger.Credit{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return ledger.Credit{}, err
	}
	return ledger.Credit{
		PersonName:  req.PersonName,
		Amount:      amount,
		Type:        ledger.CreditType(req.Type),
		Description: req.Description,
		Date:        date,
	}, nil
}

// @Summary Get credits
// @Description Retrieve the caller's credit records, most recent first.
// @Tags credits
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param person query string false "Filter by person name"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} Credit "List of credits"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/credits [get]
func getCredits(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	credits, err := service.ListCredits(c.Request.Context(), ownerFrom(c), f)
	if err != nil {
		log.Printf("Error fetching credits: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	result := make([]Credit, 0, len(credits))
	for _, cr := range credits {
		result = append(result, convertCredit(cr))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Create credit
// @Description Record a personal IOU (owe_me or i_owe).
// @Tags credits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param credit body creditRequest true "Credit data"
// @Success 201 {object} Credit "Created credit"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/credits [post]
func createCredit(c *gin.Context) {
	var req creditRequest
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

	cr, err := service.CreateCredit(c.Request.Context(), ownerFrom(c), input)
	if err != nil {
		log.Printf("Error creating credit: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertCredit(cr))
}

// @Summary Update credit
// @Description Edit a credit record in place.
// @Tags credits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Credit ID"
// @Param credit body creditRequest true "Updated credit data"
// @Success 200 {object} Credit "Updated credit"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Credit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/credits/{id} [put]
func updateCredit(c *gin.Context) {
	var req creditRequest
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

	cr, err := service.UpdateCredit(c.Request.Context(), ownerFrom(c), c.Param("id"), input)
	if err != nil {
		log.Printf("Error updating credit: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertCredit(cr))
}

// @Summary Delete credit
// @Description Delete a credit record.
// @Tags credits
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Credit ID"
// @Success 200 {object} map[string]interface{} "Credit deleted successfully"
// @Failure 404 {object} map[string]interface{} "Credit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/credits/{id} [delete]
func deleteCredit(c *gin.Context) {
	if err := service.DeleteCredit(c.Request.Context(), ownerFrom(c), c.Param("id")); err != nil {
		log.Printf("Error deleting credit: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Credit deleted successfully"})
}
