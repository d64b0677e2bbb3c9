package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/ledger"
)

// Report handler functions. Each one fetches the filtered rows and runs
// the pure aggregation helpers over them.

// @Summary Category report
// @Description Income/expense totals per category, largest absolute net first. Empty categories fall into "Uncategorized".
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} CategorySummary "Per-category totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/categories [get]
func getCategoryReport(c *gin.Context) {
	txs, ok := fetchReportTransactions(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, convertCategorySummaries(ledger.SummarizeByCategory(txs)))
}

// @Summary Monthly report
// @Description Income/expense totals per calendar month, most recent first.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} PeriodSummary "Per-month totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/monthly [get]
func getMonthlyReport(c *gin.Context) {
	txs, ok := fetchReportTransactions(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, convertPeriodSummaries(ledger.SummarizeByMonth(txs)))
}

// @Summary Daily report
// @Description Income/expense totals per day, most recent first.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} PeriodSummary "Per-day totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/daily [get]
func getDailyReport(c *gin.Context) {
	txs, ok := fetchReportTransactions(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, convertPeriodSummaries(ledger.SummarizeByDay(txs)))
}

// @Summary People report
// @Description Net credit position per person (owe_me minus i_owe), largest absolute net first.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {array} PersonSummary "Per-person net positions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/people [get]
func getPeopleReport(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	credits, err := service.ListCredits(c.Request.Context(), ownerFrom(c), f)
	if err != nil {
		log.Printf("Error fetching credits for report: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, convertPersonSummaries(ledger.SummarizeByPerson(credits)))
}

// @Summary Dashboard overview
// @Description Combined totals: balance across banks, overall income/expense and the net credit position.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} Overview "Dashboard totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/dashboard [get]
func getDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerFrom(c)

	banks, err := service.ListBanks(ctx, owner)
	if err != nil {
		dashboardError(c, err)
		return
	}
	txs, err := service.ListTransactions(ctx, owner, ledger.Filter{})
	if err != nil {
		dashboardError(c, err)
		return
	}
	credits, err := service.ListCredits(ctx, owner, ledger.Filter{})
	if err != nil {
		dashboardError(c, err)
		return
	}

	o := ledger.Summarize(banks, txs, credits)
	c.JSON(http.StatusOK, Overview{
		TotalBalance: o.TotalBalance.StringFixed(2),
		TotalIncome:  o.TotalIncome.StringFixed(2),
		TotalExpense: o.TotalExpense.StringFixed(2),
		CreditNet:    o.CreditNet.StringFixed(2),
		BankCount:    o.BankCount,
	})
}

func dashboardError(c *gin.Context, err error) {
	log.Printf("Error building dashboard: %v", err)
	statusCode, message := handleStoreError(err)
	c.JSON(statusCode, gin.H{"error": message})
}

// fetchReportTransactions lists the caller's transactions for a report,
// writing the error response itself when something fails.
func fetchReportTransactions(c *gin.Context) ([]ledger.Transaction, bool) {
	f, err := parseFilter(c)
	if err != nil {
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return nil, false
	}

	txs, err := service.ListTransactions(c.Request.Context(), ownerFrom(c), f)
	if err != nil {
		log.Printf("Error fetching transactions for report: %v", err)
		statusCode, message := handleStoreError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return nil, false
	}
	return txs, true
}
