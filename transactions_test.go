package main

import (
	"net/http"
	"testing"
)

// TestCreateTransaction tests the POST /api/transactions endpoint
func TestCreateTransaction(t *testing.T) {
	resetTestData()

	t.Run("income should raise the bank balance", func(t *testing.T) {
		bank := createTestBank(t, "Checking", "1000")

		createTestTransaction(t, bank.ID, "income", "500", "2026-08-10", "Salary")

		assertBalanceEquals(t, bank.ID, "1500.00")
	})

	t.Run("expense should lower the bank balance", func(t *testing.T) {
		bank := createTestBank(t, "Wallet", "100")

		createTestTransaction(t, bank.ID, "expense", "37.25", "2026-08-10", "Food")

		assertBalanceEquals(t, bank.ID, "62.75")
	})

	t.Run("expense may drive the balance negative", func(t *testing.T) {
		bank := createTestBank(t, "Thin", "30")

		createTestTransaction(t, bank.ID, "expense", "50", "2026-08-10", "Food")

		assertBalanceEquals(t, bank.ID, "-20.00")
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		bank := createTestBank(t, "Typed", "100")

		resp := makeRequest("POST", "/api/transactions", jsonBody(map[string]string{
			"bank_id": bank.ID,
			"type":    "refund",
			"amount":  "10",
		}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assertBalanceEquals(t, bank.ID, "100.00")
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		bank := createTestBank(t, "Zeroed", "100")

		resp := makeRequest("POST", "/api/transactions", jsonBody(map[string]string{
			"bank_id": bank.ID,
			"type":    "income",
			"amount":  "-5",
		}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assertBalanceEquals(t, bank.ID, "100.00")
	})

	t.Run("should return 404 for unknown bank", func(t *testing.T) {
		resp := makeRequest("POST", "/api/transactions", jsonBody(map[string]string{
			"bank_id": "nope",
			"type":    "income",
			"amount":  "10",
		}))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestGetTransactions tests the GET /api/transactions endpoint
func TestGetTransactions(t *testing.T) {
	resetTestData()

	bank := createTestBank(t, "Checking", "1000")
	other := createTestBank(t, "Savings", "0")

	createTestTransaction(t, bank.ID, "income", "500", "2026-08-01", "Salary")
	createTestTransaction(t, bank.ID, "expense", "120", "2026-08-05", "Groceries")
	createTestTransaction(t, other.ID, "expense", "40", "2026-08-07", "Groceries")

	t.Run("should return all transactions most recent first", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var txs []Transaction
		assertNoError(t, parseJSONResponse(resp, &txs))

		if len(txs) != 3 {
			t.Fatalf("Expected 3 transactions, got %d", len(txs))
		}
		if txs[0].Date != "2026-08-07" || txs[2].Date != "2026-08-01" {
			t.Errorf("Expected transactions ordered by date descending, got %s .. %s", txs[0].Date, txs[2].Date)
		}
	})

	t.Run("should filter by bank", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions?bank_id="+other.ID, nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var txs []Transaction
		assertNoError(t, parseJSONResponse(resp, &txs))

		if len(txs) != 1 {
			t.Fatalf("Expected 1 transaction for bank filter, got %d", len(txs))
		}
		if txs[0].BankID != other.ID {
			t.Errorf("Expected bank %s, got %s", other.ID, txs[0].BankID)
		}
	})

	t.Run("should filter by category and type", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions?category=Groceries&type=expense", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var txs []Transaction
		assertNoError(t, parseJSONResponse(resp, &txs))

		if len(txs) != 2 {
			t.Errorf("Expected 2 grocery expenses, got %d", len(txs))
		}
	})

	t.Run("should filter by date range", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions?from=2026-08-02&to=2026-08-06", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var txs []Transaction
		assertNoError(t, parseJSONResponse(resp, &txs))

		if len(txs) != 1 {
			t.Fatalf("Expected 1 transaction in range, got %d", len(txs))
		}
		if txs[0].Date != "2026-08-05" {
			t.Errorf("Expected the 2026-08-05 transaction, got %s", txs[0].Date)
		}
	})

	t.Run("should reject malformed date filter", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions?from=yesterday", nil)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestUpdateTransaction tests the PUT /api/transactions/:id endpoint
func TestUpdateTransaction(t *testing.T) {
	resetTestData()

	t.Run("should swap the old effect for the new one", func(t *testing.T) {
		bank := createTestBank(t, "Checking", "1000")
		tx := createTestTransaction(t, bank.ID, "income", "500", "2026-08-10", "Salary")
		assertBalanceEquals(t, bank.ID, "1500.00")

		resp := makeRequest("PUT", "/api/transactions/"+tx.ID, jsonBody(map[string]string{
			"bank_id": bank.ID,
			"type":    "expense",
			"amount":  "200",
		}))

		assertStatusCode(t, http.StatusOK, resp.Code)
		assertBalanceEquals(t, bank.ID, "800.00")
	})

	t.Run("should move the effect when the bank changes", func(t *testing.T) {
		first := createTestBank(t, "First", "1000")
		second := createTestBank(t, "Second", "0")
		tx := createTestTransaction(t, first.ID, "income", "250", "2026-08-10", "")

		resp := makeRequest("PUT", "/api/transactions/"+tx.ID, jsonBody(map[string]string{
			"bank_id": second.ID,
			"type":    "income",
			"amount":  "250",
		}))

		assertStatusCode(t, http.StatusOK, resp.Code)
		assertBalanceEquals(t, first.ID, "1000.00")
		assertBalanceEquals(t, second.ID, "250.00")
	})

	t.Run("should return 404 for unknown transaction", func(t *testing.T) {
		bank := createTestBank(t, "Lonely", "10")

		resp := makeRequest("PUT", "/api/transactions/nope", jsonBody(map[string]string{
			"bank_id": bank.ID,
			"type":    "income",
			"amount":  "1",
		}))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("validation failure should leave the balance alone", func(t *testing.T) {
		bank := createTestBank(t, "Stable", "100")
		tx := createTestTransaction(t, bank.ID, "income", "50", "2026-08-10", "")

		resp := makeRequest("PUT", "/api/transactions/"+tx.ID, jsonBody(map[string]string{
			"bank_id": bank.ID,
			"type":    "income",
			"amount":  "0",
		}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assertBalanceEquals(t, bank.ID, "150.00")
	})
}

// TestDeleteTransaction tests the DELETE /api/transactions/:id endpoint
func TestDeleteTransaction(t *testing.T) {
	resetTestData()

	t.Run("should reverse the balance effect", func(t *testing.T) {
		bank := createTestBank(t, "Checking", "1000")
		tx := createTestTransaction(t, bank.ID, "expense", "120.55", "2026-08-10", "")
		assertBalanceEquals(t, bank.ID, "879.45")

		resp := makeRequest("DELETE", "/api/transactions/"+tx.ID, nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assertBalanceEquals(t, bank.ID, "1000.00")
	})

	t.Run("should return 404 for unknown transaction", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/transactions/nope", nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 403 for another user's transaction", func(t *testing.T) {
		bank := createTestBank(t, "Guarded", "100")
		tx := createTestTransaction(t, bank.ID, "income", "10", "2026-08-10", "")

		resp := makeRequestAs("someone-else", "DELETE", "/api/transactions/"+tx.ID, nil)

		assertStatusCode(t, http.StatusForbidden, resp.Code)
		assertBalanceEquals(t, bank.ID, "110.00")
	})
}
