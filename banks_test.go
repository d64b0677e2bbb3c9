package main

import (
	"net/http"
	"testing"
)

// TestGetBanks tests the GET /api/banks endpoint
func TestGetBanks(t *testing.T) {
	resetTestData()

	t.Run("should return empty list when no banks exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/banks", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var banks []Bank
		assertNoError(t, parseJSONResponse(resp, &banks))

		if len(banks) != 0 {
			t.Errorf("Expected empty list, got %d banks", len(banks))
		}
	})

	t.Run("should return list of banks when they exist", func(t *testing.T) {
		createTestBank(t, "Checking", "1000")
		createTestBank(t, "Savings", "250.50")

		resp := makeRequest("GET", "/api/banks", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var banks []Bank
		assertNoError(t, parseJSONResponse(resp, &banks))

		if len(banks) != 2 {
			t.Fatalf("Expected 2 banks, got %d", len(banks))
		}

		found := make(map[string]string)
		for _, bank := range banks {
			found[bank.Name] = bank.Balance
		}
		if found["Checking"] != "1000.00" {
			t.Errorf("Expected Checking balance 1000.00, got %s", found["Checking"])
		}
		if found["Savings"] != "250.50" {
			t.Errorf("Expected Savings balance 250.50, got %s", found["Savings"])
		}
	})

	t.Run("should not return another user's banks", func(t *testing.T) {
		resp := makeRequestAs("someone-else", "GET", "/api/banks", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var banks []Bank
		assertNoError(t, parseJSONResponse(resp, &banks))

		if len(banks) != 0 {
			t.Errorf("Expected empty list for other user, got %d banks", len(banks))
		}
	})
}

// TestCreateBank tests the POST /api/banks endpoint
func TestCreateBank(t *testing.T) {
	resetTestData()

	t.Run("should create bank with opening balance", func(t *testing.T) {
		resp := makeRequest("POST", "/api/banks", jsonBody(map[string]string{
			"name":    "Checking",
			"balance": "1500.25",
			"color":   "#3366ff",
		}))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var bank Bank
		assertNoError(t, parseJSONResponse(resp, &bank))

		if bank.ID == "" {
			t.Error("Expected a generated bank ID")
		}
		if bank.Balance != "1500.25" {
			t.Errorf("Expected balance 1500.25, got %s", bank.Balance)
		}
		if bank.Color == nil || *bank.Color != "#3366ff" {
			t.Error("Expected color to round-trip")
		}
	})

	t.Run("should default missing balance to zero", func(t *testing.T) {
		resp := makeRequest("POST", "/api/banks", jsonBody(map[string]string{
			"name": "Empty",
		}))

		assertStatusCode(t, http.StatusCreated, resp.Code)

		var bank Bank
		assertNoError(t, parseJSONResponse(resp, &bank))

		if bank.Balance != "0.00" {
			t.Errorf("Expected balance 0.00, got %s", bank.Balance)
		}
	})

	t.Run("should reject missing name", func(t *testing.T) {
		resp := makeRequest("POST", "/api/banks", jsonBody(map[string]string{
			"balance": "100",
		}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should reject non-numeric balance", func(t *testing.T) {
		resp := makeRequest("POST", "/api/banks", jsonBody(map[string]string{
			"name":    "Broken",
			"balance": "lots",
		}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should reject duplicate name for the same user", func(t *testing.T) {
		resp := makeRequest("POST", "/api/banks", jsonBody(map[string]string{
			"name": "Checking",
		}))

		assertStatusCode(t, http.StatusConflict, resp.Code)
	})

	t.Run("should let another user reuse the name", func(t *testing.T) {
		resp := makeRequestAs("someone-else", "POST", "/api/banks", jsonBody(map[string]string{
			"name": "Checking",
		}))

		assertStatusCode(t, http.StatusCreated, resp.Code)
	})
}

// TestUpdateBank tests the PUT /api/banks/:id endpoint
func TestUpdateBank(t *testing.T) {
	resetTestData()

	t.Run("should rename without touching the balance", func(t *testing.T) {
		bank := createTestBank(t, "Checking", "1000")

		resp := makeRequest("PUT", "/api/banks/"+bank.ID, jsonBody(map[string]string{
			"name":  "Main Checking",
			"color": "#00ff00",
		}))

		assertStatusCode(t, http.StatusOK, resp.Code)

		var updated Bank
		assertNoError(t, parseJSONResponse(resp, &updated))

		if updated.Name != "Main Checking" {
			t.Errorf("Expected name Main Checking, got %s", updated.Name)
		}
		if updated.Balance != "1000.00" {
			t.Errorf("Expected balance 1000.00, got %s", updated.Balance)
		}
	})

	t.Run("should return 404 for unknown bank", func(t *testing.T) {
		resp := makeRequest("PUT", "/api/banks/nope", jsonBody(map[string]string{
			"name": "Ghost",
		}))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should reject renaming onto an existing bank name", func(t *testing.T) {
		createTestBank(t, "Alpha", "0")
		beta := createTestBank(t, "Beta", "0")

		resp := makeRequest("PUT", "/api/banks/"+beta.ID, jsonBody(map[string]string{
			"name": "Alpha",
		}))

		assertStatusCode(t, http.StatusConflict, resp.Code)
	})

	t.Run("should return 403 for another user's bank", func(t *testing.T) {
		bank := createTestBank(t, "Private", "10")

		resp := makeRequestAs("someone-else", "PUT", "/api/banks/"+bank.ID, jsonBody(map[string]string{
			"name": "Stolen",
		}))

		assertStatusCode(t, http.StatusForbidden, resp.Code)
	})
}

// TestDeleteBank tests the DELETE /api/banks/:id endpoint
func TestDeleteBank(t *testing.T) {
	resetTestData()

	t.Run("should delete bank and its ledger rows", func(t *testing.T) {
		bank := createTestBank(t, "Doomed", "500")
		createTestTransaction(t, bank.ID, "expense", "50", "2026-08-01", "Food")

		resp := makeRequest("DELETE", "/api/banks/"+bank.ID, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("GET", "/api/banks/"+bank.ID, nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)

		resp = makeRequest("GET", "/api/transactions", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var txs []Transaction
		assertNoError(t, parseJSONResponse(resp, &txs))
		if len(txs) != 0 {
			t.Errorf("Expected transactions to be removed with the bank, got %d", len(txs))
		}
	})

	t.Run("should reverse transfer legs on surviving banks", func(t *testing.T) {
		checking := createTestBank(t, "Closing", "1000")
		savings := createTestBank(t, "Surviving", "0")
		createTestTransfer(t, checking.ID, savings.ID, "100")
		assertBalanceEquals(t, savings.ID, "100.00")

		resp := makeRequest("DELETE", "/api/banks/"+checking.ID, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		// The cascaded transfer's credit is undone with it.
		assertBalanceEquals(t, savings.ID, "0.00")
	})

	t.Run("should return 404 for unknown bank", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/banks/nope", nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}
