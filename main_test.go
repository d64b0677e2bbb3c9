package main

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/ledger"
	"fintrack/store"
)

const testUser = "test-user"

var testRouter *gin.Engine

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	testRouter = setupRouter([]string{"http://localhost:3000"})
	os.Exit(m.Run())
}

// resetTestData swaps in a fresh in-memory store for a clean state
func resetTestData() {
	service = ledger.NewService(store.NewMemory())
}

// makeRequest helper function for making HTTP requests as the test user
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	return makeRequestAs(testUser, method, url, body)
}

// makeRequestAs helper function for making HTTP requests as a specific user
func makeRequestAs(user, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeMultipartRequest helper function for making multipart requests (file uploads)
func makeMultipartRequest(url string, fieldName, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		panic(err)
	}

	part.Write(fileContent)
	writer.Close()

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-User-ID", testUser)

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// jsonBody helper function to build a JSON request body
func jsonBody(v interface{}) io.Reader {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(data)
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// assertBalanceEquals helper function to assert a bank's balance via the API
func assertBalanceEquals(t *testing.T, bankID, expected string) {
	t.Helper()

	resp := makeRequest("GET", "/api/banks/"+bankID, nil)
	assertStatusCode(t, 200, resp.Code)

	var bank Bank
	assertNoError(t, parseJSONResponse(resp, &bank))

	if bank.Balance != expected {
		t.Errorf("Expected balance %s, got %s", expected, bank.Balance)
	}
}

// createTestBank creates a bank through the API and returns it
func createTestBank(t *testing.T, name, balance string) Bank {
	t.Helper()

	resp := makeRequest("POST", "/api/banks", jsonBody(map[string]string{
		"name":    name,
		"balance": balance,
	}))
	if resp.Code != 201 {
		t.Fatalf("Failed to create test bank: status %d, body %s", resp.Code, resp.Body.String())
	}

	var bank Bank
	assertNoError(t, parseJSONResponse(resp, &bank))
	return bank
}

// createTestTransaction creates a transaction through the API and returns it
func createTestTransaction(t *testing.T, bankID, txType, amount, date, category string) Transaction {
	t.Helper()

	resp := makeRequest("POST", "/api/transactions", jsonBody(map[string]string{
		"bank_id":  bankID,
		"type":     txType,
		"amount":   amount,
		"date":     date,
		"category": category,
	}))
	if resp.Code != 201 {
		t.Fatalf("Failed to create test transaction: status %d, body %s", resp.Code, resp.Body.String())
	}

	var tx Transaction
	assertNoError(t, parseJSONResponse(resp, &tx))
	return tx
}

// createTestTransfer creates a transfer through the API and returns it
func createTestTransfer(t *testing.T, fromBankID, toBankID, amount string) Transfer {
	t.Helper()

	resp := makeRequest("POST", "/api/transfers", jsonBody(map[string]string{
		"from_bank_id": fromBankID,
		"to_bank_id":   toBankID,
		"amount":       amount,
	}))
	if resp.Code != 201 {
		t.Fatalf("Failed to create test transfer: status %d, body %s", resp.Code, resp.Body.String())
	}

	var tr Transfer
	assertNoError(t, parseJSONResponse(resp, &tr))
	return tr
}

// createTestCredit creates a credit through the API and returns it
func createTestCredit(t *testing.T, person, creditType, amount string) Credit {
	t.Helper()

	resp := makeRequest("POST", "/api/credits", jsonBody(map[string]string{
		"person_name": person,
		"type":        creditType,
		"amount":      amount,
	}))
	if resp.Code != 201 {
		t.Fatalf("Failed to create test credit: status %d, body %s", resp.Code, resp.Body.String())
	}

	var cr Credit
	assertNoError(t, parseJSONResponse(resp, &cr))
	return cr
}

// TestMissingUserHeader verifies the API rejects anonymous requests
func TestMissingUserHeader(t *testing.T) {
	resetTestData()

	for _, url := range []string{"/api/banks", "/api/transactions", "/api/dashboard"} {
		resp := makeRequestAs("", "GET", url, nil)
		if resp.Code != 401 {
			t.Errorf("Expected status 401 for %s without X-User-ID, got %d", url, resp.Code)
		}
	}
}
