package main

import (
	"net/http"
	"testing"
)

// TestCategoryReport tests the GET /api/reports/categories endpoint
func TestCategoryReport(t *testing.T) {
	resetTestData()

	bank := createTestBank(t, "Checking", "1000")
	createTestTransaction(t, bank.ID, "expense", "120", "2026-08-01", "Groceries")
	createTestTransaction(t, bank.ID, "expense", "80", "2026-08-05", "Groceries")
	createTestTransaction(t, bank.ID, "income", "3000", "2026-08-01", "Salary")
	createTestTransaction(t, bank.ID, "expense", "15", "2026-08-03", "")

	resp := makeRequest("GET", "/api/reports/categories", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []CategorySummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 category buckets, got %d", len(summaries))
	}
	if summaries[0].Category != "Salary" || summaries[0].Net != "3000.00" {
		t.Errorf("Expected Salary first with net 3000.00, got %+v", summaries[0])
	}
	if summaries[1].Category != "Groceries" || summaries[1].Expense != "200.00" || summaries[1].Count != 2 {
		t.Errorf("Unexpected Groceries bucket: %+v", summaries[1])
	}
	if summaries[2].Category != "Uncategorized" {
		t.Errorf("Expected empty category to land in Uncategorized, got %s", summaries[2].Category)
	}
}

// TestPeriodReports tests the monthly and daily report endpoints
func TestPeriodReports(t *testing.T) {
	resetTestData()

	bank := createTestBank(t, "Checking", "1000")
	createTestTransaction(t, bank.ID, "income", "100", "2026-07-15", "")
	createTestTransaction(t, bank.ID, "expense", "30", "2026-07-20", "")
	createTestTransaction(t, bank.ID, "expense", "45", "2026-08-02", "")

	t.Run("monthly buckets most recent first", func(t *testing.T) {
		resp := makeRequest("GET", "/api/reports/monthly", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var summaries []PeriodSummary
		assertNoError(t, parseJSONResponse(resp, &summaries))

		if len(summaries) != 2 {
			t.Fatalf("Expected 2 monthly buckets, got %d", len(summaries))
		}
		if summaries[0].Period != "2026-08" || summaries[1].Period != "2026-07" {
			t.Errorf("Unexpected month order: %s, %s", summaries[0].Period, summaries[1].Period)
		}
		if summaries[1].Net != "70.00" {
			t.Errorf("Expected July net 70.00, got %s", summaries[1].Net)
		}
	})

	t.Run("daily buckets honour date filter", func(t *testing.T) {
		resp := makeRequest("GET", "/api/reports/daily?from=2026-08-01", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var summaries []PeriodSummary
		assertNoError(t, parseJSONResponse(resp, &summaries))

		if len(summaries) != 1 {
			t.Fatalf("Expected 1 daily bucket after filter, got %d", len(summaries))
		}
		if summaries[0].Period != "2026-08-02" || summaries[0].Expense != "45.00" {
			t.Errorf("Unexpected daily bucket: %+v", summaries[0])
		}
	})
}

// TestPeopleReport tests the GET /api/reports/people endpoint
func TestPeopleReport(t *testing.T) {
	resetTestData()

	createTestCredit(t, "Bob", "owe_me", "100")
	createTestCredit(t, "Bob", "i_owe", "40")
	createTestCredit(t, "Carol", "i_owe", "250")

	resp := makeRequest("GET", "/api/reports/people", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []PersonSummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 2 {
		t.Fatalf("Expected 2 people, got %d", len(summaries))
	}
	if summaries[0].PersonName != "Carol" || summaries[0].Net != "-250.00" {
		t.Errorf("Expected Carol first with net -250.00, got %+v", summaries[0])
	}
	if summaries[1].OwedToMe != "100.00" || summaries[1].IOwe != "40.00" || summaries[1].Net != "60.00" {
		t.Errorf("Unexpected Bob position: %+v", summaries[1])
	}
}

// TestDashboard tests the GET /api/dashboard endpoint
func TestDashboard(t *testing.T) {
	resetTestData()

	checking := createTestBank(t, "Checking", "1000")
	createTestBank(t, "Savings", "500")

	createTestTransaction(t, checking.ID, "income", "300", "2026-08-01", "")
	createTestTransaction(t, checking.ID, "expense", "120", "2026-08-02", "")
	createTestCredit(t, "Bob", "owe_me", "100")
	createTestCredit(t, "Carol", "i_owe", "30")

	resp := makeRequest("GET", "/api/dashboard", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	var overview Overview
	assertNoError(t, parseJSONResponse(resp, &overview))

	if overview.BankCount != 2 {
		t.Errorf("Expected 2 banks, got %d", overview.BankCount)
	}
	// 1000 + 300 - 120 + 500
	if overview.TotalBalance != "1680.00" {
		t.Errorf("Expected total balance 1680.00, got %s", overview.TotalBalance)
	}
	if overview.TotalIncome != "300.00" || overview.TotalExpense != "120.00" {
		t.Errorf("Unexpected income/expense totals: %+v", overview)
	}
	if overview.CreditNet != "70.00" {
		t.Errorf("Expected credit net 70.00, got %s", overview.CreditNet)
	}
}
