package indexer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func pageBody(hashes []string, hasMore bool) string {
	items := ""
	for i, hash := range hashes {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{"tx_hash":%q,"successful":true,"value":"0"}`, hash)
	}
	return fmt.Sprintf(`{"data":{"items":[%s],"pagination":{"has_more":%t}},"error":false}`, items, hasMore)
}

func TestFetchPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page-size"); got != "1000" {
			t.Errorf("page-size = %s", got)
		}
		if got := r.URL.Query().Get("page-number"); got != "2" {
			t.Errorf("page-number = %s", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %s", got)
		}
		fmt.Fprint(w, pageBody([]string{"0x1", "0x2"}, true))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", DefaultPolicy, nil)
	page, err := client.FetchPage(context.Background(), 1, "0xabc", 1000, 2, PageOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 || !page.HasMore {
		t.Fatalf("page = %+v", page)
	}
	if page.Items[0].TxHash != "0x1" {
		t.Fatalf("first item = %+v", page.Items[0])
	}
}

func TestFetchPageNoLogsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("no-logs"); got != "true" {
			t.Errorf("no-logs = %s", got)
		}
		fmt.Fprint(w, pageBody(nil, false))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	if _, err := client.FetchPage(context.Background(), 1, "0xabc", 1000, 0, PageOptions{NoLogs: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchPageRetriesTransportFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, pageBody([]string{"0x1"}, false))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	page, err := client.FetchPage(context.Background(), 1, "0xabc", 1000, 0, PageOptions{})
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
	if len(page.Items) != 1 {
		t.Fatalf("page = %+v", page)
	}
}

func TestFetchPageExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	page, err := client.FetchPage(context.Background(), 1, "0xabc", 1000, 0, PageOptions{})
	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
	if page.HasMore {
		t.Fatalf("failed page must halt pagination")
	}
}

func TestFetchPageMalformedBodyRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	if _, err := client.FetchPage(context.Background(), 1, "0xabc", 1000, 0, PageOptions{}); err == nil {
		t.Fatalf("expected error for malformed body")
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestFetchPageUpstreamErrorFlagIsTerminal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		fmt.Fprint(w, `{"error":true,"error_message":"backend unavailable","error_code":503}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	page, err := client.FetchPage(context.Background(), 1, "0xabc", 1000, 0, PageOptions{})
	if err != nil {
		t.Fatalf("error flag must not surface an error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1 (no retry on logical errors)", attempts)
	}
	if page.HasMore || len(page.Items) != 0 {
		t.Fatalf("page = %+v, want empty terminal page", page)
	}
}

func TestFetchAllStopsOnLastPage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page := r.URL.Query().Get("page-number")
		fmt.Fprint(w, pageBody([]string{"0x" + page}, page != "2"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	items := client.FetchAll(context.Background(), 1, "0xabc", 100, PageOptions{})
	if requests != 3 {
		t.Fatalf("requests = %d, want 3", requests)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
}

func TestFetchAllReturnsPartialOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page-number") == "1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, pageBody([]string{"0x1"}, true))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	items := client.FetchAll(context.Background(), 1, "0xabc", 100, PageOptions{})
	if len(items) != 1 {
		t.Fatalf("items = %d, want the single page before the failure", len(items))
	}
}

func TestFetchAllRespectsPageCeiling(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, pageBody([]string{"0x1"}, true))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", DefaultPolicy, nil)
	client.FetchAll(context.Background(), 1, "0xabc", 5, PageOptions{})
	if requests != 5 {
		t.Fatalf("requests = %d, want ceiling of 5", requests)
	}
}
