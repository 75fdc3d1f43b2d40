package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"agrastra/internal/catalog"
	"agrastra/internal/feed"
	"agrastra/internal/ledger"
	"agrastra/internal/metrics"
	"agrastra/internal/pricing"
	"agrastra/internal/rewards"
	"agrastra/internal/server"
	"agrastra/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the full router backed by an in-memory store
// for integration testing.
func SetupTestRouter() *gin.Engine {
	router, _ := SetupTestRouterWithServices()
	return router
}

// SetupTestRouterWithServices additionally returns the wired services for
// tests that need to observe them directly.
func SetupTestRouterWithServices() (*gin.Engine, server.Services) {
	gin.SetMode(gin.TestMode)

	db := store.NewMemoryStore()
	feedManager := feed.NewManager()
	registry := metrics.NewRegistry()

	services := server.Services{
		Ledger:   ledger.NewAuctionLedger(db, feedManager, registry),
		Catalog:  catalog.NewCropCatalog(db),
		Pricing:  pricing.NewPriceService(),
		Rewards:  rewards.NewRewardService(db),
		Feed:     feedManager,
		Registry: registry,
	}
	return server.SetupRouter(services), services
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope, returning the data payload for 2xx responses.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}

// ParseDataList extracts the data payload of a list response.
func ParseDataList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	list, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp["data"])
	}
	return list
}
