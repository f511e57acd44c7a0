package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	exchange "sole-exchange/internal/exchangeService"
	"sole-exchange/internal/matching"
	model "sole-exchange/internal/models"
	"sole-exchange/internal/repository"
	"sole-exchange/internal/server"
	"sole-exchange/internal/settlement"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with the full in-memory stack and an
// empty catalog for integration testing.
func SetupTestRouter() *gin.Engine {
	return SetupTestRouterWithVariants()
}

// SetupTestRouterWithVariants initializes the router and seeds the catalog.
// Each variant's product is created automatically.
func SetupTestRouterWithVariants(variants ...model.SizeVariant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	seen := make(map[string]bool)
	for _, v := range variants {
		if !seen[v.ProductID] {
			repo.AddProduct(model.Product{ProductID: v.ProductID, Name: v.ProductID, Brand: "test"})
			seen[v.ProductID] = true
		}
		repo.AddVariant(v)
	}

	recorder := settlement.NewRecorder(repo, settlement.DefaultMaxAttempts)
	engine := matching.NewEngine(repo, recorder)
	service := exchange.NewExchangeService(repo, engine)
	return server.SetupRouter(service)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
