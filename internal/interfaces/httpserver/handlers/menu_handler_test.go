package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
	"lumina-server/concierge-api/internal/interfaces/httpserver/responses"
)

func setupMenuTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewMenuHandler(menu.NewCatalog(), zerolog.Nop())
	router := gin.New()
	router.GET("/v1/menu", handler.List)
	router.GET("/v1/menu/fact", handler.Fact)
	return router
}

func TestMenuHandler_List(t *testing.T) {
	router := setupMenuTestRouter()

	req, _ := http.NewRequest("GET", "/v1/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp responses.MenuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("Expected menu items")
	}
}

func TestMenuHandler_ListByCategory(t *testing.T) {
	router := setupMenuTestRouter()

	req, _ := http.NewRequest("GET", "/v1/menu?category=Starters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp responses.MenuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	for _, item := range resp.Items {
		if item.Category != "Starters" {
			t.Errorf("Expected only starters, got %q", item.Category)
		}
	}
}

func TestMenuHandler_ListUnknownCategory(t *testing.T) {
	router := setupMenuTestRouter()

	req, _ := http.NewRequest("GET", "/v1/menu?category=Breakfast", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestMenuHandler_Fact(t *testing.T) {
	router := setupMenuTestRouter()

	req, _ := http.NewRequest("GET", "/v1/menu/fact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp responses.FactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Fact == "" {
		t.Error("Expected a non-empty fact")
	}
}
