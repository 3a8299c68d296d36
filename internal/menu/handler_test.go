package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupMenuTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(repo)
	handler := NewHandler(service)

	r.GET("/menu-items", handler.List)
	r.POST("/menu-items", handler.Create)
	r.GET("/menu-items/:id", handler.Get)
	r.PUT("/menu-items/:id", handler.Update)
	r.DELETE("/menu-items/:id", handler.Delete)

	return r
}

func TestCreateMenuItem(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupMenuTestRouter(repo)

	payload := map[string]interface{}{
		"name":     "Ribeye Steak",
		"category": "main_course",
		"price":    34.00,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/menu-items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var created Item
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Station != "grill" {
		t.Fatalf("expected inferred station grill, got %s", created.Station)
	}
	if !created.Active {
		t.Fatal("new items must start active")
	}
}

func TestCreateMenuItemRequiresName(t *testing.T) {
	router := setupMenuTestRouter(NewInMemoryRepository())

	body, _ := json.Marshal(map[string]interface{}{"price": 5.0})
	req := httptest.NewRequest(http.MethodPost, "/menu-items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteDeactivatesItem(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupMenuTestRouter(repo)

	service := NewService(repo)
	item, err := service.Create(context.Background(), &Item{Name: "Fish Tacos"})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/menu-items/"+item.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	active, _ := repo.ListActive(context.Background())
	if len(active) != 0 {
		t.Fatalf("expected no active items, got %d", len(active))
	}
}

func TestCatalogUsesActiveItemsOrderedByName(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	for _, name := range []string{"Ribeye Steak", "Caesar Salad", "Fish Tacos"} {
		if _, err := service.Create(ctx, &Item{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := service.Catalog(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []string{"Caesar Salad", "Fish Tacos", "Ribeye Steak"}
	for i, entry := range entries {
		if entry.Name != want[i] {
			t.Fatalf("entry %d = %s, want %s", i, entry.Name, want[i])
		}
	}
}
