package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestExportEndpointWritesSnapshot(t *testing.T) {
	r, _, cfg := newTestServer(t)

	seed := gin.H{
		"title": "Exported", "media_type": "book", "start_date": "2024-01-01",
		"tags": []string{"keeper"},
	}
	if w := doJSON(t, r, http.MethodPost, "/api/media", seed); w.Code != http.StatusCreated {
		t.Fatalf("seed failed: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/export", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Key   string `json:"key"`
		Count int    `json:"count"`
	}
	decodeBody(t, w, &resp)
	if resp.Count != 1 {
		t.Errorf("expected count 1, got %d", resp.Count)
	}

	data, err := os.ReadFile(filepath.Join(cfg.StorageLocalDir, filepath.FromSlash(resp.Key)))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, "Exported") || !strings.Contains(body, "keeper") {
		t.Errorf("snapshot missing expected content: %s", body)
	}
}
