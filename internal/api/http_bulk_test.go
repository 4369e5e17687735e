package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"medialog/internal/entity"
)

func TestBulkEndpointMixedOutcome(t *testing.T) {
	r, _, _ := newTestServer(t)

	body := gin.H{"items": []gin.H{
		{"title": "good one", "media_type": "book", "start_date": "2024-01-01"},
		{"title": "bad one", "media_type": "betamax", "start_date": "2024-01-02"},
		{"title": "good two", "media_type": "movie", "start_date": "2024-01-03"},
	}}

	w := doJSON(t, r, http.MethodPost, "/api/media/bulk", body)
	if w.Code != http.StatusMultiStatus {
		t.Fatalf("expected 207, got %d: %s", w.Code, w.Body.String())
	}

	var resp entity.BulkResponse
	decodeBody(t, w, &resp)
	if len(resp.Results.Success) != 2 {
		t.Errorf("expected 2 successes, got %d", len(resp.Results.Success))
	}
	if len(resp.Results.Failed) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(resp.Results.Failed))
	}
	if resp.Results.Failed[0].Index != 1 {
		t.Errorf("expected failed index 1, got %d", resp.Results.Failed[0].Index)
	}
	if resp.Results.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Results.Total)
	}
}

func TestBulkEndpointAllSucceed(t *testing.T) {
	r, _, _ := newTestServer(t)

	body := gin.H{"items": []gin.H{
		{"title": "a", "media_type": "book", "start_date": "2024-01-01", "tags": []string{"x"}},
		{"title": "b", "media_type": "anime", "start_date": "2024-02-01", "tags": "x, y"},
	}}

	w := doJSON(t, r, http.MethodPost, "/api/media/bulk", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp entity.BulkResponse
	decodeBody(t, w, &resp)
	if !resp.Results.AllSucceeded() {
		t.Errorf("expected full success, failures: %+v", resp.Results.Failed)
	}
}

func TestBulkEndpointEmptyRejected(t *testing.T) {
	r, _, _ := newTestServer(t)

	for _, body := range []gin.H{
		{"items": []gin.H{}},
		{},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/media/bulk", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for empty items, got %d", w.Code)
		}
	}
}

func TestBulkEndpointOversizedRejectedBeforeStorage(t *testing.T) {
	r, repo, _ := newTestServer(t)

	items := make([]gin.H, entity.BulkMaxItems+1)
	for i := range items {
		items[i] = gin.H{"title": "x", "media_type": "book", "start_date": "2024-01-01"}
	}

	w := doJSON(t, r, http.MethodPost, "/api/media/bulk", gin.H{"items": items})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	count, err := repo.CountMedia(context.Background())
	if err != nil {
		t.Fatalf("count media: %v", err)
	}
	if count != 0 {
		t.Errorf("oversized batch must not insert rows, found %d", count)
	}
}

func TestBulkEndpointAllFailedStill207(t *testing.T) {
	r, _, _ := newTestServer(t)

	body := gin.H{"items": []gin.H{
		{"media_type": "book", "start_date": "2024-01-01"},
	}}

	w := doJSON(t, r, http.MethodPost, "/api/media/bulk", body)
	if w.Code != http.StatusMultiStatus {
		t.Fatalf("expected 207 for an all-failed batch, got %d", w.Code)
	}

	var resp entity.BulkResponse
	decodeBody(t, w, &resp)
	if len(resp.Results.Success) != 0 || len(resp.Results.Failed) != 1 {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
}
