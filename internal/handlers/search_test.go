package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/azwatch/campfin-backend/internal/models"
)

func TestSearch_Success(t *testing.T) {
	svc := &stubSearchService{results: []models.SearchResult{
		{EntityID: 1, Name: "Committee to Elect"},
	}}
	h := NewSearchHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, SearchSvc: svc})
	rh := h.ResponseHandler.(*stubResponseHandler)

	h.Search(newRecorder(), httptest.NewRequest("GET", "/api/search?q=elect&limit=10&offset=5", nil))

	if !rh.writeSuccessCalled || rh.successStatus != 200 {
		t.Fatalf("expected 200, got %+v", rh)
	}
	if svc.lastQuery != "elect" || svc.lastLimit != 10 || svc.lastOffset != 5 {
		t.Errorf("service args = %q/%d/%d", svc.lastQuery, svc.lastLimit, svc.lastOffset)
	}
}

func TestSearch_EmptyQueryStill200(t *testing.T) {
	svc := &stubSearchService{results: []models.SearchResult{}}
	h := NewSearchHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, SearchSvc: svc})
	rh := h.ResponseHandler.(*stubResponseHandler)

	h.Search(newRecorder(), httptest.NewRequest("GET", "/api/search", nil))

	if !rh.writeSuccessCalled {
		t.Fatal("search never errors")
	}
	results, ok := rh.successData.([]models.SearchResult)
	if !ok || len(results) != 0 {
		t.Errorf("data = %#v", rh.successData)
	}
}

func TestSearch_GarbageLimitPassedThrough(t *testing.T) {
	// Non-numeric limit parses to zero; the service substitutes its default.
	svc := &stubSearchService{}
	h := NewSearchHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, SearchSvc: svc})

	h.Search(newRecorder(), httptest.NewRequest("GET", "/api/search?q=x&limit=lots", nil))

	if svc.lastLimit != 0 {
		t.Errorf("limit = %d", svc.lastLimit)
	}
}
