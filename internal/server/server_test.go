package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geekysharma31/closet-api/internal/config"
	"github.com/geekysharma31/closet-api/internal/mail"
	"github.com/geekysharma31/closet-api/internal/repository"
)

type recordingSender struct {
	sent []mail.Message
}

func (r *recordingSender) Send(_ context.Context, msg mail.Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

func newTestServer(t *testing.T, sender mail.Sender) *Server {
	t.Helper()
	cfg := &config.Config{
		EnquiryFrom: "do-not-reply@example.com",
		EnquiryTo:   "owner@example.com",
		UploadsDir:  t.TempDir(),
	}
	return New(repository.NewMemoryRepository(), cfg, sender)
}

func doJSON(t *testing.T, srv *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateItemReturnsCreated(t *testing.T) {
	srv := newTestServer(t, &recordingSender{})

	rec := doJSON(t, srv, http.MethodPost, "/api/items",
		`{"name":"Red Shirt","type":"Shirt","description":"Cotton","coverImage":"https://x/a.jpg"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Item    struct {
			ID               string   `json:"id"`
			Name             string   `json:"name"`
			AdditionalImages []string `json:"additionalImages"`
		} `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Item successfully added" {
		t.Fatalf("message=%q", resp.Message)
	}
	if resp.Item.ID == "" {
		t.Fatal("item id is empty")
	}
	if resp.Item.AdditionalImages == nil || len(resp.Item.AdditionalImages) != 0 {
		t.Fatalf("additionalImages=%v, want []", resp.Item.AdditionalImages)
	}
}

func TestCreateItemMissingFieldLeavesStoreUnchanged(t *testing.T) {
	srv := newTestServer(t, &recordingSender{})

	rec := doJSON(t, srv, http.MethodPost, "/api/items",
		`{"name":"Red Shirt","type":"Shirt","description":"Cotton"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Missing required fields" {
		t.Fatalf("message=%q", resp.Message)
	}

	list := doJSON(t, srv, http.MethodGet, "/api/items", "")
	var items []json.RawMessage
	if err := json.Unmarshal(list.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items after rejected create, want 0", len(items))
	}
}

func TestListItemsEmptyStore(t *testing.T) {
	srv := newTestServer(t, &recordingSender{})

	rec := doJSON(t, srv, http.MethodGet, "/api/items", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if got := bytes.TrimSpace(rec.Body.Bytes()); string(got) != "[]" {
		t.Fatalf("body=%s, want []", got)
	}
}

func TestListItemsAfterCreates(t *testing.T) {
	srv := newTestServer(t, &recordingSender{})

	bodies := []string{
		`{"name":"Red Shirt","type":"Shirt","description":"Cotton","coverImage":"https://x/a.jpg"}`,
		`{"name":"Blue Pant","type":"Pant","description":"Denim","coverImage":"https://x/b.jpg","additionalImages":["https://x/b2.jpg"]}`,
	}
	for _, b := range bodies {
		if rec := doJSON(t, srv, http.MethodPost, "/api/items", b); rec.Code != http.StatusCreated {
			t.Fatalf("create status=%d body=%s", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/items", "")
	var items []struct {
		Name             string   `json:"name"`
		AdditionalImages []string `json:"additionalImages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "Red Shirt" || items[1].Name != "Blue Pant" {
		t.Fatalf("order: %q, %q", items[0].Name, items[1].Name)
	}
	if len(items[1].AdditionalImages) != 1 || items[1].AdditionalImages[0] != "https://x/b2.jpg" {
		t.Fatalf("additionalImages=%v", items[1].AdditionalImages)
	}
}

func TestEnquireDispatchesMail(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender)

	rec := doJSON(t, srv, http.MethodPost, "/api/enquire",
		`{"item":{"name":"Red Shirt","type":"Shirt","description":"Cotton","coverImage":"https://x/a.jpg","additionalImages":[]}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Enquiry sent successfully!" {
		t.Fatalf("message=%q", resp.Message)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("dispatched %d messages, want 1", len(sender.sent))
	}
	if sender.sent[0].Subject != "New Enquiry for Red Shirt" {
		t.Fatalf("subject=%q", sender.sent[0].Subject)
	}
}

func TestEnquireMissingItem(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender)

	rec := doJSON(t, srv, http.MethodPost, "/api/enquire", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Item information is missing" {
		t.Fatalf("message=%q", resp.Message)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("dispatched %d messages, want 0", len(sender.sent))
	}
}

func TestEnquireMailerNotReady(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/enquire",
		`{"item":{"name":"Red Shirt","type":"Shirt","description":"Cotton","coverImage":"https://x/a.jpg"}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Email service is not ready" {
		t.Fatalf("message=%q", resp.Message)
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	srv := newTestServer(t, &recordingSender{})

	rec := doJSON(t, srv, http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Not Found" {
		t.Fatalf("message=%q", resp.Message)
	}
}
