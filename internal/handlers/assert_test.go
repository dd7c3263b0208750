package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"klaxon/internal/models"
)

type fakeLoop struct {
	asserted []models.EventAssertion
	full     bool
}

func (f *fakeLoop) Assert(a models.EventAssertion) bool {
	if f.full {
		return false
	}
	f.asserted = append(f.asserted, a)
	return true
}

func postJSON(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, AssertResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp AssertResponse
	if rec.Code == http.StatusOK || rec.Code == http.StatusBadRequest {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
	}
	return rec, resp
}

func TestAssertSingleEvent(t *testing.T) {
	loop := &fakeLoop{}
	h := NewAssertHandler(AssertConfig{Loop: loop})

	rec, resp := postJSON(t, h, `{"name":"doorOpen"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Accepted != 1 || resp.Rejected != 0 {
		t.Errorf("accepted=%d rejected=%d, want 1/0", resp.Accepted, resp.Rejected)
	}
	if len(loop.asserted) != 1 || loop.asserted[0].Name != "doorOpen" {
		t.Errorf("loop received %+v", loop.asserted)
	}
}

func TestAssertBatch(t *testing.T) {
	loop := &fakeLoop{}
	h := NewAssertHandler(AssertConfig{Loop: loop})

	rec, resp := postJSON(t, h, `{"events":[{"name":"doorOpen"},{"name":"overheat","sticky":true},{"name":""}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Accepted != 2 || resp.Rejected != 1 {
		t.Errorf("accepted=%d rejected=%d, want 2/1", resp.Accepted, resp.Rejected)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Index != 2 {
		t.Errorf("errors = %+v", resp.Errors)
	}
	if !loop.asserted[1].Sticky {
		t.Error("sticky flag lost")
	}
}

func TestAssertBareArray(t *testing.T) {
	loop := &fakeLoop{}
	h := NewAssertHandler(AssertConfig{Loop: loop})

	rec, resp := postJSON(t, h, `[{"name":"doorOpen"},{"name":"overheat"}]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Accepted != 2 {
		t.Errorf("accepted = %d, want 2", resp.Accepted)
	}
}

func TestAssertRejectsInvalidBody(t *testing.T) {
	h := NewAssertHandler(AssertConfig{Loop: &fakeLoop{}})

	rec, _ := postJSON(t, h, `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAssertRejectsWrongMethod(t *testing.T) {
	h := NewAssertHandler(AssertConfig{Loop: &fakeLoop{}})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestAssertMailboxFull(t *testing.T) {
	h := NewAssertHandler(AssertConfig{Loop: &fakeLoop{full: true}})

	rec, resp := postJSON(t, h, `{"name":"doorOpen"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when everything is dropped", rec.Code)
	}
	if resp.Rejected != 1 {
		t.Errorf("rejected = %d, want 1", resp.Rejected)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Error != "mailbox full" {
		t.Errorf("errors = %+v", resp.Errors)
	}
}
