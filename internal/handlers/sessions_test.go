package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/state"
)

func TestSessionsHandler_Start(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	reqBody := `{"game_id":"haunted_mansion"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var ps state.PlayerState
	if err := json.NewDecoder(rr.Body).Decode(&ps); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if err := state.ValidateSessionID(ps.SessionID); err != nil {
		t.Errorf("Expected valid session ID, got %q: %v", ps.SessionID, err)
	}
	if ps.GameID != "haunted_mansion" {
		t.Errorf("Expected game ID haunted_mansion, got %s", ps.GameID)
	}
	if ps.CurrentRoom != "entrance" {
		t.Errorf("Expected current room entrance, got %s", ps.CurrentRoom)
	}
}

func TestSessionsHandler_StartUnknownGame(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(`{"game_id":"missing_game"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d. Response body: %s", rr.Code, rr.Body.String())
	}
}

func TestSessionsHandler_StartMissingGameID(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestSessionsHandler_Read(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	ps, err := eng.StartSession(context.Background(), "haunted_mansion")
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/haunted_mansion/"+ps.SessionID, nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var loaded state.PlayerState
	if err := json.NewDecoder(rr.Body).Decode(&loaded); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if loaded.SessionID != ps.SessionID {
		t.Errorf("Expected session ID %s, got %s", ps.SessionID, loaded.SessionID)
	}
}

func TestSessionsHandler_ReadNotFound(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/haunted_mansion/"+testSessionID, nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestSessionsHandler_ReadMissingIDs(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/haunted_mansion", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestSessionsHandler_Delete(t *testing.T) {
	eng, mockStorage := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	ps, err := eng.StartSession(context.Background(), "haunted_mansion")
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/haunted_mansion/"+ps.SessionID, nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	loaded, err := mockStorage.LoadPlayerState(context.Background(), "haunted_mansion", ps.SessionID)
	if err != nil {
		t.Fatalf("Failed to load player state: %v", err)
	}
	if loaded != nil {
		t.Error("Expected state to be removed after delete")
	}
}

func TestSessionsHandler_DeleteInvalidSessionID(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/haunted_mansion/nope", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestSessionsHandler_MethodNotAllowed(t *testing.T) {
	eng, _ := newTestEngine()
	handler := NewSessionsHandler(eng, testLogger())

	req := httptest.NewRequest(http.MethodPut, "/v1/sessions", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
}
