package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func listGames(client *http.Client, baseURL string) ([]game.Info, error) {
	resp, err := client.Get(baseURL + "/v1/games")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var games []game.Info
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// StartSessionRequest matches the API request structure
type StartSessionRequest struct {
	GameID string `json:"game_id"`
}

func startSession(client *http.Client, baseURL string, gameID string) (*state.PlayerState, error) {
	req := StartSessionRequest{
		GameID: gameID,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/sessions",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to start session: %s", errorResp.Error)
	}

	var ps state.PlayerState
	if err := json.Unmarshal(body, &ps); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}

	return &ps, nil
}

func getSession(client *http.Client, baseURL, gameID, sessionID string) (*state.PlayerState, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/sessions/%s/%s", baseURL, gameID, sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to get session: %s", errorResp.Error)
	}

	var ps state.PlayerState
	if err := json.Unmarshal(body, &ps); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &ps, nil
}

// PlayRequest matches the API request structure
type PlayRequest struct {
	GameID    string `json:"game_id"`
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
}

func sendAction(client *http.Client, baseURL string, gameID, sessionID, action string) (*state.Outcome, error) {
	req := PlayRequest{
		GameID:    gameID,
		SessionID: sessionID,
		Action:    action,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/play",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("action failed: %s", errorResp.Error)
	}

	var outcome state.Outcome
	if err := json.Unmarshal(body, &outcome); err != nil {
		return nil, fmt.Errorf("failed to parse outcome response: %w", err)
	}

	return &outcome, nil
}
