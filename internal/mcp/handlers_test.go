package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sprintcal/internal/config"
	"sprintcal/internal/sprint"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cadence, err := sprint.NewCadence(2, 7, 7)
	if err != nil {
		t.Fatalf("NewCadence failed: %v", err)
	}
	return &Server{cfg: &config.AppConfig{Cadence: cadence, DisplayMonths: 3}}
}

func callParams(t *testing.T, name string, args map[string]interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	return raw
}

// resultText digs the text payload out of a tools/call result.
func resultText(t *testing.T, result interface{}) string {
	t.Helper()
	m, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("result is %T, want map", result)
	}
	content := m["content"].([]interface{})
	return content[0].(map[string]interface{})["text"].(string)
}

func TestListTools(t *testing.T) {
	s := testServer(t)
	raw, err := json.Marshal(s.listTools())
	if err != nil {
		t.Fatalf("marshal tools: %v", err)
	}
	for _, name := range []string{"calculate_sprint_period", "expand_sprints", "classify_date", "get_sprint_calendar"} {
		if !strings.Contains(string(raw), name) {
			t.Errorf("tools/list missing %q", name)
		}
	}
}

func TestCallToolCalculateSprintPeriod(t *testing.T) {
	s := testServer(t)
	result, errRes := s.callTool(callParams(t, "calculate_sprint_period", map[string]interface{}{
		"start": "2025-02-25",
	}))
	if errRes != nil {
		t.Fatalf("callTool returned error: %v", errRes)
	}

	text := resultText(t, result)
	for _, want := range []string{`"sprintId": "2025-03-11"`, "2025-02-25", "2025-03-04", "2025-03-10"} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestCallToolClassifyDate(t *testing.T) {
	s := testServer(t)

	result, errRes := s.callTool(callParams(t, "classify_date", map[string]interface{}{
		"date": "2025-03-06",
	}))
	if errRes != nil {
		t.Fatalf("callTool returned error: %v", errRes)
	}

	var payload struct {
		Date    string `json:"date"`
		Entries []struct {
			Phase    string `json:"phase"`
			SprintID string `json:"sprintId"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Date != "2025-03-06" {
		t.Errorf("date = %q, want 2025-03-06", payload.Date)
	}
	if len(payload.Entries) == 0 {
		t.Fatal("no entries for a mid-QA date")
	}
	if payload.Entries[0].Phase != "qa" || payload.Entries[0].SprintID != "2025-03-11" {
		t.Errorf("first entry = %+v, want qa claim of sprint 2025-03-11", payload.Entries[0])
	}
	if len(payload.Entries) > sprint.MaxEntriesPerDay {
		t.Errorf("got %d entries, cap is %d", len(payload.Entries), sprint.MaxEntriesPerDay)
	}
}

func TestCallToolExpandSprints(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name      string
		direction string
		wantFirst string
	}{
		{"Forward", "forward", "2025-03-25"},   // release of the anchor sprint
		{"Backward", "backward", "2025-02-25"}, // earliest back-stepped start
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, errRes := s.callTool(callParams(t, "expand_sprints", map[string]interface{}{
				"anchor":    "2025-03-11",
				"count":     2,
				"direction": tt.direction,
			}))
			if errRes != nil {
				t.Fatalf("callTool returned error: %v", errRes)
			}

			var payload struct {
				Ranges []sprint.Range `json:"ranges"`
			}
			if err := json.Unmarshal([]byte(resultText(t, result)), &payload); err != nil {
				t.Fatalf("unmarshal payload: %v", err)
			}
			if len(payload.Ranges) != 2 {
				t.Fatalf("got %d ranges, want 2", len(payload.Ranges))
			}

			var got string
			if tt.direction == "forward" {
				got = payload.Ranges[0].ID()
			} else {
				got = payload.Ranges[0].DevStart.Format("2006-01-02")
			}
			if got != tt.wantFirst {
				t.Errorf("first range = %s, want %s", got, tt.wantFirst)
			}
		})
	}
}

func TestCallToolGetCalendarWithGantt(t *testing.T) {
	s := testServer(t)
	result, errRes := s.callTool(callParams(t, "get_sprint_calendar", map[string]interface{}{
		"center":        "2025-03-15",
		"months":        1,
		"include_gantt": true,
	}))
	if errRes != nil {
		t.Fatalf("callTool returned error: %v", errRes)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "mermaid") {
		t.Errorf("calendar result missing gantt chart:\n%s", text[:200])
	}
	if !strings.Contains(text, `"month": 3`) {
		t.Errorf("calendar result missing March grid")
	}
}

func TestCallToolErrors(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"UnknownTool", "does_not_exist", nil},
		{"MissingStart", "calculate_sprint_period", map[string]interface{}{}},
		{"MalformedDate", "classify_date", map[string]interface{}{"date": "03/06/2025"}},
		{"InvalidCadenceOverride", "calculate_sprint_period", map[string]interface{}{"start": "2025-02-25", "dev_days": 0}},
		{"BadDirection", "expand_sprints", map[string]interface{}{"direction": "sideways"}},
		{"NegativeCount", "expand_sprints", map[string]interface{}{"count": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, errRes := s.callTool(callParams(t, tt.tool, tt.args))
			if errRes == nil {
				t.Errorf("callTool succeeded with %v, want error", result)
			}
		})
	}
}

func TestHandleRequestUnknownMethod(t *testing.T) {
	s := testServer(t)
	var buf bytes.Buffer
	s.out = &buf

	s.handleRequest(JSONRPCRequest{JSONRPC: "2.0", ID: 1, Method: "bogus/method"})

	var resp JSONRPCResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error == nil {
		t.Error("expected a JSON-RPC error for unknown method")
	}
}

func TestHandleRequestInitialize(t *testing.T) {
	s := testServer(t)
	var buf bytes.Buffer
	s.out = &buf

	s.handleRequest(JSONRPCRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	if !strings.Contains(buf.String(), `"sprintcal"`) {
		t.Errorf("initialize response missing server info: %s", buf.String())
	}
}
