package mcp

import (
	"encoding/json"
	"fmt"
	"time"

	"sprintcal/internal/sprint"
	"sprintcal/internal/visuals"
)

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error

	switch call.Name {
	case "calculate_sprint_period":
		data, err = s.handleCalculatePeriod(call.Arguments)
	case "expand_sprints":
		data, err = s.handleExpandSprints(call.Arguments)
	case "classify_date":
		data, err = s.handleClassifyDate(call.Arguments)
	case "get_sprint_calendar":
		data, err = s.handleGetCalendar(call.Arguments)
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) handleCalculatePeriod(args map[string]interface{}) (interface{}, error) {
	cadence, err := s.cadenceFromArgs(args)
	if err != nil {
		return nil, err
	}
	start, err := requireDate(args, "start")
	if err != nil {
		return nil, err
	}

	r := cadence.Calculate(start)
	return map[string]interface{}{
		"cadence":  cadence,
		"sprintId": r.ID(),
		"range":    r,
	}, nil
}

func (s *Server) handleExpandSprints(args map[string]interface{}) (interface{}, error) {
	cadence, err := s.cadenceFromArgs(args)
	if err != nil {
		return nil, err
	}
	anchor, err := optionalDate(args, "anchor", sprint.NearestWeekday(cadence.Weekday, time.Now(), sprint.Backward))
	if err != nil {
		return nil, err
	}
	count := optionalInt(args, "count", 5)
	if count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", count)
	}

	direction, _ := args["direction"].(string)
	var ranges []sprint.Range
	switch direction {
	case "", "forward":
		ranges = cadence.ExpandForward(anchor, count)
	case "backward":
		ranges = cadence.ExpandBackward(anchor, count)
	default:
		return nil, fmt.Errorf("direction must be forward or backward, got %q", direction)
	}

	return map[string]interface{}{
		"cadence": cadence,
		"anchor":  anchor.Format("2006-01-02"),
		"ranges":  ranges,
	}, nil
}

func (s *Server) handleClassifyDate(args map[string]interface{}) (interface{}, error) {
	cadence, err := s.cadenceFromArgs(args)
	if err != nil {
		return nil, err
	}
	probe, err := requireDate(args, "date")
	if err != nil {
		return nil, err
	}

	// A schedule spanning the configured display window around the probe is
	// guaranteed to contain every sprint that could claim it.
	sched := sprint.NewSchedule(cadence, probe, s.cfg.DisplayMonths)
	entries := sprint.Classify(probe, sched.Ranges)

	return map[string]interface{}{
		"date":    probe.Format("2006-01-02"),
		"entries": entries,
	}, nil
}

func (s *Server) handleGetCalendar(args map[string]interface{}) (interface{}, error) {
	cadence, err := s.cadenceFromArgs(args)
	if err != nil {
		return nil, err
	}
	center, err := optionalDate(args, "center", time.Now())
	if err != nil {
		return nil, err
	}
	months := optionalInt(args, "months", s.cfg.DisplayMonths)
	if months < 1 {
		return nil, fmt.Errorf("months must be at least 1, got %d", months)
	}

	sched := sprint.NewSchedule(cadence, center, months)
	grids := sched.BuildMonths(center, time.Now(), months)

	result := map[string]interface{}{
		"cadence": cadence,
		"center":  sprint.Day(center).Format("2006-01-02"),
		"months":  grids,
	}

	includeGantt, _ := args["include_gantt"].(bool)
	if includeGantt || s.cfg.EnableGanttCharts {
		result["gantt"] = visuals.GenerateSprintGantt(sched.Ranges)
	}
	return result, nil
}

// cadenceFromArgs resolves the effective cadence for one tool call: the
// configured default with any per-call overrides, re-validated because
// overrides arrive from an untrusted client.
func (s *Server) cadenceFromArgs(args map[string]interface{}) (sprint.Cadence, error) {
	weekday := optionalInt(args, "weekday", int(s.cfg.Cadence.Weekday))
	devDays := optionalInt(args, "dev_days", s.cfg.Cadence.DevDays)
	qaDays := optionalInt(args, "qa_days", s.cfg.Cadence.QADays)
	return sprint.NewCadence(weekday, devDays, qaDays)
}

func requireDate(args map[string]interface{}, key string) (time.Time, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return time.Time{}, fmt.Errorf("%s is required (YYYY-MM-DD)", key)
	}
	return parseDate(key, raw)
}

func optionalDate(args map[string]interface{}, key string, fallback time.Time) (time.Time, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return sprint.Day(fallback), nil
	}
	return parseDate(key, raw)
}

func parseDate(key, raw string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a YYYY-MM-DD date, got %q", key, raw)
	}
	return t, nil
}

// optionalInt reads an integer argument. JSON numbers arrive as float64.
func optionalInt(args map[string]interface{}, key string, fallback int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return fallback
}
