package mcp

// Cadence override properties shared by every tool: without them a tool call
// uses the server's configured cadence.
func cadenceProperties() map[string]interface{} {
	return map[string]interface{}{
		"weekday":  map[string]interface{}{"type": "integer", "description": "Release weekday 0-6 (0=Sunday). Default: configured cadence."},
		"dev_days": map[string]interface{}{"type": "integer", "description": "Development window length in days (>=1). Default: configured cadence."},
		"qa_days":  map[string]interface{}{"type": "integer", "description": "QA window length in days (>=1). Default: configured cadence."},
	}
}

func (s *Server) listTools() interface{} {
	calcProps := map[string]interface{}{
		"start": map[string]interface{}{"type": "string", "description": "Development start date (YYYY-MM-DD)"},
	}
	expandProps := map[string]interface{}{
		"anchor":    map[string]interface{}{"type": "string", "description": "Anchor date (YYYY-MM-DD). Default: the nearest past configured release weekday."},
		"count":     map[string]interface{}{"type": "integer", "description": "Number of sprints to expand (default 5)."},
		"direction": map[string]interface{}{"type": "string", "enum": []string{"forward", "backward"}, "description": "Expansion direction (default forward)."},
	}
	classifyProps := map[string]interface{}{
		"date": map[string]interface{}{"type": "string", "description": "Date to classify (YYYY-MM-DD)"},
	}
	calendarProps := map[string]interface{}{
		"center":        map[string]interface{}{"type": "string", "description": "Center date (YYYY-MM-DD). Default: today."},
		"months":        map[string]interface{}{"type": "integer", "description": "Number of display months (default: configured)."},
		"include_gantt": map[string]interface{}{"type": "boolean", "description": "Attach a Mermaid gantt chart of the covered sprints."},
	}
	for k, v := range cadenceProperties() {
		calcProps[k] = v
		expandProps[k] = v
		classifyProps[k] = v
		calendarProps[k] = v
	}

	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "calculate_sprint_period",
				"description": "Compute one sprint period (development window, QA window, release day) from a development start date. The release lands on the same weekday as the start.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": calcProps,
					"required":   []string{"start"},
				},
			},
			map[string]interface{}{
				"name":        "expand_sprints",
				"description": "Chain successive sprint periods forward (each sprint starts when its predecessor's QA starts) or backward (fixed one-week steps) from an anchor date. Results are ascending by date.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": expandProps,
				},
			},
			map[string]interface{}{
				"name":        "classify_date",
				"description": "Report every sprint claiming a calendar date (development, qa or release), deduplicated and capped at 3 entries ordered by release date. An unclaimed date yields an empty list.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": classifyProps,
					"required":   []string{"date"},
				},
			},
			map[string]interface{}{
				"name":        "get_sprint_calendar",
				"description": "Build a multi-month calendar grid centered on a date, with per-day sprint claims. Optionally attaches a Mermaid gantt chart of the sprints covering the span.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": calendarProps,
				},
			},
		},
	}
}
