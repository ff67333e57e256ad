package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the map image (BMP or PNG recommended)",
	}
}

func countProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
		"minimum":     0,
		"default":     0,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "map_build",
			Description: "Convert a color-coded map image into the level JSON document: item placements, spawn points, clear-space reservations and the run-length encoded dig and gravity regions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty(),
					"round_rocks":  countProperty("Number of round rocks, echoed as numRoundRocks"),
					"square_rocks": countProperty("Number of square rocks, echoed as numSquareRocks"),
					"gems":         countProperty("Number of gems, echoed as numGems"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "map_dimensions",
			Description: "Get the width and height in cells of a map image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "map_inspect",
			Description: "List every distinct color in a map image with its pixel count and palette classification. Unrecognized colors are flagged with the nearest palette color, which helps locate stray pixels before building.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "map_classify_color",
			Description: "Classify a single color against the active palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB or 0xRRGGBB",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "map_palette",
			Description: "List the active palette: every recognized color with its name, class, region and clear-space reservation.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList answers tools/list.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return s.result(req.ID, map[string]interface{}{"tools": GetToolDefinitions()})
}
