package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/mapbuilder/internal/mapdata"
	"github.com/ironsheep/mapbuilder/internal/palette"
	"github.com/ironsheep/mapbuilder/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "map_build").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// textResult is returned by tools whose output is already serialized text.
type textResult string

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	text, ok := result.(textResult)
	if !ok {
		text = textResult(mustMarshalJSON(result))
	}

	return s.result(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": string(text)},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "map_build":
		return s.handleMapBuild(args)
	case "map_dimensions":
		return s.handleMapDimensions(args)
	case "map_inspect":
		return s.handleMapInspect(args)
	case "map_classify_color":
		return s.handleMapClassifyColor(args)
	case "map_palette":
		return s.handleMapPalette(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse builds a JSON-RPC error reply. An empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: "2.0", ID: id, Error: e}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments. Tools without required arguments
// accept an absent arguments object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

type mapPathArgs struct {
	Path string `json:"path"`
}

type mapBuildArgs struct {
	Path        string `json:"path"`
	RoundRocks  int    `json:"round_rocks"`
	SquareRocks int    `json:"square_rocks"`
	Gems        int    `json:"gems"`
}

func (s *Server) handleMapBuild(args json.RawMessage) (interface{}, error) {
	var a mapBuildArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	grid, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	counts := mapdata.Counts{RoundRocks: a.RoundRocks, SquareRocks: a.SquareRocks, Gems: a.Gems}
	md, err := mapdata.Assemble(grid, s.palette, counts, s.opts)
	if err != nil {
		return nil, err
	}
	return textResult(md.String()), nil
}

func (s *Server) handleMapDimensions(args json.RawMessage) (interface{}, error) {
	var a mapPathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return raster.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleMapInspect(args json.RawMessage) (interface{}, error) {
	var a mapPathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return mapdata.Inspect(grid, s.palette), nil
}

// paletteEntry is the JSON form of a palette entry.
type paletteEntry struct {
	Name   string              `json:"name"`
	Hex    string              `json:"hex"`
	Class  string              `json:"class"`
	Kind   string              `json:"kind,omitempty"`
	Region string              `json:"region,omitempty"`
	Clear  *palette.ClearSpace `json:"clear_space,omitempty"`
}

func newPaletteEntry(e palette.Entry) paletteEntry {
	pe := paletteEntry{
		Name:  e.Name,
		Hex:   e.Color.Hex(),
		Class: e.Outcome.String(),
	}
	if e.Outcome == palette.Item {
		pe.Kind = e.Kind.String()
	}
	if e.Outcome != palette.Ignorable {
		pe.Region = e.Region.String()
	}
	if !e.Clear.Empty() {
		cs := e.Clear
		pe.Clear = &cs
	}
	return pe
}

type classifyColorArgs struct {
	Color string `json:"color"`
}

// classifyColorResult reports the classification of one color.
type classifyColorResult struct {
	Hex        string        `json:"hex"`
	Recognized bool          `json:"recognized"`
	Entry      *paletteEntry `json:"entry,omitempty"`
	Nearest    string        `json:"nearest,omitempty"`
}

func (s *Server) handleMapClassifyColor(args json.RawMessage) (interface{}, error) {
	var a classifyColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := palette.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}

	res := classifyColorResult{Hex: c.Hex()}
	if e, ok := s.palette.Lookup(c); ok {
		pe := newPaletteEntry(e)
		res.Recognized = true
		res.Entry = &pe
	} else {
		nearest, _ := s.palette.Nearest(c)
		res.Nearest = nearest.Name
	}
	return res, nil
}

type paletteResult struct {
	Entries []paletteEntry `json:"entries"`
}

func (s *Server) handleMapPalette(args json.RawMessage) (interface{}, error) {
	entries := s.palette.Entries()
	res := paletteResult{Entries: make([]paletteEntry, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, newPaletteEntry(e))
	}
	return res, nil
}
