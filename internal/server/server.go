package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/mapbuilder/internal/mapdata"
	"github.com/ironsheep/mapbuilder/internal/palette"
	"github.com/ironsheep/mapbuilder/internal/raster"
)

// Version is reported in the initialize handshake.
var Version = "dev"

// Server answers MCP requests with the map tools. Decoded images are shared
// between tool calls through the cache.
type Server struct {
	cache   *raster.Cache
	palette *palette.Palette
	opts    mapdata.Options
}

// MCPRequest is one line of client input.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse is one line of server output. Exactly one of Result and Error
// is set.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError carries a JSON-RPC error code. Tool failures use -32000 with the
// Go error string as Data.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server that classifies with p and scans with opts, keeping
// up to cacheSize decoded map images.
func New(p *palette.Palette, opts mapdata.Options, cacheSize int) *Server {
	if p == nil {
		p = palette.Default()
	}
	return &Server{
		cache:   raster.NewCache(cacheSize),
		palette: p,
		opts:    opts,
	}
}

// Run serves the stdio transport until stdin closes.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r until EOF, writing each
// response as one line to w.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	enc := json.NewEncoder(w)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Dropping malformed request: %v", err)
			continue
		}
		resp := s.handleRequest(&req)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

// handleRequest dispatches on the JSON-RPC method. Notifications return nil.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return s.result(req.ID, map[string]interface{}{})
	}
	return s.errorResponse(req.ID, -32601, "Method not found: "+req.Method, "")
}

// result wraps a successful reply.
func (s *Server) result(id interface{}, v interface{}) *MCPResponse {
	return &MCPResponse{JSONRPC: "2.0", ID: id, Result: v}
}

// handleInitialize advertises the tools capability and the build version.
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return s.result(req.ID, map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    "mapbuilder",
			"version": Version,
		},
	})
}
