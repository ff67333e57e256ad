// Package server implements the MCP (Model Context Protocol) server for the
// map builder.
//
// The server exposes map conversion over JSON-RPC 2.0 so that an
// MCP-compatible client can build level documents and diagnose map images
// without shelling out to the command line tool.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - map_build: Convert a map image into the level JSON document
//   - map_dimensions: Get width, height and format of a map image
//   - map_inspect: Color histogram with palette classification
//   - map_classify_color: Classify one color against the palette
//   - map_palette: List the active palette
//
// map_build returns the level document text exactly as the command line
// tool writes it. The other tools return indented JSON.
//
// # Image Caching
//
// Decoded map images are kept in a bounded LRU cache keyed by path, so
// inspecting a map and then building it decodes the file once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, which for unrecognized colors names the
//     pixel coordinates and the nearest palette color
//
// # Usage
//
//	srv := server.New(palette.Default(), mapdata.Options{}, raster.DefaultCacheSize)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
