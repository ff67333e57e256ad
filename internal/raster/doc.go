// Package raster turns map images into the pixel grid consumed by the map
// assembler.
//
// # Storage Order
//
// A Grid mirrors the layout of an uncompressed 24-bit bitmap:
//   - rows are stored bottom-up, so row 0 is the BOTTOM row of the picture
//   - each pixel is three bytes in B, G, R order
//
// Callers that want top-down coordinates read row height-1-y.
//
// # Loading
//
// Load and Decode accept any format the imaging package can decode. Cache
// keeps recently loaded grids for the long-running tool server.
package raster
