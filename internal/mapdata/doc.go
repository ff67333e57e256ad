// Package mapdata assembles a level description from a classified pixel grid.
//
// # Scan
//
// Assemble walks the grid row by row, top row first, reading stored row
// height-1-y for output row y. Every pixel is classified exactly once:
//
//   - Item pixels append an item record and join their kind's region
//   - SpawnPoint pixels append a spawn record and join the gravity region
//   - RegionOnly pixels only join their region
//   - Ignorable pixels are skipped
//
// Each region (dig and gravity) is tracked by its own span.Builder, so the
// output regions are disjoint and every row of the grid has a row entry in
// both, even when empty.
//
// # Output
//
// MapData.Value produces the document
//
//	{
//	  "digRegion": [[{"a":0,"b":3}], ...],
//	  "gravRegion": [[...], ...],
//	  "height": 25,
//	  "items": [{"type":"GEM_BANK","data":{"x":1408,"y":640,"clearSpace":{...}}}],
//	  "numGems": 10,
//	  "numRoundRocks": 20,
//	  "numSquareRocks": 5,
//	  "spawnPoints": [{"x":0,"y":1536}],
//	  "width": 40
//	}
//
// Item and spawn coordinates are cell coordinates multiplied by the block
// size. Clear-space reservations stay in cell units.
//
// # Errors
//
// Classification failures are returned as *PixelError, which wraps
// palette.ErrUnrecognizedColor or palette.ErrUnclassifiedRegion and records
// the top-down cell and the color. Region tracker errors are returned
// unchanged.
package mapdata
