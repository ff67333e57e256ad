// Package palette classifies packed pixel colors into map semantics.
//
// A Palette is a validated, immutable table mapping each recognized color to
// exactly one Classification:
//
//   - Item: a tile or object that produces an item record (WALL, GEM_BANK, ...)
//   - SpawnPoint: the player spawn marker, collected separately from items
//   - RegionOnly: plain dig-region or gravity-region filler
//   - Ignorable: a sentinel color that contributes nothing
//
// Every non-ignorable classification belongs to exactly one Region. New
// enforces this when the table is built, so a scan never has to guess.
// Colors are matched exactly; Nearest exists only to make error messages
// friendlier.
//
// # Palette Files
//
// Alternate palettes can be loaded from YAML with Load or LoadFile. Colors
// are written as "#rrggbb".
package palette
