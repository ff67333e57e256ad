package palette

// Colors of the default palette, written as 0xRRGGBB.
const (
	DigRegionColor     Color = 0x920092
	GravityRegionColor Color = 0x000000
	WallColor          Color = 0xdbdbdb
	MetalWallColor     Color = 0x929292
	GemBankColor       Color = 0x0000db
	TrophyColor        Color = 0xdbdb00
	BlimpColor         Color = 0xdb0000
	SpawnPointColor    Color = 0x009200
	IgnoreColor        Color = 0xffffff
)

// DefaultEntries returns a fresh copy of the built-in palette table.
//
// Solid tiles (walls) are part of the dig region; free-standing items and the
// spawn point sit in open space and are part of the gravity region.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "DIG_REGION", Color: DigRegionColor, Classification: Classification{Outcome: RegionOnly, Region: Dig}},
		{Name: "GRAVITY_REGION", Color: GravityRegionColor, Classification: Classification{Outcome: RegionOnly, Region: Gravity}},
		{Name: "WALL", Color: WallColor, Classification: Classification{Outcome: Item, Kind: Wall, Region: Dig}},
		{Name: "METAL_WALL", Color: MetalWallColor, Classification: Classification{Outcome: Item, Kind: MetalWall, Region: Dig}},
		{Name: "GEM_BANK", Color: GemBankColor, Classification: Classification{Outcome: Item, Kind: GemBank, Region: Gravity, Clear: ClearSpace{W: 3, H: 3}}},
		{Name: "TROPHY", Color: TrophyColor, Classification: Classification{Outcome: Item, Kind: Trophy, Region: Gravity, Clear: ClearSpace{W: 1, H: 2}}},
		{Name: "BLIMP", Color: BlimpColor, Classification: Classification{Outcome: Item, Kind: Blimp, Region: Gravity}},
		{Name: "SPAWN_POINT", Color: SpawnPointColor, Classification: Classification{Outcome: SpawnPoint, Region: Gravity}},
		{Name: "IGNORE", Color: IgnoreColor, Classification: Classification{Outcome: Ignorable}},
	}
}

var defaultPalette = MustNew(DefaultEntries())

// Default returns the built-in palette.
func Default() *Palette {
	return defaultPalette
}
