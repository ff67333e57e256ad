package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	// Pixels are stored B, G, R so the packed value reads as 0xRRGGBB.
	assert.Equal(t, DigRegionColor, FromBytes(0x92, 0x00, 0x92))
	assert.Equal(t, GemBankColor, FromBytes(0xdb, 0x00, 0x00))
	assert.Equal(t, BlimpColor, FromBytes(0x00, 0x00, 0xdb))
}

func TestColor_Format(t *testing.T) {
	assert.Equal(t, "0x0000db", GemBankColor.String())
	assert.Equal(t, "#dbdb00", TrophyColor.Hex())

	r, g, b := TrophyColor.RGB()
	assert.Equal(t, []uint8{0xdb, 0xdb, 0x00}, []uint8{r, g, b})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#920092", DigRegionColor},
		{"0x0000db", GemBankColor},
		{"dbdbdb", WallColor},
		{"#FFFFFF", IgnoreColor},
		{"#fff", IgnoreColor},
		{" #000000 ", GravityRegionColor},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#12", "#gggggg", "#12345"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "ParseColor(%q)", bad)
	}
}

func TestDefault_Classify(t *testing.T) {
	p := Default()
	tests := []struct {
		name  string
		color Color
		want  Classification
	}{
		{"dig filler", DigRegionColor, Classification{Outcome: RegionOnly, Region: Dig}},
		{"gravity filler", GravityRegionColor, Classification{Outcome: RegionOnly, Region: Gravity}},
		{"wall", WallColor, Classification{Outcome: Item, Kind: Wall, Region: Dig}},
		{"metal wall", MetalWallColor, Classification{Outcome: Item, Kind: MetalWall, Region: Dig}},
		{"gem bank", GemBankColor, Classification{Outcome: Item, Kind: GemBank, Region: Gravity, Clear: ClearSpace{W: 3, H: 3}}},
		{"trophy", TrophyColor, Classification{Outcome: Item, Kind: Trophy, Region: Gravity, Clear: ClearSpace{W: 1, H: 2}}},
		{"blimp", BlimpColor, Classification{Outcome: Item, Kind: Blimp, Region: Gravity}},
		{"spawn", SpawnPointColor, Classification{Outcome: SpawnPoint, Region: Gravity}},
		{"ignore", IgnoreColor, Classification{Outcome: Ignorable}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Classify(tt.color)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := p.Classify(tt.color)
			require.NoError(t, err)
			assert.Equal(t, got, again, "classification must be stable")
		})
	}
}

func TestDefault_Unrecognized(t *testing.T) {
	_, err := Default().Classify(0x123456)
	require.ErrorIs(t, err, ErrUnrecognizedColor)
	assert.Equal(t, "palette: unrecognized color", err.Error())
}

func TestDefault_EveryEntryHasOneMembership(t *testing.T) {
	for _, e := range Default().Entries() {
		r, err := e.Membership()
		require.NoError(t, err, e.Name)
		if e.Outcome == Ignorable {
			assert.Equal(t, NoRegion, r, e.Name)
		} else {
			assert.Contains(t, []Region{Dig, Gravity}, r, e.Name)
		}
	}
}

func TestDefault_Independent(t *testing.T) {
	entries := DefaultEntries()
	entries[0].Region = Gravity

	got, err := Default().Classify(DigRegionColor)
	require.NoError(t, err)
	assert.Equal(t, Dig, got.Region)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		errText string
	}{
		{
			"duplicate color",
			[]Entry{
				{Name: "A", Color: 1, Classification: Classification{Outcome: RegionOnly, Region: Dig}},
				{Name: "B", Color: 1, Classification: Classification{Outcome: RegionOnly, Region: Gravity}},
			},
			"listed twice",
		},
		{
			"duplicate kind",
			[]Entry{
				{Name: "A", Color: 1, Classification: Classification{Outcome: Item, Kind: Wall, Region: Dig}},
				{Name: "B", Color: 2, Classification: Classification{Outcome: Item, Kind: Wall, Region: Dig}},
			},
			"item kind WALL",
		},
		{
			"item without kind",
			[]Entry{{Name: "A", Color: 1, Classification: Classification{Outcome: Item, Region: Dig}}},
			"needs a kind",
		},
		{
			"filler with kind",
			[]Entry{{Name: "A", Color: 1, Classification: Classification{Outcome: RegionOnly, Kind: Wall, Region: Dig}}},
			"only item entries",
		},
		{
			"item without region",
			[]Entry{{Name: "A", Color: 1, Classification: Classification{Outcome: Item, Kind: Blimp}}},
			"belongs to no region",
		},
		{
			"spawn without region",
			[]Entry{{Name: "S", Color: 1, Classification: Classification{Outcome: SpawnPoint}}},
			"belongs to no region",
		},
		{
			"ignorable with region",
			[]Entry{{Name: "I", Color: 1, Classification: Classification{Outcome: Ignorable, Region: Dig}}},
			"belong to no region",
		},
		{
			"spawn in dig region",
			[]Entry{{Name: "S", Color: 1, Classification: Classification{Outcome: SpawnPoint, Region: Dig}}},
			"spawn points belong to the gravity region",
		},
		{
			"two spawns",
			[]Entry{
				{Name: "S1", Color: 1, Classification: Classification{Outcome: SpawnPoint, Region: Gravity}},
				{Name: "S2", Color: 2, Classification: Classification{Outcome: SpawnPoint, Region: Gravity}},
			},
			"spawn point colors",
		},
		{
			"negative clear space",
			[]Entry{{Name: "G", Color: 1, Classification: Classification{Outcome: Item, Kind: GemBank, Region: Gravity, Clear: ClearSpace{W: -1, H: 2}}}},
			"negative clear space",
		},
		{
			"clear space on filler",
			[]Entry{{Name: "D", Color: 1, Classification: Classification{Outcome: RegionOnly, Region: Dig, Clear: ClearSpace{W: 1, H: 1}}}},
			"only items reserve",
		},
		{
			"wide color",
			[]Entry{{Name: "D", Color: 0x1000000, Classification: Classification{Outcome: RegionOnly, Region: Dig}}},
			"exceeds 24 bits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.ErrorIs(t, err, ErrInvalidPalette)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestNew_NameDefaultsToKind(t *testing.T) {
	p, err := New([]Entry{{Color: 7, Classification: Classification{Outcome: Item, Kind: Trophy, Region: Gravity}}})
	require.NoError(t, err)

	e, ok := p.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "TROPHY", e.Name)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew([]Entry{{Name: "A", Color: 1, Classification: Classification{Outcome: Item}}})
	})
}

func TestEntries_SortedByColor(t *testing.T) {
	entries := Default().Entries()
	require.Len(t, entries, len(DefaultEntries()))
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Color, entries[i].Color)
	}
}

func TestNearest(t *testing.T) {
	p := Default()

	e, d := p.Nearest(0x910091)
	assert.Equal(t, "DIG_REGION", e.Name)
	assert.Greater(t, d, 0.0)

	e, d = p.Nearest(WallColor)
	assert.Equal(t, "WALL", e.Name)
	assert.Equal(t, 0.0, d)

	e, _ = p.Nearest(0x0101dd)
	assert.Equal(t, "GEM_BANK", e.Name)
}

func TestParseNames(t *testing.T) {
	k, err := ParseItemKind("gem_bank")
	require.NoError(t, err)
	assert.Equal(t, GemBank, k)
	_, err = ParseItemKind("DRAGON")
	assert.Error(t, err)

	r, err := ParseRegion("Gravity")
	require.NoError(t, err)
	assert.Equal(t, Gravity, r)
	_, err = ParseRegion("lava")
	assert.Error(t, err)

	o, err := ParseOutcome("spawn")
	require.NoError(t, err)
	assert.Equal(t, SpawnPoint, o)
	_, err = ParseOutcome("teleporter")
	assert.Error(t, err)
}

const testPaletteYAML = `
entries:
  - name: ROCK_FILL
    color: "#112233"
    class: region
    region: dig
  - name: AIR
    color: "#445566"
    class: region
    region: gravity
  - name: GEM_BANK
    color: "0x0000ff"
    class: item
    region: gravity
    clear: {w: 2, h: 1}
  - name: START
    color: "#00ff00"
    class: spawn
    region: gravity
  - name: BLANK
    color: "#ffffff"
    class: ignore
`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(testPaletteYAML))
	require.NoError(t, err)

	c, err := p.Classify(0x0000ff)
	require.NoError(t, err)
	assert.Equal(t, Classification{Outcome: Item, Kind: GemBank, Region: Gravity, Clear: ClearSpace{W: 2, H: 1}}, c)

	c, err = p.Classify(0x112233)
	require.NoError(t, err)
	assert.Equal(t, Classification{Outcome: RegionOnly, Region: Dig}, c)

	_, err = p.Classify(WallColor)
	assert.ErrorIs(t, err, ErrUnrecognizedColor)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "entries:\n  - name: A\n    colour: \"#000000\"\n"},
		{"bad color", "entries:\n  - name: A\n    color: \"#zz0000\"\n    class: region\n    region: dig\n"},
		{"bad class", "entries:\n  - name: A\n    color: \"#000000\"\n    class: lava\n"},
		{"bad region", "entries:\n  - name: A\n    color: \"#000000\"\n    class: region\n    region: sky\n"},
		{"item name not a kind", "entries:\n  - name: DRAGON\n    color: \"#000000\"\n    class: item\n    region: dig\n"},
		{"missing region", "entries:\n  - name: WALL\n    color: \"#000000\"\n    class: item\n"},
		{"spawn in dig region", "entries:\n  - name: START\n    color: \"#00ff00\"\n    class: spawn\n    region: dig\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("/nonexistent/palette.yaml")
	assert.Error(t, err)
}
