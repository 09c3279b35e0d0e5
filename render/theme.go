package render

// Palette is the cosmetic color set of one map theme
type Palette struct {
	Name   string
	Ground RGB
	Grid   RGB
	Accent RGB
	Text   RGB
	Dot    rune
}

// Themes covers every survival map theme by name
var Themes = map[string]Palette{
	"grassland":   {Name: "grassland", Ground: Hex("#1d2b1a"), Grid: Hex("#2f4a2a"), Accent: Hex("#9ece6a"), Text: Hex("#e0f0d0"), Dot: '\''},
	"desert":      {Name: "desert", Ground: Hex("#3a2e1c"), Grid: Hex("#5a4628"), Accent: Hex("#e0af68"), Text: Hex("#fbeed5"), Dot: '.'},
	"ice_field":   {Name: "ice_field", Ground: Hex("#1b2636"), Grid: Hex("#2e4560"), Accent: Hex("#7dcfff"), Text: Hex("#eaf6ff"), Dot: '*'},
	"lava":        {Name: "lava", Ground: Hex("#2a1212"), Grid: Hex("#4a1e16"), Accent: Hex("#ff7a45"), Text: Hex("#ffe4d6"), Dot: '~'},
	"abyss":       {Name: "abyss", Ground: Hex("#0d1326"), Grid: Hex("#18234a"), Accent: Hex("#5d7cff"), Text: Hex("#d6e0ff"), Dot: '°'},
	"toxic_swamp": {Name: "toxic_swamp", Ground: Hex("#1a2414"), Grid: Hex("#324a1c"), Accent: Hex("#b9f227"), Text: Hex("#efffd0"), Dot: ','},
	"void":        {Name: "void", Ground: Hex("#111014"), Grid: Hex("#24202c"), Accent: Hex("#bb9af7"), Text: Hex("#ece4ff"), Dot: '·'},
}

// Ocean is the fixed puzzle palette
var Ocean = Palette{Name: "ocean", Ground: Hex("#0b2540"), Grid: Hex("#123a5e"), Accent: Hex("#ffd166"), Text: Hex("#e6f4ff"), Dot: ' '}

// Shared feedback colors
var (
	RGBWhite   = RGB{255, 255, 255}
	RGBBlack   = RGB{0, 0, 0}
	RGBDanger  = Hex("#f7768e")
	RGBHealthy = Hex("#73daca")
	RGBXP      = Hex("#7aa2f7")
	RGBGold    = Hex("#ffd166")
	RGBDim     = Hex("#565f89")
	RGBPanel   = Hex("#1a1b26")
	RGBSand    = Hex("#f2e2c4")
	RGBInk     = Hex("#2b2b2b")
)

// PaletteFor returns the named theme, falling back to the first survival theme
func PaletteFor(name string) Palette {
	if p, ok := Themes[name]; ok {
		return p
	}
	return Themes["grassland"]
}
