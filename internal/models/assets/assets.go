package assets

// File names inside the asset root.
const (
	LogoFull  = "logo_full.png"
	Icon      = "icon.png"
	LogoWhite = "logo_white.png"
	IconWhite = "icon_white.png"
)

type Pair struct {
	Input  string
	Output string
}

// WhitePairs lists the assets that get a white variant.
var WhitePairs = []Pair{
	{Input: LogoFull, Output: LogoWhite},
	{Input: Icon, Output: IconWhite},
}
