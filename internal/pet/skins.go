package pet

// Skin describes one look of the pet.
type Skin struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	EyeRange    float64 // Largest eye offset when tracking the cursor
}

const (
	SkinGirlWhite = "girl-white"
	SkinGirlPink  = "girl-pink"
	SkinGothBunny = "goth-bunny"
	SkinCatOrange = "cat-orange"

	DefaultSkin = SkinGirlWhite
)

// Skins holds all available skins keyed by ID.
var Skins = map[string]Skin{
	SkinGirlWhite: {ID: SkinGirlWhite, Name: "Rampage Blue", Description: "A blue-haired girl with twin tails and zero chill", Emoji: "💙", EyeRange: 2.5},
	SkinGirlPink:  {ID: SkinGirlPink, Name: "Star Envoy", Description: "A mysterious girl in a white robe", Emoji: "⭐", EyeRange: 2.5},
	SkinGothBunny: {ID: SkinGothBunny, Name: "Night Bunny", Description: "A cool bunny-eared girl in black", Emoji: "🐰", EyeRange: 2.5},
	SkinCatOrange: {ID: SkinCatOrange, Name: "Ink Cat", Description: "Knocked over the ink bottle", Emoji: "🐱", EyeRange: 2},
}

// SkinOrder defines display order for skin selection.
var SkinOrder = []string{SkinGirlWhite, SkinGirlPink, SkinGothBunny, SkinCatOrange}

// LookupSkin returns the skin for id, falling back to the default skin.
func LookupSkin(id string) Skin {
	if s, ok := Skins[id]; ok {
		return s
	}
	return Skins[DefaultSkin]
}

// NextSkin returns the skin after id in display order.
func NextSkin(id string) string {
	for i, s := range SkinOrder {
		if s == id {
			return SkinOrder[(i+1)%len(SkinOrder)]
		}
	}
	return DefaultSkin
}
