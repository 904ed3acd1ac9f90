package matching

// synonymGroups is a fixed synonym table grouped by concept. Lookup is
// bidirectional: a token matches a description word when both belong to
// the same group. The table is built once at init and never mutated.
var synonymGroups = [][]string{
	// Colors
	{"red", "crimson", "scarlet", "ruby", "cherry"},
	{"blue", "azure", "cobalt", "sapphire", "navy"},
	{"green", "emerald", "jade", "verdant", "olive"},
	{"yellow", "golden", "amber", "gold"},
	{"purple", "violet", "lavender", "magenta"},
	{"orange", "tangerine", "copper"},
	{"black", "dark", "ebony", "obsidian"},
	{"white", "pale", "ivory", "snowy"},
	{"gray", "grey", "silver", "ashen"},
	{"brown", "bronze", "tan", "sepia"},

	// Lighting qualities
	{"bright", "luminous", "radiant", "brilliant", "glowing"},
	{"dim", "dusky", "shadowy", "murky", "gloomy"},
	{"soft", "diffused", "gentle", "subtle"},
	{"harsh", "stark", "intense", "dramatic"},
	{"sunset", "dusk", "twilight", "evening"},
	{"sunrise", "dawn", "morning", "daybreak"},
	{"backlit", "backlight", "silhouette", "silhouetted"},
	{"neon", "fluorescent", "electric"},

	// Style descriptors
	{"realistic", "photorealistic", "lifelike", "photographic"},
	{"cartoon", "animated", "stylized", "toon"},
	{"painting", "painted", "painterly", "canvas"},
	{"sketch", "drawing", "drawn", "doodle"},
	{"anime", "manga"},
	{"vintage", "retro", "classic", "antique", "old-fashioned"},
	{"modern", "contemporary", "sleek", "minimalist"},
	{"abstract", "surreal", "dreamlike", "surrealist"},
	{"fantasy", "magical", "mythical", "enchanted"},
	{"cinematic", "filmic", "movie"},

	// Composition terms
	{"closeup", "close-up", "macro", "detail"},
	{"wide", "panoramic", "landscape", "expansive"},
	{"portrait", "headshot", "face"},
	{"aerial", "overhead", "birdseye", "drone"},
	{"centered", "symmetrical", "balanced"},
	{"angle", "perspective", "viewpoint"},
	{"foreground", "front"},
	{"background", "backdrop", "behind"},
}

// synonymIndex maps every word in the table to its group for O(1)
// lookup.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string][]string {
	index := make(map[string][]string)
	for _, group := range synonymGroups {
		for _, word := range group {
			index[word] = group
		}
	}
	return index
}

// synonymsOf returns the other members of the token's synonym group, or
// nil when the token is not in the table.
func synonymsOf(token string) []string {
	group, ok := synonymIndex[token]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(group)-1)
	for _, word := range group {
		if word != token {
			out = append(out, word)
		}
	}
	return out
}
