package matching

// stopWords is the closed list of words dropped during token
// extraction: articles, conjunctions, common auxiliary verbs, and
// intensifiers. Built once; never mutated at runtime.
var stopWords = map[string]bool{
	// Articles and determiners
	"the": true, "and": true, "with": true, "for": true, "this": true,
	"that": true, "these": true, "those": true, "some": true, "any": true,
	// Conjunctions and prepositions
	"but": true, "nor": true, "yet": true, "from": true, "into": true,
	"onto": true, "over": true, "under": true, "near": true,
	// Auxiliary verbs
	"are": true, "was": true, "were": true, "been": true, "being": true,
	"has": true, "have": true, "had": true, "will": true, "would": true,
	"should": true, "could": true, "does": true, "did": true,
	// Intensifiers
	"very": true, "quite": true, "really": true, "extremely": true,
	"highly": true, "rather": true, "too": true, "much": true,
}

// isStopWord reports whether the lowercased word is in the stop list.
func isStopWord(word string) bool {
	return stopWords[word]
}
