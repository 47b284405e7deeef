package prompt

// ListOptions provides filtering options for listing prompts. A non-empty
// Query switches the listing to a full-text search over title, description
// and content, ranked by relevance.
type ListOptions struct {
	Query         string
	StructureType *StructureType
	Category      string
	Type          string
	Language      string
	Complexity    string
	Tag           string
	Limit         int
	Offset        int
}
