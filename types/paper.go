package types

// Paper is the canonical, cleaned representation of one journal article.
// Link is the sole identity key: two Papers with the same Link are the same
// entity regardless of any other field.
type Paper struct {
	Link        string `json:"link"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Authors     string `json:"authors"`
	Journal     string `json:"journal"`
}
