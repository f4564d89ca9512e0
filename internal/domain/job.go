package domain

// Job is a candidate posting: one matching line of page text.
// ID is the fingerprint of Company and Snippet.
type Job struct {
	Company string `json:"company"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	ID      string `json:"id"`
}
