package types

// Item is a picture card from the shared item pool.
type Item struct {
	ID            string `json:"id"`
	DisplayName   string `json:"displayName"`
	Code          Code   `json:"code"`
	CategoryLabel string `json:"categoryLabel,omitempty"`
}

// IsJoker reports whether the item is a wildcard item.
func (i Item) IsJoker() bool {
	return i.Code.IsJoker()
}
