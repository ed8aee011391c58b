package dto

// Hasil suggest/retrieve dari Mapbox — transient, tidak dipersist.

type Suggestion struct {
	Name     string `json:"name"`
	MapboxID string `json:"mapbox_id"`
}

type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// SimpleLocation adalah satu feature retrieve yang sudah diratakan.
type SimpleLocation struct {
	Title     string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
}
