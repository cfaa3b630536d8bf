package dto

type SlideInput struct {
	Position int    `json:"position"`
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText,omitempty"`
}

type ContentInput struct {
	Value string `json:"value"`
}
