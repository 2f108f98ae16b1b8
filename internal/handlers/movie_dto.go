package handlers

type ReviewRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Text     string `json:"text" validate:"required,min=4,max=2000"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=10"`
}

// ValidationError is returned per failing field of a request body.
type ValidationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
