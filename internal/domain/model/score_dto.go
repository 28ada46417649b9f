package model

// ScoreResponse is the success body of POST /calculate-score
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
