package models

// Prediction is one model's forecast for one NFL game, as returned to clients.
type Prediction struct {
	PredID     string  `json:"pred_id"`
	Season     int     `json:"season"`
	Week       int     `json:"week"`
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	HomeWin    bool    `json:"home_win"`
	Confidence float64 `json:"confidence"`
	ModelUsed  string  `json:"model_used"`
	IsCorrect  *bool   `json:"is_correct"`
}

// CreatePredictionRequest is the payload for creating or fully replacing a
// prediction. IsCorrect stays nil until the real game concludes.
type CreatePredictionRequest struct {
	Season     int     `json:"season"`
	Week       int     `json:"week"`
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	HomeWin    bool    `json:"home_win"`
	Confidence float64 `json:"confidence"`
	ModelUsed  string  `json:"model_used"`
	IsCorrect  *bool   `json:"is_correct"`
}
