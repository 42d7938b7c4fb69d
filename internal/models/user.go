package models

// User is a roster entry. Points and Reviews are mutated only by accepted
// review submissions; ReputationScore is display-only in this scope.
type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Avatar          string   `json:"avatar"`
	Points          int      `json:"points"`
	ReputationScore float64  `json:"reputationScore"`
	Reviews         []string `json:"reviews"`
}
