package domain

import "time"

// Goals holds the per-user daily targets the dashboard measures progress
// against. Defaults apply when the user never updates them.
type Goals struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Water        float64 `json:"water"`
	Sleep        float64 `json:"sleep"`
	WeightTarget float64 `json:"weight_target"`
}

// User is the session-local user record. There is no real authentication:
// any non-empty credentials fabricate one of these.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this via JSON
	Goals        Goals     `json:"goals"`
	CreatedAt    time.Time `json:"createdAt"`
}
