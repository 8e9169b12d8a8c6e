package models

import "time"

// OnboardingAnswers holds the onboarding questionnaire of one user.
// At most one record exists per user; saves are whole-record upserts.
type OnboardingAnswers struct {
	UserUID        string    `json:"user_id"`
	Meta           string    `json:"meta"`
	Ritmo          string    `json:"ritmo"`
	Prioridad      string    `json:"prioridad"`
	Acompanamiento string    `json:"acompanamiento"`
	MonedaBase     string    `json:"moneda_base"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
