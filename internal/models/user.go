package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingSignup is the ephemeral record between signup and OTP verification.
// Email is not unique at this stage; uniqueness is enforced on users only.
type PendingSignup struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	OTP          string
	CreatedAt    time.Time
}

// ChapterScores holds the six per-chapter mastery scores, 1:1 with a user.
type ChapterScores struct {
	UserID         uuid.UUID `json:"user_id"`
	Algebra        float64   `json:"score_algebra"`
	Arithmetic     float64   `json:"score_arithmetic"`
	Probability    float64   `json:"score_probability"`
	GrowthDepr     float64   `json:"score_growthdepr"`
	Quadratic      float64   `json:"score_quadratic"`
	SequenceSeries float64   `json:"score_sqnseries"`
}

// ByColumn returns the score stored in the given chapter_scores column.
func (c *ChapterScores) ByColumn(column string) (float64, bool) {
	switch column {
	case "score_algebra":
		return c.Algebra, true
	case "score_arithmetic":
		return c.Arithmetic, true
	case "score_probability":
		return c.Probability, true
	case "score_growthdepr":
		return c.GrowthDepr, true
	case "score_quadratic":
		return c.Quadratic, true
	case "score_sqnseries":
		return c.SequenceSeries, true
	}
	return 0, false
}

// All returns the six scores in their fixed order for aggregation.
func (c *ChapterScores) All() [6]float64 {
	return [6]float64{c.Algebra, c.Arithmetic, c.Probability, c.GrowthDepr, c.Quadratic, c.SequenceSeries}
}

type SignupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    UserInfo `json:"user"`
}

type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
