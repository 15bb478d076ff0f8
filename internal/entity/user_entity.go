package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Profile      *UserProfile
	CreatedAt    time.Time
}

// UserProfile biases completions: Context is injected as a system turn
// when user profiling is enabled.
type UserProfile struct {
	Preferences map[string]string `json:"preferences"`
	Interests   []string          `json:"interests"`
	Context     string            `json:"context"`
}
