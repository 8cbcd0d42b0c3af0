package models

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingStep describes where a user is in the username → team → ready pipeline
type OnboardingStep string

const (
	OnboardingStepNeedUsername OnboardingStep = "NEED_USERNAME"
	OnboardingStepNeedTeam     OnboardingStep = "NEED_TEAM"
	OnboardingStepCreatingTeam OnboardingStep = "CREATING_TEAM"
	OnboardingStepReady        OnboardingStep = "READY"
)

// User represents a user in the system
type User struct {
	ID             uuid.UUID      `json:"id"`
	Email          *string        `json:"email,omitempty"`
	Username       *string        `json:"username,omitempty"`
	OnboardingStep OnboardingStep `json:"onboarding_step"`
	CreatedAt      time.Time      `json:"created_at"`
}
