package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryState is the last known inside/outside flag for a (subscription, subject) pair.
// A missing row is equivalent to Inside == false.
type EntryState struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	SubjectUserID  uuid.UUID `json:"subject_user_id"`
	Inside         bool      `json:"inside"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Transition is the edge observed between the stored and the newly evaluated state.
type Transition int

const (
	// TransitionNone means the pair stayed inside or stayed outside.
	TransitionNone Transition = iota
	// TransitionEnter means the pair moved from outside (or unknown) to inside.
	TransitionEnter
	// TransitionExit means the pair moved from inside to outside.
	TransitionExit
)

// String implements fmt.Stringer.
func (t Transition) String() string {
	switch t {
	case TransitionEnter:
		return "enter"
	case TransitionExit:
		return "exit"
	default:
		return "none"
	}
}

// TransitionBetween derives the transition from a prior and a current inside flag.
func TransitionBetween(wasInside, isInside bool) Transition {
	switch {
	case !wasInside && isInside:
		return TransitionEnter
	case wasInside && !isInside:
		return TransitionExit
	default:
		return TransitionNone
	}
}

// GeofenceEvaluation is the outcome of checking one subject position against one subscription.
type GeofenceEvaluation struct {
	Subscription          *RadiusSubscription
	DistanceMeters        float64
	DistanceRoundedMeters int64
	Inside                bool
}
