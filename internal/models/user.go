package models

// Goal is the user's body-weight objective
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMaintenance Goal = "maintenance"
	GoalWeightGain  Goal = "weight_gain"
)

// ActivityLevel describes habitual physical activity
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// DietType describes the user's dietary pattern
type DietType string

const (
	DietVeg      DietType = "veg"
	DietNonVeg   DietType = "non_veg"
	DietVegan    DietType = "vegan"
	DietKeto     DietType = "keto"
	DietPaleo    DietType = "paleo"
	DietBalanced DietType = "balanced"
)

// Gender as modeled by the remote API
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// UserProfile is the identity resolved from a valid credential.
// Field names follow the wire format of the remote API.
type UserProfile struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Age           int           `json:"age"`
	Height        float64       `json:"height"`
	Weight        float64       `json:"weight"`
	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	DietType      DietType      `json:"dietType"`
	Gender        Gender        `json:"gender"`
}

// ProfileDefaults holds fallback values for enumerated profile fields
type ProfileDefaults struct {
	Goal          Goal
	ActivityLevel ActivityLevel
	DietType      DietType
	Gender        Gender
}

// DefaultProfile are the fallbacks applied to any profile the server returns
var DefaultProfile = ProfileDefaults{
	Goal:          GoalMaintenance,
	ActivityLevel: ActivityModerate,
	DietType:      DietBalanced,
	Gender:        GenderMale,
}

// MergeDefaults fills enumerated fields absent from a server payload with
// fallback values. Server values win on conflict.
func MergeDefaults(p UserProfile, fallback ProfileDefaults) UserProfile {
	if p.Goal == "" {
		p.Goal = fallback.Goal
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = fallback.ActivityLevel
	}
	if p.DietType == "" {
		p.DietType = fallback.DietType
	}
	if p.Gender == "" {
		p.Gender = fallback.Gender
	}
	return p
}

// WithDefaults applies the standard fallbacks
func (p UserProfile) WithDefaults() UserProfile {
	return MergeDefaults(p, DefaultProfile)
}
