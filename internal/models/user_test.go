package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeDefaultsFillsAbsentFields(t *testing.T) {
	p := UserProfile{
		ID:    "665f1c2e9b3d2a0012f00001",
		Name:  "Asha",
		Email: "asha@example.com",
	}

	merged := p.WithDefaults()

	assert.Equal(t, GoalMaintenance, merged.Goal)
	assert.Equal(t, ActivityModerate, merged.ActivityLevel)
	assert.Equal(t, DietBalanced, merged.DietType)
	assert.Equal(t, GenderMale, merged.Gender)

	// Non-enumerated fields pass through untouched
	assert.Equal(t, "Asha", merged.Name)
	assert.Equal(t, "asha@example.com", merged.Email)
}

func TestMergeDefaultsServerValuesWin(t *testing.T) {
	p := UserProfile{
		Goal:          GoalWeightLoss,
		ActivityLevel: ActivityVeryActive,
		DietType:      DietKeto,
		Gender:        GenderFemale,
	}

	merged := p.WithDefaults()

	assert.Equal(t, GoalWeightLoss, merged.Goal)
	assert.Equal(t, ActivityVeryActive, merged.ActivityLevel)
	assert.Equal(t, DietKeto, merged.DietType)
	assert.Equal(t, GenderFemale, merged.Gender)
}

func TestMergeDefaultsIsPure(t *testing.T) {
	p := UserProfile{Name: "Asha"}
	_ = MergeDefaults(p, DefaultProfile)

	if p.Goal != "" {
		t.Errorf("expected input profile to be unchanged, got goal %q", p.Goal)
	}
}

func TestUserProfileWireFormat(t *testing.T) {
	payload := `{
		"_id": "665f1c2e9b3d2a0012f00001",
		"name": "Asha",
		"email": "asha@example.com",
		"age": 29,
		"height": 165,
		"weight": 61.5,
		"goal": "weight_loss",
		"activityLevel": "light",
		"dietType": "veg",
		"gender": "female"
	}`

	var p UserProfile
	err := json.Unmarshal([]byte(payload), &p)
	assert.NoError(t, err)

	assert.Equal(t, "665f1c2e9b3d2a0012f00001", p.ID)
	assert.Equal(t, 29, p.Age)
	assert.Equal(t, 165.0, p.Height)
	assert.Equal(t, GoalWeightLoss, p.Goal)
	assert.Equal(t, ActivityLight, p.ActivityLevel)
	assert.Equal(t, DietVeg, p.DietType)
	assert.Equal(t, GenderFemale, p.Gender)
}
