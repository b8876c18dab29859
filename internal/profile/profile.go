package profile

import "time"

// Profile holds the body stats needed for strength classification.
// Gender plus either bodyweight or skeletal muscle mass (depending on the
// exercise standard type) are required for a classification to resolve;
// anything missing means the classification degrades to N/A downstream.
type Profile struct {
	ID                      int       `json:"id"`
	Gender                  string    `json:"gender"`
	Age                     *int      `json:"age,omitempty"`
	WeightValue             *float64  `json:"weightValue,omitempty"`
	WeightUnit              string    `json:"weightUnit,omitempty"` // "kg" or "lbs"
	SkeletalMuscleMassValue *float64  `json:"skeletalMuscleMassValue,omitempty"`
	SkeletalMuscleMassUnit  string    `json:"skeletalMuscleMassUnit,omitempty"`
	UpdatedAt               time.Time `json:"updatedAt"`
}
