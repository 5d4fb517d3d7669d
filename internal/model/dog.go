package model

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Size is the coarse size class shown on dog cards. It is derived from age, not measured.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// AdoptionStatus tracks where a dog is in the adoption process.
type AdoptionStatus string

const (
	StatusAvailable AdoptionStatus = "Available"
	StatusAdopted   AdoptionStatus = "Adopted"
	StatusFostered  AdoptionStatus = "Fostered"
)

// Dog is a shelter listing. Records are only ever created (upload or seed).
type Dog struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Breed          string         `json:"breed"`
	Age            float64        `json:"age"`
	Gender         string         `json:"gender,omitempty"`
	Size           Size           `json:"size"`
	Color          string         `json:"color,omitempty"`
	Vaccinated     bool           `json:"vaccinated"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus"`
	Location       string         `json:"location,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Description    string         `json:"description,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// MarshalJSON encodes a non-finite age as null; every other field is encoded as tagged.
func (d Dog) MarshalJSON() ([]byte, error) {
	type plain Dog
	out := struct {
		plain
		Age *float64 `json:"age"`
	}{plain: plain(d)}
	if age := d.Age; !math.IsInf(age, 0) && !math.IsNaN(age) {
		out.Age = &age
	}
	return json.Marshal(out)
}

// SizeForAge maps an age in years to a size class:
// under 1 is Small, under 5 is Medium, anything older is Large.
// Negative ages are Small and +Inf is Large.
func SizeForAge(age float64) Size {
	switch {
	case age < 1:
		return SizeSmall
	case age < 5:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// ParseAdoptionStatus returns the canonical status for s (case-insensitive).
// An empty string yields StatusAvailable; unknown values report ok=false.
func ParseAdoptionStatus(s string) (AdoptionStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusAvailable, true
	}
	for _, st := range []AdoptionStatus{StatusAvailable, StatusAdopted, StatusFostered} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}
