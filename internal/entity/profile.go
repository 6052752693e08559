package entity

import (
	"context"
	"time"
)

const (
	MinAge         = 18
	MaxAge         = 100
	MaxBioLength   = 500
	MaxPhotos      = 6
	MaxInterestLen = 50
)

// Profile is a user's dating-facing attribute set.
type Profile struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"not null;column:name" json:"name"`
	Age  int    `gorm:"not null;column:age" json:"age"`

	Gender       string `gorm:"column:gender" json:"gender"`
	InterestedIn string `gorm:"column:interested_in" json:"interested_in"`

	Bio        string   `gorm:"column:bio" json:"bio"`
	Photo      string   `gorm:"column:photo" json:"photo"`
	Photos     []string `gorm:"serializer:json;column:photos" json:"photos"`
	Interests  []string `gorm:"serializer:json;column:interests" json:"interests"`
	LookingFor string   `gorm:"column:looking_for" json:"looking_for"`
	Hobbies    []string `gorm:"serializer:json;column:hobbies" json:"hobbies"`
	Job        string   `gorm:"column:job" json:"job"`
	Education  string   `gorm:"column:education" json:"education"`

	// Location is the display label; the coordinate pair is optional and
	// only feeds the compatibility scorer when both sides carry it.
	Location  string   `gorm:"column:location;default:Unknown" json:"location"`
	Longitude *float64 `gorm:"column:longitude" json:"longitude,omitempty"`
	Latitude  *float64 `gorm:"column:latitude" json:"latitude,omitempty"`

	Religion       *string `gorm:"column:religion" json:"religion,omitempty"`
	PoliticalViews *string `gorm:"column:political_views" json:"political_views,omitempty"`
	WantsChildren  *bool   `gorm:"column:wants_children" json:"wants_children,omitempty"`

	IsActive   bool      `gorm:"column:is_active;default:true" json:"is_active"`
	LastActive time.Time `gorm:"column:last_active" json:"last_active"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// HasCoordinates reports whether the profile carries a usable
// longitude/latitude pair.
func (p *Profile) HasCoordinates() bool {
	return p != nil && p.Longitude != nil && p.Latitude != nil
}

// Validate enforces the profile invariants: age in [18,100], bio and
// photo list limits.
func (p *Profile) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if p.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if p.Age < MinAge {
		problems["Age"] = append(problems["Age"], "Must be at least 18 years old")
	}
	if p.Age > MaxAge {
		problems["Age"] = append(problems["Age"], "Age cannot be more than 100")
	}
	if len(p.Bio) > MaxBioLength {
		problems["Bio"] = append(problems["Bio"], "Bio cannot be more than 500 characters")
	}
	if len(p.Photos) > MaxPhotos {
		problems["Photos"] = append(problems["Photos"], "Cannot have more than 6 photos")
	}
	for _, interest := range p.Interests {
		if len(interest) > MaxInterestLen {
			problems["Interests"] = append(problems["Interests"], "Interest cannot be more than 50 characters")
			break
		}
	}
	if (p.Longitude == nil) != (p.Latitude == nil) {
		problems["Location"] = append(problems["Location"], "Longitude and latitude must be set together")
	}

	return problems
}
