package entity

import (
	"context"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	} else if !emailRegex.MatchString(r.Email) {
		problems["Email"] = append(problems["Email"], "Invalid email format")
	}

	if r.Username == "" {
		problems["Username"] = append(problems["Username"], "Username is required")
	}

	if len(r.Username) > 16 {
		problems["Username"] = append(problems["Username"], "User name is too long")
	}

	if len(r.Password) < 6 {
		problems["Password"] = append(problems["Password"], "Password must be at least 6 characters long")
	}

	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" && r.Username == "" {
		problems["Email/Username"] = append(problems["Email/Username"], "Either Email or Username is required")
	}

	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		problems["Email"] = append(problems["Email"], "Invalid email format")
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.CurrentPassword == "" {
		problems["CurrentPassword"] = append(problems["CurrentPassword"], "Current password is required")
	}
	if len(r.NewPassword) < 6 {
		problems["NewPassword"] = append(problems["NewPassword"], "Password must be at least 6 characters long")
	}

	return problems
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Token == "" {
		problems["Token"] = append(problems["Token"], "Token is required")
	}
	if len(r.NewPassword) < 6 {
		problems["NewPassword"] = append(problems["NewPassword"], "Password must be at least 6 characters long")
	}

	return problems
}

// UpsertProfileRequest is validated by the echo validator (validator/v10
// tags); cross-field profile invariants live in Profile.Validate.
type UpsertProfileRequest struct {
	Name         string   `json:"name" validate:"required"`
	Age          int      `json:"age" validate:"required,gte=18,lte=100"`
	Gender       string   `json:"gender" validate:"omitempty,oneof=male female other"`
	InterestedIn string   `json:"interested_in" validate:"omitempty,oneof=male female both"`
	Bio          string   `json:"bio" validate:"max=500"`
	Photo        string   `json:"photo"`
	Photos       []string `json:"photos" validate:"max=6"`
	Interests    []string `json:"interests" validate:"dive,max=50"`
	LookingFor   string   `json:"looking_for" validate:"max=200"`
	Hobbies      []string `json:"hobbies"`
	Job          string   `json:"job"`
	Education    string   `json:"education"`
	Location     string   `json:"location" validate:"max=100"`

	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`

	Religion       *string `json:"religion"`
	PoliticalViews *string `json:"political_views"`
	WantsChildren  *bool   `json:"wants_children"`
}

type MatchLikeRequest struct {
	SuperLiked bool `json:"superLiked"`
}

type AddMessageRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}
