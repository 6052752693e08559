package entity

type SignUpResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type SwipeResponse struct {
	Message           string `json:"message"`
	IsMatch           bool   `json:"isMatch"`
	MatchesCount      int    `json:"matchesCount"`
	MaxMatchesReached bool   `json:"maxMatchesReached"`
}

type PassResponse struct {
	Message string `json:"message"`
}

// MatchLimitResponse is the refusal body for a super-like at the match
// cap; it carries no counts because the swipe wrote nothing.
type MatchLimitResponse struct {
	Message           string `json:"message"`
	MaxMatchesReached bool   `json:"maxMatchesReached"`
}

type RemoveMatchResponse struct {
	Message      string `json:"message"`
	MatchesCount int    `json:"matchesCount"`
}

type ProfileListResponse struct {
	Profiles []Profile `json:"profiles"`
}

type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
