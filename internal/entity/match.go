package entity

import "time"

type LikeKind string

const (
	LikeKindLike      LikeKind = "like"
	LikeKindSuperLike LikeKind = "super_like"
)

func (k LikeKind) String() string {
	switch k {
	case LikeKindLike:
		return "Like"
	case LikeKindSuperLike:
		return "SuperLike"
	default:
		return "Unknown"
	}
}

type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusMatched   MatchStatus = "matched"
	MatchStatusUnmatched MatchStatus = "unmatched"
	MatchStatusBlocked   MatchStatus = "blocked"
)

// MaxConcurrentMatches is the hard cap on simultaneous entries in the
// "matched" state per user.
const MaxConcurrentMatches = 4

const MaxMessageLength = 1000

// Like is a one-directional interest signal. The (actor, target) pair
// is unique; a duplicate like is a Conflict, never an overwrite.
type Like struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	ActorID         uint      `gorm:"column:actor_id;not null;uniqueIndex:idx_likes_pair" json:"actor_id"`
	TargetProfileID uint      `gorm:"column:target_profile_id;not null;uniqueIndex:idx_likes_pair" json:"target_profile_id"`
	Kind            LikeKind  `gorm:"column:kind;type:varchar(16);not null" json:"kind"`
	LikedAt         time.Time `gorm:"column:liked_at;not null" json:"liked_at"`
}

func (Like) TableName() string { return "likes" }

// Factor is one weighted component of a compatibility score.
type Factor struct {
	Name     string  `json:"factor"`
	Weight   float64 `json:"weight"`
	RawScore float64 `json:"score"`
}

// Match is a bidirectional-intent relationship unlocking messaging.
// Score and Factors are derived by the scorer; they are recomputed when
// a contributing profile changes and are never writable from outside.
type Match struct {
	ID              uint        `gorm:"primaryKey;column:id" json:"id"`
	ActorID         uint        `gorm:"column:actor_id;not null;uniqueIndex:idx_matches_pair" json:"actor_id"`
	TargetProfileID uint        `gorm:"column:target_profile_id;not null;uniqueIndex:idx_matches_pair" json:"target_profile_id"`
	Status          MatchStatus `gorm:"column:status;type:varchar(16);not null;default:matched" json:"status"`
	SuperLiked      bool        `gorm:"column:super_liked;not null" json:"super_liked"`

	Score   int      `gorm:"column:score;not null" json:"score"`
	Factors []Factor `gorm:"serializer:json;column:factors" json:"factors"`

	Messages []Message `gorm:"foreignKey:MatchID" json:"messages"`

	LastInteraction  time.Time `gorm:"column:last_interaction" json:"last_interaction"`
	InteractionCount int       `gorm:"column:interaction_count;not null;default:0" json:"interaction_count"`
	MatchedAt        time.Time `gorm:"column:matched_at;not null" json:"matched_at"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Match) TableName() string { return "matches" }

type Message struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	MatchID  uint   `gorm:"column:match_id;not null;index" json:"match_id"`
	SenderID uint   `gorm:"column:sender_id;not null" json:"sender_id"`
	Content  string `gorm:"column:content;not null" json:"content"`

	IsRead bool       `gorm:"column:is_read;not null;default:false" json:"is_read"`
	ReadAt *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string { return "messages" }

// MatchStats is the per-user aggregate surfaced by the stats endpoints.
type MatchStats struct {
	TotalMatches      int  `json:"totalMatches"`
	TotalLiked        int  `json:"totalLiked"`
	SuperLikes        int  `json:"superLikes"`
	MaxMatchesReached bool `json:"maxMatchesReached"`
}

// SwipeResult is the outcome of a like or super-like action.
type SwipeResult struct {
	IsMatch           bool
	MatchesCount      int
	MaxMatchesReached bool
}
