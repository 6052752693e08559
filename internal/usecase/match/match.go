package match

import (
	"context"
	"unicode/utf8"

	"github.com/DevBaweja/dating-app-backend/internal/compat"
	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/DevBaweja/dating-app-backend/internal/metrics"
	matchRepo "github.com/DevBaweja/dating-app-backend/internal/repository/match"
	profileRepo "github.com/DevBaweja/dating-app-backend/internal/repository/profile"
)

type IMatchUseCase interface {
	// LikeProfile records a like (or a super-like when super is set).
	// Duplicate pairs fail with ErrConflict, a missing target with
	// ErrNotFound. Super-likes escalate to a match unless the actor is
	// at the cap, in which case the like still lands and the result
	// reports MaxMatchesReached.
	LikeProfile(ctx context.Context, actor *entity.User, targetProfileID uint, super bool) (*entity.SwipeResult, error)

	// SuperLikeProfile is the strict variant: at the cap it fails with
	// ErrMatchLimitReached and writes nothing.
	SuperLikeProfile(ctx context.Context, actor *entity.User, targetProfileID uint) (*entity.SwipeResult, error)

	// PassProfile validates the target and persists nothing.
	PassProfile(ctx context.Context, actor *entity.User, targetProfileID uint) error

	RemoveMatch(ctx context.Context, actor *entity.User, targetProfileID uint) (int, error)
	BlockProfile(ctx context.Context, actor *entity.User, targetProfileID uint) error
	UnmatchProfile(ctx context.Context, actor *entity.User, targetProfileID uint) error

	GetMatches(ctx context.Context, actor *entity.User) ([]entity.Match, error)
	GetLiked(ctx context.Context, actor *entity.User) ([]entity.Like, error)
	GetStats(ctx context.Context, actor *entity.User) (*entity.MatchStats, error)

	AddMessage(ctx context.Context, actor *entity.User, targetProfileID uint, content string) (*entity.Message, error)
	MarkRead(ctx context.Context, actor *entity.User, targetProfileID uint) (int, error)
}

type matchUseCase struct {
	matchRepo   matchRepo.IMatchRepo
	profileRepo profileRepo.IProfileRepo
}

func NewMatchUseCase(matchRepo matchRepo.IMatchRepo, profileRepo profileRepo.IProfileRepo) IMatchUseCase {
	return &matchUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

func (m *matchUseCase) LikeProfile(ctx context.Context, actor *entity.User, targetProfileID uint, super bool) (*entity.SwipeResult, error) {
	target, err := m.profileRepo.GetProfileByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}

	kind := entity.LikeKindLike
	if super {
		kind = entity.LikeKindSuperLike
	}

	score, factors := m.scoreAgainst(ctx, actor, target)

	result, err := m.matchRepo.CreateSwipe(ctx, actor.ID, target.ID, kind, false, score, factors)
	if err != nil {
		return nil, err
	}

	metrics.RecordLike(kind)
	if result.IsMatch {
		metrics.RecordMatch()
		metrics.RecordCompatibilityScore(score)
	}

	return result, nil
}

func (m *matchUseCase) SuperLikeProfile(ctx context.Context, actor *entity.User, targetProfileID uint) (*entity.SwipeResult, error) {
	target, err := m.profileRepo.GetProfileByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}

	score, factors := m.scoreAgainst(ctx, actor, target)

	result, err := m.matchRepo.CreateSwipe(ctx, actor.ID, target.ID, entity.LikeKindSuperLike, true, score, factors)
	if err != nil {
		return nil, err
	}

	metrics.RecordLike(entity.LikeKindSuperLike)
	metrics.RecordMatch()
	metrics.RecordCompatibilityScore(score)

	return result, nil
}

func (m *matchUseCase) PassProfile(ctx context.Context, actor *entity.User, targetProfileID uint) error {
	_, err := m.profileRepo.GetProfileByID(ctx, targetProfileID)
	return err
}

func (m *matchUseCase) RemoveMatch(ctx context.Context, actor *entity.User, targetProfileID uint) (int, error) {
	count, err := m.matchRepo.RemoveMatch(ctx, actor.ID, targetProfileID)
	if err != nil {
		return 0, err
	}

	metrics.RecordMatchRemoved()
	return count, nil
}

func (m *matchUseCase) BlockProfile(ctx context.Context, actor *entity.User, targetProfileID uint) error {
	return m.matchRepo.SetMatchStatus(ctx, actor.ID, targetProfileID, entity.MatchStatusBlocked)
}

func (m *matchUseCase) UnmatchProfile(ctx context.Context, actor *entity.User, targetProfileID uint) error {
	return m.matchRepo.SetMatchStatus(ctx, actor.ID, targetProfileID, entity.MatchStatusUnmatched)
}

func (m *matchUseCase) GetMatches(ctx context.Context, actor *entity.User) ([]entity.Match, error) {
	return m.matchRepo.GetMatches(ctx, actor.ID)
}

func (m *matchUseCase) GetLiked(ctx context.Context, actor *entity.User) ([]entity.Like, error) {
	return m.matchRepo.GetLiked(ctx, actor.ID)
}

func (m *matchUseCase) GetStats(ctx context.Context, actor *entity.User) (*entity.MatchStats, error) {
	return m.matchRepo.Stats(ctx, actor.ID)
}

func (m *matchUseCase) AddMessage(ctx context.Context, actor *entity.User, targetProfileID uint, content string) (*entity.Message, error) {
	// Character count, not bytes, same as the route validator.
	if content == "" || utf8.RuneCountInString(content) > entity.MaxMessageLength {
		return nil, entity.ErrValidation
	}
	return m.matchRepo.AddMessage(ctx, actor.ID, targetProfileID, content)
}

func (m *matchUseCase) MarkRead(ctx context.Context, actor *entity.User, targetProfileID uint) (int, error) {
	return m.matchRepo.MarkRead(ctx, actor.ID, targetProfileID)
}

// scoreAgainst computes the compatibility score between the actor's own
// profile and the target. An actor without a profile scores zero with
// no factors; the match still forms.
func (m *matchUseCase) scoreAgainst(ctx context.Context, actor *entity.User, target *entity.Profile) (int, []entity.Factor) {
	if actor.ProfileID == nil {
		return 0, nil
	}

	own, err := m.profileRepo.GetProfileByID(ctx, *actor.ProfileID)
	if err != nil {
		return 0, nil
	}

	return compat.Score(own, target)
}
