package matchRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMatchRepo interface {
	// CreateSwipe records a like and, for super-likes, escalates to a
	// matched entry. The whole action is one transaction serialized per
	// actor; nothing is written when it fails.
	//
	// strict selects the super-like endpoint semantics: at the match cap
	// the call fails with ErrMatchLimitReached and writes nothing. With
	// strict unset the like is still recorded at the cap and only the
	// escalation is skipped.
	CreateSwipe(ctx context.Context, actorID, targetProfileID uint, kind entity.LikeKind, strict bool, score int, factors []entity.Factor) (*entity.SwipeResult, error)

	// RemoveMatch deletes the (actor, target) match and like entries.
	// Idempotent: removing an absent pair succeeds.
	RemoveMatch(ctx context.Context, actorID, targetProfileID uint) (int, error)

	GetMatches(ctx context.Context, actorID uint) ([]entity.Match, error)
	GetMatch(ctx context.Context, actorID, targetProfileID uint) (*entity.Match, error)
	GetLiked(ctx context.Context, actorID uint) ([]entity.Like, error)
	CountMatches(ctx context.Context, actorID uint) (int, error)
	Stats(ctx context.Context, actorID uint) (*entity.MatchStats, error)

	AddMessage(ctx context.Context, actorID, targetProfileID uint, content string) (*entity.Message, error)
	MarkRead(ctx context.Context, readerID, targetProfileID uint) (int, error)

	SetMatchStatus(ctx context.Context, actorID, targetProfileID uint, status entity.MatchStatus) error
	GetMatchesByProfile(ctx context.Context, profileID uint) ([]entity.Match, error)
	RescoreMatch(ctx context.Context, matchID uint, score int, factors []entity.Factor) error
}

type MatchRepo struct {
	db  *gorm.DB
	rdb *redis.Client
	log *logrus.Logger
}

func NewMatchRepo(db *gorm.DB, redis *redis.Client, log *logrus.Logger) IMatchRepo {
	return &MatchRepo{
		db:  db,
		rdb: redis,
		log: log,
	}
}

func matchCountKey(actorID uint) string {
	return fmt.Sprintf(":user:%d:matches:count", actorID)
}

func (m *MatchRepo) CreateSwipe(
	ctx context.Context,
	actorID, targetProfileID uint,
	kind entity.LikeKind,
	strict bool,
	score int,
	factors []entity.Factor,
) (*entity.SwipeResult, error) {
	result := &entity.SwipeResult{}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Per-actor serialization: hold the actor's user row for the
		// duration of the check-then-write so two concurrent likes for
		// the same pair cannot both pass the duplicate check.
		var actor entity.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&actor, actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		var existing entity.Like
		err := tx.Where("actor_id = ? AND target_profile_id = ?", actorID, targetProfileID).
			First(&existing).Error
		if err == nil {
			return entity.ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var matched int64
		if err := tx.Model(&entity.Match{}).
			Where("actor_id = ? AND status = ?", actorID, entity.MatchStatusMatched).
			Count(&matched).Error; err != nil {
			return err
		}

		atCap := matched >= entity.MaxConcurrentMatches

		if strict && atCap {
			return entity.ErrMatchLimitReached
		}

		now := time.Now()
		like := entity.Like{
			ActorID:         actorID,
			TargetProfileID: targetProfileID,
			Kind:            kind,
			LikedAt:         now,
		}
		if err := tx.Create(&like).Error; err != nil {
			// Unique (actor, target) index is the backstop for the race
			// the row lock already guards against.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return entity.ErrConflict
			}
			return err
		}

		result.MatchesCount = int(matched)
		result.MaxMatchesReached = atCap

		// A super-like escalates straight to MATCHED; a plain like never
		// checks the reciprocal like before matching. Historical
		// behavior, kept deliberately.
		if kind == entity.LikeKindSuperLike {
			if atCap {
				result.MaxMatchesReached = true
				return nil
			}

			match := entity.Match{
				ActorID:         actorID,
				TargetProfileID: targetProfileID,
				Status:          entity.MatchStatusMatched,
				SuperLiked:      true,
				Score:           score,
				Factors:         factors,
				LastInteraction: now,
				MatchedAt:       now,
			}
			if err := tx.Create(&match).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return entity.ErrConflict
				}
				return err
			}

			result.IsMatch = true
			result.MatchesCount = int(matched) + 1
			result.MaxMatchesReached = result.MatchesCount >= entity.MaxConcurrentMatches
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	m.invalidateMatchCount(actorID)
	return result, nil
}

func (m *MatchRepo) RemoveMatch(ctx context.Context, actorID, targetProfileID uint) (int, error) {
	var remaining int64

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var actor entity.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&actor, actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		var match entity.Match
		err := tx.Where("actor_id = ? AND target_profile_id = ?", actorID, targetProfileID).
			First(&match).Error
		if err == nil {
			if err := tx.Where("match_id = ?", match.ID).Delete(&entity.Message{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&match).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("actor_id = ? AND target_profile_id = ?", actorID, targetProfileID).
			Delete(&entity.Like{}).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Match{}).
			Where("actor_id = ? AND status = ?", actorID, entity.MatchStatusMatched).
			Count(&remaining).Error
	})
	if err != nil {
		return 0, err
	}

	m.invalidateMatchCount(actorID)
	return int(remaining), nil
}

func (m *MatchRepo) GetMatches(ctx context.Context, actorID uint) ([]entity.Match, error) {
	var matches []entity.Match
	result := m.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Where("actor_id = ? AND status = ?", actorID, entity.MatchStatusMatched).
		Order("last_interaction DESC").
		Find(&matches)

	return matches, result.Error
}

func (m *MatchRepo) GetMatch(ctx context.Context, actorID, targetProfileID uint) (*entity.Match, error) {
	var match entity.Match
	result := m.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Where("actor_id = ? AND target_profile_id = ?", actorID, targetProfileID).
		First(&match)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &match, result.Error
}

func (m *MatchRepo) GetLiked(ctx context.Context, actorID uint) ([]entity.Like, error) {
	var likes []entity.Like
	result := m.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("liked_at DESC").
		Find(&likes)

	return likes, result.Error
}

func (m *MatchRepo) CountMatches(ctx context.Context, actorID uint) (int, error) {
	countKey := matchCountKey(actorID)

	if m.rdb != nil {
		if count, err := m.rdb.Get(countKey).Int(); err == nil {
			return count, nil
		} else if err != redis.Nil {
			m.log.WithError(err).Warn("match count cache read failed")
		}
	}

	var count int64
	result := m.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("actor_id = ? AND status = ?", actorID, entity.MatchStatusMatched).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	if m.rdb != nil {
		if err := m.rdb.Set(countKey, count, 30*time.Minute).Err(); err != nil {
			m.log.WithError(err).Warn("match count cache write failed")
		}
	}

	return int(count), nil
}

func (m *MatchRepo) Stats(ctx context.Context, actorID uint) (*entity.MatchStats, error) {
	matches, err := m.CountMatches(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var liked int64
	if err := m.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("actor_id = ?", actorID).
		Count(&liked).Error; err != nil {
		return nil, err
	}

	var superLikes int64
	if err := m.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("actor_id = ? AND kind = ?", actorID, entity.LikeKindSuperLike).
		Count(&superLikes).Error; err != nil {
		return nil, err
	}

	return &entity.MatchStats{
		TotalMatches:      matches,
		TotalLiked:        int(liked),
		SuperLikes:        int(superLikes),
		MaxMatchesReached: matches >= entity.MaxConcurrentMatches,
	}, nil
}

func (m *MatchRepo) AddMessage(ctx context.Context, actorID, targetProfileID uint, content string) (*entity.Message, error) {
	var message entity.Message

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match entity.Match
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("actor_id = ? AND target_profile_id = ? AND status = ?",
				actorID, targetProfileID, entity.MatchStatusMatched).
			First(&match).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ErrNotMatched
		}
		if err != nil {
			return err
		}

		now := time.Now()
		message = entity.Message{
			MatchID:   match.ID,
			SenderID:  actorID,
			Content:   content,
			CreatedAt: now,
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&entity.Message{}).
			Where("match_id = ?", match.ID).
			Count(&total).Error; err != nil {
			return err
		}

		return tx.Model(&match).Updates(map[string]interface{}{
			"last_interaction":  now,
			"interaction_count": total,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (m *MatchRepo) MarkRead(ctx context.Context, readerID, targetProfileID uint) (int, error) {
	var updated int64

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match entity.Match
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("actor_id = ? AND target_profile_id = ? AND status = ?",
				readerID, targetProfileID, entity.MatchStatusMatched).
			First(&match).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ErrNotMatched
		}
		if err != nil {
			return err
		}

		now := time.Now()

		// Never flips messages the reader authored.
		result := tx.Model(&entity.Message{}).
			Where("match_id = ? AND sender_id <> ? AND is_read = ?", match.ID, readerID, false).
			Updates(map[string]interface{}{
				"is_read": true,
				"read_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected

		var total int64
		if err := tx.Model(&entity.Message{}).
			Where("match_id = ?", match.ID).
			Count(&total).Error; err != nil {
			return err
		}

		return tx.Model(&match).Updates(map[string]interface{}{
			"last_interaction":  now,
			"interaction_count": total,
		}).Error
	})
	if err != nil {
		return 0, err
	}

	return int(updated), nil
}

func (m *MatchRepo) SetMatchStatus(ctx context.Context, actorID, targetProfileID uint, status entity.MatchStatus) error {
	result := m.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("actor_id = ? AND target_profile_id = ?", actorID, targetProfileID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	m.invalidateMatchCount(actorID)
	return nil
}

// GetMatchesByProfile lists matched entries the given profile
// contributes a score to, on either side: as the target, or as the
// actor's own profile resolved through users.profile_id.
func (m *MatchRepo) GetMatchesByProfile(ctx context.Context, profileID uint) ([]entity.Match, error) {
	var matches []entity.Match
	result := m.db.WithContext(ctx).
		Joins("JOIN users ON users.id = matches.actor_id").
		Where("matches.status = ?", entity.MatchStatusMatched).
		Where("matches.target_profile_id = ? OR users.profile_id = ?", profileID, profileID).
		Find(&matches)

	return matches, result.Error
}

func (m *MatchRepo) RescoreMatch(ctx context.Context, matchID uint, score int, factors []entity.Factor) error {
	return m.db.WithContext(ctx).
		Model(&entity.Match{ID: matchID}).
		Select("score", "factors").
		Updates(entity.Match{Score: score, Factors: factors}).Error
}

func (m *MatchRepo) invalidateMatchCount(actorID uint) {
	if m.rdb == nil {
		return
	}
	if err := m.rdb.Del(matchCountKey(actorID)).Err(); err != nil {
		m.log.WithError(err).Warn("match count cache invalidation failed")
	}
}
