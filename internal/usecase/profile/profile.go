package profile

import (
	"context"
	"time"

	"github.com/DevBaweja/dating-app-backend/internal/compat"
	"github.com/DevBaweja/dating-app-backend/internal/entity"
	matchRepo "github.com/DevBaweja/dating-app-backend/internal/repository/match"
	profileRepo "github.com/DevBaweja/dating-app-backend/internal/repository/profile"
	userRepo "github.com/DevBaweja/dating-app-backend/internal/repository/user"
	"github.com/sirupsen/logrus"
)

type IProfileUseCase interface {
	GetProfiles(ctx context.Context, viewer *entity.User) ([]entity.Profile, error)
	GetProfile(ctx context.Context, id uint) (*entity.Profile, error)

	// CreateProfile stores the profile and binds it to the owning user.
	CreateProfile(ctx context.Context, owner *entity.User, request entity.UpsertProfileRequest) (*entity.Profile, error)

	// UpdateProfile saves the changes and recomputes the compatibility
	// score of every match the profile contributes to.
	UpdateProfile(ctx context.Context, id uint, request entity.UpsertProfileRequest) (*entity.Profile, error)

	DeleteProfile(ctx context.Context, id uint) error
	SeedProfiles(ctx context.Context) (int, error)
}

type profileUseCase struct {
	profileRepo profileRepo.IProfileRepo
	userRepo    userRepo.IUserRepo
	matchRepo   matchRepo.IMatchRepo
	log         *logrus.Logger
}

func NewProfileUseCase(
	profileRepo profileRepo.IProfileRepo,
	userRepo userRepo.IUserRepo,
	matchRepo matchRepo.IMatchRepo,
	log *logrus.Logger,
) IProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		matchRepo:   matchRepo,
		log:         log,
	}
}

func (p *profileUseCase) GetProfiles(ctx context.Context, viewer *entity.User) ([]entity.Profile, error) {
	var exclude uint
	if viewer.ProfileID != nil {
		exclude = *viewer.ProfileID
	}
	return p.profileRepo.GetActiveProfiles(ctx, exclude)
}

func (p *profileUseCase) GetProfile(ctx context.Context, id uint) (*entity.Profile, error) {
	return p.profileRepo.GetProfileByID(ctx, id)
}

func (p *profileUseCase) CreateProfile(ctx context.Context, owner *entity.User, request entity.UpsertProfileRequest) (*entity.Profile, error) {
	profile := profileFromRequest(request)
	profile.IsActive = true
	profile.LastActive = time.Now()

	if problems := profile.Validate(ctx); len(problems) > 0 {
		return nil, entity.ErrValidation
	}

	created, err := p.profileRepo.CreateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := p.userRepo.BindProfile(ctx, owner.ID, created.ID); err != nil {
		return nil, err
	}

	return created, nil
}

func (p *profileUseCase) UpdateProfile(ctx context.Context, id uint, request entity.UpsertProfileRequest) (*entity.Profile, error) {
	existing, err := p.profileRepo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := profileFromRequest(request)
	updated.ID = existing.ID
	updated.IsActive = existing.IsActive
	updated.LastActive = time.Now()
	updated.CreatedAt = existing.CreatedAt

	if problems := updated.Validate(ctx); len(problems) > 0 {
		return nil, entity.ErrValidation
	}

	if err := p.profileRepo.UpdateProfile(ctx, updated); err != nil {
		return nil, err
	}

	p.rescoreMatches(ctx, updated)

	return updated, nil
}

func (p *profileUseCase) DeleteProfile(ctx context.Context, id uint) error {
	return p.profileRepo.DeleteProfile(ctx, id)
}

func (p *profileUseCase) SeedProfiles(ctx context.Context) (int, error) {
	profiles, err := p.profileRepo.ReplaceAll(ctx, seedProfiles())
	if err != nil {
		return 0, err
	}
	return len(profiles), nil
}

// rescoreMatches keeps the derived-score invariant: whenever a profile
// changes, every match it contributes to gets its factors recomputed.
// Failures are logged, not surfaced; the profile update already
// committed.
func (p *profileUseCase) rescoreMatches(ctx context.Context, changed *entity.Profile) {
	matches, err := p.matchRepo.GetMatchesByProfile(ctx, changed.ID)
	if err != nil {
		p.log.WithError(err).Warn("rescore: listing matches failed")
		return
	}

	for _, match := range matches {
		actor, err := p.userRepo.GetUserByID(ctx, int(match.ActorID))
		if err != nil || actor.ProfileID == nil {
			continue
		}

		// The changed profile may sit on either side of the match.
		own := changed
		if *actor.ProfileID != changed.ID {
			if own, err = p.profileRepo.GetProfileByID(ctx, *actor.ProfileID); err != nil {
				continue
			}
		}

		target := changed
		if match.TargetProfileID != changed.ID {
			if target, err = p.profileRepo.GetProfileByID(ctx, match.TargetProfileID); err != nil {
				continue
			}
		}

		score, factors := compat.Score(own, target)
		if err := p.matchRepo.RescoreMatch(ctx, match.ID, score, factors); err != nil {
			p.log.WithError(err).WithField("match_id", match.ID).Warn("rescore failed")
		}
	}
}

func profileFromRequest(r entity.UpsertProfileRequest) *entity.Profile {
	return &entity.Profile{
		Name:           r.Name,
		Age:            r.Age,
		Gender:         r.Gender,
		InterestedIn:   r.InterestedIn,
		Bio:            r.Bio,
		Photo:          r.Photo,
		Photos:         r.Photos,
		Interests:      r.Interests,
		LookingFor:     r.LookingFor,
		Hobbies:        r.Hobbies,
		Job:            r.Job,
		Education:      r.Education,
		Location:       r.Location,
		Longitude:      r.Longitude,
		Latitude:       r.Latitude,
		Religion:       r.Religion,
		PoliticalViews: r.PoliticalViews,
		WantsChildren:  r.WantsChildren,
	}
}

func seedProfiles() []entity.Profile {
	return []entity.Profile{
		{
			Name:       "Alex",
			Age:        27,
			Bio:        "Love hiking, coffee, and spontaneous adventures!",
			Photo:      "https://randomuser.me/api/portraits/men/32.jpg",
			Interests:  []string{"Hiking", "Coffee", "Travel", "Photography", "Rock Climbing"},
			LookingFor: "Someone adventurous who loves the outdoors",
			Hobbies:    []string{"Weekend camping trips", "Trying new coffee shops", "Photography walks"},
			Job:        "Software Engineer",
			Education:  "Computer Science Degree",
			Location:   "San Francisco",
			IsActive:   true,
		},
		{
			Name:       "Taylor",
			Age:        25,
			Bio:        "Designer. Dog lover. Looking for someone to share memes with.",
			Photo:      "https://randomuser.me/api/portraits/women/44.jpg",
			Interests:  []string{"Design", "Dogs", "Memes", "Art", "Netflix"},
			LookingFor: "Someone creative and funny",
			Hobbies:    []string{"Sketching", "Dog walking", "Binge-watching shows", "Crafting"},
			Job:        "UI/UX Designer",
			Education:  "Design School",
			Location:   "New York",
			IsActive:   true,
		},
		{
			Name:       "Jordan",
			Age:        29,
			Bio:        "Foodie, traveler, and music enthusiast.",
			Photo:      "https://randomuser.me/api/portraits/men/65.jpg",
			Interests:  []string{"Cooking", "Travel", "Music", "Wine", "Cuisine"},
			LookingFor: "Someone who appreciates good food and music",
			Hobbies:    []string{"Cooking new recipes", "Concert going", "Wine tasting", "Exploring restaurants"},
			Job:        "Chef",
			Education:  "Culinary Arts",
			Location:   "Los Angeles",
			IsActive:   true,
		},
		{
			Name:       "Morgan",
			Age:        26,
			Bio:        "Bookworm. Yoga every morning. Let's chat!",
			Photo:      "https://randomuser.me/api/portraits/women/68.jpg",
			Interests:  []string{"Reading", "Yoga", "Meditation", "Writing", "Tea"},
			LookingFor: "Someone intellectual and mindful",
			Hobbies:    []string{"Morning yoga", "Book club", "Journaling", "Tea ceremonies"},
			Job:        "Librarian",
			Education:  "English Literature",
			Location:   "Boston",
			IsActive:   true,
		},
		{
			Name:       "Casey",
			Age:        28,
			Bio:        "Photographer. Coffee addict. Adventure seeker.",
			Photo:      "https://randomuser.me/api/portraits/women/22.jpg",
			Interests:  []string{"Photography", "Coffee", "Adventure", "Nature", "Art"},
			LookingFor: "Someone who loves exploring and creativity",
			Hobbies:    []string{"Street photography", "Coffee brewing", "Hiking", "Art galleries"},
			Job:        "Professional Photographer",
			Education:  "Fine Arts",
			Location:   "Seattle",
			IsActive:   true,
		},
		{
			Name:       "Riley",
			Age:        24,
			Bio:        "Artist. Cat person. Love trying new restaurants.",
			Photo:      "https://randomuser.me/api/portraits/men/45.jpg",
			Interests:  []string{"Art", "Cats", "Food", "Painting", "Museums"},
			LookingFor: "Someone artistic and food-loving",
			Hobbies:    []string{"Painting", "Cat sitting", "Restaurant hopping", "Gallery visits"},
			Job:        "Freelance Artist",
			Education:  "Art School",
			Location:   "Portland",
			IsActive:   true,
		},
	}
}
