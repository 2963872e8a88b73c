package usecase

import (
	"context"
	"errors"
	"time"

	"studybuddy/model"
	"studybuddy/repository"
	"studybuddy/services"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UsersService struct {
	UsersRepo    *repository.UsersRepo
	ProfilesRepo *repository.ProfilesRepo
}

// CreateUser registers a new account with a hashed password and its
// profile row.
func (svc *UsersService) CreateUser(ctx context.Context, username string, email string, password string) (*model.User, error) {
	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if _, err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	if _, err := svc.EnsureProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a username/password pair and returns the
// matching user.
func (svc *UsersService) Authenticate(ctx context.Context, username string, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureProfile creates the user's profile row if it does not exist
// yet. Accounts that predate profiles get one on their next login.
func (svc *UsersService) EnsureProfile(ctx context.Context, user *model.User) (*model.Profile, error) {
	return svc.ProfilesRepo.UpsertProfile(ctx, &model.Profile{
		UserID:      user.UserID,
		Email:       user.Email,
		DisplayName: user.Username,
	})
}

// GetProfile returns a user's profile.
func (svc *UsersService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	return svc.ProfilesRepo.GetProfile(ctx, userID)
}

// MarkIntroSeen records that the user has dismissed the first-run
// introduction.
func (svc *UsersService) MarkIntroSeen(ctx context.Context, userID string) error {
	return svc.ProfilesRepo.UpdateProfile(ctx, userID, bson.M{"has_seen_intro": true})
}

// SetPremium flips the premium flag after a completed checkout.
func (svc *UsersService) SetPremium(ctx context.Context, userID string, premium bool) error {
	return svc.ProfilesRepo.UpdateProfile(ctx, userID, bson.M{"is_premium": premium})
}

// UpdateDisplayName changes the profile's display name.
func (svc *UsersService) UpdateDisplayName(ctx context.Context, userID string, name string) error {
	if name == "" {
		return errors.New("display name is required")
	}
	return svc.ProfilesRepo.UpdateProfile(ctx, userID, bson.M{"display_name": name})
}
