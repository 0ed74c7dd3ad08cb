package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/probuild/bidding-api/internal/constants"
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"gorm.io/gorm"
)

// AccountService handles profile updates for any authenticated actor.
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// UpdateProfileInput holds the submitted profile fields. ImageFile is the
// already-saved filename of a freshly uploaded image, empty when the image
// is unchanged.
type UpdateProfileInput struct {
	Username  string
	Email     string
	ImageFile string
}

// UpdateProfile updates username, email and optionally the profile image.
// It returns the updated user and the previous image filename when the
// image was replaced, so the caller can remove the old file.
func (s *AccountService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	username := strings.TrimSpace(input.Username)
	if username != "" && username != user.Username {
		if _, err := s.userRepo.FindByUsername(username); err == nil {
			return nil, "", ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("failed to check username: %w", err)
		}
		user.Username = username
	}

	if input.Email != "" && input.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
			return nil, "", ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = input.Email
	}

	previousImage := ""
	if input.ImageFile != "" && input.ImageFile != user.ImageFile {
		if user.ImageFile != constants.DefaultProfileImage {
			previousImage = user.ImageFile
		}
		user.ImageFile = input.ImageFile
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, "", fmt.Errorf("failed to update profile: %w", err)
	}

	return user, previousImage, nil
}
