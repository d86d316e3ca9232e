package user

import (
	"flawless/models"
	"flawless/utils"

	"go.uber.org/zap"
)

// GetProfile returns the public view of a user account.
func (s *DefaultUserService) GetProfile(userID string) (*models.PublicUser, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user profile", zap.Error(err))
		return nil, err
	}
	if usr == nil {
		return nil, NewNotFoundError("user not found")
	}
	pub := usr.Public()
	return &pub, nil
}

// SetProfileImage stores the uploaded image URL on the user record.
func (s *DefaultUserService) SetProfileImage(userID, imageURL string) (*models.PublicUser, error) {
	if imageURL == "" {
		return nil, NewValidationError("image URL is required")
	}
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, NewNotFoundError("user not found")
	}
	if err := s.Repo.SetProfileImage(userID, imageURL); err != nil {
		utils.GetLogger().Error("Failed to set profile image", zap.Error(err))
		return nil, err
	}
	usr.ProfileImage = imageURL
	pub := usr.Public()
	return &pub, nil
}

// ClearProfileImage removes the user's profile image.
func (s *DefaultUserService) ClearProfileImage(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return NewNotFoundError("user not found")
	}
	return s.Repo.SetProfileImage(userID, "")
}

// GetSubscribers lists every registered customer, newest first. The admin
// dashboard uses this as its mailing list.
func (s *DefaultUserService) GetSubscribers() ([]models.PublicUser, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list subscribers", zap.Error(err))
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}
