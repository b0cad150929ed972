package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

func GetFollowOnAccount(user models.Account, target models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", user.ID, target.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

func IsAccountFollowing(user *models.Account, target models.Account) bool {
	if user == nil {
		return false
	}
	follow, err := GetFollowOnAccount(*user, target)
	return err == nil && follow != nil
}

// FollowAccount creates the follow edge if it is absent. The single
// FirstOrCreate keeps concurrent requests from racing into duplicate
// edges; the unique pair index backs it up at the store level.
func FollowAccount(user models.Account, target models.Account) (models.Follow, error) {
	var follow models.Follow
	if user.ID == target.ID {
		return follow, ErrSelfFollow
	}

	err := database.C.
		Where(models.Follow{UserID: user.ID, AuthorID: target.ID}).
		FirstOrCreate(&follow).Error
	return follow, err
}

// UnfollowAccount removes the edge. Unfollowing someone who was never
// followed is a no-op.
func UnfollowAccount(user models.Account, target models.Account) error {
	return database.C.
		Where("user_id = ? AND author_id = ?", user.ID, target.ID).
		Delete(&models.Follow{}).Error
}

func CountFollower(target models.Account) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", target.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
