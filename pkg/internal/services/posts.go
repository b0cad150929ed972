package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
)

func FilterPostWithGroup(tx *gorm.DB, slug string) *gorm.DB {
	return tx.Joins("JOIN groups ON groups.id = posts.group_id").
		Where("groups.slug = ?", slug)
}

func FilterPostWithAuthor(tx *gorm.DB, authorId uint) *gorm.DB {
	return tx.Where("author_id = ?", authorId)
}

// FilterPostWithFollowed narrows posts down to the authors the user follows.
func FilterPostWithFollowed(tx *gorm.DB, user models.Account) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", user.ID),
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func CountPostForAuthor(authorId uint) int64 {
	var count int64
	if err := database.C.Model(&models.Post{}).
		Where("author_id = ?", authorId).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	if item.GroupID != nil {
		if _, err := GetGroupWithID(*item.GroupID); err != nil {
			return item, fmt.Errorf("unable to find group: %v", err)
		}
	}

	// The author always comes from the session, never from the submission.
	item.AuthorID = user.ID
	item.Language = DetectLanguage(item.Text)

	log.Debug().Uint("author", user.ID).Msg("Saving post record into database...")
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func EditPost(item models.Post, text string, groupId *uint, attachments []string) (models.Post, error) {
	if len(text) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	if groupId != nil {
		if _, err := GetGroupWithID(*groupId); err != nil {
			return item, fmt.Errorf("unable to find group: %v", err)
		}
	}

	item.Text = text
	item.GroupID = groupId
	item.Group = nil
	// A submission without attachments keeps the existing ones; send an
	// empty list to clear them.
	if attachments != nil {
		item.Attachments = attachments
	}
	item.Language = DetectLanguage(text)

	err := database.C.Save(&item).Error
	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Delete(&item).Error
}

const TruncatePostPreviewThreshold = 30

// TruncatePostPreview trims the text down to the preview length.
// No ellipsis, the templates decide how to mark the cut.
func TruncatePostPreview(post models.Post) string {
	val := []rune(post.Text)
	if len(val) <= TruncatePostPreviewThreshold {
		return post.Text
	}
	return string(val[:TruncatePostPreviewThreshold])
}
