package services

import (
	"fmt"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
)

func ListCommentOnPost(postId uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", postId).
		Preload("Author").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountCommentOnPost(postId uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postId).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

// NewComment appends a comment to a post. Comments are never edited or
// deleted afterwards.
func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	if len(text) == 0 {
		return models.Comment{}, fmt.Errorf("comment text cannot be empty")
	}

	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
	}

	err := database.C.Save(&comment).Error
	return comment, err
}
