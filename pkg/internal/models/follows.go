package models

import "time"

// Follow is a directed edge: User wants Author's posts in their followed feed.
// The composite unique index keeps the pair unique under concurrent requests.
// No soft delete here, unfollowing removes the row so the pair can be recreated.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint    `json:"user_id" gorm:"index;uniqueIndex:idx_follow_pair"`
	User   Account `json:"user"`

	AuthorID uint    `json:"author_id" gorm:"index;uniqueIndex:idx_follow_pair"`
	Author   Account `json:"author"`
}
