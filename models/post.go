package models

import "time"

// CommunityPost keeps a denormalized likes counter next to the post_likes
// rows; the two are only ever changed together inside a transaction.
type CommunityPost struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Content        string    `gorm:"not null" json:"content"`
	WorkoutType    *string   `json:"workout_type"`
	CaloriesBurned *int      `json:"calories_burned"`
	Achievement    *string   `json:"achievement"`
	Likes          int       `gorm:"default:0" json:"likes"`
	CreatedAt      time.Time `json:"created_at"`
}

func (CommunityPost) TableName() string { return "community_posts" }

type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_post_likes_user_post;not null" json:"user_id"`
	PostID    uint      `gorm:"uniqueIndex:idx_post_likes_user_post;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLike) TableName() string { return "post_likes" }
