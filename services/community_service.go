package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

type CommunityService struct {
	db *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

// PostView is a post joined with its author plus whether the requesting user
// has liked it.
type PostView struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Content        string    `json:"content"`
	WorkoutType    *string   `json:"workout_type"`
	CaloriesBurned *int      `json:"calories_burned"`
	Achievement    *string   `json:"achievement"`
	Likes          int       `json:"likes"`
	CreatedAt      time.Time `json:"created_at"`
	Username       string    `json:"username"`
	UserLiked      bool      `json:"user_liked"`
}

type PostInput struct {
	Content        string  `json:"content"`
	WorkoutType    *string `json:"workout_type"`
	CaloriesBurned *int    `json:"calories_burned"`
	Achievement    *string `json:"achievement"`
}

type LikeResult struct {
	Likes     int  `json:"likes"`
	UserLiked bool `json:"user_liked"`
}

func (s *CommunityService) ListPosts(ctx context.Context, userID uint) ([]PostView, error) {
	var posts []PostView
	err := s.db.WithContext(ctx).
		Table("community_posts").
		Select(`community_posts.*, users.username,
			EXISTS(SELECT 1 FROM post_likes WHERE post_likes.post_id = community_posts.id AND post_likes.user_id = ?) AS user_liked`, userID).
		Joins("JOIN users ON users.id = community_posts.user_id").
		Order("community_posts.created_at DESC").
		Limit(50).
		Scan(&posts).Error
	if posts == nil {
		posts = []PostView{}
	}
	return posts, err
}

func (s *CommunityService) CreatePost(ctx context.Context, userID uint, in PostInput) (*PostView, error) {
	if in.Content == "" {
		return nil, ErrFieldsRequired
	}

	post := models.CommunityPost{
		UserID:         userID,
		Content:        in.Content,
		WorkoutType:    in.WorkoutType,
		CaloriesBurned: in.CaloriesBurned,
		Achievement:    in.Achievement,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}

	var view PostView
	err := s.db.WithContext(ctx).
		Table("community_posts").
		Select("community_posts.*, users.username, 0 AS user_liked").
		Joins("JOIN users ON users.id = community_posts.user_id").
		Where("community_posts.id = ?", post.ID).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *CommunityService) DeletePost(ctx context.Context, userID, postID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", postID, userID).
		Delete(&models.CommunityPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike flips the caller's like on a post. The like row and the
// denormalized counter move together inside one transaction, with the unique
// (user_id, post_id) index backstopping concurrent toggles.
func (s *CommunityService) ToggleLike(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	var result LikeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.CommunityPost
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var like models.PostLike
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&post).UpdateColumn("likes", gorm.Expr("likes - 1")).Error; err != nil {
				return err
			}
			result.UserLiked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.PostLike{UserID: userID, PostID: postID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&post).UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
			result.UserLiked = true
		default:
			return err
		}

		return tx.Model(&models.CommunityPost{}).
			Where("id = ?", postID).
			Pluck("likes", &result.Likes).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
