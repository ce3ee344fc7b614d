package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"minitwitter/backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store implements storage.Storage on top of gorm and PostgreSQL.
type Store struct {
	db *gorm.DB
}

// New connects to the database, runs migrations and returns a Store.
func New(dsn string) (*Store, error) {
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Tweet{},
		&domain.Like{},
		&domain.Follow{},
		&domain.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// === Users ===

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUsernameTaken
	}
	return err
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// === Follows ===

func (s *Store) CreateFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	edge := domain.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.Follow{}).Error
}

func (s *Store) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (s *Store) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (s *Store) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *Store) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// === Tweets ===

func (s *Store) CreateTweet(ctx context.Context, tweet *domain.Tweet) error {
	return s.db.WithContext(ctx).Create(tweet).Error
}

func (s *Store) GetTweetByID(ctx context.Context, id string) (*domain.Tweet, error) {
	var tweet domain.Tweet
	if err := s.db.WithContext(ctx).Preload("Author").First(&tweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

func (s *Store) GetLatestTweetByAuthor(ctx context.Context, authorID string) (*domain.Tweet, error) {
	var tweet domain.Tweet
	err := s.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, seq DESC").
		First(&tweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

func (s *Store) DeleteTweet(ctx context.Context, authorID, tweetID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tweet domain.Tweet
		err := tx.Where("id = ? AND author_id = ?", tweetID, authorID).First(&tweet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Missing tweet or wrong author: an authorization no-op.
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tweet).Error
	})
}

func (s *Store) ListTweets(ctx context.Context, authorIDs []string) ([]*domain.Tweet, error) {
	query := s.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, seq ASC")
	if authorIDs != nil {
		query = query.Where("author_id IN ?", authorIDs)
	}

	var tweets []*domain.Tweet
	if err := query.Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// === Likes ===

func (s *Store) CreateLike(ctx context.Context, tweetID, userID string) (bool, error) {
	like := domain.Like{
		TweetID:   tweetID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) DeleteLike(ctx context.Context, tweetID, userID string) error {
	return s.db.WithContext(ctx).
		Where("tweet_id = ? AND user_id = ?", tweetID, userID).
		Delete(&domain.Like{}).Error
}

func (s *Store) HasLiked(ctx context.Context, tweetID, userID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Like{}).
		Where("tweet_id = ? AND user_id = ?", tweetID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CountLikes(ctx context.Context, tweetID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Like{}).
		Where("tweet_id = ?", tweetID).
		Count(&count).Error
	return count, err
}

// === Notifications ===

func (s *Store) CreateNotification(ctx context.Context, n *domain.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *Store) ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}
