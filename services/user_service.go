package services

import (
	"context"

	"qaforum/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewUserService(db *gorm.DB, redisClient *redis.Client) *UserService {
	return &UserService{db: db, redis: redisClient}
}

func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *UserService) UsernameTaken(name string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", name).Count(&count).Error
	return count > 0, err
}

// UsernameTakenByOther reports whether a user other than excludeID already
// holds the name.
func (s *UserService) UsernameTakenByOther(name string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (s *UserService) Create(username string) error {
	return s.db.Create(&models.User{Username: username}).Error
}

func (s *UserService) Rename(user *models.User, username string) error {
	user.Username = username
	return s.db.Save(user).Error
}

// Delete removes the user together with everything they own: their answers,
// the answers attached to their questions, and their questions, all in one
// transaction.
func (s *UserService) Delete(user *models.User) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	questionIDs := tx.Model(&models.Question{}).Select("id").Where("user_id = ?", user.ID)
	if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&models.User{}, user.ID).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	// The cascade removed questions, so the cached list is stale.
	if s.redis != nil {
		s.redis.Del(context.Background(), questionListKey)
	}
	return nil
}
