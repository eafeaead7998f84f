package services

import (
	"context"
	"encoding/json"
	"time"

	"qaforum/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// questionListKey caches the full question list; every write path that can
// change the list deletes it.
const questionListKey = "questions:all"

const questionListTTL = 5 * time.Minute

type QuestionService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewQuestionService(db *gorm.DB, redisClient *redis.Client) *QuestionService {
	return &QuestionService{db: db, redis: redisClient}
}

// ListAll returns every question in insertion order, served from Redis when a
// client is configured. Cache failures fall through to the store.
func (s *QuestionService) ListAll() ([]models.Question, error) {
	if s.redis != nil {
		data, err := s.redis.Get(context.Background(), questionListKey).Result()
		if err == nil {
			var cached []models.Question
			if jsonErr := json.Unmarshal([]byte(data), &cached); jsonErr == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("redis get failed for question list")
		}
	}

	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(questions); err == nil {
			if err := s.redis.Set(context.Background(), questionListKey, data, questionListTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("redis set failed for question list")
			}
		}
	}

	return questions, nil
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Question{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *QuestionService) ListByUser(userID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("user_id = ?", userID).Order("id").Find(&questions).Error
	return questions, err
}

func (s *QuestionService) Create(title, content string, userID uint) error {
	question := models.Question{Title: title, Content: content, UserID: userID}
	if err := s.db.Create(&question).Error; err != nil {
		return err
	}
	s.invalidateList()
	return nil
}

// Update overwrites both title and content; an empty content clears the
// existing one.
func (s *QuestionService) Update(question *models.Question, title, content string) error {
	question.Title = title
	question.Content = content
	if err := s.db.Save(question).Error; err != nil {
		return err
	}
	s.invalidateList()
	return nil
}

// Delete removes the question and its answers in one transaction.
func (s *QuestionService) Delete(question *models.Question) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&models.Question{}, question.ID).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	s.invalidateList()
	return nil
}

func (s *QuestionService) invalidateList() {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(context.Background(), questionListKey).Err(); err != nil {
		log.Warn().Err(err).Msg("redis del failed for question list")
	}
}
