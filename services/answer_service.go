package services

import (
	"qaforum/models"

	"gorm.io/gorm"
)

type AnswerService struct {
	db *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{db: db}
}

func (s *AnswerService) ListAll() ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Order("id").Find(&answers).Error
	return answers, err
}

func (s *AnswerService) GetByID(id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := s.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (s *AnswerService) ListByQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Where("question_id = ?", questionID).Order("id").Find(&answers).Error
	return answers, err
}

func (s *AnswerService) Create(content string, userID, questionID uint) error {
	answer := models.Answer{Content: content, UserID: userID, QuestionID: questionID}
	return s.db.Create(&answer).Error
}

func (s *AnswerService) UpdateContent(answer *models.Answer, content string) error {
	answer.Content = content
	return s.db.Save(answer).Error
}

// Delete removes a single row; answers own nothing, so there is no cascade.
func (s *AnswerService) Delete(answer *models.Answer) error {
	return s.db.Delete(&models.Answer{}, answer.ID).Error
}
