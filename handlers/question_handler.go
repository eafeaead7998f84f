package handlers

import (
	"errors"
	"net/http"

	"qaforum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	userService     *services.UserService
	debug           bool
}

func NewQuestionHandler(questionService *services.QuestionService, userService *services.UserService, debug bool) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		userService:     userService,
		debug:           debug,
	}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListAll()
	if err != nil {
		storeFailure(c, "Cannot get questions. ", err, h.debug)
		return
	}

	rows := make([]map[string]string, 0, len(questions))
	for i := range questions {
		rows = append(rows, questions[i].RowMap())
	}
	c.JSON(http.StatusOK, rows)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Cannot find this question id.")
		return
	}

	question, err := h.questionService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Cannot find this question id.")
			return
		}
		storeFailure(c, "Cannot get question. ", err, h.debug)
		return
	}

	c.JSON(http.StatusOK, question.RowMap())
}

// ListQuestionsByUser applies a single emptiness check: an unknown user and a
// user with zero questions get the same 404.
func (h *QuestionHandler) ListQuestionsByUser(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		fail(c, http.StatusNotFound, "Cannot find questions by this user id.")
		return
	}

	questions, err := h.questionService.ListByUser(userID)
	if err != nil {
		storeFailure(c, "Cannot get questions. ", err, h.debug)
		return
	}
	if len(questions) == 0 {
		fail(c, http.StatusNotFound, "Cannot find questions by this user id.")
		return
	}

	rows := make([]map[string]string, 0, len(questions))
	for i := range questions {
		rows = append(rows, questions[i].RowMap())
	}
	c.JSON(http.StatusOK, rows)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" {
		fail(c, http.StatusForbidden, "Cannot insert question. Missing title.")
		return
	}

	userID, perr := parseID(c.PostForm("userID"))
	exists := false
	if perr == nil {
		var err error
		exists, err = h.userService.Exists(userID)
		if err != nil {
			storeFailure(c, "Cannot insert question. ", err, h.debug)
			return
		}
	}
	if !exists {
		fail(c, http.StatusForbidden, "Cannot insert question. No such user, please register first.")
		return
	}

	if err := h.questionService.Create(title, content, userID); err != nil {
		storeFailure(c, "Cannot insert question. ", err, h.debug)
		return
	}
	success(c)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" {
		fail(c, http.StatusForbidden, "Cannot update question. Missing question title.")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "No such question.")
		return
	}

	question, err := h.questionService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "No such question.")
			return
		}
		storeFailure(c, "Cannot update question. ", err, h.debug)
		return
	}

	if err := h.questionService.Update(question, title, content); err != nil {
		storeFailure(c, "Cannot update question. ", err, h.debug)
		return
	}
	success(c)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Question doesn't exist.")
		return
	}

	question, err := h.questionService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Question doesn't exist.")
			return
		}
		storeFailure(c, "Cannot delete question. ", err, h.debug)
		return
	}

	if err := h.questionService.Delete(question); err != nil {
		storeFailure(c, "Cannot delete question. ", err, h.debug)
		return
	}
	success(c)
}
