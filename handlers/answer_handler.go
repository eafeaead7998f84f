package handlers

import (
	"errors"
	"net/http"

	"qaforum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnswerHandler struct {
	answerService   *services.AnswerService
	questionService *services.QuestionService
	userService     *services.UserService
	debug           bool
}

func NewAnswerHandler(answerService *services.AnswerService, questionService *services.QuestionService, userService *services.UserService, debug bool) *AnswerHandler {
	return &AnswerHandler{
		answerService:   answerService,
		questionService: questionService,
		userService:     userService,
		debug:           debug,
	}
}

func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	answers, err := h.answerService.ListAll()
	if err != nil {
		storeFailure(c, "Cannot get answers. ", err, h.debug)
		return
	}

	rows := make([]map[string]string, 0, len(answers))
	for i := range answers {
		rows = append(rows, answers[i].RowMap())
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnswerHandler) GetAnswer(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Cannot find this answer id.")
		return
	}

	answer, err := h.answerService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Cannot find this answer id.")
			return
		}
		storeFailure(c, "Cannot get answer. ", err, h.debug)
		return
	}

	c.JSON(http.StatusOK, answer.RowMap())
}

// ListAnswersByQuestion distinguishes an unknown question (404) from a known
// question with no answers yet, which is a success response.
func (h *AnswerHandler) ListAnswersByQuestion(c *gin.Context) {
	questionID, perr := parseID(c.Param("questionId"))
	exists := false
	if perr == nil {
		var err error
		exists, err = h.questionService.Exists(questionID)
		if err != nil {
			storeFailure(c, "Cannot get answers. ", err, h.debug)
			return
		}
	}
	if !exists {
		fail(c, http.StatusNotFound, "Cannot find this question id.")
		return
	}

	answers, err := h.answerService.ListByQuestion(questionID)
	if err != nil {
		storeFailure(c, "Cannot get answers. ", err, h.debug)
		return
	}
	if len(answers) == 0 {
		c.JSON(http.StatusOK, Response{Code: http.StatusOK, Msg: "No answer for this question yet."})
		return
	}

	rows := make([]map[string]string, 0, len(answers))
	for i := range answers {
		rows = append(rows, answers[i].RowMap())
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	content := c.PostForm("content")
	if content == "" {
		fail(c, http.StatusForbidden, "Cannot insert answer. Missing content.")
		return
	}

	userID, perr := parseID(c.PostForm("userID"))
	userExists := false
	if perr == nil {
		var err error
		userExists, err = h.userService.Exists(userID)
		if err != nil {
			storeFailure(c, "Cannot insert answer. ", err, h.debug)
			return
		}
	}
	if !userExists {
		fail(c, http.StatusForbidden, "Cannot insert answer. No such user, please register first.")
		return
	}

	questionID, perr := parseID(c.PostForm("questionID"))
	questionExists := false
	if perr == nil {
		var err error
		questionExists, err = h.questionService.Exists(questionID)
		if err != nil {
			storeFailure(c, "Cannot insert answer. ", err, h.debug)
			return
		}
	}
	if !questionExists {
		fail(c, http.StatusForbidden, "Cannot insert answer. No such Question.")
		return
	}

	if err := h.answerService.Create(content, userID, questionID); err != nil {
		storeFailure(c, "Cannot insert answer. ", err, h.debug)
		return
	}
	success(c)
}

func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	content := c.PostForm("content")
	if content == "" {
		fail(c, http.StatusForbidden, "Cannot update answer. Missing answer content.")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "No such answer.")
		return
	}

	answer, err := h.answerService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "No such answer.")
			return
		}
		storeFailure(c, "Cannot update answer. ", err, h.debug)
		return
	}

	// The submitted userID is trusted as-is; there is no session identity to
	// check it against.
	userID, perr := parseID(c.PostForm("userID"))
	if perr != nil || userID != answer.UserID {
		fail(c, http.StatusForbidden, "Can't edit other user's answer.")
		return
	}

	if err := h.answerService.UpdateContent(answer, content); err != nil {
		storeFailure(c, "Cannot update answer. ", err, h.debug)
		return
	}
	success(c)
}

func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "answer doesn't exist.")
		return
	}

	answer, err := h.answerService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "answer doesn't exist.")
			return
		}
		storeFailure(c, "Cannot delete answer. ", err, h.debug)
		return
	}

	if err := h.answerService.Delete(answer); err != nil {
		storeFailure(c, "Cannot delete answer. ", err, h.debug)
		return
	}
	success(c)
}
