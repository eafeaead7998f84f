package routes

import (
	"net/http"

	"qaforum/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	userHandler *handlers.UserHandler,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
) {
	// User routes
	users := router.Group("/user")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// Question routes
	questions := router.Group("/question")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.GET("/:id", questionHandler.GetQuestion)
		questions.PUT("/:id", questionHandler.UpdateQuestion)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}
	router.GET("/question-by-user/:userId", questionHandler.ListQuestionsByUser)

	// Answer routes
	answers := router.Group("/answer")
	{
		answers.GET("", answerHandler.ListAnswers)
		answers.POST("", answerHandler.CreateAnswer)
		answers.GET("/:id", answerHandler.GetAnswer)
		answers.PUT("/:id", answerHandler.UpdateAnswer)
		answers.DELETE("/:id", answerHandler.DeleteAnswer)
	}
	router.GET("/answer-by-question/:questionId", answerHandler.ListAnswersByQuestion)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "index page")
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{Code: http.StatusNotFound, Msg: "404: Not Found"})
	})
}
