package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"qaforum/handlers"
	"qaforum/models"
	"qaforum/routes"
	"qaforum/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupApp builds the full router over a fresh in-memory database.
func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying connection: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Question{}, &models.Answer{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	userService := services.NewUserService(db, nil)
	questionService := services.NewQuestionService(db, nil)
	answerService := services.NewAnswerService(db)

	router := gin.New()
	routes.SetupRoutes(router,
		handlers.NewUserHandler(userService, false),
		handlers.NewQuestionHandler(questionService, userService, false),
		handlers.NewAnswerHandler(answerService, questionService, userService, false),
	)
	return router, db
}

func seed(t *testing.T, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to seed %T: %v", row, err)
		}
	}
}

// doForm issues a request with an urlencoded form body, or none when form is nil.
func doForm(router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// assertEnvelope checks a {"code","msg"} body.
func assertEnvelope(t *testing.T, w *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()
	var body handlers.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	if body.Code != code || body.Msg != msg {
		t.Errorf("Expected body {%d %q}, got {%d %q}", code, msg, body.Code, body.Msg)
	}
}

func decodeRow(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var row map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &row); err != nil {
		t.Fatalf("Failed to decode row body %q: %v", w.Body.String(), err)
	}
	return row
}

func decodeRows(t *testing.T, w *httptest.ResponseRecorder) []map[string]string {
	t.Helper()
	var rows []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("Failed to decode list body %q: %v", w.Body.String(), err)
	}
	return rows
}

func assertRow(t *testing.T, got, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("Expected row %v, got %v", want, got)
		return
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Expected row %v, got %v", want, got)
			return
		}
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %T: %v", model, err)
	}
	return count
}
