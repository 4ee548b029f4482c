package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdhoang/auditflow/config"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/middleware"
	"github.com/tdhoang/auditflow/internal/model"
	"github.com/tdhoang/auditflow/internal/repository"
	"github.com/tdhoang/auditflow/internal/service"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// testServer runs the real route table against an in-memory database.
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuestionAssignment{},
		&model.Answer{},
		&model.AnswerReview{},
	))

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpiryHours = 1

	userRepo := repository.NewUserRepository(db)
	workflow := service.NewWorkflowService(
		userRepo,
		repository.NewQuestionRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewReviewRepository(db),
	)

	authCtrl := NewAuthController(service.NewAuthService(userRepo, cfg))
	userCtrl := NewUserController(service.NewUserService(userRepo))
	questionCtrl := NewQuestionController(workflow)

	adminOnly := middleware.Authorize(testSecret, model.RoleAdmin)
	auditorOnly := middleware.Authorize(testSecret, model.RoleAuditor)
	anyRole := middleware.Authorize(testSecret, model.RoleAdmin, model.RoleAuditor)
	authenticated := middleware.Authorize(testSecret)

	router := gin.New()
	authGroup := router.Group("/api/auth")
	authGroup.POST("/login", authCtrl.Login)
	authGroup.POST("/user", userCtrl.CreateUser)
	authGroup.GET("/user/byRole", authenticated, userCtrl.GetUsersByRole)
	authGroup.GET("/user/:id", authenticated, userCtrl.GetUser)

	questionGroup := router.Group("/api/questions")
	questionGroup.POST("", adminOnly, questionCtrl.CreateQuestion)
	questionGroup.GET("", anyRole, questionCtrl.GetQuestions)
	questionGroup.POST("/assign-question/:userId/:questionId", adminOnly, questionCtrl.AssignQuestion)
	questionGroup.GET("/assigned-questions/:userId", anyRole, questionCtrl.GetAssignedQuestions)
	questionGroup.POST("/submit-answers/:userId", auditorOnly, questionCtrl.SubmitAnswers)
	questionGroup.POST("/submit-answers/single/:userId", auditorOnly, questionCtrl.SubmitSingleAnswer)
	questionGroup.GET("/review-answers/:userId", anyRole, questionCtrl.ReviewAnswers)
	questionGroup.PUT("/answer/:answerId", anyRole, questionCtrl.UpdateAnswer)
	questionGroup.PUT("/answer/status/:answerId", anyRole, questionCtrl.UpdateAnswerStatus)
	questionGroup.GET("/answer/reviews/:answerId", anyRole, questionCtrl.GetAnswerReviews)
	questionGroup.GET("/assignments", adminOnly, questionCtrl.GetAllAssignments)
	questionGroup.DELETE("/:id", adminOnly, questionCtrl.DeleteQuestion)

	return &testServer{router: router, db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns (userID, token).
func (s *testServer) registerAndLogin(t *testing.T, email, role string) (uint, string) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/user", "", dto.CreateUserRequest{
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	return login.UserID, login.Token
}

func envelopeData(t *testing.T, w *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success, env.Message)
	return env.Data
}

func TestLoginEndpoint(t *testing.T) {
	srv := newTestServer(t)
	userID, token := srv.registerAndLogin(t, "admin@example.com", "ADMIN")
	assert.NotZero(t, userID)
	assert.NotEmpty(t, token)

	w := srv.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGates(t *testing.T) {
	srv := newTestServer(t)
	_, adminToken := srv.registerAndLogin(t, "admin@example.com", "ADMIN")
	auditorID, auditorToken := srv.registerAndLogin(t, "auditor@example.com", "AUDITOR")

	// Question creation is admin-only.
	w := srv.do(t, http.MethodPost, "/api/questions", auditorToken, dto.CreateQuestionRequest{Text: "q"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = srv.do(t, http.MethodPost, "/api/questions", adminToken, dto.CreateQuestionRequest{Text: "q"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Batch submit is auditor-only.
	w = srv.do(t, http.MethodPost, fmt.Sprintf("/api/questions/submit-answers/%d", auditorID), adminToken, []dto.AnswerItem{})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The assignment listing is admin-only.
	w = srv.do(t, http.MethodGet, "/api/questions/assignments", auditorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = srv.do(t, http.MethodGet, "/api/questions/assignments", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// No token at all.
	w = srv.do(t, http.MethodGet, "/api/questions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuditWorkflowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	_, adminToken := srv.registerAndLogin(t, "admin@example.com", "ADMIN")
	auditorID, auditorToken := srv.registerAndLogin(t, "auditor@example.com", "AUDITOR")

	// Admin creates a question.
	w := srv.do(t, http.MethodPost, "/api/questions", adminToken, dto.CreateQuestionRequest{Text: "Is logging centralized?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var question dto.QuestionResponse
	require.NoError(t, json.Unmarshal(envelopeData(t, w), &question))

	// Admin assigns it to the auditor.
	assignPath := fmt.Sprintf("/api/questions/assign-question/%d/%d", auditorID, question.ID)
	w = srv.do(t, http.MethodPost, assignPath, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var assignment dto.AssignmentResponse
	require.NoError(t, json.Unmarshal(envelopeData(t, w), &assignment))
	assert.Equal(t, model.StatusPending, assignment.Status)

	// Assigning the same pair again fails with the structured envelope.
	w = srv.do(t, http.MethodPost, assignPath, adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	// Auditor sees the assigned question.
	w = srv.do(t, http.MethodGet, fmt.Sprintf("/api/questions/assigned-questions/%d", auditorID), auditorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var assigned []dto.QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assigned))
	require.Len(t, assigned, 1)
	assert.Equal(t, question.ID, assigned[0].ID)

	// Auditor submits an answer.
	w = srv.do(t, http.MethodPost, fmt.Sprintf("/api/questions/submit-answers/single/%d", auditorID), auditorToken,
		dto.SingleAnswerRequest{QuestionID: question.ID, Text: "42"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var answer dto.AnswerResponse
	require.NoError(t, json.Unmarshal(envelopeData(t, w), &answer))
	assert.Equal(t, assignment.ID, answer.Assignment.ID)
	assert.Equal(t, model.StatusAnswered, answer.Assignment.Status)

	// Deleting the question is now refused: it has a live assignment.
	w = srv.do(t, http.MethodDelete, fmt.Sprintf("/api/questions/%d", question.ID), adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Admin accepts the answer.
	w = srv.do(t, http.MethodPut, fmt.Sprintf("/api/questions/answer/status/%d", answer.ID), adminToken,
		dto.UpdateAnswerStatusRequest{Text: "42", Status: "ACCEPTED", Comments: "verified"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The acceptance is visible via review-answers.
	w = srv.do(t, http.MethodGet, fmt.Sprintf("/api/questions/review-answers/%d", auditorID), auditorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []dto.AnswerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, model.StatusAccepted, history[0].Assignment.Status)

	// And the review trail records who decided.
	w = srv.do(t, http.MethodGet, fmt.Sprintf("/api/questions/answer/reviews/%d", answer.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, model.StatusAccepted, reviews[0].Status)
	assert.Equal(t, "verified", reviews[0].Comments)
}

func TestSubmitNotAssignedOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	_, adminToken := srv.registerAndLogin(t, "admin@example.com", "ADMIN")
	auditorID, auditorToken := srv.registerAndLogin(t, "auditor@example.com", "AUDITOR")

	w := srv.do(t, http.MethodPost, "/api/questions", adminToken, dto.CreateQuestionRequest{Text: "unassigned"})
	require.Equal(t, http.StatusOK, w.Code)
	var question dto.QuestionResponse
	require.NoError(t, json.Unmarshal(envelopeData(t, w), &question))

	w = srv.do(t, http.MethodPost, fmt.Sprintf("/api/questions/submit-answers/single/%d", auditorID), auditorToken,
		dto.SingleAnswerRequest{QuestionID: question.ID, Text: "answer"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not assigned")
}
