package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tdhoang/auditflow/config"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/model"
	"github.com/tdhoang/auditflow/internal/repository"
	"gorm.io/gorm"
)

// testEnv wires real repositories over an in-memory database so service tests
// exercise the same query paths as production.
type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	workflow WorkflowService
	auth     AuthService
	userSvc  UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

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

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1

	return &testEnv{
		db:       db,
		users:    userRepo,
		workflow: NewWorkflowService(userRepo, questionRepo, assignmentRepo, answerRepo, reviewRepo),
		auth:     NewAuthService(userRepo, cfg),
		userSvc:  NewUserService(userRepo),
	}
}

func (e *testEnv) createAuditor(t *testing.T, email string) uint {
	t.Helper()
	user := &model.User{Email: email, Password: "x", Role: model.RoleAuditor}
	require.NoError(t, e.users.Create(user))
	return user.ID
}

func (e *testEnv) createQuestion(t *testing.T, text string) uint {
	t.Helper()
	q, err := e.workflow.CreateQuestion(dto.CreateQuestionRequest{Text: text})
	require.NoError(t, err)
	return q.ID
}
