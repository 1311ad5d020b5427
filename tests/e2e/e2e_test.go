package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymdesk/internal/database"
	"gymdesk/internal/domain"
	"gymdesk/internal/middleware"
	"gymdesk/internal/modules/auth"
	"gymdesk/internal/modules/billing"
	"gymdesk/internal/modules/members"
	"gymdesk/internal/modules/schedule"
	jwtsvc "gymdesk/internal/pkg/jwt"
	"gymdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	orgID  int64
	token  string
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.Migrate(db))

	ctx := context.Background()

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	planRepo := repository.NewPlanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	templateRepo := repository.NewClassTemplateRepository(db)
	instanceRepo := repository.NewClassInstanceRepository(db)
	ledgerRepo := repository.NewGenerationLogRepository(db)

	org := domain.Organization{Name: "Test Gym", Timezone: "Europe/Berlin"}
	require.NoError(t, orgRepo.Create(ctx, &org))

	hash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		OrganizationID: org.ID,
		Email:          "manager@testgym.example",
		PasswordHash:   string(hash),
		Name:           "Manager",
		Role:           domain.RoleManager,
	}
	require.NoError(t, userRepo.Create(ctx, &manager))

	// Monday 09:00 and Wednesday 18:30 classes
	tpls := []domain.ClassTemplate{
		{OrganizationID: org.ID, Title: "Morning Yoga", Weekday: 1, StartTime: "09:00", EndTime: "10:00", Capacity: 20, IsActive: true},
		{OrganizationID: org.ID, Title: "HIIT", Weekday: 3, StartTime: "18:30", EndTime: "19:30", Capacity: 16, IsActive: true},
	}
	for i := range tpls {
		require.NoError(t, templateRepo.Create(ctx, &tpls[i]))
	}

	j := jwtsvc.New("test-secret", 1*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	memberHandler := members.NewHandler(members.NewService(memberRepo, planRepo))
	billingHandler := billing.NewHandler(billing.NewService(planRepo, paymentRepo, memberRepo))
	scheduleHandler := schedule.NewHandler(
		schedule.NewService(templateRepo, instanceRepo, ledgerRepo, orgRepo, "UTC"),
		nil, // no cache in tests
	)

	r := gin.New()
	v1 := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	staff := protected.Group("/")
	staff.Use(middleware.StaffOnly())
	scheduleHandler.RegisterRoutes(staff)
	memberHandler.RegisterRoutes(staff)
	billingHandler.RegisterRoutes(staff)

	suite := &TestSuite{router: r, db: db, orgID: org.ID}
	suite.token = suite.login(t, "manager@testgym.example", "manager123")
	return suite
}

func (s *TestSuite) login(t *testing.T, email, password string) string {
	resp := s.request(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	require.True(t, resp.Success)

	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *TestSuite) request(t *testing.T, method, path string, body any, token string) TestResponse {
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

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func TestGenerationLifecycle(t *testing.T) {
	s := setupSuite(t)

	genReq := map[string]any{"period": "two_weeks", "start_date": "2024-01-01"}

	// preview: two Mondays + two Wednesdays, nothing written yet
	preview := s.request(t, http.MethodPost, "/api/v1/classes/generate/preview", genReq, s.token)
	require.True(t, preview.Success)
	assert.EqualValues(t, 4, preview.Data["total_to_generate"])

	var count int64
	s.db.Table("class_instances").Count(&count)
	assert.Zero(t, count, "preview must not write")

	// apply: all four slots materialize
	apply := s.request(t, http.MethodPost, "/api/v1/classes/generate", genReq, s.token)
	require.True(t, apply.Success)
	assert.EqualValues(t, 4, apply.Data["classes_created"])

	s.db.Table("class_instances").Count(&count)
	assert.EqualValues(t, 4, count)
	s.db.Table("class_generation_log").Count(&count)
	assert.EqualValues(t, 4, count)

	// second apply is a no-op
	again := s.request(t, http.MethodPost, "/api/v1/classes/generate", genReq, s.token)
	require.True(t, again.Success)
	assert.EqualValues(t, 0, again.Data["classes_created"])

	s.db.Table("class_instances").Count(&count)
	assert.EqualValues(t, 4, count, "retry must not duplicate instances")

	// preview now reports everything as already generated
	preview = s.request(t, http.MethodPost, "/api/v1/classes/generate/preview", genReq, s.token)
	require.True(t, preview.Success)
	assert.EqualValues(t, 0, preview.Data["total_to_generate"])

	// generated classes are listable
	list := s.request(t, http.MethodGet, "/api/v1/classes?from=2024-01-01&to=2024-01-15", nil, s.token)
	require.True(t, list.Success)
	classes, _ := list.Data["classes"].([]any)
	assert.Len(t, classes, 4)
}

func TestGenerationValidation(t *testing.T) {
	s := setupSuite(t)

	resp := s.request(t, http.MethodPost, "/api/v1/classes/generate", map[string]any{
		"period": "quarter",
	}, s.token)
	require.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	resp = s.request(t, http.MethodPost, "/api/v1/classes/generate", map[string]any{
		"period":     "week",
		"start_date": "01.02.2024",
	}, s.token)
	require.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestGenerateRequiresAuth(t *testing.T) {
	s := setupSuite(t)

	resp := s.request(t, http.MethodPost, "/api/v1/classes/generate", map[string]any{
		"period": "week",
	}, "")
	require.False(t, resp.Success)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestMemberAndBillingFlow(t *testing.T) {
	s := setupSuite(t)

	plan := s.request(t, http.MethodPost, "/api/v1/plans", map[string]any{
		"name":           "Basic",
		"price":          39.90,
		"billing_period": "monthly",
	}, s.token)
	require.True(t, plan.Success)
	planData := plan.Data["plan"].(map[string]any)
	planID := int64(planData["id"].(float64))

	member := s.request(t, http.MethodPost, "/api/v1/members", map[string]any{
		"name":    "Alex Schmidt",
		"plan_id": planID,
	}, s.token)
	require.True(t, member.Success)
	memberData := member.Data["member"].(map[string]any)
	memberID := int64(memberData["id"].(float64))
	assert.Equal(t, "active", memberData["status"])

	payment := s.request(t, http.MethodPost, "/api/v1/payments", map[string]any{
		"member_id": memberID,
		"plan_id":   planID,
		"amount":    39.90,
		"method":    "card",
	}, s.token)
	require.True(t, payment.Success)

	history := s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/members/%d/payments", memberID), nil, s.token)
	require.True(t, history.Success)
	payments, _ := history.Data["payments"].([]any)
	assert.Len(t, payments, 1)
}
