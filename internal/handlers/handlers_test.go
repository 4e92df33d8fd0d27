package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
	"alfredoptarigan/ai-mock-interview/internal/services"
)

type stubGemini struct {
	mu       sync.Mutex
	response string
	err      error
}

func (s *stubGemini) set(response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.response = response
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response, s.err
}

type memoryUsers struct {
	mu    sync.Mutex
	users []*models.User
}

func (r *memoryUsers) EnsureSchema(ctx context.Context) error { return nil }

func (r *memoryUsers) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return common.ErrEmailAlreadyRegistered
		}
	}
	user.ID = fmt.Sprintf("u%d", len(r.users)+1)
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *memoryUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrUserNotFound
}

func (r *memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func newTestApp(t *testing.T) (*fiber.App, *stubGemini) {
	t.Helper()

	gemini := &stubGemini{}
	issuer, err := services.NewTokenIssuer("handler-secret", "HS256", time.Hour, nil)
	require.NoError(t, err)

	storage := services.NewStorageService(t.TempDir(), 1<<20)
	require.NoError(t, storage.EnsureUploadDir())

	authService := services.NewAuthService(&memoryUsers{}, issuer, bcrypt.MinCost, nil)
	jobDescriptionService := services.NewJobDescriptionService(storage, services.NewPDFParserService())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app,
		NewAuthHandler(authService),
		NewTestHandler(services.NewTestService(gemini)),
		NewInterviewHandler(services.NewInterviewService(gemini), jobDescriptionService),
	)

	return app, gemini
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func signupBody(email string) fiber.Map {
	return fiber.Map{
		"name":     "Grace Hopper",
		"email":    email,
		"purpose":  "job interview",
		"password": "cobol-forever",
	}
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("grace@navy.mil"))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("Grace@Navy.mil"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already registered", body["message"])

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "grace@navy.mil", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["message"])

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "grace@navy.mil", "password": "cobol-forever",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, fiber.HeaderAuthorization, "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
	user, _ := body["user"].(map[string]any)
	assert.Equal(t, "grace@navy.mil", user["email"])
	assert.NotContains(t, user, "password")

	status, _ = doJSON(t, app, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, fiber.HeaderAuthorization, "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestSignup_InvalidPayload(t *testing.T) {
	app, _ := newTestApp(t)

	body := signupBody("not-an-email")
	status, resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, resp["success"])
}

func testParams() fiber.Map {
	return fiber.Map{
		"purpose":    "practice",
		"subject":    "Geography",
		"difficulty": "easy",
		"testType":   "mixed",
		"timeLimit":  15,
	}
}

func TestGenerateTestEndpoint(t *testing.T) {
	app, gemini := newTestApp(t)

	gemini.set("```json\n[{\"id\": 1, \"question\": \"Capital of France?\", \"options\": [\"Paris\", \"Rome\"], \"correctAnswer\": \"Paris\"}]\n```")
	status, body := doJSON(t, app, http.MethodPost, "/api/generate-test", testParams())
	require.Equal(t, http.StatusOK, status)
	questions, _ := body["questions"].([]any)
	require.Len(t, questions, 1)
	first, _ := questions[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Paris", first["correctAnswer"])

	gemini.set("no questions today")
	status, body = doJSON(t, app, http.MethodPost, "/api/generate-test", testParams())
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, float64(http.StatusInternalServerError), body["code"])

	missing := testParams()
	delete(missing, "subject")
	status, _ = doJSON(t, app, http.MethodPost, "/api/generate-test", missing)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSubmitAnswersEndpoint(t *testing.T) {
	app, gemini := newTestApp(t)
	gemini.set("Well done.")

	status, body := doJSON(t, app, http.MethodPost, "/api/submit-answers", fiber.Map{
		"testParams": testParams(),
		"questions": []fiber.Map{
			{"id": 1, "question": "Capital of France?", "correctAnswer": "Paris"},
		},
		"answers": fiber.Map{"1": " paris "},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(100), body["score"])
	assert.Equal(t, float64(1), body["correctAnswers"])
	assert.Equal(t, "Well done.", body["feedback"])
}

func TestTestEndpoints_StringTimeLimit(t *testing.T) {
	app, gemini := newTestApp(t)

	params := testParams()
	params["timeLimit"] = "45"

	gemini.set("```json\n[{\"id\": 1, \"question\": \"Capital of Spain?\", \"correctAnswer\": \"Madrid\"}]\n```")
	status, body := doJSON(t, app, http.MethodPost, "/api/generate-test", params)
	require.Equal(t, http.StatusOK, status, body)

	gemini.set("Keep practicing.")
	status, body = doJSON(t, app, http.MethodPost, "/api/submit-answers", fiber.Map{
		"testParams": params,
		"questions": []fiber.Map{
			{"id": 1, "question": "Pick primes", "correctAnswer": []string{"2", "5"}},
			{"id": 2, "question": "Capital of Spain?", "correctAnswer": "Madrid"},
		},
		"answers": fiber.Map{"1": []string{"2", "5"}, "2": "Lisbon"},
	})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, float64(50), body["score"])
	assert.Equal(t, float64(1), body["correctAnswers"])

	params["timeLimit"] = "soon"
	status, _ = doJSON(t, app, http.MethodPost, "/api/generate-test", params)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestInterviewEndpoints(t *testing.T) {
	app, gemini := newTestApp(t)

	gemini.set(`{"questions": [{"id": 1, "text": "Describe a REST API you built."}]}`)
	status, body := doJSON(t, app, http.MethodPost, "/api/interview/generate-questions", fiber.Map{
		"interviewType":   "backend_developer",
		"difficultyLevel": 4,
	})
	require.Equal(t, http.StatusOK, status)
	questions, _ := body["questions"].([]any)
	assert.Len(t, questions, 1)

	status, _ = doJSON(t, app, http.MethodPost, "/api/interview/generate-questions", fiber.Map{
		"interviewType": "astronaut",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	gemini.set(`{"feedback": "Good", "score": 9, "strengthPoints": ["depth"], "improvementPoints": ["brevity"]}`)
	status, body = doJSON(t, app, http.MethodPost, "/api/interview/evaluate-answer", fiber.Map{
		"interviewType": "backend_developer",
		"question":      "What is idempotency?",
		"answer":        "Repeating a request has the same effect.",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(9), body["score"])
	assert.Equal(t, "Good", body["feedback"])
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/api/health", "/api/test", "/api/interview/health"} {
		status, _ := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status, path)
	}
}

func uploadRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("jobDescription", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/interview/generate-questions/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestGenerateQuestionsFromPDF_Rejections(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name     string
		fields   map[string]string
		filename string
	}{
		{"missing file", map[string]string{"interviewType": "software_engineer"}, ""},
		{"wrong extension", map[string]string{"interviewType": "software_engineer"}, "jd.txt"},
		{"bad difficulty", map[string]string{"interviewType": "software_engineer", "difficultyLevel": "hard"}, "jd.pdf"},
		{"unknown type", map[string]string{"interviewType": "pilot"}, "jd.pdf"},
		{"unreadable pdf", map[string]string{"interviewType": "software_engineer"}, "jd.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := uploadRequest(t, tt.fields, tt.filename, []byte("plain text, not a PDF"))
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", common.ErrValidation), http.StatusBadRequest},
		{common.ErrEmailAlreadyRegistered, http.StatusBadRequest},
		{common.ErrInvalidCredentials, http.StatusUnauthorized},
		{common.ErrInvalidToken, http.StatusUnauthorized},
		{fmt.Errorf("gen: %w", common.ErrGeneration), http.StatusInternalServerError},
		{common.ErrEmptyResponse, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
