package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
)

// fakeGemini replays canned responses in order; the last one repeats.
type fakeGemini struct {
	responses []string
	err       error

	prompts      []string
	temperatures []float32
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.temperatures = append(f.temperatures, temperature)

	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}

	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

type memoryUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	nextID  int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *memoryUserRepo) EnsureSchema(ctx context.Context) error { return nil }

func (r *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return common.ErrEmailAlreadyRegistered
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrUserNotFound
}

func (r *memoryUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail)
}

func fenced(body string) string {
	return "Here you go:\n```json\n" + strings.TrimSpace(body) + "\n```\nGood luck!"
}
