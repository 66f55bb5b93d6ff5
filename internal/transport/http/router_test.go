package httptransport_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meli-labs/seller-dashboard/internal/domain"
	"github.com/meli-labs/seller-dashboard/internal/email"
	"github.com/meli-labs/seller-dashboard/internal/marketplace"
	"github.com/meli-labs/seller-dashboard/internal/password"
	"github.com/meli-labs/seller-dashboard/internal/token"
	httptransport "github.com/meli-labs/seller-dashboard/internal/transport/http"
	"github.com/meli-labs/seller-dashboard/internal/transport/http/handler"
	"github.com/meli-labs/seller-dashboard/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryUserRepo enforces email uniqueness under its own lock, standing
// in for the database constraint.
type memoryUserRepo struct {
	mu      sync.Mutex
	seq     int64
	byEmail map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, name, emailAddr, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[emailAddr]; ok {
		return nil, domain.ErrEmailTaken
	}

	r.seq++
	u := &domain.User{
		ID:           r.seq,
		Name:         name,
		Email:        emailAddr,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	r.byEmail[emailAddr] = u
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, emailAddr string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[emailAddr]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	tokens := token.NewService([]byte("router-test-secret-32-characters!"), time.Hour)
	hasher := password.NewHasher(bcrypt.MinCost)
	mail := email.NewSender("local", "", "", logger)

	authUsecase := usecase.NewAuthUsecase(newMemoryUserRepo(), hasher, tokens, mail, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	api := marketplace.NewClient("")
	snapshot := marketplace.LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"), logger)
	marketHandler := handler.NewMarketplaceHandler(api, snapshot, logger)

	return httptransport.NewRouter(logger, authHandler, marketHandler, tokens)
}

func doJSON(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		IsActive bool   `json:"is_active"`
	} `json:"user"`
}

func TestRegisterLoginMe_FullFlow(t *testing.T) {
	r := newTestRouter(t)

	// Register with mixed-case email.
	w := doJSON(r, http.MethodPost, "/api/auth/register",
		`{"name":"Ana Silva","email":"Ana@Ex.com","password":"senha123"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	var registered authPayload
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	if registered.User.Email != "ana@ex.com" {
		t.Errorf("stored email = %q, want normalized %q", registered.User.Email, "ana@ex.com")
	}
	if !registered.User.IsActive {
		t.Error("new user must default to active")
	}

	// Login with a differently cased email.
	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"ANA@ex.com","password":"senha123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var loggedIn authPayload
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("login user id = %d, want %d", loggedIn.User.ID, registered.User.ID)
	}

	// Fetch the current user with the login token.
	w = doJSON(r, http.MethodGet, "/api/auth/me", "", loggedIn.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "ana@ex.com") {
		t.Errorf("me body %q missing user email", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "$2a$") {
		t.Errorf("me body leaks password material: %s", w.Body.String())
	}

	// Logout is a stateless ack behind the auth middleware.
	w = doJSON(r, http.MethodPost, "/api/auth/logout", "", loggedIn.Token)
	if w.Code != http.StatusOK {
		t.Errorf("logout status = %d, want 200", w.Code)
	}
	if doJSON(r, http.MethodPost, "/api/auth/logout", "", "").Code != http.StatusUnauthorized {
		t.Error("logout without token must be 401")
	}
}

func TestConcurrentDuplicateRegistration_ExactlyOneWins(t *testing.T) {
	r := newTestRouter(t)
	const body = `{"name":"Dup User","email":"dup@ex.com","password":"senha123"}`

	const n = 8
	codes := make(chan int, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- doJSON(r, http.MethodPost, "/api/auth/register", body, "").Code
		}()
	}
	wg.Wait()
	close(codes)

	var created, conflicted int
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	if created != 1 || conflicted != n-1 {
		t.Errorf("created = %d, conflicted = %d; want 1 and %d", created, conflicted, n-1)
	}
}

func TestDashboardRoutes_RequireToken(t *testing.T) {
	r := newTestRouter(t)

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/cd-data"},
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/metrics"},
		{http.MethodGet, "/api/mercadolivre/user"},
		{http.MethodGet, "/api/mercadolivre/products"},
		{http.MethodGet, "/api/mercadolivre/orders"},
		{http.MethodGet, "/api/mercadolivre/metrics"},
		{http.MethodGet, "/api/mercadolivre/questions"},
		{http.MethodGet, "/api/mercadolivre/notifications"},
		{http.MethodGet, "/api/mercadolivre/analytics"},
		{http.MethodGet, "/api/mercadolivre/shipping/2087654321"},
	}
	for _, route := range protected {
		if got := doJSON(r, route.method, route.path, "", "").Code; got != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", route.method, route.path, got)
		}
	}

	// With a valid token the same routes serve data.
	w := doJSON(r, http.MethodPost, "/api/auth/register",
		`{"name":"Ana Silva","email":"ana@ex.com","password":"senha123"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}
	var payload authPayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, route := range protected {
		if got := doJSON(r, route.method, route.path, "", payload.Token).Code; got != http.StatusOK {
			t.Errorf("%s %s with token: status = %d, want 200", route.method, route.path, got)
		}
	}

	w = doJSON(r, http.MethodPut, "/api/mercadolivre/products/MLB123/stock",
		`{"quantity": 12}`, payload.Token)
	if w.Code != http.StatusOK {
		t.Errorf("stock update status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "MLB123") {
		t.Errorf("stock update body %q missing product id", w.Body.String())
	}
}
