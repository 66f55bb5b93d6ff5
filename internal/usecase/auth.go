package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/meli-labs/seller-dashboard/internal/domain"
	"github.com/meli-labs/seller-dashboard/internal/email"
	"github.com/meli-labs/seller-dashboard/internal/password"
	"github.com/meli-labs/seller-dashboard/internal/repository"
	"github.com/meli-labs/seller-dashboard/internal/token"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

type AuthUsecase struct {
	users  repository.UserRepository
	hasher *password.Hasher
	tokens *token.Service
	mail   email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, hasher *password.Hasher, tokens *token.Service, mail email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		mail:   mail,
		logger: logger.With("component", "auth_usecase"),
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult pairs a freshly issued session token with the public view
// of the authenticated user.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Register validates input, hashes the password, creates the user and
// issues a session token. The hash is computed before the insert so no
// store critical section ever waits on bcrypt; email uniqueness is left
// to the database constraint.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, domain.NewValidationError("name must be at least 2 characters")
	}

	emailAddr := normalizeEmail(input.Email)
	if emailAddr == "" || !emailPattern.MatchString(emailAddr) {
		return nil, domain.NewValidationError("invalid email address")
	}

	if reason, ok := validatePassword(input.Password); !ok {
		return nil, domain.NewValidationError(reason)
	}

	digest, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, name, emailAddr, digest)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	u.sendWelcomeEmail(ctx, user)

	return &AuthResult{Token: signed, User: user}, nil
}

// Login authenticates by email and password. An unknown email and a
// wrong password produce the identical error so responses carry no
// enumeration signal; the active flag is only checked after the
// credentials pass.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, plaintext string) (*AuthResult, error) {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" || plaintext == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{Token: signed, User: user}, nil
}

// CurrentUser resolves the subject of an already verified token.
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// sendWelcomeEmail is best-effort: a mail failure never fails the
// registration that triggered it.
func (u *AuthUsecase) sendWelcomeEmail(ctx context.Context, user *domain.User) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		subject := "Welcome to your seller dashboard"
		body := fmt.Sprintf("<p>Hi %s, your account is ready. Sign in to see your store's numbers.</p>", user.Name)
		if err := u.mail.Send(ctx, user.Email, subject, body); err != nil {
			u.logger.Error("send welcome email", "error", err)
		}
	}()
}

// normalizeEmail applies the canonical form used for storage and lookup.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func validatePassword(plaintext string) (string, bool) {
	if len(plaintext) < 8 {
		return "password must be at least 8 characters", false
	}
	if !hasLetter.MatchString(plaintext) {
		return "password must contain at least one letter", false
	}
	if !hasDigit.MatchString(plaintext) {
		return "password must contain at least one number", false
	}
	return "", true
}
