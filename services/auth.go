package services

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-content-api/auth"
	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/errs"
	"github.com/rpupo63/portfolio-content-api/models"
)

// Token validation reasons
const (
	ReasonMissingToken     = "missing_token"
	ReasonTokenExpired     = "token_expired"
	ReasonInvalidSignature = "invalid_signature"
	ReasonUserNotFound     = "user_not_found"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResult struct {
	Token     string             `json:"token"`
	TokenType string             `json:"tokenType"`
	ExpiresIn int64              `json:"expiresIn"`
	User      models.UserSummary `json:"user"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Username        string `json:"username,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&r.ConfirmPassword, validation.Required),
		validation.Field(&r.Username, validation.Length(3, 50)),
	)
}

type RegisterResult struct {
	Message string             `json:"message"`
	User    models.UserSummary `json:"user"`
}

// TokenUser is the user block of a successful token validation
type TokenUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenValidation reports whether a token is usable and, if not, why
type TokenValidation struct {
	Valid     bool       `json:"valid"`
	User      *TokenUser `json:"user,omitempty"`
	ExpiresIn *int64     `json:"expiresIn,omitempty"`
	Message   string     `json:"message"`
	Reason    string     `json:"reason,omitempty"`
}

type AuthService struct {
	db             database.Database
	tokens         *auth.TokenService
	passwords      *auth.PasswordService
	seeder         *TemplateSeeder
	templateUserID uuid.UUID
	now            func() time.Time
	logger         zerolog.Logger
}

// NewAuthService wires the auth flows. A nil seeder registers blank accounts.
func NewAuthService(db database.Database, tokens *auth.TokenService, passwords *auth.PasswordService, seeder *TemplateSeeder, templateUserID uuid.UUID) *AuthService {
	return &AuthService{
		db:             db,
		tokens:         tokens,
		passwords:      passwords,
		seeder:         seeder,
		templateUserID: templateUserID,
		now:            time.Now,
		logger:         log.With().Str("serviceName", "AuthService").Logger(),
	}
}

// Login fails with the same Unauthorized error for an unknown email, an
// inactive user and a wrong password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	user, err := s.db.UserRepo().FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidCredentialsError()
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if !user.IsActive {
		return nil, errs.NewInvalidCredentialsError()
	}

	if err := s.passwords.Verify(user.Password, req.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Error().Err(err).Str("userId", user.ID.String()).Msg("password check failed")
		}
		return nil, errs.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("could not issue token", err)
	}

	s.logger.Info().Str("userId", user.ID.String()).Msg("user logged in")
	return &LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokens.Expiry() / time.Second),
		User:      user.Summary(),
	}, nil
}

type ProfileResult struct {
	Message string             `json:"message"`
	User    models.UserSummary `json:"user"`
}

type DashboardInfo struct {
	Welcome   string `json:"welcome"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

type DashboardResult struct {
	Message   string             `json:"message"`
	User      models.UserSummary `json:"user"`
	Dashboard DashboardInfo      `json:"dashboard"`
}

// Profile returns the account behind an authenticated token
func (s *AuthService) Profile(ctx context.Context, userID string) (*ProfileResult, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileResult{
		Message: "Profile retrieved successfully",
		User:    user.Summary(),
	}, nil
}

func (s *AuthService) Dashboard(ctx context.Context, userID string) (*DashboardResult, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &DashboardResult{
		Message: "Dashboard access granted",
		User:    user.Summary(),
		Dashboard: DashboardInfo{
			Welcome:   "Welcome " + user.Username,
			Timestamp: s.now().UTC().Format(time.RFC3339),
			Status:    "active",
		},
	}, nil
}

// currentUser reloads the token subject; a vanished or inactive user reads as user_not_found
func (s *AuthService) currentUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errs.NewTokenUserNotFoundError()
	}
	user, err := s.db.UserRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewTokenUserNotFoundError()
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if !user.IsActive {
		return nil, errs.NewTokenUserNotFoundError()
	}
	return user, nil
}

// Register creates the account and, unless cloning is disabled, copies the
// template user's content in the same transaction
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	req.Email = normalizeEmail(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}
	if req.Password != req.ConfirmPassword {
		return nil, errs.NewInvalidFieldError("confirmPassword", "passwords do not match")
	}

	if _, err := s.db.UserRepo().FindByEmail(ctx, req.Email); err == nil {
		return nil, errs.NewConflictError("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("could not hash password", err)
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
		IsActive: true,
	}

	err = s.db.Transaction(ctx, func(tx database.Database) error {
		if user.Username == "" {
			user.Username = s.defaultUsername(ctx, tx, req.Email)
		}
		if err := tx.UserRepo().Add(ctx, user); err != nil {
			return err
		}
		if s.seeder == nil {
			return nil
		}
		return s.seeder.SeedFromTemplate(ctx, tx, s.templateUserID, user.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewConflictError("email already registered")
		}
		if errors.Is(err, ErrTemplateNotFound) {
			s.logger.Error().Str("templateUserId", s.templateUserID.String()).Msg("registration template user missing")
			return nil, errs.NewInternalErrorWithCause("registration is not available", err)
		}
		return nil, errs.NewTransactionFailedError("register", err)
	}

	s.logger.Info().Str("userId", user.ID.String()).Bool("cloned", s.seeder != nil).Msg("user registered")
	return &RegisterResult{
		Message: "user registered successfully",
		User:    user.Summary(),
	}, nil
}

// defaultUsername prefers the template's username and falls back to the
// local part of the email
func (s *AuthService) defaultUsername(ctx context.Context, tx database.Database, email string) string {
	if s.seeder != nil {
		if template, err := tx.UserRepo().FindByID(ctx, s.templateUserID); err == nil && template.Username != "" {
			return template.Username
		}
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}

// ValidateToken never returns an error; failures are reported through
// Valid and Reason
func (s *AuthService) ValidateToken(ctx context.Context, token string) TokenValidation {
	result, _ := s.check(ctx, token)
	return result
}

// Authenticate returns the claims of a valid token whose user still exists
// and is active. The error carries the same reason ValidateToken reports.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	result, claims := s.check(ctx, token)
	if !result.Valid {
		return nil, reasonError(result.Reason)
	}
	return claims, nil
}

// check walks missing token, then signature and expiry, then the user
func (s *AuthService) check(ctx context.Context, token string) (TokenValidation, *auth.Claims) {
	if strings.TrimSpace(token) == "" {
		return TokenValidation{Reason: ReasonMissingToken, Message: "Authorization token is required"}, nil
	}

	claims, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return TokenValidation{Reason: ReasonTokenExpired, Message: "Token has expired"}, nil
		}
		return TokenValidation{Reason: ReasonInvalidSignature, Message: "Invalid token signature"}, nil
	}

	id, err := uuid.Parse(claims.UserID())
	if err != nil {
		return TokenValidation{Reason: ReasonUserNotFound, Message: "User not found"}, nil
	}
	user, err := s.db.UserRepo().FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error().Err(err).Str("userId", id.String()).Msg("token user lookup failed")
		}
		return TokenValidation{Reason: ReasonUserNotFound, Message: "User not found"}, nil
	}
	if !user.IsActive {
		return TokenValidation{Reason: ReasonUserNotFound, Message: "User is inactive"}, nil
	}

	expiresIn := claims.ExpiresIn(s.now())
	return TokenValidation{
		Valid:     true,
		User:      &TokenUser{ID: user.ID.String(), Email: user.Email, Name: user.Username},
		ExpiresIn: &expiresIn,
		Message:   "Token is valid",
	}, claims
}

func reasonError(reason string) *errs.ApiErr {
	switch reason {
	case ReasonMissingToken:
		return errs.NewMissingTokenError()
	case ReasonTokenExpired:
		return errs.NewTokenExpiredError()
	case ReasonUserNotFound:
		return errs.NewTokenUserNotFoundError()
	default:
		return errs.NewInvalidSignatureError(nil)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
