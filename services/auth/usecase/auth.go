package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/lleva/internal/pkg/jwt"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/utils"
	"github.com/piresc/lleva/services/auth"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	minFullNameLength = 2
	minAge            = 18
	maxAge            = 120
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// AuthUC implements the auth.AuthUC interface
type AuthUC struct {
	cfg      *models.Config
	users    auth.UserRepo
	tokens   auth.TokenRepo
	sessions auth.SessionCloser
	identity *Identity
}

// NewAuthUC creates the auth use case. sessions may be nil.
func NewAuthUC(cfg *models.Config, users auth.UserRepo, tokens auth.TokenRepo, sessions auth.SessionCloser) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		identity: NewIdentity(users, tokens),
	}
}

// Register creates an account with its profile and signs the user in
func (uc *AuthUC) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeCustomer
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", auth.ErrInvalidInput, minPasswordLength)
	}
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", auth.ErrInvalidInput)
	}
	switch userType {
	case models.UserTypeCustomer, models.UserTypeDriver, models.UserTypeDeliveryPerson:
	default:
		return nil, fmt.Errorf("%w: unknown user type %q", auth.ErrInvalidInput, userType)
	}

	existing, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.NewString()
	user := &models.User{ID: id, Email: email, PasswordHash: string(hash)}
	profile := &models.Profile{ID: id, FullName: &fullName, UserType: &userType}
	if err := uc.users.CreateUser(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", id),
		logger.String("user_type", string(userType)))

	return uc.issueToken(user, profile)
}

// Login checks the credentials and issues a token
func (uc *AuthUC) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", auth.ErrInvalidInput)
	}

	user, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		logger.WarnCtx(ctx, "Login rejected", logger.String("email", utils.MaskEmail(email)))
		return nil, auth.ErrInvalidCredentials
	}

	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load profile on login",
			logger.String("user_id", user.ID),
			logger.Err(err))
		profile = nil
	}

	return uc.issueToken(user, profile)
}

// Logout revokes the token and tears down the user's service session.
// The session is torn down even when the revocation fails.
func (uc *AuthUC) Logout(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	if uc.sessions != nil {
		uc.sessions.Teardown(userID)
	}
	return uc.identity.SignOut(ctx, userID, tokenID, expiresAt)
}

// GetProfile returns the profile of userID
func (uc *AuthUC) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := uc.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, auth.ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile validates and stores the fields the user changed
func (uc *AuthUC) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error) {
	update = normalizeProfileUpdate(update)
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", auth.ErrInvalidInput)
	}
	if err := validateProfileUpdate(update); err != nil {
		return nil, err
	}

	profile, err := uc.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, auth.ErrProfileNotFound
	}

	logger.InfoCtx(ctx, "Profile updated", logger.String("user_id", userID))
	return profile, nil
}

func (uc *AuthUC) issueToken(user *models.User, profile *models.Profile) (*models.LoginResponse, error) {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", user.ID, err)
	}

	role := string(models.UserTypeCustomer)
	if profile != nil && profile.UserType != nil {
		role = string(*profile.UserType)
	}

	token, _, expiresAt, err := jwtpkg.GenerateToken(userID, user.Email, role, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      *user,
		Profile:   profile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", auth.ErrInvalidInput)
	}
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: email is invalid", auth.ErrInvalidInput)
	}
	return nil
}

func normalizeProfileUpdate(update models.ProfileUpdate) models.ProfileUpdate {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	update.FullName = trim(update.FullName)
	update.AvatarURL = trim(update.AvatarURL)
	update.Phone = trim(update.Phone)
	update.City = trim(update.City)
	if update.Phone != nil {
		phone := strings.NewReplacer(" ", "", "-", "").Replace(*update.Phone)
		update.Phone = &phone
	}
	return update
}

func validateProfileUpdate(update models.ProfileUpdate) error {
	if update.FullName != nil && utf8.RuneCountInString(*update.FullName) < minFullNameLength {
		return fmt.Errorf("%w: full name must have at least %d characters", auth.ErrInvalidInput, minFullNameLength)
	}
	if update.Phone != nil && !phonePattern.MatchString(*update.Phone) {
		return fmt.Errorf("%w: phone number is invalid", auth.ErrInvalidInput)
	}
	if update.Age != nil && (*update.Age < minAge || *update.Age > maxAge) {
		return fmt.Errorf("%w: age must be between %d and %d", auth.ErrInvalidInput, minAge, maxAge)
	}
	return nil
}
