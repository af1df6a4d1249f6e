package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/store"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/internal/validators"
	"github.com/MKhiriev/greenwall/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT
// session token lifecycle, using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator
	clock     utils.Clock

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// dummyHash is compared against when the email is unknown so that both
	// sign-in failures cost one bcrypt comparison.
	dummyHash     []byte
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, clock utils.Clock, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		clock:          clock,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates an account and its profile.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the email, password or full name is invalid.
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("func", "authService.SignUp").Msg("invalid sign up data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	now := a.clock.Now().UTC()
	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	profile := models.Profile{
		FullName:  strings.TrimSpace(req.FullName),
		UpdatedAt: now,
	}

	created, err := a.userRepository.CreateUser(ctx, user, profile)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// SignIn authenticates an existing user. An unknown email and a wrong
// password produce the same ErrWrongCredentials.
func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = bcrypt.CompareHashAndPassword(a.getDummyHash(), []byte(creds.Password))
			log.Info().Str("func", "authService.SignIn").Msg("sign in with unknown email")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "authService.SignIn").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Str("func", "authService.SignIn").Str("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

func (a *authService) getDummyHash() []byte {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("greenwall-dummy-password"), a.bcryptCost)
	})
	return a.dummyHash
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CurrentUser returns the account of the caller in ctx. A token whose user
// no longer exists counts as unauthenticated.
func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, fmt.Errorf("loading current user: %w", err)
	}

	return user, nil
}
