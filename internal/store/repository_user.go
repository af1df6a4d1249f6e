package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and its profile in a single transaction and
// returns the stored user.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, profile models.Profile) (models.User, error) {
	log := logger.FromContext(ctx)

	userQuery, userArgs, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create user query")
		return models.User{}, err
	}

	profile.UserID = user.UserID
	profileQuery, profileArgs, err := buildInsertProfileQuery(r.db.builder, profile)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create profile query")
		return models.User{}, err
	}

	var created models.User
	err = r.db.withOwnerTx(ctx, user.UserID, func(tx *sql.Tx) error {
		// create user in db
		row := tx.QueryRowContext(ctx, userQuery, userArgs...)
		if scanErr := row.Scan(&created.UserID, &created.Email, &created.PasswordHash, &created.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			if r.db.Classify(scanErr) == Conflict {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		// empty profile next to it
		if _, execErr := tx.ExecContext(ctx, profileQuery, profileArgs...); execErr != nil {
			log.Err(execErr).Str("func", "*userRepository.CreateUser").Msg("error inserting profile")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	created.CreatedAt = created.CreatedAt.UTC()
	return created, nil
}

// FindUserByEmail returns [ErrNoUserWasFound] when no account has the email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByID returns [ErrNoUserWasFound] when no account has the id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to create query")
		return models.User{}, err
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found.CreatedAt = found.CreatedAt.UTC()
	return found, nil
}
