package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/models"
)

// avatarRepository is the SQL implementation of [AvatarRepository] over the
// "avatars" table.
type avatarRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAvatarRepository(db *DB, logger *logger.Logger) AvatarRepository {
	logger.Debug().Msg("creating avatar repository")
	return &avatarRepository{
		db:     db,
		logger: logger,
	}
}

func (r *avatarRepository) ListAvatars(ctx context.Context) ([]models.Avatar, error) {
	query, args, err := r.db.selectAvatars().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAvatars(ctx, query, args...)
}

func (r *avatarRepository) ListAvatarsByUser(ctx context.Context, userID models.Optional[string]) ([]models.Avatar, error) {
	query, args, err := r.db.selectAvatars().Where(userIDEq(userID)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAvatars(ctx, query, args...)
}

// CreateAvatar inserts avatar and returns it with the database-assigned
// created_at.
//
// Error handling:
//   - unique (user_id, slug) violation → [ErrAvatarAlreadyExists].
//   - no row returned → [ErrAvatarNotSaved].
func (r *avatarRepository) CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertAvatar(avatar).ToSql()
	if err != nil {
		return models.Avatar{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&avatar.CreatedAt)
	})
	switch {
	case err == nil:
		return avatar, nil
	case errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*avatarRepository.CreateAvatar").Msg("insert returned no row")
		return models.Avatar{}, ErrAvatarNotSaved
	case isUniqueViolation(err):
		return models.Avatar{}, ErrAvatarAlreadyExists
	default:
		log.Err(err).Str("func", "*avatarRepository.CreateAvatar").Msg("error inserting avatar")
		return models.Avatar{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *avatarRepository) queryAvatars(ctx context.Context, query string, args ...any) ([]models.Avatar, error) {
	log := logger.FromContext(ctx)

	var avatars []models.Avatar
	err := r.db.withRetry(ctx, func() error {
		avatars = make([]models.Avatar, 0)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var a models.Avatar
			if err = rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Slug, &a.HeygenAvatarID, &a.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			avatars = append(avatars, a)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*avatarRepository.queryAvatars").Msg("error querying avatars")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return avatars, nil
}
