package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/models"
)

// clientRepository is the SQL implementation of [ClientRepository] over the
// "clients" table.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *clientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	query, args, err := r.db.selectClients().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryClients(ctx, query, args...)
}

func (r *clientRepository) FindClientByUserID(ctx context.Context, userID string) (models.Client, error) {
	query, args, err := r.db.selectClients().
		Where(userIDEq(models.Some(userID))).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	clients, err := r.queryClients(ctx, query, args...)
	if err != nil {
		return models.Client{}, err
	}
	if len(clients) == 0 {
		return models.Client{}, ErrClientNotFound
	}

	return clients[0], nil
}

func (r *clientRepository) queryClients(ctx context.Context, query string, args ...any) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	var clients []models.Client
	err := r.db.withRetry(ctx, func() error {
		clients = make([]models.Client, 0)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c models.Client
			if err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.HeygenAPIKey, &c.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			clients = append(clients, c)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.queryClients").Msg("error querying clients")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return clients, nil
}
