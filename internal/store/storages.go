package store

import "github.com/MKhiriev/avatar-dashboard/internal/logger"

// Storages bundles the repositories consumed by the service layer.
type Storages struct {
	ClientRepository ClientRepository
	AvatarRepository AvatarRepository
}

// NewDBStorages builds SQL-backed repositories over db.
func NewDBStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ClientRepository: NewClientRepository(db, logger),
		AvatarRepository: NewAvatarRepository(db, logger),
	}
}
