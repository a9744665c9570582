package store

import (
	"github.com/MKhiriev/avatar-dashboard/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	clientsTable = "clients"
	avatarsTable = "avatars"
)

var (
	clientColumns = []string{"id", "user_id", "name", "email", "heygen_api_key", "created_at"}
	avatarColumns = []string{"id", "user_id", "name", "slug", "heygen_avatar_id", "created_at"}
)

func (db *DB) selectClients() sq.SelectBuilder {
	return db.builder.
		Select(clientColumns...).
		From(clientsTable).
		OrderBy("created_at", "id")
}

func (db *DB) selectAvatars() sq.SelectBuilder {
	return db.builder.
		Select(avatarColumns...).
		From(avatarsTable).
		OrderBy("created_at", "id")
}

func (db *DB) insertAvatar(avatar models.Avatar) sq.InsertBuilder {
	return db.builder.
		Insert(avatarsTable).
		Columns("id", "user_id", "name", "slug", "heygen_avatar_id").
		Values(avatar.ID, avatar.UserID, avatar.Name, avatar.Slug, avatar.HeygenAvatarID).
		Suffix("RETURNING created_at")
}

// userIDEq matches user_id against an optional value; null and unset both
// select rows whose user_id is null.
func userIDEq(userID models.Optional[string]) sq.Eq {
	if v, ok := userID.Get(); ok {
		return sq.Eq{"user_id": v}
	}
	return sq.Eq{"user_id": nil}
}
