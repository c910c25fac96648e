// file: repository/permission_repository.go

package repository

import (
	"database/sql"
	"go-auth-api/logger"
	"go-auth-api/model"
)

// IPermissionRepository defines the contract for permission database operations.
type IPermissionRepository interface {
	GetByGroup(group string) ([]*model.Permission, error)
}

// PermissionRepository implements IPermissionRepository.
type PermissionRepository struct {
	DB *sql.DB
}

// NewPermissionRepository creates a new PermissionRepository.
func NewPermissionRepository(db *sql.DB) *PermissionRepository {
	return &PermissionRepository{DB: db}
}

// GetByGroup retrieves all permission rows for a user group in insertion
// order. An unknown group yields an empty slice, not an error.
func (r *PermissionRepository) GetByGroup(group string) ([]*model.Permission, error) {
	log := logger.Log.WithField("group", group)
	log.Info("Executing query to get permissions by group")

	query := `SELECT id, pms_group, pms_menu_name, pms_menu_active, pms_menu_insert, pms_menu_update, pms_menu_delete, pms_menu_read, author_id, author_name, author_time
		FROM permissions WHERE pms_group = $1 ORDER BY id`
	rows, err := r.DB.Query(query, group)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for permissions by group")
		return nil, err
	}
	defer rows.Close()

	permissions := []*model.Permission{}
	for rows.Next() {
		var p model.Permission
		if err := rows.Scan(&p.ID, &p.Group, &p.MenuName, &p.MenuActive, &p.MenuInsert, &p.MenuUpdate, &p.MenuDelete, &p.MenuRead, &p.AuthorID, &p.AuthorName, &p.AuthorTime); err != nil {
			log.WithError(err).Error("Failed to scan permission row")
			return nil, err
		}
		permissions = append(permissions, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return permissions, nil
}
