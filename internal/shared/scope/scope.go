package scope

import (
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamEmployees restricts a query joined on users as "u" to the employees of a team.
// Team leads are excluded so a lead never sees their own rows as team rows.
func TeamEmployees(teamID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("u.team_id = ? AND u.role = ?", teamID, identity.RoleEmployee)
	}
}
