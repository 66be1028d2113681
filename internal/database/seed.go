package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Email    string
	Password string
	Name     string
	Role     string
	Team     string
	Annual   int
	Sick     int
	Casual   int
}

var (
	defaultTeams = []string{"Engineering", "Marketing", "Human Resources", "Finance"}

	defaultUsers = []seedUser{
		{Email: "admin@elms.com", Password: "admin123", Name: "System Admin", Role: "admin"},
		{Email: "teamlead@elms.com", Password: "teamlead123", Name: "Team Lead", Role: "team_lead", Team: "Engineering", Annual: 20, Sick: 10, Casual: 5},
		{Email: "employee@elms.com", Password: "employee123", Name: "John Employee", Role: "employee", Team: "Engineering", Annual: 20, Sick: 10, Casual: 5},
	}
)

// Seed inserts the default teams and demo accounts into an empty database.
// It does nothing once any user exists.
func Seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	log := logger.Named("database.seed")

	var count int64
	if err := db.WithContext(ctx).Table("users").Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Debug("seed skipped", zap.Int64("users", count))
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range defaultTeams {
			if err := tx.Exec(`INSERT INTO teams (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name).Error; err != nil {
				return fmt.Errorf("seed team %s: %w", name, err)
			}
		}

		for _, u := range defaultUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			var teamID *string
			if u.Team != "" {
				var id string
				if err := tx.Raw(`SELECT id::text FROM teams WHERE name = ?`, u.Team).Scan(&id).Error; err != nil {
					return fmt.Errorf("lookup team %s: %w", u.Team, err)
				}
				teamID = &id
			}

			if err := tx.Exec(
				`INSERT INTO users (email, password_hash, name, role, team_id, leave_balance, sick_leave_balance, casual_leave_balance)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (email) DO NOTHING`,
				u.Email, string(hash), u.Name, u.Role, teamID, u.Annual, u.Sick, u.Casual,
			).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("seed data created", zap.Int("teams", len(defaultTeams)), zap.Int("users", len(defaultUsers)))
	return nil
}
