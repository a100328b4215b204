package database

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"project-tracker-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// PasswordHasher hashes the passwords of seeded users
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// LookupData is a role, status or type row
type LookupData struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// UserData is a seeded account
type UserData struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Role      int    `yaml:"role"`
}

// SeedData is the content of a seed file
type SeedData struct {
	Roles    []LookupData `yaml:"roles"`
	Statuses []LookupData `yaml:"statuses"`
	Types    []LookupData `yaml:"types"`
	Users    []UserData   `yaml:"users"`
}

// SeedResult counts the rows created by Seed
type SeedResult struct {
	Roles    int
	Statuses int
	Types    int
	Users    int
}

// DefaultSeedData returns the role tiers and a starter set of statuses and types
func DefaultSeedData() *SeedData {
	return &SeedData{
		Roles: []LookupData{
			{ID: models.RoleTierUser, Name: "user"},
			{ID: models.RoleTierLeader, Name: "leader"},
			{ID: models.RoleTierAdmin, Name: "admin"},
		},
		Statuses: []LookupData{
			{ID: 1, Name: "not started"},
			{ID: 2, Name: "in progress"},
			{ID: 3, Name: "done"},
		},
		Types: []LookupData{
			{ID: 1, Name: "feature"},
			{ID: 2, Name: "bug fix"},
		},
	}
}

// LoadSeedFile reads seed data from a YAML file
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

// WithAdmin appends an admin account when username and password are given
func (d *SeedData) WithAdmin(username, password string) *SeedData {
	if username == "" || password == "" {
		return d
	}
	d.Users = append(d.Users, UserData{
		Username:  username,
		Password:  password,
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@mail.mail",
		Role:      models.RoleTierAdmin,
	})
	return d
}

// Seed creates the missing rows of data. Existing rows are left untouched,
// so running it repeatedly is safe.
func Seed(db *gorm.DB, data *SeedData, hasher PasswordHasher) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if result.Roles, err = seedLookups(tx, "roles", data.Roles, func(l LookupData) interface{} {
			return &models.Role{LookupModel: models.LookupModel{ID: l.ID, Name: l.Name}}
		}); err != nil {
			return err
		}
		if result.Statuses, err = seedLookups(tx, "statuses", data.Statuses, func(l LookupData) interface{} {
			return &models.Status{LookupModel: models.LookupModel{ID: l.ID, Name: l.Name}}
		}); err != nil {
			return err
		}
		if result.Types, err = seedLookups(tx, "types", data.Types, func(l LookupData) interface{} {
			return &models.Type{LookupModel: models.LookupModel{ID: l.ID, Name: l.Name}}
		}); err != nil {
			return err
		}

		for _, userData := range data.Users {
			created, err := seedUser(tx, userData, hasher)
			if err != nil {
				return fmt.Errorf("failed to seed user %s: %w", userData.Username, err)
			}
			if created {
				result.Users++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func seedLookups(tx *gorm.DB, table string, rows []LookupData, build func(LookupData) interface{}) (int, error) {
	created := 0
	for _, row := range rows {
		var count int64
		if err := tx.Table(table).Where("id = ?", row.ID).Count(&count).Error; err != nil {
			return created, fmt.Errorf("failed to query %s: %w", table, err)
		}
		if count > 0 {
			continue
		}
		if err := tx.Create(build(row)).Error; err != nil {
			return created, fmt.Errorf("failed to create %s %q: %w", table, row.Name, err)
		}
		created++
	}

	if created > 0 {
		// Explicit ids bypass the serial sequence, move it past them
		sql := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
		if err := tx.Exec(sql).Error; err != nil {
			return created, fmt.Errorf("failed to reset %s sequence: %w", table, err)
		}
	}
	return created, nil
}

func seedUser(tx *gorm.DB, data UserData, hasher PasswordHasher) (bool, error) {
	username := strings.ToLower(data.Username)

	var user models.User
	err := tx.Where("username = ?", username).First(&user).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := hasher.Hash(data.Password)
	if err != nil {
		return false, err
	}

	user = models.User{
		Username:     username,
		RoleID:       data.Role,
		PasswordHash: hash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
	}
	if err := tx.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}
