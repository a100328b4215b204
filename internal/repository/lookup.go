package repository

import (
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// LookupRepository handles one of the small id/name tables (roles, statuses, types)
type LookupRepository struct {
	db       *gorm.DB
	table    string
	notFound error
}

// NewRoleRepository creates a repository for roles
func NewRoleRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db, table: models.Role{}.TableName(), notFound: apperrors.ErrRoleNotFound}
}

// NewStatusRepository creates a repository for statuses
func NewStatusRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db, table: models.Status{}.TableName(), notFound: apperrors.ErrStatusNotFound}
}

// NewTypeRepository creates a repository for types
func NewTypeRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db, table: models.Type{}.TableName(), notFound: apperrors.ErrTypeNotFound}
}

// Create creates a new row, the id is assigned by the database
func (r *LookupRepository) Create(item *models.LookupModel) error {
	item.ID = 0
	return translate(r.db.Table(r.table).Create(item).Error, nil, "while saving new "+r.table)
}

// GetByID retrieves a row by ID
func (r *LookupRepository) GetByID(id int) (*models.LookupModel, error) {
	var item models.LookupModel
	err := r.db.Table(r.table).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, r.notFound, "while getting "+r.table)
	}
	return &item, nil
}

// GetAll retrieves all rows ordered by id
func (r *LookupRepository) GetAll() ([]models.LookupModel, error) {
	var items []models.LookupModel
	if err := r.db.Table(r.table).Order("id").Find(&items).Error; err != nil {
		return nil, translate(err, nil, "while getting "+r.table)
	}
	return items, nil
}

// Update renames a row
func (r *LookupRepository) Update(item *models.LookupModel) error {
	result := r.db.Table(r.table).Where("id = ?", item.ID).Update("name", item.Name)
	if result.Error != nil {
		return translate(result.Error, nil, "while updating "+r.table)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

// Delete deletes a row. Rows still referenced are protected by the foreign keys.
func (r *LookupRepository) Delete(id int) error {
	return translate(r.db.Table(r.table).Where("id = ?", id).Delete(&models.LookupModel{}).Error, nil, "while deleting "+r.table)
}
