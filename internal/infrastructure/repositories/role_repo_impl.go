package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/infrastructure/models"
)

// RoleRepository implements role reference-data operations on gorm.
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByName gets a role by its unique name.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*entities.Role, error) {
	var m models.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Role{ID: m.ID, Name: m.Name}, nil
}

// GetOrCreate returns the named role, creating it if absent.
func (r *RoleRepository) GetOrCreate(ctx context.Context, name string) (*entities.Role, error) {
	m := models.Role{Name: name}
	err := r.db.WithContext(ctx).Where("name = ?", name).
		Attrs(models.Role{ID: uuid.New()}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return &entities.Role{ID: m.ID, Name: m.Name}, nil
}

// List returns all roles.
func (r *RoleRepository) List(ctx context.Context) ([]*entities.Role, error) {
	var roleModels []models.Role
	if err := r.db.WithContext(ctx).Order("name").Find(&roleModels).Error; err != nil {
		return nil, err
	}
	roles := make([]*entities.Role, 0, len(roleModels))
	for _, m := range roleModels {
		roles = append(roles, &entities.Role{ID: m.ID, Name: m.Name})
	}
	return roles, nil
}
