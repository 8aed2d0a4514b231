package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type ProjectSkillRepo struct {
	db *gorm.DB
}

func NewProjectSkillRepo(db *gorm.DB) *ProjectSkillRepo {
	return &ProjectSkillRepo{db}
}

// ErrForeignSkill is returned by Link when a skill is not owned by the project's user
var ErrForeignSkill = errors.New("database: skill does not belong to the project owner")

// Link attaches skills to a project. Positions follow the argument order.
// Every skill must belong to the project's user.
func (r *ProjectSkillRepo) Link(ctx context.Context, projectID uuid.UUID, skillIDs ...uuid.UUID) error {
	if len(skillIDs) == 0 {
		return nil
	}

	unique := make(map[uuid.UUID]struct{}, len(skillIDs))
	for _, id := range skillIDs {
		unique[id] = struct{}{}
	}

	db := r.db.WithContext(ctx)
	var owned int64
	err := db.Model(&models.Skill{}).
		Where("id IN ?", skillIDs).
		Where("user_id = (?)", db.Model(&models.Project{}).Select("user_id").Where("id = ?", projectID)).
		Count(&owned).Error
	if err != nil {
		return err
	}
	if owned != int64(len(unique)) {
		return ErrForeignSkill
	}

	links := make([]*models.ProjectSkill, 0, len(skillIDs))
	for i, skillID := range skillIDs {
		links = append(links, &models.ProjectSkill{
			ProjectID: projectID,
			SkillID:   skillID,
			Position:  i,
		})
	}
	return db.Create(&links).Error
}

// FindByProjectID returns the raw links of a project ordered by position
func (r *ProjectSkillRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectSkill, error) {
	var links []*models.ProjectSkill
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position, id").
		Find(&links).Error
	return links, err
}

// FindTechnologies resolves the linked skills of the given projects in one
// query, ordered by project and then by link position
func (r *ProjectSkillRepo) FindTechnologies(ctx context.Context, projectIDs ...uuid.UUID) ([]models.ProjectTechnology, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	var techs []models.ProjectTechnology
	err := r.db.WithContext(ctx).
		Table("project_skills AS ps").
		Select("ps.project_id, ps.skill_id, s.name, s.category, ps.position").
		Joins("JOIN skills AS s ON s.id = ps.skill_id").
		Where("ps.project_id IN ?", projectIDs).
		Order("ps.project_id, ps.position, ps.id").
		Scan(&techs).Error
	return techs, err
}
