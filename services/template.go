package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/models"
)

// ErrTemplateNotFound is returned when the template user does not exist
var ErrTemplateNotFound = errors.New("template user not found")

// TemplateSeeder gives new accounts a copy of the template user's content
type TemplateSeeder struct{}

func NewTemplateSeeder() *TemplateSeeder {
	return &TemplateSeeder{}
}

// SeedFromTemplate deep-copies About, Skills, Achievements, Languages,
// Projects with their skill links, and Contact with its sub-lists from
// templateUserID to newUserID. Every copy gets a new id, and project links
// point at the copied skills. tx should be a transactional Database so a
// failure leaves no partial copy behind.
func (t *TemplateSeeder) SeedFromTemplate(ctx context.Context, tx database.Database, templateUserID, newUserID uuid.UUID) error {
	if _, err := tx.UserRepo().FindByID(ctx, templateUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}

	if err := t.copyAbout(ctx, tx, templateUserID, newUserID); err != nil {
		return fmt.Errorf("copying about: %w", err)
	}

	skillIDs, err := t.copySkills(ctx, tx, templateUserID, newUserID)
	if err != nil {
		return fmt.Errorf("copying skills: %w", err)
	}

	if err := t.copyAchievements(ctx, tx, templateUserID, newUserID); err != nil {
		return fmt.Errorf("copying achievements: %w", err)
	}
	if err := t.copyLanguages(ctx, tx, templateUserID, newUserID); err != nil {
		return fmt.Errorf("copying languages: %w", err)
	}
	if err := t.copyProjects(ctx, tx, templateUserID, newUserID, skillIDs); err != nil {
		return fmt.Errorf("copying projects: %w", err)
	}
	if err := t.copyContact(ctx, tx, templateUserID, newUserID); err != nil {
		return fmt.Errorf("copying contact: %w", err)
	}
	return nil
}

func (t *TemplateSeeder) copyAbout(ctx context.Context, tx database.Database, from, to uuid.UUID) error {
	about, err := tx.AboutRepo().FindByUserID(ctx, from)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	clone := *about
	clone.Base = models.Base{}
	clone.UserID = to
	return tx.AboutRepo().Add(ctx, &clone)
}

// copySkills returns the mapping from template skill id to copied skill id
func (t *TemplateSeeder) copySkills(ctx context.Context, tx database.Database, from, to uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	skills, err := tx.SkillRepo().FindByUserID(ctx, from)
	if err != nil {
		return nil, err
	}

	ids := make(map[uuid.UUID]uuid.UUID, len(skills))
	clones := make([]*models.Skill, 0, len(skills))
	for _, s := range skills {
		clone := *s
		clone.Base = models.Base{ID: uuid.New()}
		clone.UserID = to
		ids[s.ID] = clone.ID
		clones = append(clones, &clone)
	}
	return ids, tx.SkillRepo().Add(ctx, clones...)
}

func (t *TemplateSeeder) copyAchievements(ctx context.Context, tx database.Database, from, to uuid.UUID) error {
	achievements, err := tx.AchievementRepo().FindByUserID(ctx, from)
	if err != nil {
		return err
	}

	clones := make([]*models.Achievement, 0, len(achievements))
	for _, a := range achievements {
		clone := *a
		clone.Base = models.Base{}
		clone.UserID = to
		clones = append(clones, &clone)
	}
	return tx.AchievementRepo().Add(ctx, clones...)
}

func (t *TemplateSeeder) copyLanguages(ctx context.Context, tx database.Database, from, to uuid.UUID) error {
	languages, err := tx.LanguageRepo().FindByUserID(ctx, from)
	if err != nil {
		return err
	}

	clones := make([]*models.Language, 0, len(languages))
	for _, l := range languages {
		clone := *l
		clone.Base = models.Base{}
		clone.UserID = to
		clones = append(clones, &clone)
	}
	return tx.LanguageRepo().Add(ctx, clones...)
}

func (t *TemplateSeeder) copyProjects(ctx context.Context, tx database.Database, from, to uuid.UUID, skillIDs map[uuid.UUID]uuid.UUID) error {
	projects, err := tx.ProjectRepo().FindByUserID(ctx, from)
	if err != nil {
		return err
	}

	for _, p := range projects {
		links, err := tx.ProjectSkillRepo().FindByProjectID(ctx, p.ID)
		if err != nil {
			return err
		}

		clone := *p
		clone.Base = models.Base{}
		clone.UserID = to
		if err := tx.ProjectRepo().Add(ctx, &clone); err != nil {
			return err
		}

		linked := make([]uuid.UUID, 0, len(links))
		for _, link := range links {
			copied, ok := skillIDs[link.SkillID]
			if !ok {
				return fmt.Errorf("project %s links skill %s outside the template", p.ID, link.SkillID)
			}
			linked = append(linked, copied)
		}
		if err := tx.ProjectSkillRepo().Link(ctx, clone.ID, linked...); err != nil {
			return err
		}
	}
	return nil
}

func (t *TemplateSeeder) copyContact(ctx context.Context, tx database.Database, from, to uuid.UUID) error {
	contact, err := tx.ContactRepo().FindByUserID(ctx, from)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	opportunities, err := tx.ContactRepo().FindOpportunities(ctx, contact.ID)
	if err != nil {
		return err
	}
	locations, err := tx.ContactRepo().FindLocationInfo(ctx, contact.ID)
	if err != nil {
		return err
	}

	clone := *contact
	clone.Base = models.Base{}
	clone.UserID = to
	if err := tx.ContactRepo().Add(ctx, &clone); err != nil {
		return err
	}

	names := make([]string, 0, len(opportunities))
	for _, o := range opportunities {
		names = append(names, o.Name)
	}
	if err := tx.ContactRepo().AddOpportunities(ctx, clone.ID, names...); err != nil {
		return err
	}

	names = make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
	}
	return tx.ContactRepo().AddLocationInfo(ctx, clone.ID, names...)
}
