package database

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-content-api/models"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

func addUser(t *testing.T, d Database, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Username: "user", Password: "hash", IsActive: true}
	require.NoError(t, d.UserRepo().Add(context.Background(), user))
	return user
}

// ============================================================================
// Users
// ============================================================================

func TestUserRepo_AddFindUpdate(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	user := addUser(t, d, "ana@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)

	byEmail, err := d.UserRepo().FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byEmail.IsActive = false
	require.NoError(t, d.UserRepo().Update(ctx, byEmail))

	byID, err := d.UserRepo().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, byID.IsActive)

	_, err = d.UserRepo().FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	n, err := d.UserRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	d := newTestDatabase(t)
	addUser(t, d, "dup@example.com")

	err := d.UserRepo().Add(context.Background(), &models.User{Email: "dup@example.com", Username: "x", Password: "y"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUserRepo_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user := addUser(t, d, "gone@example.com")

	skill := &models.Skill{Name: "Go", Category: models.SkillCategoryBackend, UserID: user.ID}
	require.NoError(t, d.SkillRepo().Add(ctx, skill))
	project := &models.Project{Title: "p", Description: "d", GithubURL: "g", ImageURL: "i", UserID: user.ID}
	require.NoError(t, d.ProjectRepo().Add(ctx, project))
	require.NoError(t, d.ProjectSkillRepo().Link(ctx, project.ID, skill.ID))

	require.NoError(t, d.UserRepo().Delete(ctx, user.ID))

	n, err := d.SkillRepo().CountByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	links, err := d.ProjectSkillRepo().FindByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

// ============================================================================
// About
// ============================================================================

func TestAboutRepo_UpdateFields(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user := addUser(t, d, "about@example.com")

	about := &models.About{
		FullName:   "Before",
		Location:   "Madrid",
		CtaButtons: datatypes.NewJSONType(models.CtaButtons{Projects: "See projects", Contact: "Contact"}),
		UserID:     user.ID,
	}
	require.NoError(t, d.AboutRepo().Add(ctx, about))

	err := d.AboutRepo().UpdateFields(ctx, user.ID, map[string]interface{}{
		"full_name":   "After",
		"cta_buttons": datatypes.NewJSONType(models.CtaButtons{Projects: "Work", Contact: "Talk"}),
	})
	require.NoError(t, err)

	got, err := d.AboutRepo().FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.FullName)
	assert.Equal(t, "Madrid", got.Location)
	assert.Equal(t, "Talk", got.CtaButtons.Data().Contact)

	err = d.AboutRepo().UpdateFields(ctx, uuid.New(), map[string]interface{}{"full_name": "x"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// ============================================================================
// Skills and projects
// ============================================================================

func TestSkillRepo_Category(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user := addUser(t, d, "skills@example.com")

	require.NoError(t, d.SkillRepo().Add(ctx,
		&models.Skill{Name: "Go", Category: models.SkillCategoryBackend, UserID: user.ID},
		&models.Skill{Name: "React", Category: models.SkillCategoryFrontend, UserID: user.ID},
		&models.Skill{Name: "Gin", Category: models.SkillCategoryBackend, UserID: user.ID},
	))

	backend, err := d.SkillRepo().FindByUserIDAndCategory(ctx, user.ID, models.SkillCategoryBackend)
	require.NoError(t, err)
	assert.Len(t, backend, 2)

	err = d.SkillRepo().Add(ctx, &models.Skill{Name: "Bad", Category: "cooking", UserID: user.ID})
	assert.Error(t, err)
}

func TestProjectSkillRepo_TechnologiesInLinkOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user := addUser(t, d, "proj@example.com")
	other := addUser(t, d, "other@example.com")

	goSkill := &models.Skill{Name: "Go", Category: models.SkillCategoryBackend, UserID: user.ID}
	pg := &models.Skill{Name: "PostgreSQL", Category: models.SkillCategoryDatabases, UserID: user.ID}
	require.NoError(t, d.SkillRepo().Add(ctx, goSkill, pg))

	project := &models.Project{Title: "API", Description: "d", GithubURL: "g", ImageURL: "i", UserID: user.ID}
	require.NoError(t, d.ProjectRepo().Add(ctx, project))
	require.NoError(t, d.ProjectSkillRepo().Link(ctx, project.ID, pg.ID, goSkill.ID))

	techs, err := d.ProjectSkillRepo().FindTechnologies(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, techs, 2)
	assert.Equal(t, "PostgreSQL", techs[0].Name)
	assert.Equal(t, models.SkillCategoryDatabases, techs[0].Category)
	assert.Equal(t, "Go", techs[1].Name)

	err = d.ProjectSkillRepo().Link(ctx, project.ID, pg.ID)
	assert.Error(t, err, "a skill is linked to a project at most once")

	_, err = d.ProjectRepo().FindByIDForUser(ctx, other.ID, project.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	none, err := d.ProjectSkillRepo().FindTechnologies(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectSkillRepo_RejectsForeignSkill(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	owner := addUser(t, d, "owner@example.com")
	other := addUser(t, d, "stranger@example.com")

	own := &models.Skill{Name: "Go", Category: models.SkillCategoryBackend, UserID: owner.ID}
	foreign := &models.Skill{Name: "Rust", Category: models.SkillCategoryLanguages, UserID: other.ID}
	require.NoError(t, d.SkillRepo().Add(ctx, own))
	require.NoError(t, d.SkillRepo().Add(ctx, foreign))

	project := &models.Project{Title: "API", Description: "d", GithubURL: "g", ImageURL: "i", UserID: owner.ID}
	require.NoError(t, d.ProjectRepo().Add(ctx, project))

	err := d.ProjectSkillRepo().Link(ctx, project.ID, own.ID, foreign.ID)
	assert.True(t, errors.Is(err, ErrForeignSkill))

	err = d.ProjectSkillRepo().Link(ctx, uuid.New(), own.ID)
	assert.True(t, errors.Is(err, ErrForeignSkill))

	links, err := d.ProjectSkillRepo().FindByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	require.NoError(t, d.ProjectSkillRepo().Link(ctx, project.ID, own.ID))
}

// ============================================================================
// Contact
// ============================================================================

func TestContactRepo_SubListsKeepOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user := addUser(t, d, "contact@example.com")

	contact := &models.Contact{Email: "c@example.com", UserID: user.ID}
	require.NoError(t, d.ContactRepo().Add(ctx, contact))
	require.NoError(t, d.ContactRepo().AddOpportunities(ctx, contact.ID, "Full-time", "Freelance"))
	require.NoError(t, d.ContactRepo().AddOpportunities(ctx, contact.ID, "Consulting"))
	require.NoError(t, d.ContactRepo().AddLocationInfo(ctx, contact.ID, "Remote"))

	opps, err := d.ContactRepo().FindOpportunities(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, opps, 3)
	assert.Equal(t, []string{"Full-time", "Freelance", "Consulting"}, []string{opps[0].Name, opps[1].Name, opps[2].Name})

	locs, err := d.ContactRepo().FindLocationInfo(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, locs, 1)

	_, err = d.ContactRepo().FindByUserID(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// ============================================================================
// Transactions
// ============================================================================

func TestTransaction_RollsBack(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	err := d.Transaction(ctx, func(tx Database) error {
		if err := tx.UserRepo().Add(ctx, &models.User{Email: "tx@example.com", Username: "tx", Password: "p"}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = d.UserRepo().FindByEmail(ctx, "tx@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, d.Ping(ctx))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "portfolio.db?_foreign_keys=on", sqliteDSN("portfolio.db"))
	assert.Equal(t, "portfolio.db?cache=shared&_foreign_keys=on", sqliteDSN("portfolio.db?cache=shared"))
	assert.Contains(t, sqliteDSN(":memory:"), "mode=memory")
}
