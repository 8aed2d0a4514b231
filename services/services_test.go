package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-content-api/auth"
	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/models"
)

var testTemplateID = uuid.MustParse("808ceb8b-8da6-440c-952d-2d5c23b070e0")

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return database.New(db)
}

func testPasswords() *auth.PasswordService {
	return auth.NewPasswordService(auth.WithCost(bcrypt.MinCost))
}

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("test-secret-at-least-16-chars!!", time.Hour, "portfolio-test")
	require.NoError(t, err)
	return ts
}

// seedTemplate loads the demo template user
func seedTemplate(t *testing.T, d database.Database) {
	t.Helper()
	created, err := NewSeeder(d, testPasswords()).SeedTemplate(context.Background(), testTemplateID, "portfolio123")
	require.NoError(t, err)
	require.True(t, created)
}

// addUserWithProjects creates a user with project A linked to React and Node
// and project B with no links
func addUserWithProjects(t *testing.T, d database.Database) (*models.User, *models.Project, *models.Project) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Email: "two@example.com", Username: "two", Password: "x", IsActive: true}
	require.NoError(t, d.UserRepo().Add(ctx, user))

	react := &models.Skill{Name: "React", Category: models.SkillCategoryFrontend, UserID: user.ID}
	node := &models.Skill{Name: "Node", Category: models.SkillCategoryBackend, UserID: user.ID}
	require.NoError(t, d.SkillRepo().Add(ctx, node, react))

	a := &models.Project{Title: "A", Description: "a", GithubURL: "g", ImageURL: "i", UserID: user.ID}
	require.NoError(t, d.ProjectRepo().Add(ctx, a))
	require.NoError(t, d.ProjectSkillRepo().Link(ctx, a.ID, react.ID, node.ID))

	b := &models.Project{Title: "B", Description: "b", GithubURL: "g", ImageURL: "i", UserID: user.ID}
	require.NoError(t, d.ProjectRepo().Add(ctx, b))

	return user, a, b
}

func techNames(p ProjectView) []string {
	names := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		names = append(names, t.Name)
	}
	return names
}

func findProject(t *testing.T, projects []ProjectView, id uuid.UUID) ProjectView {
	t.Helper()
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("project %s not in result", id)
	return ProjectView{}
}
