package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-content-api/errs"
	"github.com/rpupo63/portfolio-content-api/models"
)

func TestGetPortfolio_UnknownUser(t *testing.T) {
	svc := NewPortfolioService(newTestDatabase(t))

	for _, id := range []string{uuid.NewString(), "not-a-uuid", ""} {
		doc, err := svc.GetPortfolio(context.Background(), id)
		assert.Nil(t, doc)
		assert.True(t, errs.IsNotFound(err), "id %q", id)
	}
}

func TestGetPortfolio_EmptyUserHasEveryKey(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user := &models.User{Email: "empty@example.com", Username: "empty", Password: "x", IsActive: true}
	require.NoError(t, d.UserRepo().Add(ctx, user))

	doc, err := NewPortfolioService(d).GetPortfolio(ctx, user.ID.String())
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.JSONEq(t, "null", string(decoded["about"]))
	assert.JSONEq(t, "null", string(decoded["contact"]))
	assert.JSONEq(t, "[]", string(decoded["projects"]))
	assert.JSONEq(t, "[]", string(decoded["languages"]))
	assert.JSONEq(t, "[]", string(decoded["achievements"]))

	var skills map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["skills"], &skills))
	assert.Len(t, skills, 7)
	for _, c := range models.SkillCategoryNames() {
		list, ok := skills[c]
		assert.True(t, ok, "missing category %s", c)
		assert.NotNil(t, list, "category %s is null", c)
	}
}

func TestGetPortfolio_TwoProjects(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user, a, b := addUserWithProjects(t, d)

	doc, err := NewPortfolioService(d).GetPortfolio(ctx, user.ID.String())
	require.NoError(t, err)
	require.Len(t, doc.Projects, 2)

	assert.Equal(t, []string{"React", "Node"}, techNames(findProject(t, doc.Projects, a.ID)))
	projB := findProject(t, doc.Projects, b.ID)
	assert.NotNil(t, projB.Technologies)
	assert.Empty(t, projB.Technologies)

	assert.Len(t, doc.Skills[models.SkillCategoryFrontend], 1)
	assert.Len(t, doc.Skills[models.SkillCategoryBackend], 1)
	assert.Empty(t, doc.Skills[models.SkillCategoryDevops])
}

func TestGetPortfolio_Seeded(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	seedTemplate(t, d)

	doc, err := NewPortfolioService(d).GetPortfolio(ctx, testTemplateID.String())
	require.NoError(t, err)

	require.NotNil(t, doc.About)
	assert.Equal(t, "Matías Gallardo", doc.About.FullName)
	assert.Equal(t, "View Projects", doc.About.CtaButtons.Data().Projects)
	assert.Len(t, doc.Projects, len(seedProjects))
	assert.Len(t, doc.Languages, 2)
	assert.Len(t, doc.Achievements, 5)

	require.NotNil(t, doc.Contact)
	assert.Equal(t, seedOpportunities, doc.Contact.Opportunities)
	assert.Equal(t, seedLocationInfo, doc.Contact.LocationInfo)

	total := 0
	for _, list := range doc.Skills {
		total += len(list)
	}
	assert.Equal(t, len(seedSkills), total)
}

func TestSectionReads(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user, a, _ := addUserWithProjects(t, d)
	svc := NewPortfolioService(d)
	uid := user.ID.String()

	_, err := svc.GetAbout(ctx, uid)
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.GetContact(ctx, uid)
	assert.True(t, errs.IsNotFound(err))

	frontend, err := svc.GetSkillsByCategory(ctx, uid, "Frontend")
	require.NoError(t, err)
	require.Len(t, frontend, 1)
	assert.Equal(t, "React", frontend[0].Name)

	_, err = svc.GetSkillsByCategory(ctx, uid, "cooking")
	require.True(t, errs.IsNotFound(err))
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, models.SkillCategoryNames(), apiErr.Available)

	project, err := svc.GetProject(ctx, uid, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "A", project.Title)
	assert.Equal(t, []string{"React", "Node"}, techNames(*project))

	_, err = svc.GetProject(ctx, uid, uuid.NewString())
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, errs.IsNotFound(err))
	assert.Len(t, apiErr.Available, 2)
	assert.Contains(t, apiErr.Available, a.ID.String())

	_, err = svc.GetProject(ctx, uid, "bogus")
	assert.True(t, errs.IsNotFound(err))
}

func TestSearchProjectsByTechnology(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user, a, _ := addUserWithProjects(t, d)
	svc := NewPortfolioService(d)

	res, err := svc.SearchProjectsByTechnology(ctx, user.ID.String(), "  reac ")
	require.NoError(t, err)
	assert.Equal(t, "reac", res.SearchTerm)
	require.Equal(t, 1, res.TotalResults)
	assert.Equal(t, a.ID, res.Results[0].ID)

	res, err = svc.SearchProjectsByTechnology(ctx, user.ID.String(), "cobol")
	require.NoError(t, err)
	assert.Zero(t, res.TotalResults)
	assert.NotNil(t, res.Results)

	_, err = svc.SearchProjectsByTechnology(ctx, user.ID.String(), " ")
	assert.True(t, errs.IsValidation(err))
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	user, _, _ := addUserWithProjects(t, d)

	stats, err := NewPortfolioService(d).GetStats(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, PortfolioStats{
		TotalProjects:     2,
		TotalSkills:       2,
		TotalAchievements: 0,
		TotalLanguages:    0,
		SkillCategories:   2,
	}, *stats)
}
