package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCategories_AreTheSevenKnownValues(t *testing.T) {
	assert.Equal(t, []string{
		"languages", "frontend", "backend", "databases", "devops", "integrations", "practices",
	}, SkillCategoryNames())

	for _, c := range SkillCategories() {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
}

func TestSkillCategory_RejectsFreeForm(t *testing.T) {
	assert.False(t, SkillCategory("cooking").Valid())
	assert.False(t, SkillCategory("").Valid())
	assert.False(t, SkillCategory("Frontend").Valid())
}

func TestSkillBeforeSave_InvalidCategory(t *testing.T) {
	s := &Skill{Name: "Knife skills", Category: "kitchen"}
	require.Error(t, s.BeforeSave(nil))

	s.Category = SkillCategoryBackend
	require.NoError(t, s.BeforeSave(nil))
}

func TestBaseBeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	b := &Base{ID: id}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, id, b.ID)

	empty := &Base{}
	require.NoError(t, empty.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, empty.ID)
}

func TestUserSummary_OmitsPassword(t *testing.T) {
	u := User{Base: Base{ID: uuid.New()}, Email: "a@b.co", Username: "ab", Password: "hash", IsActive: true}
	s := u.Summary()
	assert.Equal(t, u.ID.String(), s.ID)
	assert.Equal(t, "a@b.co", s.Email)
	assert.Equal(t, "ab", s.Username)
	assert.True(t, s.IsActive)
}

func TestFindColumnMismatches(t *testing.T) {
	got := findColumnMismatches(
		[]string{"id", "title", "legacy_theme", "Created_At"},
		[]string{"id", "title", "created_at"},
	)
	assert.Equal(t, []string{"legacy_theme"}, got)
}
