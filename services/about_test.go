package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-content-api/errs"
	"github.com/rpupo63/portfolio-content-api/models"
)

func ptr(s string) *string { return &s }

func TestUpdateAbout_RoundTrip(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	seedTemplate(t, d)
	portfolio := NewPortfolioService(d)
	svc := NewAboutService(d)
	uid := testTemplateID.String()

	before, err := portfolio.GetPortfolio(ctx, uid)
	require.NoError(t, err)

	updated, err := svc.UpdateAbout(ctx, uid, UpdateAboutRequest{FullName: ptr("X")})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.FullName)

	after, err := portfolio.GetPortfolio(ctx, uid)
	require.NoError(t, err)

	want := *before.About
	want.FullName = "X"
	got := *after.About
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.FullName, got.FullName)
	assert.Equal(t, want.Location, got.Location)
	assert.Equal(t, want.Biography, got.Biography)
	assert.Equal(t, want.HeroTitle, got.HeroTitle)
	assert.Equal(t, want.AvatarURL, got.AvatarURL)
	assert.Equal(t, want.CtaButtons.Data(), got.CtaButtons.Data())
	assert.Equal(t, want.Stats.Data(), got.Stats.Data())
}

func TestUpdateAbout_Idempotent(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	seedTemplate(t, d)
	svc := NewAboutService(d)
	uid := testTemplateID.String()

	req := UpdateAboutRequest{
		HeroTitle:  ptr("Go Developer"),
		CtaButtons: &models.CtaButtons{Projects: "Work", Contact: "Hire me"},
	}

	first, err := svc.UpdateAbout(ctx, uid, req)
	require.NoError(t, err)
	second, err := svc.UpdateAbout(ctx, uid, req)
	require.NoError(t, err)

	assert.Equal(t, first.HeroTitle, second.HeroTitle)
	assert.Equal(t, first.CtaButtons.Data(), second.CtaButtons.Data())
	assert.Equal(t, "Hire me", second.CtaButtons.Data().Contact)
	assert.Equal(t, "Matías Gallardo", second.FullName)
}

func TestUpdateAbout_Validation(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	seedTemplate(t, d)
	svc := NewAboutService(d)
	uid := testTemplateID.String()

	_, err := svc.UpdateAbout(ctx, uid, UpdateAboutRequest{FullName: ptr(""), Location: ptr("")})
	require.True(t, errs.IsValidation(err))
	fields := errs.FieldErrors(unwrapCause(t, err))
	require.Len(t, fields, 2)
	assert.Equal(t, "fullName", fields[0].Field)
	assert.Equal(t, "location", fields[1].Field)

	_, err = svc.UpdateAbout(ctx, uid, UpdateAboutRequest{
		Stats: &models.Stats{
			Projects:     models.StatItem{Title: "Projects", Subtitle: "Done"},
			Technologies: models.StatItem{Title: "Tech"},
			Languages:    models.StatItem{Title: "Langs", Subtitle: "Fluent"},
		},
	})
	require.True(t, errs.IsValidation(err))
	fields = errs.FieldErrors(unwrapCause(t, err))
	require.Len(t, fields, 1)
	assert.Equal(t, "stats.technologies.subtitle", fields[0].Field)

	_, err = svc.UpdateAbout(ctx, uid, UpdateAboutRequest{CtaButtons: &models.CtaButtons{Projects: "Only one"}})
	assert.True(t, errs.IsValidation(err))

	about, err := d.AboutRepo().FindByUserID(ctx, testTemplateID)
	require.NoError(t, err)
	assert.Equal(t, "View Projects", about.CtaButtons.Data().Projects, "rejected updates leave the record untouched")
}

func TestUpdateAbout_NotFound(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)
	svc := NewAboutService(d)

	_, err := svc.UpdateAbout(ctx, uuid.NewString(), UpdateAboutRequest{FullName: ptr("X")})
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.UpdateAbout(ctx, "nope", UpdateAboutRequest{FullName: ptr("X")})
	assert.True(t, errs.IsNotFound(err))
}

func unwrapCause(t *testing.T, err error) error {
	t.Helper()
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Cause
}
