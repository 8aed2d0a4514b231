package services

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/errs"
	"github.com/rpupo63/portfolio-content-api/models"
)

// UpdateAboutRequest is a partial update of an About record. Nil fields are
// left unchanged. CtaButtons and Stats replace the stored value as a whole.
type UpdateAboutRequest struct {
	FullName         *string            `json:"fullName"`
	Location         *string            `json:"location"`
	Biography        *string            `json:"biography"`
	PageDescription  *string            `json:"pageDescription"`
	MetaDescription  *string            `json:"metaDescription"`
	HeroTitle        *string            `json:"heroTitle"`
	HeroSubtitle     *string            `json:"heroSubtitle"`
	AvatarURL        *string            `json:"avatarUrl"`
	RelocationStatus *string            `json:"relocationStatus"`
	CtaButtons       *models.CtaButtons `json:"ctaButtons"`
	Stats            *models.Stats      `json:"stats"`
}

func (r UpdateAboutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty),
		validation.Field(&r.Location, validation.NilOrNotEmpty),
		validation.Field(&r.Biography, validation.NilOrNotEmpty),
		validation.Field(&r.PageDescription, validation.NilOrNotEmpty),
		validation.Field(&r.MetaDescription, validation.NilOrNotEmpty),
		validation.Field(&r.HeroTitle, validation.NilOrNotEmpty),
		validation.Field(&r.HeroSubtitle, validation.NilOrNotEmpty),
		validation.Field(&r.AvatarURL, validation.NilOrNotEmpty),
		validation.Field(&r.RelocationStatus, validation.NilOrNotEmpty),
		validation.Field(&r.CtaButtons, validation.By(validateCtaButtons)),
		validation.Field(&r.Stats, validation.By(validateStats)),
	)
}

func validateCtaButtons(value interface{}) error {
	c, _ := value.(*models.CtaButtons)
	if c == nil {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Projects, validation.Required),
		validation.Field(&c.Contact, validation.Required),
	)
}

func validateStats(value interface{}) error {
	s, _ := value.(*models.Stats)
	if s == nil {
		return nil
	}
	return validation.ValidateStruct(s,
		validation.Field(&s.Projects, validation.By(validateStatItem)),
		validation.Field(&s.Technologies, validation.By(validateStatItem)),
		validation.Field(&s.Languages, validation.By(validateStatItem)),
	)
}

func validateStatItem(value interface{}) error {
	item, ok := value.(models.StatItem)
	if !ok {
		return errors.New("must be an object with title and subtitle")
	}
	return validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
		validation.Field(&item.Subtitle, validation.Required),
	)
}

// columns maps the supplied fields to their database columns
func (r UpdateAboutRequest) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			cols[column] = *v
		}
	}

	set("full_name", r.FullName)
	set("location", r.Location)
	set("biography", r.Biography)
	set("page_description", r.PageDescription)
	set("meta_description", r.MetaDescription)
	set("hero_title", r.HeroTitle)
	set("hero_subtitle", r.HeroSubtitle)
	set("avatar_url", r.AvatarURL)
	set("relocation_status", r.RelocationStatus)
	if r.CtaButtons != nil {
		cols["cta_buttons"] = datatypes.NewJSONType(*r.CtaButtons)
	}
	if r.Stats != nil {
		cols["stats"] = datatypes.NewJSONType(*r.Stats)
	}
	return cols
}

// AboutService applies partial updates to About records
type AboutService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewAboutService(db database.Database) *AboutService {
	return &AboutService{
		db:     db,
		logger: log.With().Str("serviceName", "AboutService").Logger(),
	}
}

// UpdateAbout writes the supplied fields of req to the user's About record
// and returns the refreshed record.
//
// Returns:
//   - a Validation error listing every violated field
//   - NotFound when the user has no About record
func (s *AboutService) UpdateAbout(ctx context.Context, userID string, req UpdateAboutRequest) (*models.About, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errs.NewNotFound("about")
	}

	if _, err := s.db.AboutRepo().FindByUserID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("about")
		}
		return nil, errs.NewDatabaseError("find", "about", err)
	}

	cols := req.columns()
	if err := s.db.AboutRepo().UpdateFields(ctx, id, cols); err != nil {
		return nil, errs.NewDatabaseError("update", "about", err)
	}

	about, err := s.db.AboutRepo().FindByUserID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about", err)
	}

	fields := make([]string, 0, len(cols))
	for c := range cols {
		fields = append(fields, c)
	}
	s.logger.Info().Str("userId", userID).Strs("columns", fields).Msg("about updated")
	return about, nil
}
