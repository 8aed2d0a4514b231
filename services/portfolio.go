package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/errs"
	"github.com/rpupo63/portfolio-content-api/models"
)

// SkillGroups maps every category to its skills. All seven keys are always present.
type SkillGroups map[models.SkillCategory][]*models.Skill

func groupSkills(skills []*models.Skill) SkillGroups {
	groups := make(SkillGroups, len(models.SkillCategories()))
	for _, c := range models.SkillCategories() {
		groups[c] = []*models.Skill{}
	}
	for _, s := range skills {
		if _, ok := groups[s.Category]; ok {
			groups[s.Category] = append(groups[s.Category], s)
		}
	}
	return groups
}

// Technology is a skill as seen from a project
type Technology struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Category models.SkillCategory `json:"category"`
}

// ProjectView is a project with its linked technologies in link order
type ProjectView struct {
	*models.Project
	Technologies []Technology `json:"technologies"`
}

// ContactView is a contact with its ordered sub-lists flattened to names
type ContactView struct {
	*models.Contact
	Opportunities []string `json:"opportunities"`
	LocationInfo  []string `json:"locationInfo"`
}

// PortfolioDocument is the full read model of one user. Lists are never null;
// About and Contact are null when the user has none.
type PortfolioDocument struct {
	About        *models.About         `json:"about"`
	Skills       SkillGroups           `json:"skills"`
	Projects     []ProjectView         `json:"projects"`
	Languages    []*models.Language    `json:"languages"`
	Achievements []*models.Achievement `json:"achievements"`
	Contact      *ContactView          `json:"contact"`
}

type ProjectSearchResult struct {
	SearchTerm   string        `json:"searchTerm"`
	Results      []ProjectView `json:"results"`
	TotalResults int           `json:"totalResults"`
}

type PortfolioStats struct {
	TotalProjects     int `json:"totalProjects"`
	TotalSkills       int `json:"totalSkills"`
	TotalAchievements int `json:"totalAchievements"`
	TotalLanguages    int `json:"totalLanguages"`
	SkillCategories   int `json:"skillCategories"`
}

// PortfolioService assembles read-only views of a user's portfolio
type PortfolioService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewPortfolioService(db database.Database) *PortfolioService {
	return &PortfolioService{
		db:     db,
		logger: log.With().Str("serviceName", "PortfolioService").Logger(),
	}
}

// GetPortfolio loads every section of a user's portfolio. The six section
// reads run concurrently and the first failure aborts the whole document.
func (s *PortfolioService) GetPortfolio(ctx context.Context, userID string) (*PortfolioDocument, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc := &PortfolioDocument{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		about, err := s.db.AboutRepo().FindByUserID(gctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		doc.About = about
		return nil
	})
	g.Go(func() error {
		skills, err := s.db.SkillRepo().FindByUserID(gctx, user.ID)
		if err != nil {
			return err
		}
		doc.Skills = groupSkills(skills)
		return nil
	})
	g.Go(func() error {
		projects, err := s.loadProjects(gctx, user.ID)
		if err != nil {
			return err
		}
		doc.Projects = projects
		return nil
	})
	g.Go(func() error {
		languages, err := s.db.LanguageRepo().FindByUserID(gctx, user.ID)
		if err != nil {
			return err
		}
		doc.Languages = nonNil(languages)
		return nil
	})
	g.Go(func() error {
		achievements, err := s.db.AchievementRepo().FindByUserID(gctx, user.ID)
		if err != nil {
			return err
		}
		doc.Achievements = nonNil(achievements)
		return nil
	})
	g.Go(func() error {
		contact, err := s.loadContact(gctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		doc.Contact = contact
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("userId", userID).Msg("failed to load portfolio")
		return nil, errs.NewDatabaseError("load", "portfolio", err)
	}
	return doc, nil
}

func (s *PortfolioService) GetAbout(ctx context.Context, userID string) (*models.About, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	about, err := s.db.AboutRepo().FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about", err)
	}
	return about, nil
}

func (s *PortfolioService) GetSkills(ctx context.Context, userID string) (SkillGroups, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.db.SkillRepo().FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "skills", err)
	}
	return groupSkills(skills), nil
}

// GetSkillsByCategory fails NotFound, listing the valid categories, when
// category is not one of them
func (s *PortfolioService) GetSkillsByCategory(ctx context.Context, userID, category string) ([]*models.Skill, error) {
	c := models.SkillCategory(strings.ToLower(category))
	if !c.Valid() {
		return nil, errs.NewNotFoundError("skill category not found").WithAvailable(models.SkillCategoryNames())
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.db.SkillRepo().FindByUserIDAndCategory(ctx, user.ID, c)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "skills", err)
	}
	return nonNil(skills), nil
}

func (s *PortfolioService) GetProjects(ctx context.Context, userID string) ([]ProjectView, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	projects, err := s.loadProjects(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	return projects, nil
}

// GetProject fails NotFound, listing the user's project ids, when projectID
// does not name one of the user's projects
func (s *PortfolioService) GetProject(ctx context.Context, userID, projectID string) (*ProjectView, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	id, parseErr := uuid.Parse(projectID)
	var project *models.Project
	if parseErr == nil {
		project, err = s.db.ProjectRepo().FindByIDForUser(ctx, user.ID, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewDatabaseError("find", "project", err)
		}
	}

	if project == nil {
		all, err := s.db.ProjectRepo().FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, errs.NewDatabaseError("list", "projects", err)
		}
		available := make([]string, 0, len(all))
		for _, p := range all {
			available = append(available, p.ID.String())
		}
		return nil, errs.NewNotFoundError("project not found").WithAvailable(available)
	}

	views, err := s.attachTechnologies(ctx, []*models.Project{project})
	if err != nil {
		return nil, errs.NewDatabaseError("load", "project technologies", err)
	}
	return &views[0], nil
}

// SearchProjectsByTechnology returns the projects having at least one
// technology whose name contains term, ignoring case
func (s *PortfolioService) SearchProjectsByTechnology(ctx context.Context, userID, term string) (*ProjectSearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errs.NewMissingRequiredFieldError("technology")
	}

	projects, err := s.GetProjects(ctx, userID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	results := []ProjectView{}
	for _, p := range projects {
		for _, tech := range p.Technologies {
			if strings.Contains(strings.ToLower(tech.Name), needle) {
				results = append(results, p)
				break
			}
		}
	}

	return &ProjectSearchResult{
		SearchTerm:   term,
		Results:      results,
		TotalResults: len(results),
	}, nil
}

func (s *PortfolioService) GetAchievements(ctx context.Context, userID string) ([]*models.Achievement, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.db.AchievementRepo().FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "achievements", err)
	}
	return nonNil(achievements), nil
}

func (s *PortfolioService) GetLanguages(ctx context.Context, userID string) ([]*models.Language, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	languages, err := s.db.LanguageRepo().FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "languages", err)
	}
	return nonNil(languages), nil
}

func (s *PortfolioService) GetContact(ctx context.Context, userID string) (*ContactView, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	contact, err := s.loadContact(ctx, user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "contact", err)
	}
	return contact, nil
}

// GetStats counts the user's content. SkillCategories is the number of
// categories holding at least one skill.
func (s *PortfolioService) GetStats(ctx context.Context, userID string) (*PortfolioStats, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		stats  PortfolioStats
		skills []*models.Skill
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = s.db.SkillRepo().FindByUserID(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		n, err := s.db.ProjectRepo().CountByUserID(gctx, user.ID)
		stats.TotalProjects = int(n)
		return err
	})
	g.Go(func() error {
		n, err := s.db.AchievementRepo().CountByUserID(gctx, user.ID)
		stats.TotalAchievements = int(n)
		return err
	})
	g.Go(func() error {
		n, err := s.db.LanguageRepo().CountByUserID(gctx, user.ID)
		stats.TotalLanguages = int(n)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.NewDatabaseError("count", "portfolio content", err)
	}

	stats.TotalSkills = len(skills)
	for _, list := range groupSkills(skills) {
		if len(list) > 0 {
			stats.SkillCategories++
		}
	}
	return &stats, nil
}

// findUser resolves userID to an existing user. Ids that are not UUIDs
// cannot exist and fail the same way as unknown ones.
func (s *PortfolioService) findUser(ctx context.Context, userID string) (*models.User, error) {
	return findUser(ctx, s.db, userID)
}

func findUser(ctx context.Context, db database.Database, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errs.NewNotFoundError("user not found")
	}

	user, err := db.UserRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return user, nil
}

func (s *PortfolioService) loadProjects(ctx context.Context, userID uuid.UUID) ([]ProjectView, error) {
	projects, err := s.db.ProjectRepo().FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachTechnologies(ctx, projects)
}

// attachTechnologies resolves the technologies of all projects with one query
func (s *PortfolioService) attachTechnologies(ctx context.Context, projects []*models.Project) ([]ProjectView, error) {
	views := make([]ProjectView, 0, len(projects))
	if len(projects) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	techs, err := s.db.ProjectSkillRepo().FindTechnologies(ctx, ids...)
	if err != nil {
		return nil, err
	}

	byProject := make(map[uuid.UUID][]Technology, len(projects))
	for _, t := range techs {
		byProject[t.ProjectID] = append(byProject[t.ProjectID], Technology{
			ID:       t.SkillID.String(),
			Name:     t.Name,
			Category: t.Category,
		})
	}

	for _, p := range projects {
		views = append(views, ProjectView{
			Project:      p,
			Technologies: nonNil(byProject[p.ID]),
		})
	}
	return views, nil
}

// loadContact returns gorm.ErrRecordNotFound when the user has no contact
func (s *PortfolioService) loadContact(ctx context.Context, userID uuid.UUID) (*ContactView, error) {
	contact, err := s.db.ContactRepo().FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	opportunities, err := s.db.ContactRepo().FindOpportunities(ctx, contact.ID)
	if err != nil {
		return nil, err
	}
	locations, err := s.db.ContactRepo().FindLocationInfo(ctx, contact.ID)
	if err != nil {
		return nil, err
	}

	view := &ContactView{
		Contact:       contact,
		Opportunities: make([]string, 0, len(opportunities)),
		LocationInfo:  make([]string, 0, len(locations)),
	}
	for _, o := range opportunities {
		view.Opportunities = append(view.Opportunities, o.Name)
	}
	for _, l := range locations {
		view.LocationInfo = append(view.LocationInfo, l.Name)
	}
	return view, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
