package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-content-api/auth"
	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/models"
)

// Seeder creates the template user and its demo content
type Seeder struct {
	db        database.Database
	passwords *auth.PasswordService
	logger    zerolog.Logger
}

func NewSeeder(db database.Database, passwords *auth.PasswordService) *Seeder {
	return &Seeder{
		db:        db,
		passwords: passwords,
		logger:    log.With().Str("serviceName", "Seeder").Logger(),
	}
}

// SeedTemplate creates the template user with a fixed id and its demo
// content in one transaction. It does nothing when the user already exists
// and reports whether anything was created.
func (s *Seeder) SeedTemplate(ctx context.Context, templateUserID uuid.UUID, password string) (bool, error) {
	if _, err := s.db.UserRepo().FindByID(ctx, templateUserID); err == nil {
		s.logger.Info().Str("userId", templateUserID.String()).Msg("template user exists, skipping seed")
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return false, err
	}

	err = s.db.Transaction(ctx, func(tx database.Database) error {
		user := &models.User{
			Base:     models.Base{ID: templateUserID},
			Email:    seedEmail,
			Username: seedUsername,
			Password: hash,
			IsActive: true,
		}
		if err := tx.UserRepo().Add(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		return seedContent(ctx, tx, user.ID)
	})
	if err != nil {
		return false, err
	}

	s.logger.Info().Str("userId", templateUserID.String()).Str("email", seedEmail).Msg("template user seeded")
	return true, nil
}

func seedContent(ctx context.Context, tx database.Database, userID uuid.UUID) error {
	about := seedAbout
	about.UserID = userID
	if err := tx.AboutRepo().Add(ctx, &about); err != nil {
		return fmt.Errorf("creating about: %w", err)
	}

	skills := make([]*models.Skill, 0, len(seedSkills))
	for _, sk := range seedSkills {
		skills = append(skills, &models.Skill{Name: sk.name, Category: sk.category, UserID: userID})
	}
	if err := tx.SkillRepo().Add(ctx, skills...); err != nil {
		return fmt.Errorf("creating skills: %w", err)
	}

	for _, sp := range seedProjects {
		project := &models.Project{
			Title:       sp.title,
			Description: sp.description,
			GithubURL:   sp.githubURL,
			DemoURL:     sp.demoURL,
			ImageURL:    sp.imageURL,
			UserID:      userID,
		}
		if err := tx.ProjectRepo().Add(ctx, project); err != nil {
			return fmt.Errorf("creating project %q: %w", sp.title, err)
		}
		if err := tx.ProjectSkillRepo().Link(ctx, project.ID, matchSkills(skills, sp.technologies)...); err != nil {
			return fmt.Errorf("linking project %q: %w", sp.title, err)
		}
	}

	languages := make([]*models.Language, 0, len(seedLanguages))
	for _, l := range seedLanguages {
		lang := l
		lang.UserID = userID
		languages = append(languages, &lang)
	}
	if err := tx.LanguageRepo().Add(ctx, languages...); err != nil {
		return fmt.Errorf("creating languages: %w", err)
	}

	achievements := make([]*models.Achievement, 0, len(seedAchievements))
	for _, a := range seedAchievements {
		ach := a
		ach.UserID = userID
		achievements = append(achievements, &ach)
	}
	if err := tx.AchievementRepo().Add(ctx, achievements...); err != nil {
		return fmt.Errorf("creating achievements: %w", err)
	}

	contact := seedContact
	contact.UserID = userID
	if err := tx.ContactRepo().Add(ctx, &contact); err != nil {
		return fmt.Errorf("creating contact: %w", err)
	}
	if err := tx.ContactRepo().AddOpportunities(ctx, contact.ID, seedOpportunities...); err != nil {
		return fmt.Errorf("creating opportunities: %w", err)
	}
	if err := tx.ContactRepo().AddLocationInfo(ctx, contact.ID, seedLocationInfo...); err != nil {
		return fmt.Errorf("creating location info: %w", err)
	}
	return nil
}

// matchSkills returns, in the order of names, the ids of skills whose name
// contains one of names ignoring case. Each skill is returned once.
func matchSkills(skills []*models.Skill, names []string) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, name := range names {
		needle := strings.ToLower(name)
		for _, s := range skills {
			if !seen[s.ID] && strings.Contains(strings.ToLower(s.Name), needle) {
				seen[s.ID] = true
				ids = append(ids, s.ID)
			}
		}
	}
	return ids
}

const (
	seedEmail    = "dreico07@gmail.com"
	seedUsername = "matiasgallardo"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

var seedAbout = models.About{
	FullName:         "Matías Gallardo",
	Location:         "Moree, NSW, Australia",
	Biography:        "Backend-focused Full Stack Developer based in NSW, Australia. I build API-driven systems and multi-tenant platforms with Node.js, NestJS, TypeScript and PostgreSQL, and I'm experienced deploying real products with Docker, NGINX, HTTPS and CI/CD. I transitioned into tech after a background in hospitality/chef work (including experience in France), and I'm now focused on scalable architectures, integrations (Stripe/Auth0/Firebase) and AI-powered workflows (agents, RAG).",
	PageDescription:  "Portfolio of Matías Gallardo - Backend-Focused Full Stack Developer",
	MetaDescription:  "Backend-focused Full Stack Developer specializing in NestJS, PostgreSQL, Docker, and scalable API-driven architectures.",
	HeroTitle:        "Backend-Focused Full Stack Developer",
	HeroSubtitle:     "Building scalable, API-driven platforms with NestJS, PostgreSQL & Docker",
	AvatarURL:        "https://avatars.githubusercontent.com/u/195301924?v=4",
	RelocationStatus: "Open to relocation (Australia) + Remote/Hybrid",
	CtaButtons: datatypes.NewJSONType(models.CtaButtons{
		Projects: "View Projects",
		Contact:  "Contact Me",
	}),
	Stats: datatypes.NewJSONType(models.Stats{
		Projects:     models.StatItem{Title: "Projects", Subtitle: "Completed"},
		Technologies: models.StatItem{Title: "Technologies", Subtitle: "Mastered"},
		Languages:    models.StatItem{Title: "Languages", Subtitle: "Fluent"},
	}),
}

var seedSkills = []struct {
	name     string
	category models.SkillCategory
}{
	{"TypeScript", models.SkillCategoryLanguages},
	{"JavaScript", models.SkillCategoryLanguages},
	{"SQL", models.SkillCategoryLanguages},
	{"Python (learning)", models.SkillCategoryLanguages},
	{"Java (basic)", models.SkillCategoryLanguages},
	{"C (basic)", models.SkillCategoryLanguages},

	{"React", models.SkillCategoryFrontend},
	{"Next.js", models.SkillCategoryFrontend},
	{"Vite", models.SkillCategoryFrontend},
	{"React Hook Form", models.SkillCategoryFrontend},
	{"Zod", models.SkillCategoryFrontend},
	{"Recharts", models.SkillCategoryFrontend},
	{"shadcn/ui", models.SkillCategoryFrontend},
	{"Tailwind CSS", models.SkillCategoryFrontend},

	{"Node.js", models.SkillCategoryBackend},
	{"NestJS", models.SkillCategoryBackend},
	{"Express", models.SkillCategoryBackend},
	{"REST APIs", models.SkillCategoryBackend},
	{"JWT", models.SkillCategoryBackend},
	{"Auth0", models.SkillCategoryBackend},
	{"TypeORM", models.SkillCategoryBackend},
	{"Prisma", models.SkillCategoryBackend},
	{"Microservices", models.SkillCategoryBackend},
	{"Event-driven architecture", models.SkillCategoryBackend},

	{"PostgreSQL", models.SkillCategoryDatabases},
	{"MongoDB", models.SkillCategoryDatabases},
	{"Supabase", models.SkillCategoryDatabases},
	{"Neon", models.SkillCategoryDatabases},

	{"Docker", models.SkillCategoryDevops},
	{"NGINX", models.SkillCategoryDevops},
	{"HTTPS/TLS", models.SkillCategoryDevops},
	{"GitHub Actions", models.SkillCategoryDevops},
	{"SSH Deploy", models.SkillCategoryDevops},
	{"Oracle Cloud", models.SkillCategoryDevops},
	{"Vercel", models.SkillCategoryDevops},
	{"Render", models.SkillCategoryDevops},
	{"Linux", models.SkillCategoryDevops},

	{"Stripe", models.SkillCategoryIntegrations},
	{"Firebase", models.SkillCategoryIntegrations},
	{"Cloudinary", models.SkillCategoryIntegrations},

	{"Clean Architecture", models.SkillCategoryPractices},
	{"DRY Principles", models.SkillCategoryPractices},
	{"Database Transactions", models.SkillCategoryPractices},
	{"Pagination Patterns", models.SkillCategoryPractices},
	{"Soft Delete Patterns", models.SkillCategoryPractices},
	{"Security Best Practices", models.SkillCategoryPractices},
}

var seedProjects = []struct {
	title        string
	description  string
	githubURL    string
	demoURL      *string
	imageURL     string
	technologies []string
}{
	{
		title:        "SmartQR",
		description:  "Hospitality platform for restaurants/venues: admin dashboard, products/categories, orders, customers analytics, reward codes, and Stripe checkout. Backend in NestJS with PostgreSQL; frontend in Next.js.",
		imageURL:     "/images/projects/smartqr.png",
		technologies: []string{"NestJS", "Next.js", "TypeScript", "PostgreSQL", "TypeORM", "Stripe", "Auth0", "Docker", "GitHub Actions", "NGINX"},
	},
	{
		title:        "Conversational Agent Microservices Demo",
		description:  "Microservices-based conversational agent: an AI orchestrator service that routes intents to a REST API service. Deployed across Vercel + Render.",
		demoURL:      strPtr("https://desafio-tecnico-cse-laburen-com-2yk.vercel.app/"),
		imageURL:     "/images/projects/laburen.png",
		technologies: []string{"NestJS", "Node.js", "TypeScript", "Microservices", "REST", "Vercel", "Render"},
	},
	{
		title:        "BanMate",
		description:  "Multi-venue ban-management system concept for hotels/pubs (operations-focused tooling for venues).",
		imageURL:     "/images/projects/banmate.png",
		technologies: []string{"NestJS", "TypeScript", "PostgreSQL", "Next.js"},
	},
	{
		title:        "AlojaPy",
		description:  "Airbnb-style rental platform concept for Paraguay (listings, bookings, management).",
		imageURL:     "/images/projects/alojaPy.png",
		technologies: []string{"REST", "PostgreSQL"},
	},
	{
		title:        "Binance Trading Bot Orchestrator",
		description:  "NestJS orchestrator microservice that triggers simulated buy/sell decisions on a schedule based on signals from an external microservice (simulation mode).",
		imageURL:     "/images/projects/trading-bot.png",
		technologies: []string{"NestJS", "TypeScript", "Microservices"},
	},
	{
		title:        "Intruder Alert System",
		description:  "Camera-based intruder detection concept: if a face is not in the enrolled database, trigger an alert and store snapshots in Cloudinary with an admin panel.",
		imageURL:     "/images/projects/intruder-alert.png",
		technologies: []string{"Node.js", "NestJS", "Cloudinary"},
	},
}

var seedLanguages = []models.Language{
	{Name: "Spanish", Level: "Native", IsNative: boolPtr(true)},
	{Name: "English", Level: "Intermediate / Professional working proficiency", IsNative: boolPtr(false)},
}

var seedAchievements = []models.Achievement{
	{Title: "Education", Value: "Soy Henry", Subtitle: strPtr("Full Stack Bootcamp Graduate")},
	{Title: "Production Deployments", Value: "Docker + NGINX", Subtitle: strPtr("HTTPS on Oracle Cloud VM")},
	{Title: "CI/CD Pipeline", Value: "GitHub Actions", Subtitle: strPtr("Automated SSH Deploy")},
	{Title: "Architecture", Value: "Multi-tenant", Subtitle: strPtr("Complex PostgreSQL Analytics")},
	{Title: "Integrations", Value: "Stripe + Auth0", Subtitle: strPtr("PaymentIntent & JWT Auth")},
}

var seedContact = models.Contact{
	Email:               seedEmail,
	Linkedin:            "https://www.linkedin.com/in/matiasgallardo-dev/",
	Github:              "https://github.com/matiasgallardo196",
	Whatsapp:            strPtr("+61 431269954"),
	MetaDescription:     "Get in touch with Matías Gallardo - Backend-Focused Full Stack Developer",
	PageTitle:           "Contact Me",
	HeroTitle:           "Let's Connect",
	LetsTalkTitle:       "Let's Talk",
	LetsTalkDescription: "I'm always open to discussing new projects, creative ideas, or opportunities to be part of your vision. Feel free to reach out!",
	AvailabilityTitle:   "Currently Available",
	CurrentStatusTitle:  "Open to opportunities",
	LocationTitle:       "Based in Australia",
}

var seedOpportunities = []string{"Full-time", "Contract/Freelance", "Startup", "Remote", "Hybrid"}

var seedLocationInfo = []string{"NSW, Australia", "GMT+11 Timezone"}
