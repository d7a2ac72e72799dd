// Package seeder loads a demo employer and a handful of accessible job
// postings into an empty catalog. Intended for local development only,
// gated by SEED_SAMPLE_DATA.
package seeder

import (
	"context"
	"errors"
	"log"
	"time"

	"able-match/internal/domain/job"
	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmployerEmail    = "employer@demo.com"
	demoEmployerName     = "TechCorp"
	demoEmployerPassword = "demo123"
)

type Seeder struct {
	users  repository.UserRepository
	jobs   repository.JobRepository
	logger *log.Logger
}

func New(users repository.UserRepository, jobs repository.JobRepository, logger *log.Logger) *Seeder {
	if logger == nil {
		logger = log.Default()
	}
	return &Seeder{users: users, jobs: jobs, logger: logger}
}

// Seed is a no-op when the catalog already has jobs.
func (s *Seeder) Seed(ctx context.Context) error {
	page, err := s.jobs.ListPage(ctx, 1, 0)
	if err != nil {
		return err
	}
	if len(page) > 0 {
		return nil
	}

	employer, err := s.ensureDemoEmployer(ctx)
	if err != nil {
		return err
	}

	for _, j := range sampleJobs {
		j.ID = uuid.New()
		j.PostedBy = employer.ID
		j.CreatedAt = time.Now().UTC()
		if err := s.jobs.Create(ctx, j); err != nil {
			return err
		}
	}

	s.logger.Printf("Seeded %d sample jobs | employer=%s", len(sampleJobs), demoEmployerEmail)
	return nil
}

func (s *Seeder) ensureDemoEmployer(ctx context.Context) (user.User, error) {
	existing, err := s.users.GetByEmail(ctx, demoEmployerEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoEmployerPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     demoEmployerName,
		Email:        demoEmployerEmail,
		PasswordHash: string(hash),
		UserType:     user.TypeEmployer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

var sampleJobs = []job.Job{
	{
		Title:       "Accessible Web Developer",
		Company:     "TechCorp Solutions",
		Description: "We are seeking a passionate web developer to create accessible, inclusive digital experiences. You will work with modern frameworks like React and Vue.js and implement WCAG 2.1 AA standards.",
		Requirements: "2+ years experience with HTML, CSS, JavaScript. Knowledge of WCAG 2.1 accessibility standards. " +
			"Experience with React or Vue.js. Understanding of screen readers and assistive technologies.",
		AccessibilityFeatures: "Height-adjustable desk and ergonomic chair. Screen reader compatible development environment. " +
			"Flexible working hours. Full remote work option available. Voice recognition software available. " +
			"Step-free building access with elevator.",
		SalaryRange:        "$65,000 - $85,000 annually",
		Location:           "Remote / New York, NY",
		RequiredSkills:     "HTML, CSS, JavaScript, React, Vue.js, WCAG, Accessibility",
		ExperienceRequired: "1-3",
		WorkType:           "remote",
	},
	{
		Title:       "Inclusive UX/UI Designer",
		Company:     "Design Innovations Inc",
		Description: "Join our design team to create beautiful, accessible user interfaces. You will design for diverse users including those with disabilities, ensuring our products are usable by everyone.",
		Requirements: "3+ years UX/UI design experience. Proficiency in Figma, Sketch, or Adobe XD. " +
			"Understanding of accessibility design principles. Experience with user research and testing.",
		AccessibilityFeatures: "Adjustable lighting and desk setup. Color blindness-friendly design tools. " +
			"Flexible schedule for medical appointments. Quiet workspace environment. Magnification software available. " +
			"Alternative input devices.",
		SalaryRange:        "$70,000 - $95,000 annually",
		Location:           "Hybrid - San Francisco, CA",
		RequiredSkills:     "UX Design, UI Design, Figma, Sketch, Adobe XD, User Research, Accessibility",
		ExperienceRequired: "3-5",
		WorkType:           "hybrid",
	},
	{
		Title:       "Customer Support Specialist",
		Company:     "HelpDesk Solutions",
		Description: "Provide exceptional customer support through chat, email, and phone. Help customers with technical issues, account questions, and product guidance.",
		Requirements: "1+ years customer service experience. Excellent written and verbal communication. " +
			"Patience and empathy when helping customers. Basic technical troubleshooting skills.",
		AccessibilityFeatures: "Text-based communication options. Adjustable volume headsets and amplifiers. " +
			"Real-time captioning for team meetings. Visual alert systems for notifications. " +
			"Sign language interpreter services. Flexible break schedule.",
		SalaryRange:        "$40,000 - $55,000 annually",
		Location:           "Remote / Chicago, IL",
		RequiredSkills:     "Customer Service, Communication, Problem Solving, Technical Support",
		ExperienceRequired: "0-1",
		WorkType:           "remote",
	},
	{
		Title:       "Data Analyst - Accessibility Focus",
		Company:     "Analytics Pro",
		Description: "Analyze user behavior data to improve accessibility features in our products. Create reports, identify usage patterns, and provide insights that help make our platform more inclusive.",
		Requirements: "2+ years data analysis experience. Proficiency in SQL and Python. " +
			"Experience with Tableau or Power BI. Statistical analysis knowledge.",
		AccessibilityFeatures: "Large dual monitor setup included. High contrast display options. " +
			"Voice-activated data query tools. Flexible work hours. Ergonomic keyboard and mouse. " +
			"Screen magnification software.",
		SalaryRange:        "$58,000 - $75,000 annually",
		Location:           "Hybrid - Austin, TX",
		RequiredSkills:     "SQL, Python, Data Analysis, Tableau, Power BI, Statistics",
		ExperienceRequired: "1-3",
		WorkType:           "hybrid",
	},
}
