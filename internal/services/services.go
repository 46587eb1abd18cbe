package services

import (
	"database/sql"
	"io"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/venturelink/venturelink-api/internal/funnel"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/matching"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
	"github.com/venturelink/venturelink-api/pkg/config"
)

// Services contains all application services
type Services struct {
	Auth        AuthService
	Startup     StartupService
	Investor    InvestorService
	Incubator   IncubatorService
	Match       MatchService
	Application ApplicationService
	Commitment  CommitmentService
	Intro       IntroService
	Import      ImportService
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*models.LoginResponse, error)
	Register(req *models.RegisterRequest) (*models.User, error)
	Activate(req *models.ActivateRequest) (*models.User, error)
	ValidateToken(token string) (*models.User, error)
	RefreshToken(token string) (*models.LoginResponse, error)
}

// StartupService defines the interface for startup profile business logic
type StartupService interface {
	GetByID(id string) (*models.Startup, error)
	GetByFounder(founderID string) ([]models.Startup, error)
	Create(founderID string, form *models.StartupForm) (*models.Startup, error)
	Update(id, callerID string, form *models.StartupForm) (*models.Startup, error)
	GetActivity(id string, limit int) ([]models.Interaction, error)
	GetFundraising(id string) ([]models.FundraisingEntry, error)
}

// InvestorService defines the interface for investor profile business logic
type InvestorService interface {
	GetByID(id string) (*models.Investor, error)
	GetByUser(userID string) (*models.Investor, error)
	Create(userID string, form *models.InvestorForm) (*models.Investor, error)
	Update(id, callerUserID string, form *models.InvestorForm) (*models.Investor, error)
}

// IncubatorService defines the interface for incubator profile business logic
type IncubatorService interface {
	GetByID(id string) (*models.Incubator, error)
	GetByUser(userID string) (*models.Incubator, error)
}

// MatchService defines the interface for match scoring business logic
type MatchService interface {
	ScoreStartup(investorUserID, startupID string) (*matching.ScoreResult, error)
	RankMatches(investorUserID string, limit int) ([]matching.RankedStartup, error)
}

// ApplicationService defines the interface for the application funnel
type ApplicationService interface {
	Create(callerUserID string, form *models.ApplicationForm) (*models.Application, error)
	ApplyAction(applicationID, reviewerUserID string, form *models.ApplicationActionForm) (*models.Application, error)
	GetByIncubator(incubatorUserID string) ([]models.Application, error)
	FunnelAnalytics(incubatorUserID string) (*funnel.Analytics, error)
}

// CommitmentService defines the interface for the soft-commitment lifecycle
type CommitmentService interface {
	Create(investorUserID string, form *models.CommitmentForm) (*models.SoftCommitment, error)
	Respond(commitmentID, startupOwnerID string, form *models.CommitmentResponseForm) (*models.SoftCommitment, error)
	Withdraw(commitmentID, investorUserID string) (*models.SoftCommitment, error)
	GetByInvestor(investorUserID string) ([]models.SoftCommitment, error)
	ExpireDue(now time.Time) (int, error)
}

// IntroService defines the interface for the intro-request lifecycle
type IntroService interface {
	Create(investorUserID string, form *models.IntroRequestForm) (*models.IntroRequest, error)
	Respond(introID, startupOwnerID string, form *models.IntroResponseForm) (*models.IntroRequest, error)
	GetByInvestor(investorUserID string) ([]models.IntroRequest, error)
}

// ImportService defines the interface for bulk startup import
type ImportService interface {
	ImportCSV(r io.Reader) (*ImportSummary, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config, redisClient *redis.Client, log logger.Logger) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Auth:        newAuthService(repos, cfg),
		Startup:     newStartupService(repos),
		Investor:    newInvestorService(repos),
		Incubator:   newIncubatorService(repos),
		Match:       newMatchService(repos, redisClient, cfg.MatchCacheTTL, log),
		Application: newApplicationService(repos, log),
		Commitment:  newCommitmentService(repos, log),
		Intro:       newIntroService(repos, log),
		Import:      newImportService(repos, log),
	}
}
