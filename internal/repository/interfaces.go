package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturelink/venturelink-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// StartupRepository defines the interface for startup data access
type StartupRepository interface {
	GetByID(id uuid.UUID) (*models.Startup, error)
	GetByFounder(founderID uuid.UUID) ([]models.Startup, error)
	GetVisible() ([]models.Startup, error)
	Create(startup *models.Startup) error
	Update(startup *models.Startup) error
	AddFundraisingEntry(entry *models.FundraisingEntry) error
	GetFundraisingEntries(startupID uuid.UUID) ([]models.FundraisingEntry, error)
}

// InvestorRepository defines the interface for investor data access
type InvestorRepository interface {
	GetByID(id uuid.UUID) (*models.Investor, error)
	GetByUser(userID uuid.UUID) (*models.Investor, error)
	Create(investor *models.Investor) error
	Update(investor *models.Investor) error
}

// IncubatorRepository defines the interface for incubator data access
type IncubatorRepository interface {
	GetByID(id uuid.UUID) (*models.Incubator, error)
	GetByUser(userID uuid.UUID) (*models.Incubator, error)
	Create(incubator *models.Incubator) error
	Update(incubator *models.Incubator) error
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	GetByID(id uuid.UUID) (*models.Application, error)
	GetByPair(startupID, incubatorID uuid.UUID) (*models.Application, error)
	GetByIncubator(incubatorID uuid.UUID) ([]models.Application, error)
	GetByStartup(startupID uuid.UUID) ([]models.Application, error)
	Create(app *models.Application) error
	Update(app *models.Application) error
}

// CommitmentRepository defines the interface for soft-commitment data access
type CommitmentRepository interface {
	GetByID(id uuid.UUID) (*models.SoftCommitment, error)
	GetByInvestor(investorID uuid.UUID) ([]models.SoftCommitment, error)
	GetByStartup(startupID uuid.UUID) ([]models.SoftCommitment, error)
	GetActiveExpiredBefore(cutoff time.Time, limit int) ([]models.SoftCommitment, error)
	HasConverted(investorID, startupID uuid.UUID) (bool, error)
	Create(commitment *models.SoftCommitment) error
	Update(commitment *models.SoftCommitment) error
}

// IntroRepository defines the interface for intro-request data access
type IntroRepository interface {
	GetByID(id uuid.UUID) (*models.IntroRequest, error)
	GetByInvestor(investorID uuid.UUID) ([]models.IntroRequest, error)
	GetByStartup(startupID uuid.UUID) ([]models.IntroRequest, error)
	HasPending(investorID, startupID uuid.UUID) (bool, error)
	Create(req *models.IntroRequest) error
	Update(req *models.IntroRequest) error
}

// InteractionRepository defines the interface for interaction log access
type InteractionRepository interface {
	Create(interaction *models.Interaction) error
	GetByStartup(startupID uuid.UUID, limit int) ([]models.Interaction, error)
	GetByInvestor(investorID uuid.UUID, limit int) ([]models.Interaction, error)
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	User        UserRepository
	Startup     StartupRepository
	Investor    InvestorRepository
	Incubator   IncubatorRepository
	Application ApplicationRepository
	Commitment  CommitmentRepository
	Intro       IntroRepository
	Interaction InteractionRepository
	Tx          TransactionManager
}
