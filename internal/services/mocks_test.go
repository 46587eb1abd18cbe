package services

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// In-memory repository fakes shared by the service tests.

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (m *memUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("user not found", nil)
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user not found", nil)
}

func (m *memUserRepo) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) Update(user *models.User) error {
	m.users[user.ID] = user
	return nil
}

type memStartupRepo struct {
	startups map[uuid.UUID]*models.Startup
	entries  []models.FundraisingEntry
}

func (m *memStartupRepo) GetByID(id uuid.UUID) (*models.Startup, error) {
	if s, ok := m.startups[id]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound("startup not found", nil)
}

func (m *memStartupRepo) GetByFounder(founderID uuid.UUID) ([]models.Startup, error) {
	var out []models.Startup
	for _, s := range m.startups {
		if s.FounderID == founderID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStartupRepo) GetVisible() ([]models.Startup, error) {
	var out []models.Startup
	for _, s := range m.startups {
		if s.PubliclyVisible {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStartupRepo) Create(startup *models.Startup) error {
	if startup.ID == uuid.Nil {
		startup.ID = uuid.New()
	}
	m.startups[startup.ID] = startup
	return nil
}

func (m *memStartupRepo) Update(startup *models.Startup) error {
	if _, ok := m.startups[startup.ID]; !ok {
		return apperrors.NotFound("startup not found", nil)
	}
	m.startups[startup.ID] = startup
	return nil
}

func (m *memStartupRepo) AddFundraisingEntry(entry *models.FundraisingEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memStartupRepo) GetFundraisingEntries(startupID uuid.UUID) ([]models.FundraisingEntry, error) {
	var out []models.FundraisingEntry
	for _, e := range m.entries {
		if e.StartupID == startupID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memInvestorRepo struct {
	investors map[uuid.UUID]*models.Investor
}

func (m *memInvestorRepo) GetByID(id uuid.UUID) (*models.Investor, error) {
	if inv, ok := m.investors[id]; ok {
		return inv, nil
	}
	return nil, apperrors.NotFound("investor not found", nil)
}

func (m *memInvestorRepo) GetByUser(userID uuid.UUID) (*models.Investor, error) {
	for _, inv := range m.investors {
		if inv.UserID == userID {
			return inv, nil
		}
	}
	return nil, apperrors.NotFound("investor not found", nil)
}

func (m *memInvestorRepo) Create(investor *models.Investor) error {
	if investor.ID == uuid.Nil {
		investor.ID = uuid.New()
	}
	m.investors[investor.ID] = investor
	return nil
}

func (m *memInvestorRepo) Update(investor *models.Investor) error {
	m.investors[investor.ID] = investor
	return nil
}

type memIncubatorRepo struct {
	incubators map[uuid.UUID]*models.Incubator
}

func (m *memIncubatorRepo) GetByID(id uuid.UUID) (*models.Incubator, error) {
	if inc, ok := m.incubators[id]; ok {
		return inc, nil
	}
	return nil, apperrors.NotFound("incubator not found", nil)
}

func (m *memIncubatorRepo) GetByUser(userID uuid.UUID) (*models.Incubator, error) {
	for _, inc := range m.incubators {
		if inc.UserID == userID {
			return inc, nil
		}
	}
	return nil, apperrors.NotFound("incubator not found", nil)
}

func (m *memIncubatorRepo) Create(incubator *models.Incubator) error {
	if incubator.ID == uuid.Nil {
		incubator.ID = uuid.New()
	}
	m.incubators[incubator.ID] = incubator
	return nil
}

func (m *memIncubatorRepo) Update(incubator *models.Incubator) error {
	m.incubators[incubator.ID] = incubator
	return nil
}

type memApplicationRepo struct {
	apps map[uuid.UUID]*models.Application
}

func (m *memApplicationRepo) GetByID(id uuid.UUID) (*models.Application, error) {
	if a, ok := m.apps[id]; ok {
		return a, nil
	}
	return nil, apperrors.NotFound("application not found", nil)
}

func (m *memApplicationRepo) GetByPair(startupID, incubatorID uuid.UUID) (*models.Application, error) {
	for _, a := range m.apps {
		if a.StartupID == startupID && a.IncubatorID == incubatorID {
			return a, nil
		}
	}
	return nil, apperrors.NotFound("application not found", nil)
}

func (m *memApplicationRepo) GetByIncubator(incubatorID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range m.apps {
		if a.IncubatorID == incubatorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memApplicationRepo) GetByStartup(startupID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range m.apps {
		if a.StartupID == startupID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memApplicationRepo) Create(app *models.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.apps[app.ID] = app
	return nil
}

func (m *memApplicationRepo) Update(app *models.Application) error {
	m.apps[app.ID] = app
	return nil
}

type memCommitmentRepo struct {
	commitments map[uuid.UUID]*models.SoftCommitment
}

func (m *memCommitmentRepo) GetByID(id uuid.UUID) (*models.SoftCommitment, error) {
	if c, ok := m.commitments[id]; ok {
		return c, nil
	}
	return nil, apperrors.NotFound("commitment not found", nil)
}

func (m *memCommitmentRepo) GetByInvestor(investorID uuid.UUID) ([]models.SoftCommitment, error) {
	var out []models.SoftCommitment
	for _, c := range m.commitments {
		if c.InvestorID == investorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCommitmentRepo) GetByStartup(startupID uuid.UUID) ([]models.SoftCommitment, error) {
	var out []models.SoftCommitment
	for _, c := range m.commitments {
		if c.StartupID == startupID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCommitmentRepo) GetActiveExpiredBefore(cutoff time.Time, limit int) ([]models.SoftCommitment, error) {
	var out []models.SoftCommitment
	for _, c := range m.commitments {
		if c.Status == models.CommitmentActive && c.ExpiryDate.Before(cutoff) {
			out = append(out, *c)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *memCommitmentRepo) HasConverted(investorID, startupID uuid.UUID) (bool, error) {
	for _, c := range m.commitments {
		if c.InvestorID == investorID && c.StartupID == startupID && c.Status == models.CommitmentConverted {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCommitmentRepo) Create(commitment *models.SoftCommitment) error {
	if commitment.ID == uuid.Nil {
		commitment.ID = uuid.New()
	}
	m.commitments[commitment.ID] = commitment
	return nil
}

func (m *memCommitmentRepo) Update(commitment *models.SoftCommitment) error {
	m.commitments[commitment.ID] = commitment
	return nil
}

type memIntroRepo struct {
	requests map[uuid.UUID]*models.IntroRequest
}

func (m *memIntroRepo) GetByID(id uuid.UUID) (*models.IntroRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperrors.NotFound("intro request not found", nil)
}

func (m *memIntroRepo) GetByInvestor(investorID uuid.UUID) ([]models.IntroRequest, error) {
	var out []models.IntroRequest
	for _, r := range m.requests {
		if r.InvestorID == investorID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memIntroRepo) GetByStartup(startupID uuid.UUID) ([]models.IntroRequest, error) {
	var out []models.IntroRequest
	for _, r := range m.requests {
		if r.StartupID == startupID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memIntroRepo) HasPending(investorID, startupID uuid.UUID) (bool, error) {
	for _, r := range m.requests {
		if r.InvestorID == investorID && r.StartupID == startupID && r.Status == models.IntroPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *memIntroRepo) Create(req *models.IntroRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	m.requests[req.ID] = req
	return nil
}

func (m *memIntroRepo) Update(req *models.IntroRequest) error {
	m.requests[req.ID] = req
	return nil
}

type memInteractionRepo struct {
	interactions []models.Interaction
}

func (m *memInteractionRepo) Create(interaction *models.Interaction) error {
	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}
	m.interactions = append(m.interactions, *interaction)
	return nil
}

func (m *memInteractionRepo) GetByStartup(startupID uuid.UUID, limit int) ([]models.Interaction, error) {
	var out []models.Interaction
	for _, i := range m.interactions {
		if i.StartupID == startupID {
			out = append(out, i)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *memInteractionRepo) GetByInvestor(investorID uuid.UUID, limit int) ([]models.Interaction, error) {
	var out []models.Interaction
	for _, i := range m.interactions {
		if i.InvestorID == investorID {
			out = append(out, i)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// passthroughTx runs the callback against the same repositories without a
// real database transaction.
type passthroughTx struct {
	repos *repository.Repositories
}

func (t *passthroughTx) WithTransaction(fn func(repos *repository.Repositories) error) error {
	return fn(t.repos)
}

// newTestRepos builds a fully in-memory Repositories value
func newTestRepos() *repository.Repositories {
	repos := &repository.Repositories{
		User:        &memUserRepo{users: make(map[uuid.UUID]*models.User)},
		Startup:     &memStartupRepo{startups: make(map[uuid.UUID]*models.Startup)},
		Investor:    &memInvestorRepo{investors: make(map[uuid.UUID]*models.Investor)},
		Incubator:   &memIncubatorRepo{incubators: make(map[uuid.UUID]*models.Incubator)},
		Application: &memApplicationRepo{apps: make(map[uuid.UUID]*models.Application)},
		Commitment:  &memCommitmentRepo{commitments: make(map[uuid.UUID]*models.SoftCommitment)},
		Intro:       &memIntroRepo{requests: make(map[uuid.UUID]*models.IntroRequest)},
		Interaction: &memInteractionRepo{},
	}
	repos.Tx = &passthroughTx{repos: repos}
	return repos
}
