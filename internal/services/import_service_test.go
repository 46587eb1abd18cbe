package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/models"
)

func TestImportCSV(t *testing.T) {
	repos := newTestRepos()
	svc := newImportService(repos, logger.NewNop())

	csv := strings.Join([]string{
		"email,name,industry,stage,ask_amount",
		"founder@acme.io,Acme,Technology,growth,500000",
		"founder@beta.io,Beta Labs,Fintech,mvp,100000",
	}, "\n")

	summary, err := svc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Imported)
	assert.Zero(t, summary.Skipped)
	assert.Empty(t, summary.Errors)

	user, err := repos.User.GetByEmail("founder@acme.io")
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleFounder), user.Role)
	assert.False(t, user.IsActive)
	assert.NotEmpty(t, user.ActivationToken)

	startups, err := repos.Startup.GetByFounder(user.ID)
	require.NoError(t, err)
	require.Len(t, startups, 1)
	assert.Equal(t, "Acme", startups[0].Name)
	assert.Equal(t, int64(500000), startups[0].AskAmount)
	assert.True(t, startups[0].Imported)
	assert.True(t, startups[0].PubliclyVisible)
}

func TestImportCSVSkipsRegisteredEmails(t *testing.T) {
	repos := newTestRepos()
	require.NoError(t, repos.User.Create(&models.User{
		Email: "founder@acme.io",
		Role:  string(models.RoleFounder),
	}))

	svc := newImportService(repos, logger.NewNop())

	csv := "email,name,industry,stage,ask_amount\n" +
		"founder@acme.io,Acme,Technology,growth,500000\n" +
		"fresh@beta.io,Beta Labs,Fintech,mvp,100000\n"

	summary, err := svc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
}

func TestImportCSVCollapsesDuplicateRows(t *testing.T) {
	repos := newTestRepos()
	svc := newImportService(repos, logger.NewNop())

	csv := "email,name,industry,stage,ask_amount\n" +
		"founder@acme.io,Acme,Technology,growth,500000\n" +
		"founder@acme.io,Acme Again,Technology,growth,500000\n"

	summary, err := svc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Imported)
}

func TestImportCSVRejectsBadInput(t *testing.T) {
	repos := newTestRepos()
	svc := newImportService(repos, logger.NewNop())

	tests := []struct {
		name string
		csv  string
	}{
		{"empty file", ""},
		{"header only", "email,name,industry,stage,ask_amount\n"},
		{"bad email", "not-an-email,Acme,Technology,growth,500000\n"},
		{"missing name", "founder@acme.io,,Technology,growth,500000\n"},
		{"unknown industry", "founder@acme.io,Acme,Basketweaving,growth,500000\n"},
		{"unknown stage", "founder@acme.io,Acme,Technology,unicorn,500000\n"},
		{"negative ask", "founder@acme.io,Acme,Technology,growth,-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportCSV(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}
