package users_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/jobs"
	"github.com/mdevlin/squadup/go/internal/models"
	"github.com/mdevlin/squadup/go/internal/users"
)

type fakeUsersRepo struct {
	users     map[uuid.UUID]*models.User
	usernames map[string]uuid.UUID
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		users:     make(map[uuid.UUID]*models.User),
		usernames: make(map[string]uuid.UUID),
	}
}

func (r *fakeUsersRepo) CreateUser(ctx context.Context, email *string) (*models.User, error) {
	user := &models.User{
		ID:             uuid.New(),
		Email:          email,
		OnboardingStep: models.OnboardingStepNeedUsername,
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUsersRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUsersRepo) UpdateUsername(ctx context.Context, id uuid.UUID, username string, step models.OnboardingStep) (*models.User, error) {
	if owner, taken := r.usernames[username]; taken && owner != id {
		return nil, users.ErrUsernameTaken
	}
	user, ok := r.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	r.usernames[username] = id
	user.Username = &username
	user.OnboardingStep = step
	return user, nil
}

func (r *fakeUsersRepo) UpdateOnboardingStep(ctx context.Context, id uuid.UUID, step models.OnboardingStep) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	user.OnboardingStep = step
	return user, nil
}

type fakeTeamsRepo struct {
	teams map[uuid.UUID]*models.Team
}

func (r *fakeTeamsRepo) GetTeamByUser(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	if team, ok := r.teams[userID]; ok {
		return team, nil
	}
	return nil, club.ErrTeamNotFound
}

type fakeJobsRepo struct {
	jobs map[uuid.UUID]*models.TeamCreationJob
}

func (r *fakeJobsRepo) JobByUser(ctx context.Context, userID uuid.UUID) (*models.TeamCreationJob, error) {
	if job, ok := r.jobs[userID]; ok {
		return job, nil
	}
	return nil, jobs.ErrJobNotFound
}

type fixture struct {
	app       *users.App
	usersRepo *fakeUsersRepo
	teamsRepo *fakeTeamsRepo
	jobsRepo  *fakeJobsRepo
}

func newFixture() fixture {
	usersRepo := newFakeUsersRepo()
	teamsRepo := &fakeTeamsRepo{teams: make(map[uuid.UUID]*models.Team)}
	jobsRepo := &fakeJobsRepo{jobs: make(map[uuid.UUID]*models.TeamCreationJob)}
	return fixture{
		app:       users.NewApp(usersRepo, teamsRepo, jobsRepo),
		usersRepo: usersRepo,
		teamsRepo: teamsRepo,
		jobsRepo:  jobsRepo,
	}
}

func TestCreateUserStartsAtNeedUsername(t *testing.T) {
	fx := newFixture()

	user, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepNeedUsername, user.OnboardingStep)
	assert.Nil(t, user.Username)
}

func TestSetUsernameAdvancesOnboarding(t *testing.T) {
	fx := newFixture()
	user, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)

	updated, err := fx.app.SetUsername(context.Background(), user.ID, "alice")
	require.NoError(t, err)

	require.NotNil(t, updated.Username)
	assert.Equal(t, "alice", *updated.Username)
	assert.Equal(t, models.OnboardingStepNeedTeam, updated.OnboardingStep)
}

func TestSetUsernameRenameKeepsStep(t *testing.T) {
	fx := newFixture()
	user, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)

	_, err = fx.app.SetUsername(context.Background(), user.ID, "alice")
	require.NoError(t, err)

	updated, err := fx.app.SetUsername(context.Background(), user.ID, "alice2")
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepNeedTeam, updated.OnboardingStep)
}

func TestSetUsernameTaken(t *testing.T) {
	fx := newFixture()
	first, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)
	second, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)

	_, err = fx.app.SetUsername(context.Background(), first.ID, "alice")
	require.NoError(t, err)

	_, err = fx.app.SetUsername(context.Background(), second.ID, "alice")
	assert.ErrorIs(t, err, users.ErrUsernameTaken)
}

func TestSetUsernameEmpty(t *testing.T) {
	fx := newFixture()
	user, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)

	_, err = fx.app.SetUsername(context.Background(), user.ID, "")
	assert.Error(t, err)
}

func TestOnboardingStatusDerivation(t *testing.T) {
	fx := newFixture()
	user, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)

	// Fresh user has no username
	step, err := fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepNeedUsername, step)

	// Username claimed, no team, no job
	_, err = fx.app.SetUsername(context.Background(), user.ID, "alice")
	require.NoError(t, err)
	step, err = fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepNeedTeam, step)

	// Queued job means creation is in flight
	fx.jobsRepo.jobs[user.ID] = &models.TeamCreationJob{
		ID:     uuid.New(),
		UserID: user.ID,
		Status: models.JobStatusQueued,
	}
	step, err = fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepCreatingTeam, step)

	// So does a running job
	fx.jobsRepo.jobs[user.ID].Status = models.JobStatusRunning
	step, err = fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepCreatingTeam, step)

	// A failed job also reads as creating; the user can re-submit
	fx.jobsRepo.jobs[user.ID].Status = models.JobStatusFailed
	step, err = fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepCreatingTeam, step)

	// A team always wins, whatever the job says
	fx.teamsRepo.teams[user.ID] = &models.Team{ID: uuid.New(), UserID: user.ID, Name: "Rovers"}
	step, err = fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepReady, step)
}

func TestOnboardingStatusDoneJobWithoutTeam(t *testing.T) {
	fx := newFixture()
	user, err := fx.app.CreateUser(context.Background(), nil)
	require.NoError(t, err)
	_, err = fx.app.SetUsername(context.Background(), user.ID, "alice")
	require.NoError(t, err)

	// A done job with no surviving team falls back to NEED_TEAM
	fx.jobsRepo.jobs[user.ID] = &models.TeamCreationJob{
		ID:     uuid.New(),
		UserID: user.ID,
		Status: models.JobStatusDone,
	}
	step, err := fx.app.OnboardingStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OnboardingStepNeedTeam, step)
}

func TestOnboardingStatusUnknownUser(t *testing.T) {
	fx := newFixture()

	_, err := fx.app.OnboardingStatus(context.Background(), uuid.New())
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
