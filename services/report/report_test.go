package report

import (
	"context"
	"sync"
	"testing"
	"time"

	notificationRepo "report2clean/database/repository/notification"
	preferenceRepo "report2clean/database/repository/preference"
	reportRepo "report2clean/database/repository/report"
	userRepo "report2clean/database/repository/user"
	"report2clean/models"
	"report2clean/services/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingReportRepo struct {
	mu       sync.Mutex
	created  []*models.Report
	lastNear reportRepo.NearbyQuery
}

var _ reportRepo.ReportRepository = (*capturingReportRepo)(nil)

func (f *capturingReportRepo) Create(ctx context.Context, report *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, report)
	return nil
}
func (f *capturingReportRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	return nil, reportRepo.ErrNotFound
}
func (f *capturingReportRepo) GetByReporter(ctx context.Context, userID string) ([]models.Report, error) {
	return nil, nil
}
func (f *capturingReportRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {
	return &models.Report{ID: id, Status: status}, nil
}
func (f *capturingReportRepo) Accept(ctx context.Context, id, adminID string) (*models.Report, error) {
	return &models.Report{ID: id, Status: models.StatusOnProgress, AcceptedBy: adminID}, nil
}
func (f *capturingReportRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *capturingReportRepo) Nearby(ctx context.Context, q reportRepo.NearbyQuery) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastNear = q
	return []models.Report{}, nil
}
func (f *capturingReportRepo) ListWithSubmitters(ctx context.Context, page, perPage int64) (int64, []models.ReportWithSubmitter, error) {
	return 0, nil, nil
}
func (f *capturingReportRepo) CountByReporter(ctx context.Context, userID, status string) (int64, error) {
	return 0, nil
}
func (f *capturingReportRepo) CountPendingSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}
func (f *capturingReportRepo) LocalCounts(ctx context.Context, lng, lat, radiusMeters float64, monthStart time.Time) (reportRepo.LocalSummary, error) {
	return reportRepo.LocalSummary{}, nil
}
func (f *capturingReportRepo) MonthlyCountsNear(ctx context.Context, lng, lat, radiusMeters float64, since time.Time) (map[reportRepo.MonthKey]int64, error) {
	return nil, nil
}
func (f *capturingReportRepo) MonthlyGlobalCounts(ctx context.Context, since time.Time) (map[reportRepo.MonthKey]reportRepo.MonthlyCount, error) {
	return nil, nil
}
func (f *capturingReportRepo) DailyCountsSince(ctx context.Context, since time.Time) (map[string]int64, error) {
	return nil, nil
}

type stubUserRepo struct {
	user       *models.User
	recipients []models.UserRef
}

var _ userRepo.UserRepository = (*stubUserRepo)(nil)

func (f *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.user == nil {
		return nil, userRepo.ErrNotFound
	}
	return f.user, nil
}
func (f *stubUserRepo) Create(ctx context.Context, user *models.User) error        { return nil }
func (f *stubUserRepo) UpdateProfile(ctx context.Context, user *models.User) error { return nil }
func (f *stubUserRepo) SetVerifiedLocation(ctx context.Context, id string, lng, lat float64) error {
	return nil
}
func (f *stubUserRepo) SetBlocked(ctx context.Context, id string, blocked bool) error { return nil }
func (f *stubUserRepo) NearbyRecipients(ctx context.Context, originLng, originLat, radiusMeters float64, excludeUserID string) ([]models.UserRef, error) {
	return f.recipients, nil
}
func (f *stubUserRepo) Admins(ctx context.Context) ([]models.UserRef, error) { return nil, nil }

type stubPrefRepo struct{}

var _ preferenceRepo.PreferenceRepository = (*stubPrefRepo)(nil)

func (f *stubPrefRepo) Resolve(ctx context.Context, ownerID string) (*models.NotificationPreference, error) {
	pref := models.DefaultPreference(ownerID)
	return &pref, nil
}
func (f *stubPrefRepo) Update(ctx context.Context, pref models.NotificationPreference) (*models.NotificationPreference, error) {
	return &pref, nil
}

type stubInboxRepo struct {
	mu      sync.Mutex
	entries map[string][]models.NotificationEntry
}

var _ notificationRepo.InboxRepository = (*stubInboxRepo)(nil)

func newStubInboxRepo() *stubInboxRepo {
	return &stubInboxRepo{entries: map[string][]models.NotificationEntry{}}
}

func (f *stubInboxRepo) Append(ctx context.Context, ownerID string, entry models.NotificationEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[ownerID] = append(f.entries[ownerID], entry)
	return nil
}
func (f *stubInboxRepo) MarkRead(ctx context.Context, ownerID, entryID string) error { return nil }
func (f *stubInboxRepo) MarkAllRead(ctx context.Context, ownerID string) error       { return nil }
func (f *stubInboxRepo) Latest(ctx context.Context, ownerID string, n int64) ([]models.NotificationEntry, error) {
	return nil, nil
}

type recordingMailer struct {
	mu            sync.Mutex
	alerts        []string
	confirmations []string
}

func (m *recordingMailer) NearbyReportAlert(recipient models.UserRef, submitterName string, report *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, recipient.ID)
	return nil
}
func (m *recordingMailer) SubmissionConfirmation(recipient models.UserRef, report *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations = append(m.confirmations, recipient.ID)
	return nil
}
func (m *recordingMailer) WeeklyDigest(recipient models.UserRef, pendingCount int64) error {
	return nil
}

type noopPusher struct{}

func (noopPusher) NearbyReportPush(ctx context.Context, recipient models.UserRef, report *models.Report) error {
	return nil
}
func (noopPusher) EmergencyPush(ctx context.Context, recipient models.UserRef, report *models.Report) error {
	return nil
}

func newTestService(repo *capturingReportRepo, users *stubUserRepo, inbox *stubInboxRepo, mailer *recordingMailer) *DefaultReportService {
	fanout := notify.NewFanoutDispatcher(users, &stubPrefRepo{}, inbox, mailer, noopPusher{}, 5000)
	return &DefaultReportService{
		Repo:      repo,
		Users:     users,
		Fanout:    fanout,
		Scheduler: &notify.SyncScheduler{},
		Mailer:    mailer,
	}
}

func validInput() CreateReportInput {
	return CreateReportInput{
		ReportedBy:  "submitter",
		Description: "Burst water pipe flooding the street",
		Address:     "5 River Road",
		Coordinates: "-1.2921,36.8219",
		ImageURLs:   []string{"https://cdn.example.com/img1.jpg"},
	}
}

func TestCreatePersistsBeforeNotifying(t *testing.T) {
	repo := &capturingReportRepo{}
	users := &stubUserRepo{
		user:       &models.User{ID: "submitter", Fullname: "Asha K", Email: "asha@example.com"},
		recipients: []models.UserRef{{ID: "neighbour", Fullname: "N", Email: "n@example.com"}},
	}
	inbox := newStubInboxRepo()
	mailer := &recordingMailer{}
	svc := newTestService(repo, users, inbox, mailer)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, created.ID, repo.created[0].ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.NotEmpty(t, created.ID)

	// Coordinates were stored longitude first.
	assert.Equal(t, 36.8219, created.Location.Lng())
	assert.Equal(t, -1.2921, created.Location.Lat())

	// Synchronous scheduler: fan-out and confirmation already settled.
	assert.Len(t, inbox.entries["neighbour"], 1)
	assert.Equal(t, []string{"submitter"}, mailer.confirmations)
}

func TestCreateRejectsMalformedCoordinates(t *testing.T) {
	svc := newTestService(&capturingReportRepo{}, &stubUserRepo{user: &models.User{ID: "submitter"}}, newStubInboxRepo(), &recordingMailer{})

	in := validInput()
	in.Coordinates = "not-a-coordinate"
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRequiresDescriptionAndImages(t *testing.T) {
	svc := newTestService(&capturingReportRepo{}, &stubUserRepo{user: &models.User{ID: "submitter"}}, newStubInboxRepo(), &recordingMailer{})

	in := validInput()
	in.Description = ""
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.ImageURLs = nil
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.ImageURLs = []string{"a", "b", "c", "d", "e", "f"}
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNearbyClampsRadius(t *testing.T) {
	repo := &capturingReportRepo{}
	svc := newTestService(repo, &stubUserRepo{}, newStubInboxRepo(), &recordingMailer{})

	_, err := svc.Nearby(context.Background(), NearbyInput{Lat: -1.29, Lng: 36.82, RadiusKm: 50})
	require.NoError(t, err)
	assert.Equal(t, 10000.0, repo.lastNear.RadiusMeters)

	_, err = svc.Nearby(context.Background(), NearbyInput{Lat: -1.29, Lng: 36.82, RadiusKm: 0.01})
	require.NoError(t, err)
	assert.Equal(t, 500.0, repo.lastNear.RadiusMeters)
}

func TestNearbyRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(&capturingReportRepo{}, &stubUserRepo{}, newStubInboxRepo(), &recordingMailer{})

	_, err := svc.Nearby(context.Background(), NearbyInput{Lat: 0.5, Lng: 0.5, RadiusKm: 2, Status: "archived"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(&capturingReportRepo{}, &stubUserRepo{}, newStubInboxRepo(), &recordingMailer{})

	_, err := svc.UpdateStatus(context.Background(), "rep-1", "archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAcceptMarksOnProgress(t *testing.T) {
	svc := newTestService(&capturingReportRepo{}, &stubUserRepo{}, newStubInboxRepo(), &recordingMailer{})

	rep, err := svc.Accept(context.Background(), "rep-1", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnProgress, rep.Status)
	assert.Equal(t, "admin-1", rep.AcceptedBy)
}
