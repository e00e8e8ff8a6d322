package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	reportRepo "report2clean/database/repository/report"
	userRepo "report2clean/database/repository/user"
	"report2clean/models"
	"report2clean/services/notify"
	"report2clean/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminPageSize is the fixed page size of the admin report listing.
const AdminPageSize = 6

// CreateReportInput is the submission payload after image upload.
type CreateReportInput struct {
	ReportedBy  string
	Description string
	Address     string
	// Coordinates is the client-submitted "lat,lng" pair.
	Coordinates string
	ImageURLs   []string
	Urgency     bool
}

// NearbyInput is a browse query. RadiusKm is clamped server-side.
type NearbyInput struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
	Status   string
	From     time.Time
	To       time.Time
}

// AdminPage is one page of the admin listing.
type AdminPage struct {
	Total   int64                        `json:"total"`
	Page    int64                        `json:"page"`
	PerPage int64                        `json:"perPage"`
	Reports []models.ReportWithSubmitter `json:"reports"`
}

// ReportService defines business logic for report operations.
type ReportService interface {
	// Create validates and persists a report, then schedules the proximity
	// fan-out and the submitter confirmation email. The returned report is
	// available before any notification work happens.
	Create(ctx context.Context, in CreateReportInput) (*models.Report, error)
	// Nearby browses reports around a point with the radius clamped to the
	// supported band.
	Nearby(ctx context.Context, in NearbyInput) ([]models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Mine(ctx context.Context, userID string) ([]models.Report, error)

	// Admin triage.
	UpdateStatus(ctx context.Context, id, status string) (*models.Report, error)
	Accept(ctx context.Context, id, adminID string) (*models.Report, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page int64) (*AdminPage, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Repo      reportRepo.ReportRepository
	Users     userRepo.UserRepository
	Fanout    *notify.FanoutDispatcher
	Scheduler notify.TaskScheduler
	Mailer    notify.Mailer
}

func (s *DefaultReportService) Create(ctx context.Context, in CreateReportInput) (*models.Report, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if len(in.ImageURLs) == 0 || len(in.ImageURLs) > 5 {
		return nil, fmt.Errorf("%w: between 1 and 5 images are required", ErrValidation)
	}

	lng, lat, err := ParseLatLng(in.Coordinates)
	if err != nil {
		return nil, err
	}

	submitter, err := s.Users.GetByID(ctx, in.ReportedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to load submitter %s: %w", in.ReportedBy, err)
	}

	now := time.Now()
	rep := &models.Report{
		ID:          uuid.New().String(),
		ReportedBy:  in.ReportedBy,
		Description: in.Description,
		Address:     in.Address,
		Location:    models.NewGeoPoint(lng, lat),
		Images:      in.ImageURLs,
		Status:      models.StatusPending,
		Urgency:     in.Urgency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, rep); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	// Persist first, notify after. The fan-out runs detached so the caller
	// gets the created report without waiting on delivery.
	s.Scheduler.Schedule("report-fanout", func(jobCtx context.Context) {
		s.Fanout.Dispatch(jobCtx, rep, submitter)
	})

	s.Scheduler.Schedule("submission-confirmation", func(jobCtx context.Context) {
		ref := models.UserRef{ID: submitter.ID, Fullname: submitter.Fullname, Email: submitter.Email}
		if err := s.Mailer.SubmissionConfirmation(ref, rep); err != nil {
			utils.GetLogger().Error("Submission confirmation email failed",
				zap.String("reportId", rep.ID),
				zap.Error(err))
		}
	})

	return rep, nil
}

func (s *DefaultReportService) Nearby(ctx context.Context, in NearbyInput) ([]models.Report, error) {
	if in.Lat < -90 || in.Lat > 90 || in.Lng < -180 || in.Lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	if in.Status != "" && !models.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}

	radiusKm := ClampRadiusKm(in.RadiusKm)
	reports, err := s.Repo.Nearby(ctx, reportRepo.NearbyQuery{
		Lng:          in.Lng,
		Lat:          in.Lat,
		RadiusMeters: radiusKm * 1000,
		Status:       in.Status,
		From:         in.From,
		To:           in.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to browse nearby reports: %w", err)
	}
	return reports, nil
}

func (s *DefaultReportService) GetByID(ctx context.Context, id string) (*models.Report, error) {
	rep, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, reportRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report %s: %w", id, err)
	}
	return rep, nil
}

func (s *DefaultReportService) Mine(ctx context.Context, userID string) ([]models.Report, error) {
	return s.Repo.GetByReporter(ctx, userID)
}

func (s *DefaultReportService) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	rep, err := s.Repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, reportRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update report %s: %w", id, err)
	}
	return rep, nil
}

func (s *DefaultReportService) Accept(ctx context.Context, id, adminID string) (*models.Report, error) {
	rep, err := s.Repo.Accept(ctx, id, adminID)
	if errors.Is(err, reportRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to accept report %s: %w", id, err)
	}
	return rep, nil
}

func (s *DefaultReportService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, reportRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *DefaultReportService) List(ctx context.Context, page int64) (*AdminPage, error) {
	if page < 1 {
		page = 1
	}
	total, reports, err := s.Repo.ListWithSubmitters(ctx, page, AdminPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return &AdminPage{Total: total, Page: page, PerPage: AdminPageSize, Reports: reports}, nil
}
