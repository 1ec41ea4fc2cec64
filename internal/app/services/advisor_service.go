package services

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/catalog"
	"github.com/yigit/electa/internal/pkg/apperrors"
	"github.com/yigit/electa/internal/recommend"
	"github.com/yigit/electa/internal/session"
	"github.com/yigit/electa/internal/transcript"
)

// AdvisorService orchestrates the upload and recommendation flows:
// transcript text extraction, profile parsing, occupied-slot lookup,
// session registration and the elective pipeline.
type AdvisorService struct {
	catalog   *catalog.Catalog // nil when the startup build failed
	sessions  *session.Store
	parser    *transcript.Parser
	extractor transcript.TextExtractor
	engine    *recommend.Engine
	logger    zerolog.Logger
}

// NewAdvisorService creates a new advisor service instance. A nil
// catalog is accepted; every operation then reports
// apperrors.ErrCatalogUnavailable instead of serving.
func NewAdvisorService(
	cat *catalog.Catalog,
	sessions *session.Store,
	parser *transcript.Parser,
	extractor transcript.TextExtractor,
	logger zerolog.Logger,
) *AdvisorService {
	s := &AdvisorService{
		catalog:   cat,
		sessions:  sessions,
		parser:    parser,
		extractor: extractor,
		logger:    logger,
	}
	if cat != nil {
		s.engine = recommend.NewEngine(cat)
	}
	return s
}

// InitFromTranscript processes an uploaded grade card: extracts the
// document text, parses the profile, attaches the occupied slots of
// the student's mandatory courses and registers the profile in the
// session store. Returns the profile together with its suggested
// follow-up questions. Nothing is stored when any step fails.
func (s *AdvisorService) InitFromTranscript(ctx context.Context, r io.ReaderAt, size int64) (*models.StudentProfile, []string, error) {
	if s.catalog == nil {
		return nil, nil, apperrors.ErrCatalogUnavailable
	}

	text, err := s.extractor.ExtractText(r, size)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.parser.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	profile.OccupiedSlots = s.catalog.OccupiedSlots(profile.DepartmentCode, profile.Semester)
	if profile.OccupiedSlots == nil {
		profile.OccupiedSlots = []string{}
	}

	s.sessions.Put(profile)
	s.logger.Info().
		Str("rollNo", profile.RollNo).
		Str("department", profile.DepartmentCode).
		Int("semester", profile.Semester).
		Int("coursesTaken", len(profile.CoursesTaken)).
		Msg("Student profile created and registered")

	return profile, recommend.SuggestedQuestions(profile), nil
}

// RecommendElectives runs the filtering pipeline for a registered
// student. An unknown roll number reports
// apperrors.ErrSessionNotFound; the caller is expected to re-upload.
func (s *AdvisorService) RecommendElectives(ctx context.Context, rollNo, preference string) ([]models.CourseRecord, error) {
	if s.catalog == nil {
		return nil, apperrors.ErrCatalogUnavailable
	}
	if rollNo == "" {
		return nil, apperrors.NewBadRequestError("roll number cannot be empty")
	}

	profile, ok := s.sessions.Get(rollNo)
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}

	recommendations := s.engine.Recommend(profile, preference, profile.OccupiedSlots)
	if recommendations == nil {
		recommendations = []models.CourseRecord{}
	}

	s.logger.Debug().
		Str("rollNo", rollNo).
		Str("preference", preference).
		Int("count", len(recommendations)).
		Msg("Electives recommended")

	return recommendations, nil
}
