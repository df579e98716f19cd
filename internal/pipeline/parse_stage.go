package pipeline

import (
	"context"
	"log/slog"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/entity"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/llm"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/normalize"
)

// ParseStage sends raw extracted text to the completion backend and
// normalizes the reply into a bounded domain record.
type ParseStage struct {
	Extractor llm.Extractor
	Logger    *slog.Logger
}

func NewParseStage(extractor llm.Extractor, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{Extractor: extractor, Logger: logger}
}

// Resume never fails on malformed field data; only the backend failure modes
// surface as errors.
func (s *ParseStage) Resume(ctx context.Context, rawText string) (entity.CandidateProfile, error) {
	payload, err := s.Extractor.ExtractResume(ctx, rawText)
	if err != nil {
		s.Logger.Error("parse.resume.failed", "error", err)
		return entity.CandidateProfile{}, err
	}
	profile := normalize.Profile(payload)
	s.Logger.Info("parse.resume.ok",
		"skills", len(profile.Skills),
		"experience", len(profile.Experience),
		"education", len(profile.Education),
	)
	return profile, nil
}

// Job additionally fails when the reply lacks a title or description.
func (s *ParseStage) Job(ctx context.Context, rawText string) (entity.JobDescription, error) {
	payload, err := s.Extractor.ExtractJob(ctx, rawText)
	if err != nil {
		s.Logger.Error("parse.job.failed", "error", err)
		return entity.JobDescription{}, err
	}
	jd, err := normalize.Job(payload)
	if err != nil {
		s.Logger.Error("parse.job.normalize_failed", "error", err)
		return entity.JobDescription{}, err
	}
	s.Logger.Info("parse.job.ok", "title", jd.Title, "type", jd.JobType, "arrangement", jd.WorkArrangement)
	return jd, nil
}
