package pipeline

import (
	"context"
	"log/slog"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/entity"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
)

// Processor is the callable surface of the extraction core. Every call is
// self-contained: no state is shared or cached across invocations, so
// concurrent calls need no locking.
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Parse   *ParseStage
}

func NewProcessor(logger *slog.Logger, ex *ExtractStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: ex, Parse: parse}
}

// ExtractText turns an uploaded file into raw text, or a typed failure.
func (p *Processor) ExtractText(ctx context.Context, filePath, mimeType string) (extract.Result, error) {
	return p.Extract.Run(ctx, extract.Request{FilePath: filePath, MIMEType: mimeType})
}

// ParseResume turns raw resume text into a bounded candidate profile.
func (p *Processor) ParseResume(ctx context.Context, rawText string) (entity.CandidateProfile, error) {
	return p.Parse.Resume(ctx, rawText)
}

// ParseJobDescription turns raw posting text into a bounded job record.
func (p *Processor) ParseJobDescription(ctx context.Context, rawText string) (entity.JobDescription, error) {
	return p.Parse.Job(ctx, rawText)
}

// ProcessResume chains extraction and parsing for one uploaded resume.
func (p *Processor) ProcessResume(ctx context.Context, filePath, mimeType string) (entity.CandidateProfile, error) {
	res, err := p.ExtractText(ctx, filePath, mimeType)
	if err != nil {
		return entity.CandidateProfile{}, err
	}
	return p.ParseResume(ctx, res.Text)
}

// ProcessJobFile chains extraction and parsing for one uploaded posting.
func (p *Processor) ProcessJobFile(ctx context.Context, filePath, mimeType string) (entity.JobDescription, error) {
	res, err := p.ExtractText(ctx, filePath, mimeType)
	if err != nil {
		return entity.JobDescription{}, err
	}
	return p.ParseJobDescription(ctx, res.Text)
}
