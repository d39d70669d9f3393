// Package services orchestrates one cleaning run per upload: parse, clean,
// validate, summarize, render. The services hold no state between runs.
package services

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"claritygate/exporter"
	"claritygate/importer"
	"claritygate/normalization"
	"claritygate/quality"
)

// CleaningService runs the full pipeline for one uploaded workbook.
type CleaningService struct {
	pipeline *normalization.Pipeline
}

// NewCleaningService creates a cleaning service.
func NewCleaningService() *CleaningService {
	return &CleaningService{pipeline: normalization.NewPipeline()}
}

// CleanOutcome is the finished result of one run.
type CleanOutcome struct {
	// Filename is "{company}_{YYYYMMDD}.xlsx" in facility-local date.
	Filename string
	// Content is the rendered workbook, visitor sheet cleaned, all other
	// sheets passed through unchanged.
	Content []byte
	// VisitorCount is the summary count of real rows.
	VisitorCount int
	// IssueCount is the total validation findings, for operator feedback.
	IssueCount int
	// RecordCount is the number of rows surviving blank-row removal.
	RecordCount int
}

// CleanWorkbook runs one batch to completion. Bad cells degrade in place;
// only a structurally unusable workbook fails the run, and then no output
// is produced at all.
func (s *CleaningService) CleanWorkbook(r io.Reader, now time.Time) (*CleanOutcome, error) {
	f, parsed, err := importer.ParseVisitorWorkbook(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	batch := s.pipeline.Run(parsed.Rows)
	issues := quality.ValidateAll(batch)
	sum := normalization.Summarize(batch)

	if err := exporter.RenderCleanedWorkbook(f, batch, issues, sum); err != nil {
		return nil, fmt.Errorf("failed to render cleaned workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize cleaned workbook: %w", err)
	}

	outcome := &CleanOutcome{
		Filename:     exporter.OutputFilename(parsed.CompanyName, now),
		Content:      buf.Bytes(),
		VisitorCount: sum.VisitorCount,
		IssueCount:   len(issues),
		RecordCount:  len(batch.Records),
	}

	slog.Info("cleaning run completed",
		"company", parsed.CompanyName,
		"records", outcome.RecordCount,
		"visitors", outcome.VisitorCount,
		"issues", outcome.IssueCount,
	)

	return outcome, nil
}
