package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/callvuforge/api/artifacts"
	"github.com/callvuforge/api/cvuf"
	"github.com/callvuforge/api/intake"
	"github.com/callvuforge/api/notify"
	"github.com/callvuforge/api/prompt"
	"github.com/callvuforge/api/templates"
	"github.com/callvuforge/api/validate"
)

// Meta is the diagnostic block attached to every successful response.
type Meta struct {
	RequestID          string             `json:"requestId"`
	GenerationTimeMs   int64              `json:"generationTimeMs"`
	TemplateMatch      templates.Match    `json:"templateMatch"`
	Warnings           []validate.Warning `json:"warnings"`
	StructuralWarnings []cvuf.Violation   `json:"structuralWarnings,omitempty"`
}

// Result is the full response payload for one generation request.
type Result struct {
	GeneratedCVUF         string `json:"generatedCVUF"`
	GeneratedDependencies string `json:"generatedDependencies"`
	GeneratedSetupGuide   string `json:"generatedSetupGuide"`
	GeneratedPitchPoints  string `json:"generatedPitchPoints"`
	GeneratedBuildTime    string `json:"generatedBuildTime"`
	Meta                  Meta   `json:"_meta"`
}

// Pipeline owns one request's journey from raw intake payload to assembled
// result. Nothing request-scoped is shared between invocations; the catalog
// and collaborators are read-only process-wide handles.
type Pipeline struct {
	Catalog    *templates.Catalog
	Generator  Generator
	Slack      *notify.SlackNotifier
	Sheets     *notify.SheetLogger
	Email      *notify.EmailSender
	Events     *notify.EventPublisher
	Dispatcher *notify.Dispatcher

	log *slog.Logger
}

func NewPipeline(catalog *templates.Catalog, generator Generator) *Pipeline {
	return &Pipeline{
		Catalog:    catalog,
		Generator:  generator,
		Slack:      notify.NewSlackNotifier(""),
		Sheets:     notify.NewSheetLogger(""),
		Email:      notify.NewEmailSender("", ""),
		Events:     notify.NewEventPublisher(nil),
		Dispatcher: notify.NewDispatcher(),
		log:        slog.Default().With("component", "generate.pipeline"),
	}
}

// Run executes the full synthesis pipeline for one raw intake payload. Any
// failure in document synthesis aborts the request; collaborator failures are
// logged and discarded.
func (p *Pipeline) Run(ctx context.Context, raw map[string]any) (*Result, error) {
	start := time.Now()
	requestID := fmt.Sprintf("req_%d_%s", start.UnixMilli(), uuid.New().String()[:8])

	req := intake.Normalize(raw)
	warnings := validate.Check(&req)
	match := p.Catalog.Match(req.MicroappDescription, req.OwningDepartment)

	userPrompt := prompt.Build(&req, match)

	rawOutput, err := p.Generator.Generate(ctx, prompt.System, userPrompt)
	if err != nil {
		p.logFailure(requestID, start)
		p.log.Error("generation failed", "request", requestID, "err", err)
		return nil, err
	}

	doc, err := cvuf.Parse(rawOutput)
	if err != nil {
		p.logFailure(requestID, start)
		p.log.Error("document extraction failed", "request", requestID, "err", err)
		return nil, err
	}

	violations := cvuf.Verify(doc)
	if len(violations) > 0 {
		p.log.Warn("document has structural violations", "request", requestID, "count", len(violations))
	}

	minified, err := doc.Minify()
	if err != nil {
		p.logFailure(requestID, start)
		return nil, fmt.Errorf("%w: reserialize document: %v", cvuf.ErrMalformedDocument, err)
	}

	generationTimeMs := time.Since(start).Milliseconds()

	result := &Result{
		GeneratedCVUF:         minified,
		GeneratedDependencies: artifacts.Dependencies(&req),
		GeneratedSetupGuide:   artifacts.SetupGuide(&req, doc),
		GeneratedPitchPoints:  artifacts.PitchPoints(&req),
		GeneratedBuildTime:    artifacts.EstimateBuildTime(&req),
		Meta: Meta{
			RequestID:          requestID,
			GenerationTimeMs:   generationTimeMs,
			TemplateMatch:      match,
			Warnings:           warnings,
			StructuralWarnings: violations,
		},
	}

	p.dispatchOutcome(requestID, &req, result, start)

	p.log.Info("microapp generated",
		"request", requestID,
		"template", match.TemplateID,
		"score", match.Score,
		"warnings", len(warnings),
		"ms", generationTimeMs,
	)
	return result, nil
}

// dispatchOutcome fans the successful result out to every collaborator.
// Results are discarded except for logging.
func (p *Pipeline) dispatchOutcome(requestID string, req *intake.Request, result *Result, start time.Time) {
	record := notify.Record{
		RequestID:        requestID,
		Timestamp:        start,
		Request:          req,
		TemplateMatch:    result.Meta.TemplateMatch,
		GenerationTimeMs: result.Meta.GenerationTimeMs,
		Warnings:         result.Meta.Warnings,
		Success:          true,
	}
	p.Dispatcher.Go("sheet-log", func(ctx context.Context) error {
		return p.Sheets.Log(ctx, record)
	})

	summary := notify.Summary{
		RequestID:        requestID,
		Request:          req,
		TemplateMatch:    result.Meta.TemplateMatch,
		GenerationTimeMs: result.Meta.GenerationTimeMs,
		Warnings:         result.Meta.Warnings,
	}
	p.Dispatcher.Go("slack-notify", func(ctx context.Context) error {
		return p.Slack.Notify(ctx, summary)
	})

	delivery := notify.Delivery{
		To:           req.UserEmail,
		MicroappName: req.MicroappName,
		Document:     result.GeneratedCVUF,
		Dependencies: result.GeneratedDependencies,
		SetupGuide:   result.GeneratedSetupGuide,
		PitchPoints:  result.GeneratedPitchPoints,
		BuildTime:    result.GeneratedBuildTime,
	}
	p.Dispatcher.Go("email-delivery", func(ctx context.Context) error {
		return p.Email.Send(ctx, delivery)
	})

	event := notify.Event{
		RequestID:        requestID,
		TemplateID:       result.Meta.TemplateMatch.TemplateID,
		MatchScore:       result.Meta.TemplateMatch.Score,
		WarningCount:     len(result.Meta.Warnings),
		GenerationTimeMs: result.Meta.GenerationTimeMs,
		Success:          true,
	}
	p.Dispatcher.Go("event-publish", func(ctx context.Context) error {
		return p.Events.Publish(ctx, event)
	})
}

// logFailure appends a failure record with empty inputs to the spreadsheet
// collaborator and emits a failure event. Best effort, like every dispatch.
func (p *Pipeline) logFailure(requestID string, start time.Time) {
	record := notify.Record{
		RequestID:        requestID,
		Timestamp:        start,
		GenerationTimeMs: time.Since(start).Milliseconds(),
		Success:          false,
	}
	p.Dispatcher.Go("sheet-log-failure", func(ctx context.Context) error {
		return p.Sheets.Log(ctx, record)
	})

	event := notify.Event{
		RequestID:        requestID,
		GenerationTimeMs: record.GenerationTimeMs,
		Success:          false,
	}
	p.Dispatcher.Go("event-publish-failure", func(ctx context.Context) error {
		return p.Events.Publish(ctx, event)
	})
}
