package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"peilbuis/internal/aggregation"
	"peilbuis/internal/config"
	"peilbuis/internal/dataprocessing"
	"peilbuis/internal/exporter"
	"peilbuis/internal/infrastructure"
	"peilbuis/internal/validation"
	"peilbuis/pkg/contracts/domain"
)

// ProcessResult describes a completed run
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Wells      []domain.WellAggregate
	Summary    domain.AggregationSummary
	Duration   time.Duration
}

// SurveyService runs one survey file through parsing, aggregation and export
type SurveyService struct {
	output    config.OutputConfig
	parser    *dataprocessing.Parser
	writer    exporter.Writer
	validator *validation.FileValidator
	tracer    trace.Tracer
	metrics   *infrastructure.AggregationMetrics
	logger    *slog.Logger
}

// Option configures a SurveyService
type Option func(*SurveyService)

// WithTracer sets the tracer used for pipeline spans
func WithTracer(tracer trace.Tracer) Option {
	return func(s *SurveyService) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithMetrics sets the instruments updated after every run
func WithMetrics(metrics *infrastructure.AggregationMetrics) Option {
	return func(s *SurveyService) {
		s.metrics = metrics
	}
}

// NewSurveyService creates a survey service from the application config
func NewSurveyService(cfg *config.Config, logger *slog.Logger, opts ...Option) (*SurveyService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "survey_service")

	writer, err := exporter.New(cfg.Output, logger)
	if err != nil {
		return nil, err
	}

	s := &SurveyService{
		output:    cfg.Output,
		parser:    dataprocessing.NewParser(dataprocessing.OptionsFromConfig(cfg.Input), logger),
		writer:    writer,
		validator: validation.NewFileValidator(logger),
		tracer:    noop.NewTracerProvider().Tracer(infrastructure.MeterName),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Process aggregates the survey file at inputPath and writes the result
// table. An empty outputPath places the result next to the input. Nothing
// is written when any stage fails.
func (s *SurveyService) Process(ctx context.Context, inputPath, outputPath string) (*ProcessResult, error) {
	if inputPath == "" {
		return nil, ErrNoInput
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	logger := s.logger.With(slog.String("trace_id", infrastructure.GetTraceID(ctx)))

	if outputPath == "" {
		outputPath = config.ResultPath(inputPath, s.output.Suffix, s.output.Format)
	}

	ctx, span := s.tracer.Start(ctx, "survey.process", trace.WithAttributes(
		attribute.String("input", inputPath),
		attribute.String("output", outputPath),
	))
	defer span.End()

	start := time.Now()
	result, err := s.run(ctx, logger, inputPath, outputPath)
	duration := time.Since(start)

	var summary *domain.AggregationSummary
	if result != nil {
		result.Duration = duration
		summary = &result.Summary
	}
	s.metrics.RecordRun(ctx, summary, duration, err)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		logger.Error("Survey processing failed",
			slog.String("input", inputPath),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Survey processed",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Int("readings", result.Summary.Readings),
		slog.Int("wells", result.Summary.Wells),
		slog.Int("accuracy_rejected", result.Summary.AccuracyRejected),
		slog.Int("deviation_rejected", result.Summary.DeviationRejected),
		slog.Int("wells_without_centroid", result.Summary.WithoutCentroid),
		slog.Duration("duration", duration))

	return result, nil
}

func (s *SurveyService) run(ctx context.Context, logger *slog.Logger, inputPath, outputPath string) (*ProcessResult, error) {
	if err := s.validator.ValidateInputFile(inputPath); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateOutputPath(outputPath, inputPath, s.output.Format); err != nil {
		return nil, err
	}

	readings, err := s.parse(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	agg, err := s.aggregate(ctx, readings)
	if err != nil {
		return nil, err
	}

	for _, n := range agg.Notices {
		logger.Debug("Well notice",
			slog.String("well_id", n.WellID),
			slog.String("kind", string(n.Kind)),
			slog.String("text", n.Text))
	}

	if err := s.export(ctx, outputPath, agg.Wells); err != nil {
		return nil, err
	}

	return &ProcessResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Wells:      agg.Wells,
		Summary:    agg.Summary,
	}, nil
}

func (s *SurveyService) parse(ctx context.Context, inputPath string) ([]domain.Reading, error) {
	_, span := s.tracer.Start(ctx, "survey.parse")
	defer span.End()

	readings, err := s.parser.ParseFile(inputPath)
	if err != nil {
		err = classify("parse", err)
		infrastructure.RecordError(trace.ContextWithSpan(ctx, span), err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("readings", len(readings)))
	return readings, nil
}

func (s *SurveyService) aggregate(ctx context.Context, readings []domain.Reading) (*aggregation.Result, error) {
	_, span := s.tracer.Start(ctx, "survey.aggregate")
	defer span.End()

	result, err := aggregation.Aggregate(readings)
	if err != nil {
		err = classify("aggregate", err)
		infrastructure.RecordError(trace.ContextWithSpan(ctx, span), err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("wells", result.Summary.Wells),
		attribute.Int("accuracy_rejected", result.Summary.AccuracyRejected),
		attribute.Int("deviation_rejected", result.Summary.DeviationRejected),
	)
	return result, nil
}

func (s *SurveyService) export(ctx context.Context, outputPath string, wells []domain.WellAggregate) error {
	_, span := s.tracer.Start(ctx, "survey.export", trace.WithAttributes(
		attribute.String("format", s.output.Format),
	))
	defer span.End()

	if err := s.writer.Write(outputPath, wells); err != nil {
		err = classify("export", err)
		infrastructure.RecordError(trace.ContextWithSpan(ctx, span), err)
		return err
	}
	return nil
}
