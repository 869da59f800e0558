package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/observability"
	"github.com/matzehuels/shadowboard/pkg/render"
	"github.com/matzehuels/shadowboard/pkg/shadow"
)

// Result holds the output of a pipeline run.
type Result struct {
	Blocks    []board.Point
	Scores    shadow.Grid
	Detected  shadow.Detection
	Heatmap   render.Heatmap
	Artifacts map[string][]byte
	Stats     Stats
}

// Stats contains timing and size information for a pipeline run.
type Stats struct {
	ScoreTime     time.Duration
	RenderTime    time.Duration
	BlockCount    int
	AngleCount    int
	DetectedCount int
	MaxScore      float64
}

// Runner executes pipeline runs with a shared logger.
//
// The Runner keeps no state between runs; multiple goroutines can safely
// use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete score → detect → render pipeline.
// The context is checked between stages and between output formats.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Score(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Heatmap, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Score runs the score and detect stages only. Result.Artifacts is empty.
func (r *Runner) Score(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForScore(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 1: Score
	scoreStart := time.Now()
	blocks, err := opts.ResolveBlocks()
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	hooks := observability.Pipeline()
	hooks.OnScoreStart(ctx, len(blocks), len(opts.Angles))

	scores, detected, err := scoreAndDetect(ctx, blocks, opts)
	hooks.OnScoreComplete(ctx, detected.Count(), time.Since(scoreStart), err)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Blocks:    blocks,
		Scores:    scores,
		Detected:  detected,
		Artifacts: make(map[string][]byte),
		Heatmap: render.Heatmap{
			Scores:    scores,
			Detected:  detected,
			Threshold: opts.Threshold,
			Angles:    opts.Angles,
			Blocks:    blocks,
			Colormap:  opts.Colormap,
			Title:     opts.Title,
		},
		Stats: Stats{
			ScoreTime:     time.Since(scoreStart),
			BlockCount:    len(blocks),
			AngleCount:    len(opts.Angles),
			DetectedCount: detected.Count(),
			MaxScore:      scores.Max(),
		},
	}

	opts.Logger.Info("computed scores",
		"blocks", result.Stats.BlockCount,
		"angles", result.Stats.AngleCount,
		"max", result.Stats.MaxScore,
		"detected", result.Stats.DetectedCount,
		"duration", result.Stats.ScoreTime)
	opts.Logger.Debug("detected cells", "cells", detected.Labels(), "threshold", opts.Threshold)

	return result, nil
}

// scoreAndDetect runs the engine and classifies the result.
func scoreAndDetect(ctx context.Context, blocks []board.Point, opts Options) (shadow.Grid, shadow.Detection, error) {
	scores, err := shadow.ComputeShadowScore(blocks, opts.Angles)
	if err != nil {
		return shadow.Grid{}, shadow.Detection{}, fmt.Errorf("score: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return shadow.Grid{}, shadow.Detection{}, err
	}

	// Stage 2: Detect
	detected, err := shadow.Detect(scores, opts.Threshold)
	if err != nil {
		return shadow.Grid{}, shadow.Detection{}, fmt.Errorf("detect: %w", err)
	}
	return scores, detected, nil
}

// Render produces one artifact per requested format.
func (r *Runner) Render(ctx context.Context, h render.Heatmap, opts Options) (artifacts map[string][]byte, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	defer func(start time.Time) {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}(time.Now())

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		data, err := Render(ctx, h, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		opts.Logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", time.Since(start))
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
