package frame

import (
	"fmt"
	"reflect"
	"time"

	"github.com/plus3/frameloop/event"
)

// Stage is one step of a loop iteration. Stages run in registration order.
type Stage interface {
	Execute(tick *Tick) error
}

// StageFunc adapts a function literal to Stage.
type StageFunc func(tick *Tick) error

func (f StageFunc) Execute(tick *Tick) error { return f(tick) }

// Tick carries the per-iteration data handed to every stage.
type Tick struct {
	Iteration uint64
	DeltaTime float64
	Events    []event.Event
	Loop      *Loop
}

// PipelineStats provides statistics about pipeline execution.
type PipelineStats struct {
	StageCount      int
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Pipeline runs an ordered list of stages and times each of them.
type Pipeline struct {
	stages     []Stage
	stageStats []*stageStatsInternal
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: make([]Stage, 0),
	}
}

// Register appends a stage to the pipeline.
func (p *Pipeline) Register(stage Stage) {
	p.stages = append(p.stages, stage)
	p.stageStats = append(p.stageStats, &stageStatsInternal{
		name:        stageName(stage),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Len returns the number of registered stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

func stageName(stage Stage) string {
	if named, ok := stage.(interface{ Name() string }); ok {
		return named.Name()
	}

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}
	if name := stageType.Name(); name != "" {
		return name
	}
	return stageType.String()
}

// Once executes every stage once. The first failing stage aborts the
// iteration and its error is returned with the stage name attached.
func (p *Pipeline) Once(tick *Tick) error {
	for i, stage := range p.stages {
		start := time.Now()
		err := stage.Execute(tick)
		duration := time.Since(start)

		stats := p.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			return fmt.Errorf("stage %s: %w", stats.name, err)
		}
	}
	return nil
}

// GetStats returns statistics about stage execution.
func (p *Pipeline) GetStats() *PipelineStats {
	stats := &PipelineStats{
		StageCount: len(p.stages),
		Stages:     make([]StageStats, len(p.stageStats)),
	}

	var totalExecs int64
	for i, internal := range p.stageStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
