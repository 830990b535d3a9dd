package pipeline

import (
	"context"

	"github.com/cloudwego/eino/compose"

	errx "github.com/convodesk/triage-core/internal/core/error"
	"github.com/convodesk/triage-core/internal/triage/model"
	"github.com/convodesk/triage-core/internal/triage/pipeline/observers"
	"github.com/convodesk/triage-core/internal/triage/provider"
)

// Node names, shown in callback logs and compile errors.
const (
	NodeClassifier     = "classifier"
	NodeContext        = "context_formatter"
	NodeEscalationGate = "escalation_gate"
	NodeGenerator      = "response_generator"
	NodeValidator      = "response_validator"
)

const maxRunSteps = 10

// Config carries everything the pipeline needs. Provider may be nil, which
// selects canned responses for every generation.
type Config struct {
	Provider provider.Provider
	Triage   model.TriageConfig
}

// Runner executes the triage pipeline for one inbound message.
type Runner interface {
	Invoke(ctx context.Context, in model.TriageInput) (*model.Result, error)
}

type pipelineRunner struct {
	runnable compose.Runnable[*model.RequestState, *model.RequestState]
}

// GraphBuilder assembles the linear triage graph:
// classify -> format context -> escalation gate -> generate -> validate.
type GraphBuilder struct {
	graph  *compose.Graph[*model.RequestState, *model.RequestState]
	stages *stages
}

// Build compiles the triage graph and returns a reusable Runner.
func Build(ctx context.Context, cfg Config) (Runner, error) {
	b := &GraphBuilder{
		graph:  compose.NewGraph[*model.RequestState, *model.RequestState](),
		stages: newStages(cfg),
	}

	if err := b.addNodes(); err != nil {
		return nil, errx.New(err, 500, errx.SystemErrorMessage)
	}
	if err := b.addEdges(); err != nil {
		return nil, errx.New(err, 500, errx.SystemErrorMessage)
	}

	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(maxRunSteps))
	if err != nil {
		return nil, errx.New(err, 500, errx.SystemErrorMessage)
	}

	return &pipelineRunner{runnable: runnable}, nil
}

func (b *GraphBuilder) addNodes() error {
	if err := b.graph.AddLambdaNode(NodeClassifier, b.stages.newClassifierNode()); err != nil {
		return err
	}
	if err := b.graph.AddLambdaNode(NodeContext, b.stages.newContextNode()); err != nil {
		return err
	}
	if err := b.graph.AddLambdaNode(NodeEscalationGate, b.stages.newEscalationNode()); err != nil {
		return err
	}
	if err := b.graph.AddLambdaNode(NodeGenerator, b.stages.newGeneratorNode()); err != nil {
		return err
	}
	if err := b.graph.AddLambdaNode(NodeValidator, b.stages.newValidatorNode()); err != nil {
		return err
	}
	return nil
}

func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, NodeClassifier},
		{NodeClassifier, NodeContext},
		{NodeContext, NodeEscalationGate},
		{NodeEscalationGate, NodeGenerator},
		{NodeGenerator, NodeValidator},
		{NodeValidator, compose.END},
	}
	for _, e := range edges {
		if err := b.graph.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Invoke runs one message through every stage and snapshots the outcome.
func (r *pipelineRunner) Invoke(ctx context.Context, in model.TriageInput) (*model.Result, error) {
	st := &model.RequestState{
		Message: in.Message,
		History: in.History,
		Stage:   model.StageReceived,
	}

	out, err := r.runnable.Invoke(ctx, st,
		compose.WithCallbacks(observers.NewGraphLogger(), observers.NewPromptLogger()))
	if err != nil {
		return nil, errx.New(err, 500, errx.SystemErrorMessage)
	}

	out.Stage = model.StageDone
	return model.ResultFromState(out), nil
}
