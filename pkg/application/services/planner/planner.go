// Package planner implements the production planning engine: it resolves
// time-versioned routing data into an active routing graph, nets demand
// against surplus, translates the result into a CP-SAT model with boolean and
// interval decision variables, and extracts a concrete schedule (or an
// explained non-schedule) from the solver's solution.
package planner

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"

	"github.com/metalflow/scheduler/pkg/application/dto"
	"github.com/metalflow/scheduler/pkg/domain/repositories"
)

// Config holds planner tuning knobs.
type Config struct {
	// SolveTimeLimit bounds the wall-clock time of one solver call.
	SolveTimeLimit time.Duration
}

// DefaultConfig returns the planner defaults.
func DefaultConfig() Config {
	return Config{SolveTimeLimit: 60 * time.Second}
}

// DataSource bundles the read-only repositories one planning run consumes.
type DataSource struct {
	Lines        repositories.LineRepository
	WorkCenters  repositories.WorkCenterRepository
	Operations   repositories.OperationRepository
	Products     repositories.ProductRepository
	Surplus      repositories.SurplusRepository
	Routing      repositories.RoutingRepository
	Availability repositories.AvailabilityRepository
	Orders       repositories.ProductionOrderRepository
}

// buildFunc validates the built model and exports its proto. Injectable so
// tests can force validation failures without a malformed dataset.
type buildFunc func(*cpmodel.Builder) (*cmpb.CpModelProto, error)

// solveFunc runs the CP-SAT solver on a validated model proto. Injectable so
// tests can stub terminal solver outcomes.
type solveFunc func(*cmpb.CpModelProto, *sppb.SatParameters) (*cmpb.CpSolverResponse, error)

// Planner orchestrates one planning run: load, resolve, preprocess, model,
// constrain, solve, materialize. Each run builds an independent model; a
// Planner is safe for concurrent use.
type Planner struct {
	config Config
	data   DataSource
	build  buildFunc
	solve  solveFunc
}

// New creates a Planner over the given data source.
func New(config Config, data DataSource) *Planner {
	if config.SolveTimeLimit <= 0 {
		config.SolveTimeLimit = DefaultConfig().SolveTimeLimit
	}
	return &Planner{
		config: config,
		data:   data,
		build: func(b *cpmodel.Builder) (*cmpb.CpModelProto, error) {
			return b.Model()
		},
		solve: func(m *cmpb.CpModelProto, params *sppb.SatParameters) (*cmpb.CpSolverResponse, error) {
			return cpmodel.SolveCpModelWithParameters(m, params)
		},
	}
}

// runState tracks the linear progress of one planning run. A stage may
// short-circuit straight to results extraction; stages never retry.
type runState int

const (
	stateInit runState = iota
	stateDataLoaded
	statePreprocessed
	stateModelBuilt
	stateValidated
	stateSolved
	stateResultsExtracted
)

func (s runState) String() string {
	switch s {
	case stateInit:
		return "Init"
	case stateDataLoaded:
		return "DataLoaded"
	case statePreprocessed:
		return "Preprocessed"
	case stateModelBuilt:
		return "ModelBuilt"
	case stateValidated:
		return "Validated"
	case stateSolved:
		return "Solved"
	case stateResultsExtracted:
		return "ResultsExtracted"
	default:
		return "Unknown"
	}
}

// Plan executes one planning run for the given input. It never returns an
// error: every failure is absorbed into the result's status and per-item
// reasons, so the caller always receives a well-formed plan.
func (p *Planner) Plan(ctx context.Context, input dto.PlanningInput) *dto.PlanResult {
	started := time.Now()
	log.Infof("starting production planning for horizon %s to %s", input.HorizonStart.Format(time.RFC3339), input.HorizonEnd.Format(time.RFC3339))

	result := &dto.PlanResult{
		PlanOverallDeadline:  input.HorizonEnd,
		SolverStatus:         dto.StatusNotSolved,
		EstimatedTotalProfit: decimal.Zero,
	}
	state := stateInit
	var plans []*itemPlan
	var excluded []excludedItem

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("planning run failed in state %s: %v", state, r)
			result.ScheduledRuns = nil
			result.GeneratedSurplus = nil
			result.UnscheduledOrderItems = nil
			result.SolverStatus = dto.StatusError
			markAllUnscheduled(result, plans, excluded, fmt.Sprintf("planning error: %v", r))
		}
		log.Infof("production planning finished with status %s after %s", result.SolverStatus, time.Since(started))
	}()

	data, err := p.loadData(ctx, input)
	if err != nil {
		log.Errorf("planning data load failed: %v", err)
		result.SolverStatus = dto.StatusError
		return result
	}
	state = stateDataLoaded

	horizonMinutes := int64(0)
	if input.HorizonEnd.After(input.HorizonStart) {
		horizonMinutes = int64(math.Ceil(input.HorizonEnd.Sub(input.HorizonStart).Minutes()))
	}
	log.V(1).Infof("planning horizon spans %d minutes", horizonMinutes)

	routes := resolveRoutes(data, input.HorizonStart)
	plans, excluded = preprocess(data, routes, input.HorizonStart)
	state = statePreprocessed
	log.V(1).Infof("pre-processed %d items, excluded %d", len(plans), len(excluded))

	if len(plans) == 0 {
		if len(excluded) == 0 {
			log.Warning("no enabled production order items to schedule")
		}
		result.SolverStatus = dto.StatusNoItems
		markAllUnscheduled(result, nil, excluded, "")
		state = stateResultsExtracted
		return result
	}

	pm := buildModel(data, routes, plans, horizonMinutes)
	addConstraints(pm, data, routes, plans, input.HorizonStart)
	p.addObjective(pm, data, plans)
	state = stateModelBuilt

	model, err := p.build(pm.builder)
	if err != nil {
		log.Errorf("model validation failed: %v", err)
		result.SolverStatus = dto.StatusModelInvalid
		markAllUnscheduled(result, plans, excluded, fmt.Sprintf("invalid model: %v", err))
		state = stateResultsExtracted
		return result
	}
	state = stateValidated

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(p.config.SolveTimeLimit.Seconds()),
	}
	solveStart := time.Now()
	response, err := p.solve(model, params)
	result.SolverSolveTime = time.Since(solveStart)
	if err != nil {
		log.Errorf("solver failed: %v", err)
		result.SolverStatus = dto.StatusSolverException
		markAllUnscheduled(result, plans, excluded, fmt.Sprintf("solver exception: %v", err))
		state = stateResultsExtracted
		return result
	}
	state = stateSolved

	status := response.GetStatus()
	result.SolverStatus = status.String()
	log.Infof("solver finished with status %s in %s", result.SolverStatus, result.SolverSolveTime)

	switch status {
	case cmpb.CpSolverStatus_OPTIMAL, cmpb.CpSolverStatus_FEASIBLE:
		materialize(result, response, pm, data, plans, excluded, input.HorizonStart)
	case cmpb.CpSolverStatus_MODEL_INVALID:
		result.SolverStatus = dto.StatusModelInvalid
		markAllUnscheduled(result, plans, excluded, "invalid model rejected by solver")
	default:
		markAllUnscheduled(result, plans, excluded, fmt.Sprintf("solver status was %s", status))
	}
	state = stateResultsExtracted
	return result
}

// addObjective maximizes the priority-weighted count of present items. The
// weight of an item is (max product priority + 1) minus its product's
// priority, floored at 1, so numerically lower priorities win ties.
func (p *Planner) addObjective(pm *planModel, data *planningData, plans []*itemPlan) {
	maxPriority := 0
	for _, product := range data.products {
		if product.Priority > maxPriority {
			maxPriority = product.Priority
		}
	}

	objective := cpmodel.NewLinearExpr()
	terms := 0
	for _, plan := range plans {
		vars := pm.vars[plan.item.ID]
		if vars == nil {
			continue
		}
		weight := int64(maxPriority + 1 - plan.product.Priority)
		if weight < 1 {
			weight = 1
		}
		objective.AddTerm(vars.presence, weight)
		terms++
	}
	if terms > 0 {
		pm.builder.Maximize(objective)
		log.V(1).Infof("objective maximizes weighted presence over %d items", terms)
	}
}
