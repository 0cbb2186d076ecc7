package planner

import (
	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/shopspring/decimal"
)

const minutesPerHour = 60

// runKey identifies one optional interval: a run of a product route step on a
// work center under a specific line assignment.
type runKey struct {
	lineID       int
	workCenterID int
	stepOrder    int
	runIdx       int
}

// itemVars holds the decision variables of one order item.
type itemVars struct {
	presence cpmodel.BoolVar
	// lineIDs preserves candidate order; assignments is keyed by line ID.
	lineIDs     []int
	assignments map[int]cpmodel.BoolVar

	starts    map[runKey]cpmodel.IntVar
	ends      map[runKey]cpmodel.IntVar
	durations map[runKey]int64
	intervals map[runKey]cpmodel.IntervalVar
	// machineUsage maps a run to its per-machine commitment flags. Exactly
	// one is true whenever the owning line assignment is true.
	machineUsage map[runKey]map[int]cpmodel.BoolVar
}

func newItemVars(presence cpmodel.BoolVar) *itemVars {
	return &itemVars{
		presence:     presence,
		assignments:  make(map[int]cpmodel.BoolVar),
		starts:       make(map[runKey]cpmodel.IntVar),
		ends:         make(map[runKey]cpmodel.IntVar),
		durations:    make(map[runKey]int64),
		intervals:    make(map[runKey]cpmodel.IntervalVar),
		machineUsage: make(map[runKey]map[int]cpmodel.BoolVar),
	}
}

// planModel is the CP-SAT model of one planning run together with the
// variable lookups needed to read the solution back.
type planModel struct {
	builder        *cpmodel.Builder
	horizon        cpmodel.Domain
	horizonMinutes int64
	vars           map[int]*itemVars // order item ID -> variables
	// machineIntervals collects, per physical machine, the optional
	// intervals competing for it across all items, lines and runs.
	machineIntervals map[int][]cpmodel.IntervalVar
}

// buildModel creates the decision variables of presence, line assignment,
// optional run intervals and machine usage for every pre-processed item.
// Resolution failures (no target work center, no capable machine, zero
// capacity) force the affected line assignment false so the optimizer routes
// around that line instead of receiving a half-constrained model.
func buildModel(data *planningData, routes *activeRoutes, plans []*itemPlan, horizonMinutes int64) *planModel {
	builder := cpmodel.NewCpModelBuilder()
	pm := &planModel{
		builder:          builder,
		horizon:          cpmodel.NewDomain(0, horizonMinutes),
		horizonMinutes:   horizonMinutes,
		vars:             make(map[int]*itemVars, len(plans)),
		machineIntervals: make(map[int][]cpmodel.IntervalVar),
	}
	zero := cpmodel.NewConstant(0)

	for _, plan := range plans {
		presence := builder.NewBoolVar()
		vars := newItemVars(presence)
		pm.vars[plan.item.ID] = vars

		for _, lineID := range data.candidateLines[plan.product.ID] {
			if len(routes.line[lineID]) == 0 {
				continue
			}
			vars.lineIDs = append(vars.lineIDs, lineID)
			vars.assignments[lineID] = builder.NewBoolVar()
		}
		if len(vars.lineIDs) == 0 {
			builder.AddEquality(presence, zero)
			continue
		}

		assignmentSum := cpmodel.NewLinearExpr()
		for _, lineID := range vars.lineIDs {
			assignmentSum.Add(vars.assignments[lineID])
		}
		builder.AddEquality(assignmentSum, presence)

		if plan.runs <= 0 {
			// Fully satisfied by surplus: presence may still be set, but no
			// intervals exist to schedule.
			continue
		}
		qtyPerRun := plan.producedQty.Div(decimal.NewFromInt(int64(plan.runs)))

		for _, lineID := range vars.lineIDs {
			assign := vars.assignments[lineID]
			for _, step := range plan.route {
				wc, _ := resolveStepWorkCenter(data, routes, lineID, step.OperationTypeID)
				if wc == nil {
					log.Warningf("line %d cannot perform operation type %d for product %q, forcing assignment off", lineID, step.OperationTypeID, plan.product.Name)
					builder.AddEquality(assign, zero)
					break
				}
				machines := data.machinesAt(wc.ID, step.OperationTypeID)
				if len(machines) == 0 {
					log.Warningf("no machine at work center %q performs operation type %d, forcing line %d off for item %d", wc.Name, step.OperationTypeID, lineID, plan.item.ID)
					builder.AddEquality(assign, zero)
					break
				}
				totalCapacity := 0.0
				for _, machine := range machines {
					totalCapacity += machine.Capacity
				}
				if totalCapacity <= 0 {
					log.Warningf("work center %q has zero capacity for operation type %d, forcing line %d off for item %d", wc.Name, step.OperationTypeID, lineID, plan.item.ID)
					builder.AddEquality(assign, zero)
					break
				}
				duration := runDurationMinutes(qtyPerRun, totalCapacity)

				for runIdx := 0; runIdx < plan.runs; runIdx++ {
					key := runKey{lineID: lineID, workCenterID: wc.ID, stepOrder: step.Order, runIdx: runIdx}
					start := builder.NewIntVarFromDomain(pm.horizon)
					end := builder.NewIntVarFromDomain(pm.horizon)
					size := cpmodel.NewConstant(duration)
					vars.starts[key] = start
					vars.ends[key] = end
					vars.durations[key] = duration
					vars.intervals[key] = builder.NewOptionalIntervalVar(start, size, end, assign)

					usage := make(map[int]cpmodel.BoolVar, len(machines))
					usageSum := cpmodel.NewLinearExpr()
					for _, machine := range machines {
						used := builder.NewBoolVar()
						usage[machine.ID] = used
						usageSum.Add(used)
						builder.AddImplication(used, assign)
						// A second interval under the usage literal carries
						// the no-overlap constraint per physical machine; it
						// shares the run's start and end variables so timing
						// and exclusivity cannot diverge.
						machineInterval := builder.NewOptionalIntervalVar(start, size, end, used)
						pm.machineIntervals[machine.ID] = append(pm.machineIntervals[machine.ID], machineInterval)
					}
					builder.AddEquality(usageSum, cpmodel.NewConstant(1)).OnlyEnforceIf(assign)
					vars.machineUsage[key] = usage
				}
			}
		}
	}

	return pm
}

// runDurationMinutes computes how long one run takes on the summed capacity
// of the capable machines, floored at one minute for positive quantities.
func runDurationMinutes(qtyPerRun decimal.Decimal, totalCapacityPerHour float64) int64 {
	duration := qtyPerRun.
		Div(decimal.NewFromFloat(totalCapacityPerHour)).
		Mul(decimal.NewFromInt(minutesPerHour)).
		Ceil().IntPart()
	if duration <= 0 && qtyPerRun.IsPositive() {
		duration = 1
	}
	return duration
}
