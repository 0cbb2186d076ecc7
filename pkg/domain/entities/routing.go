package entities

import "time"

// RouteVersion carries the versioning fields shared by the three routing
// relations. A row is active at a reference date when it is enabled and the
// date falls inside its effective window.
type RouteVersion struct {
	Version        int
	EffectiveStart time.Time
	EffectiveEnd   *time.Time // nil = open ended
	Enabled        bool
	// Order is the step position inside one version of the route.
	Order int
}

// RouteMeta returns the versioning fields. Embedding RouteVersion gives all
// three routing relations this accessor, which keeps version resolution
// generic over the owning entity.
func (v RouteVersion) RouteMeta() RouteVersion { return v }

// ActiveAt reports whether this row's effective window contains t.
func (v RouteVersion) ActiveAt(t time.Time) bool {
	if !v.Enabled {
		return false
	}
	if v.EffectiveStart.After(t) {
		return false
	}
	return v.EffectiveEnd == nil || !v.EffectiveEnd.Before(t)
}

// ProductOperationRoute is one step of a product's operation-type sequence:
// what must happen to the product, and in what order.
type ProductOperationRoute struct {
	ID              int
	ProductID       int
	OperationTypeID int
	RouteVersion
}

// LineWorkCenterRoute is one step of a line's work-center sequence.
// TransportTimeMinutes is the time to move material from this work center to
// the next one in the line.
type LineWorkCenterRoute struct {
	ID                   int
	LineID               int
	WorkCenterID         int
	TransportTimeMinutes int
	RouteVersion
}

// WorkCenterOperationRoute is one step of a work center's operation-type
// sequence. TransportTimeMinutes is the intra-work-center move time to the
// next step.
type WorkCenterOperationRoute struct {
	ID                   int
	Name                 string
	WorkCenterID         int
	OperationTypeID      int
	TransportTimeMinutes int
	RouteVersion
}
