package entities

import (
	"testing"
	"time"
)

func TestRouteVersion_ActiveAt(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	before := at.AddDate(0, -1, 0)
	after := at.AddDate(0, 1, 0)

	tests := []struct {
		name    string
		version RouteVersion
		want    bool
	}{
		{"open ended window", RouteVersion{EffectiveStart: before, Enabled: true}, true},
		{"window containing the date", RouteVersion{EffectiveStart: before, EffectiveEnd: &after, Enabled: true}, true},
		{"window end is inclusive", RouteVersion{EffectiveStart: before, EffectiveEnd: &at, Enabled: true}, true},
		{"not yet effective", RouteVersion{EffectiveStart: after, Enabled: true}, false},
		{"expired", RouteVersion{EffectiveStart: before.AddDate(-1, 0, 0), EffectiveEnd: &before, Enabled: true}, false},
		{"disabled", RouteVersion{EffectiveStart: before, Enabled: false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.ActiveAt(at); got != tt.want {
				t.Errorf("ActiveAt() = %v, want %v", got, tt.want)
			}
		})
	}
}
