package ecs

import (
	"github.com/phanxgames/lantern"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DispatchEventType is the Donburi event type for lantern dispatch records.
var DispatchEventType = events.NewEventType[lantern.DispatchRecord]()

// RouteCounts tallies dispatched events by route, indexed by
// lantern.DispatchRoute.
type RouteCounts struct {
	Routes [lantern.RouteUnclaimed + 1]int
	Total  int
}

// RouteStats is the component holding the tally on the store's stats
// entity.
var RouteStats = donburi.NewComponentType[RouteCounts]()

// DonburiStore is an EntityStore backed by a Donburi world.
type DonburiStore struct {
	world donburi.World
	stats donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Records
// are published to DispatchEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, stats: world.Create(RouteStats)}
}

// EmitEvent tallies rec and publishes it.
func (s *DonburiStore) EmitEvent(rec lantern.DispatchRecord) {
	if entry := s.world.Entry(s.stats); entry.Valid() {
		c := RouteStats.Get(entry)
		if int(rec.Route) < len(c.Routes) {
			c.Routes[rec.Route]++
		}
		c.Total++
	}
	DispatchEventType.Publish(s.world, rec)
}

// Counts returns a copy of the tally.
func (s *DonburiStore) Counts() RouteCounts {
	entry := s.world.Entry(s.stats)
	if !entry.Valid() {
		return RouteCounts{}
	}
	return *RouteStats.Get(entry)
}
