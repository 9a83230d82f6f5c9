// Package ecs provides ECS adapters for lantern's event dispatch.
//
// The primary adapter is [NewDonburiStore], which bridges every dispatched
// lantern event into a [Donburi] world as a typed event and keeps a
// per-route tally on a stats entity. Subscribe to [DispatchEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
