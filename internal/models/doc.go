// Package models defines the core domain models for Dinesplit.
//
// # Models
//
//   - MenuItem: a dish on the menu, with the multiset of participants who
//     ordered it
//   - Bill: one party's active bill, holding menu items and participants
//   - RestaurantPreset: a predefined restaurant (menu + pricing model),
//     loaded once and read-only at bill time
//
// Participants are identified by name strings; there are no user accounts.
// A participant name is unique within a bill (case-insensitive) and acts as
// the key into each item's OrderedBy multiset.
//
// # Design Principles
//
//  1. The Bill exclusively owns its items and participants; presets are
//     shared read-only references and are never mutated.
//  2. OrderedBy is a literal repeated-entry multiset: one entry per unit
//     ordered, duplicates meaning quantity. This keeps the persisted shape
//     identical to what external collaborators already exchange.
//  3. Mutation happens only through explicit Bill methods; the calculators
//     in the pricing package are pure functions over these models.
package models
