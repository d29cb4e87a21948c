// Package model defines the database models for the hosting console.
//
// This package contains GORM models that map to the console database schema.
// The schema follows the upstream console conventions: entity tables carry a
// "_t" suffix, assignment (join) tables a "_asgn_t" suffix and archive tables
// an "_arch_t" suffix. Assignment and archive tables are immutable as far as
// credential issuance is concerned: rows in them never own app keys.
//
// # Core Models
//
//   - AppKey: issued API credentials (client id/secret) bound to an owner
//   - User: console users, the primary owner kind
//   - ServiceUser: machine accounts with a configurable owner type
//   - Cluster: a group of servers hosting instances
//   - Server: a single host, assignable to clusters
//   - Instance: a hosted application instance
//   - Mount: a filesystem mount with explicit owner columns
//   - Snapshot: an instance snapshot, owned through its user
//   - ClusterServer: the cluster/server assignment rows
//   - OwnerHash: hashed (owner id, owner type) lookup rows
//
// Ownership is polymorphic: an AppKey (or an assignment row) points at a row
// in any of several tables, disambiguated by an OwnerType code. The owner
// package resolves those codes back to concrete models.
package model
