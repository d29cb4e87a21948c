// Package main implements consolectl, the operator CLI for the hosting
// console data layer.
//
// The data layer models clusters, servers, hosted instances, users and
// their API credentials ("app keys") over PostgreSQL. consolectl exposes
// the day-to-day operations on that data:
//
//	# Show effective configuration and where each value came from
//	consolectl configuration show
//
//	# Issue, list and revoke app keys
//	consolectl appkey create --owner-id 42 --owner-type user
//	consolectl appkey list --owner-id 42 --owner-type user
//	consolectl appkey revoke --owner-id 42 --owner-type user
//
//	# Resolve an owner pair to its concrete row
//	consolectl owner resolve --owner-id 5 --owner-type cluster
//
//	# Block until the database accepts connections
//	consolectl wait
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - CONSOLE_SERVER_SECRET: Server-side signing secret
//   - CONSOLE_SIGNATURE_METHOD: HMAC method (sha1, sha256, sha512)
//   - CONSOLE_LOG_LEVEL: Log level (debug for SQL logging)
package main
