// Package config provides configuration management for the console data
// layer.
//
// This package handles loading and validating process-wide settings from
// environment variables and an optional configuration file.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - CONSOLE_SIGNATURE_METHOD: HMAC method for credential derivation
//   - CONSOLE_SERVER_SECRET: Server-side signing secret
//   - CONSOLE_API_KEY: Reserved platform key for the console owner
//   - CONSOLE_INSTANCE_NAME_PREFIX: Prefix applied to instance names
//   - CONSOLE_FORBIDDEN_NAMES: Reserved instance names
//   - DATABASE_URL: Database connection
package config
