// Package config loads and saves configuration files in JSON or YAML and
// resolves them across a small search path.
//
// Format selection:
//
//	A path ending in ".json" (any case) is JSON; everything else is YAML.
//
// Search order used by Find and LoadFromSearchPath:
//
//  1. the user's home directory
//  2. the current directory
//  3. the name taken literally
//
// Configuration is decoded into caller-owned typed structures. BalanceConfig
// is the structure consumed by the stratify command.
//
// Errors:
//
//   - ErrNotFound:      no candidate path holds the file.
//   - ErrInvalidConfig: a BalanceConfig failed validation.
package config
