// Package integrity provides system health checks.
//
// Unlike the 'devicesync' package which reconciles inventory content,
// this package validates the infrastructure the synchronization jobs depend on.
//
// # Checks Provided
//
//   - Schema: Validates that every inventory table and column expected by the dcim models exists.
//   - Storage: Checks that the bucket job reports are archived in exists.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
