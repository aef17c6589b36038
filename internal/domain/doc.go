// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/project).
// This root package holds the sentinel errors and validation types shared
// across all entities.
package domain
