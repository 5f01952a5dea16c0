// Package domain contains the core domain model for Gradebook.
//
// The domain is format- and persistence-agnostic: it does not depend on CSV
// parsing, spreadsheets, or the filesystem. Infra/adapters map into/from these
// types.
package domain
