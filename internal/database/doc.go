// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, facade methods
//	├── sentwords/       # Sent-word history: exclusion list, batches, statistics, cleanup
//	└── settings/        # Key/value settings (delivery overrides and last-run status)
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./vocabulary.db", logger)
//
//	history := sentwords.NewRepository(db.DB)
//	words, err := history.GetSentHeadwords()
//
// # Interface Implementations
//
// The Database facade implements services.HistoryStore, http.HistoryStore and
// tasks.HistoryCleaner by delegating to the repositories.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register its models in NewDatabase's AutoMigrate call
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
