// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "strings"

// SQLite reports constraint failures through its message text; matching on
// it keeps this file free of cgo-only driver types.
const (
	sqliteUniqueConstraintFailed = "UNIQUE constraint failed"
	sqliteUnableToOpen           = "unable to open database file"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, sqliteUniqueConstraintFailed):
		return UniqueViolation
	case strings.Contains(msg, sqliteUnableToOpen):
		return ConnectionFailure
	}

	return Unclassified
}
