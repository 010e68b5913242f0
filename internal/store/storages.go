// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-blog/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}
}
