// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

const FieldPostID = "id"

// PostValidator checks post identifiers. Title, content and author are free
// text and are never rejected.
type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate accepts a post id (int64), models.Post or *models.Post.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case int64:
		return v.validatePost(models.Post{ID: value}, fields...)
	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePost(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID}
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if post.ID <= 0 {
				return ErrInvalidPostID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
