// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Post is a single blog entry.
//
// Title, Content and Author are free text bound straight from the request
// body; the store does not interpret them.
type Post struct {
	// ID is the store-assigned identifier of the post.
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
