// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

var (
	userTable = models.User{}.TableName()
	postTable = models.Post{}.TableName()

	postColumns = []string{"id", "title", "content", "author"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(userTable).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("id", "username", "password_hash").
		From(userTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildListPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(postColumns...).
		From(postTable).
		OrderBy("id").
		ToSql()
}

func buildGetPostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(postColumns...).
		From(postTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(postTable).
		Columns("title", "content", "author").
		Values(post.Title, post.Content, post.Author).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Update(postTable).
		Set("title", post.Title).
		Set("content", post.Content).
		Set("author", post.Author).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(postTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
