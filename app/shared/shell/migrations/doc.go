// Package migrations embeds the SQL schema of the ToDo table and applies it with goose.
package migrations
