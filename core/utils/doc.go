// Package utils provides small conversion helpers shared across the roll-checker application.
// It covers human-readable size tokens, megabyte limits and comma-separated identifier lists.
package utils
