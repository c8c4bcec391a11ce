package util

import "database/sql"

// StringToNullString converts a string to sql.NullString. An empty string
// becomes NULL, matching how Oracle stores it anyway.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
