package api

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// minSearchQueryLen is the shortest search term the API accepts.
const minSearchQueryLen = 3

// validID checks a required positive numeric identifier.
func validID(name string, id int) error {
	if id <= 0 {
		return &ValidationError{Param: name, Reason: "must be a positive integer"}
	}
	return nil
}

// validString checks a required non-blank string argument.
func validString(name, s string) error {
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Param: name, Reason: "must be a non-empty string"}
	}
	return nil
}

// validSearchQuery checks a supplied search term against the API minimum.
func validSearchQuery(q string) error {
	if utf8.RuneCountInString(q) < minSearchQueryLen {
		return &ValidationError{
			Param:  "q",
			Reason: fmt.Sprintf("search query must be at least %d characters", minSearchQueryLen),
		}
	}
	return nil
}
