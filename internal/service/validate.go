// Package service implements the domain operations on users and thoughts.
package service

import (
	"fmt"
	"regexp"
	"strings"

	"ripple/internal/models"
)

// emailPattern is the basic local@domain.tld shape enforced on user emails.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateUsername(username string) []string {
	if strings.TrimSpace(username) == "" {
		return []string{"Username is required"}
	}
	return nil
}

func validateEmail(email string) []string {
	if email == "" {
		return []string{"Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return []string{"Email must be a valid email address"}
	}
	return nil
}

func validateThoughtText(text string) []string {
	if text == "" {
		return []string{"Thought text is required"}
	}
	if len(text) > models.MaxThoughtTextLen {
		return []string{fmt.Sprintf("Thought text must be at most %d characters", models.MaxThoughtTextLen)}
	}
	return nil
}

func validateReactionBody(body string) []string {
	if body == "" {
		return []string{"Reaction body is required"}
	}
	if len(body) > models.MaxReactionBodyLen {
		return []string{fmt.Sprintf("Reaction body must be at most %d characters", models.MaxReactionBodyLen)}
	}
	return nil
}
