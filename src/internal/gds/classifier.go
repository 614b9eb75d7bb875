// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gds

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Intent is the outcome of [Classify].
type Intent int

const (
	// Generic is any prompt that is not a login request.
	Generic Intent = iota
	// Login is a prompt asking for a sign-in form.
	Login
)

func (i Intent) String() string {
	if i == Login {
		return "login"
	}
	return "generic"
}

// loginKeywords are lower-case English and Finnish sign-in phrases.
// Finnish entries are stems so inflected forms ("kirjautuminen", "sisäänkirjautumissivu") match.
var loginKeywords = []string{
	"login",
	"log in",
	"log-in",
	"sign in",
	"signin",
	"sign-in",
	"kirjaudu",
	"kirjautum",
	"sisäänkirjaut",
}

// Classify reports whether prompt asks for a login form.
//
// Matching is a case-insensitive substring test over a fixed keyword set,
// so the result does not depend on keyword order.
func Classify(prompt string) Intent {
	// a Caser keeps internal state and must not be shared between goroutines
	lowered := cases.Lower(language.Und).String(prompt)
	for _, kw := range loginKeywords {
		if strings.Contains(lowered, kw) {
			return Login
		}
	}
	return Generic
}

// Keywords returns the login keyword set.
func Keywords() []string { return append([]string(nil), loginKeywords...) }
