package commit

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type represents a conventional-commit category
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeRefactor Type = "refactor"
	TypePerf     Type = "perf"
	TypeDocs     Type = "docs"
	TypeTest     Type = "test"
	TypeChore    Type = "chore"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeStyle    Type = "style"
	TypeOther    Type = "other"
)

// Section pairs a commit type with its report label
type Section struct {
	Type  Type
	Label string
}

// Sections is the fixed ordering of commit types in a report; reports
// iterate it in declaration order.
var Sections = []Section{
	{TypeFeat, "Features"},
	{TypeFix, "Fixes"},
	{TypeRefactor, "Refactors"},
	{TypePerf, "Performance"},
	{TypeDocs, "Docs"},
	{TypeTest, "Tests"},
	{TypeChore, "Chores"},
	{TypeBuild, "Build"},
	{TypeCI, "CI"},
	{TypeStyle, "Style"},
	{TypeOther, "Other"},
}

// Known reports whether t is one of the fixed commit types
func Known(t Type) bool {
	for _, s := range Sections {
		if s.Type == t {
			return true
		}
	}
	return false
}

// Record is a single commit as decoded from the log stream
type Record struct {
	Type         Type
	Message      string
	FilesChanged int
}

// subjectPattern matches type(scope)!: message, where scope and the
// breaking-change marker are optional.
var subjectPattern = regexp.MustCompile(`^([a-zA-Z]+)(?:\(([^)]+)\))?!?:\s+(.+)$`)

// ParseSubject splits a commit subject line into its type and display
// message. The type is lower-cased, trailing periods are dropped, the
// message is capitalized, and a scope becomes a "scope: " prefix. Subjects
// that do not follow the convention come back as TypeOther with the
// subject itself as the message.
func ParseSubject(subject string) (Type, string) {
	subject = strings.TrimSpace(subject)

	ctype := TypeOther
	scope := ""
	msg := subject
	if m := subjectPattern.FindStringSubmatch(subject); m != nil {
		ctype = Type(strings.ToLower(m[1]))
		scope = m[2]
		msg = strings.TrimSpace(m[3])
	}

	msg = capitalize(strings.TrimRight(msg, "."))
	if scope != "" {
		msg = scope + ": " + msg
	}

	return ctype, msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
