// Package routes maps portal hash fragments to top-level views. The web
// client delegates navigation decisions here so the rule order lives in one
// place.
package routes

import (
	"fmt"
	"strings"

	"github.com/ituna-edu/portal-api/internal/models"
)

// View identifies exactly one top-level page composition.
type View string

const (
	ViewNewsArticle    View = "news_article"
	ViewTeacherProfile View = "teacher_profile"
	ViewStudentProfile View = "student_profile"
	ViewAdminDashboard View = "admin_dashboard"
	ViewLogin          View = "login"
	ViewSignUp         View = "signup"
	ViewLanding        View = "landing"
)

// Route is the resolved selection for a hash fragment. ID is the raw third
// path segment for entity views; validating it is the view's concern.
type Route struct {
	View View   `json:"view"`
	ID   string `json:"id,omitempty"`
}

// rule is one row of the resolution table. Rows are evaluated top to bottom;
// the first match wins.
type rule struct {
	matches func(hash string) bool
	resolve func(hash string) Route
}

func prefixRule(prefix string, view View) rule {
	return rule{
		matches: func(hash string) bool { return strings.HasPrefix(hash, prefix) },
		resolve: func(hash string) Route {
			return Route{View: view, ID: pathSegment(hash, 2)}
		},
	}
}

func exactRule(hash string, view View) rule {
	return rule{
		matches: func(h string) bool { return h == hash },
		resolve: func(string) Route { return Route{View: view} },
	}
}

// Resolver decides which view a hash fragment selects.
type Resolver struct {
	rules []rule
}

// NewResolver builds the resolution table. The final row is an unconditional
// fallback to the landing page, so resolution never fails.
func NewResolver() *Resolver {
	return &Resolver{
		rules: []rule{
			prefixRule("#/news/", ViewNewsArticle),
			prefixRule("#/teachers/", ViewTeacherProfile),
			prefixRule("#/students/", ViewStudentProfile),
			exactRule("#admin", ViewAdminDashboard),
			exactRule("#login", ViewLogin),
			exactRule("#signup", ViewSignUp),
			{
				matches: func(string) bool { return true },
				resolve: func(string) Route { return Route{View: ViewLanding} },
			},
		},
	}
}

// Resolve returns the view selection for the given hash fragment. In-page
// anchors, empty hashes and anything unrecognized fall through to landing.
func (r *Resolver) Resolve(hash string) Route {
	for _, rule := range r.rules {
		if rule.matches(hash) {
			return rule.resolve(hash)
		}
	}
	// Unreachable: the table ends with an unconditional row.
	return Route{View: ViewLanding}
}

// IsPageNavigation reports whether navigating to hash replaces the page, in
// which case the client must scroll to the document origin. Plain anchors
// like "#faq" are left to native in-page scrolling.
func IsPageNavigation(hash string) bool {
	if strings.HasPrefix(hash, "#/") {
		return true
	}
	switch hash {
	case "#admin", "#login", "#signup":
		return true
	}
	return false
}

// LoginRedirect is the hash a freshly authenticated user lands on: students
// go to their own profile, everyone else to the landing page.
func LoginRedirect(user models.CurrentUser) string {
	if user.Role == models.RoleStudent {
		return fmt.Sprintf("#/students/%d", user.ID)
	}
	return "#"
}

// LogoutRedirect is the hash used after signing out.
func LogoutRedirect() string {
	return "#"
}

// pathSegment returns the n-th slash-separated segment of the hash, counting
// from the leading "#". Missing segments yield "".
func pathSegment(hash string, n int) string {
	parts := strings.Split(hash, "/")
	if n >= len(parts) {
		return ""
	}
	return parts[n]
}
