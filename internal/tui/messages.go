package tui

import (
	"handouts/internal/insight"
	"handouts/internal/session"
)

// Every async result carries the generation it was requested under. The
// Update loop drops results whose generation is stale: a later navigation
// or submission has superseded them, and a stale write must never mutate
// state for a view that is no longer current.

// authResultMsg is the outcome of a login or signup call.
type authResultMsg struct {
	gen      int
	identity session.Identity
	isNew    bool
	err      error
}

// analysisMsg carries the structured reading of a raw intake request.
// A nil analysis means the provider had nothing; the form stays as typed.
type analysisMsg struct {
	gen      int
	analysis *insight.Analysis
}

// optimizeMsg carries the polished description text.
type optimizeMsg struct {
	gen  int
	text string
}

// dashboardMsg carries the concurrently loaded dashboard data.
type dashboardMsg struct {
	gen  int
	data insight.DashboardData
}

// profileInsightMsg carries the personalized profile note.
type profileInsightMsg struct {
	gen  int
	note string
}

// geocodeMsg carries the reverse-geocoded location label.
type geocodeMsg struct {
	gen   int
	label string
}
