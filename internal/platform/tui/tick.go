// Package tui provides the Bubble Tea front end for Neon Dash.
// It drives the simulation clock, maps keys to actions and hosts the menus.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop that scheduled it.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var tickIDs atomic.Int64

// nextTickID returns a fresh tick loop id.
func nextTickID() int64 {
	return tickIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after one frame interval.
// Non-positive rates fall back to 60 ticks per second.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
