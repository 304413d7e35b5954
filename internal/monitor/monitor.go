// Package monitor implements an optional live dashboard for a
// rulesfinder run: fragment-indexing progress, candidate-rule
// retirement progress, and the rolling log of emitted rules.
package monitor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Monitor is a small tview dashboard. It is safe to leave unstarted: a
// nil *Monitor is never passed around, callers construct one only when
// --tui is requested.
type Monitor struct {
	app    *tview.Application
	layout *tview.Flex

	fragmentView *tview.TextView
	rulesView    *tview.TextView
	emittedView  *tview.TextView

	fragmentTotal int64
	rulesTotal    int64
}

// New builds the dashboard layout but does not start the event loop.
func New() *Monitor {
	m := &Monitor{app: tview.NewApplication()}

	m.fragmentView = tview.NewTextView().SetDynamicColors(true)
	m.fragmentView.SetBorder(true).SetTitle(" Fragment index ")

	m.rulesView = tview.NewTextView().SetDynamicColors(true)
	m.rulesView.SetBorder(true).SetTitle(" Candidate rules ")

	m.emittedView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	m.emittedView.SetBorder(true).SetTitle(" Emitted rules ")

	top := tview.NewFlex().
		AddItem(m.fragmentView, 0, 1, false).
		AddItem(m.rulesView, 0, 1, false)

	m.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 5, 0, false).
		AddItem(m.emittedView, 0, 1, false)

	m.app.SetRoot(m.layout, true)
	m.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			m.app.Stop()
			return nil
		}
		return ev
	})

	return m
}

// Run starts the tview event loop; it blocks until Stop is called or
// the user quits with q/Escape.
func (m *Monitor) Run() error {
	return m.app.Run()
}

// Stop ends the event loop.
func (m *Monitor) Stop() {
	m.app.Stop()
}

// AppendEmitted appends one line to the rolling emitted-rule log.
func (m *Monitor) AppendEmitted(line string) {
	m.app.QueueUpdateDraw(func() {
		fmt.Fprintln(m.emittedView, line)
	})
}

// FragmentProgress adapts the dashboard's fragment panel to
// fragment.Progress.
func (m *Monitor) FragmentProgress() *fragmentProgress { return &fragmentProgress{m} }

// RuleProgress adapts the dashboard's candidate-rule panel to
// engine.RulesProgress.
func (m *Monitor) RuleProgress() *ruleProgress { return &ruleProgress{m} }

type fragmentProgress struct{ m *Monitor }

func (p *fragmentProgress) SetTotal(total int64) { p.m.fragmentTotal = total }
func (p *fragmentProgress) SetMessage(msg string) {
	p.m.redrawFragment(msg)
}
func (p *fragmentProgress) SetPosition(pos int64) {
	p.m.redrawFragment(fmt.Sprintf("%d/%d cleartexts indexed", pos, p.m.fragmentTotal))
}
func (p *fragmentProgress) Finish() { p.m.redrawFragment("done") }

type ruleProgress struct{ m *Monitor }

func (p *ruleProgress) SetTotal(total int64) { p.m.rulesTotal = total }
func (p *ruleProgress) SetMessage(msg string) {
	p.m.redrawRules(msg)
}
func (p *ruleProgress) SetPosition(pos int64) {
	p.m.redrawRules(fmt.Sprintf("%d/%d candidate rules processed", pos, p.m.rulesTotal))
}
func (p *ruleProgress) Finish() { p.m.redrawRules("done") }

func (m *Monitor) redrawFragment(msg string) {
	m.app.QueueUpdateDraw(func() {
		m.fragmentView.SetText(msg)
	})
}

func (m *Monitor) redrawRules(msg string) {
	m.app.QueueUpdateDraw(func() {
		m.rulesView.SetText(msg)
	})
}
