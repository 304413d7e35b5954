package main

import "github.com/cheggaaa/pb/v3"

// barProgress adapts a cheggaaa/pb bar to the fragment.Progress and
// engine.RulesProgress interfaces, which only need total/message/
// position/finish.
type barProgress struct {
	bar    *pb.ProgressBar
	suffix string
}

func newBarProgress(suffix string) *barProgress {
	bar := pb.New(0)
	bar.SetTemplateString(`{{ etime . }} {{ bar . }} {{ counters . }} {{ string . "msg" }}` + suffix)
	return &barProgress{bar: bar, suffix: suffix}
}

func (p *barProgress) SetTotal(total int64) {
	p.bar.SetTotal(total)
	p.bar.Start()
}

func (p *barProgress) SetMessage(msg string) { p.bar.Set("msg", msg) }
func (p *barProgress) SetPosition(pos int64) { p.bar.SetCurrent(pos) }
func (p *barProgress) Finish()               { p.bar.Finish() }
