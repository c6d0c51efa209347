package hud

import (
	"unicode"

	"github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/fsm"
	"github.com/automoto/cryptcrawl/services"
	"github.com/automoto/cryptcrawl/tick"
)

// Dialog types pages of text out one rune at a time.
type Dialog struct {
	cfg   config.DialogConfig
	audio services.Audio

	pages    [][]rune
	page     int
	revealed int
	typed    float64

	dt    float64
	input services.Input

	a       *fsm.Automaton
	typing  *fsm.Node
	waiting *fsm.Node
}

func NewDialog(cfg config.DialogConfig, audio services.Audio) *Dialog {
	if audio == nil {
		audio = services.Silent{}
	}
	d := &Dialog{
		cfg:   cfg,
		audio: audio,
		a:     fsm.NewAutomaton(),
	}

	d.typing = &fsm.Node{
		Name: "typing",
		Enter: func() {
			d.revealed = 0
			d.typed = 0
		},
		Update: func() fsm.Flow[*fsm.Node] {
			text := d.pages[d.page]
			if d.input.JustPressed(config.ActionConfirm) {
				d.revealed = len(text)
				return d.waiting.Goto()
			}

			d.typed += d.cfg.CharsPerSecond * d.dt
			for d.revealed < len(text) && float64(d.revealed) < d.typed {
				r := text[d.revealed]
				d.revealed++
				if d.cfg.BlipEvery > 0 && d.revealed%d.cfg.BlipEvery == 0 && !unicode.IsSpace(r) {
					d.audio.PlaySFX(config.SoundBlip)
				}
			}
			if d.revealed >= len(text) {
				return d.waiting.Goto()
			}
			return fsm.Continue[*fsm.Node]()
		},
	}
	d.waiting = &fsm.Node{
		Name: "waiting",
		Update: func() fsm.Flow[*fsm.Node] {
			if !d.input.JustPressed(config.ActionConfirm) {
				return fsm.Continue[*fsm.Node]()
			}
			d.page++
			d.revealed = 0
			if d.page < len(d.pages) {
				return d.typing.Goto()
			}
			return fsm.Stop[*fsm.Node]()
		},
		Exit: func() {
			d.audio.PlaySFX(config.SoundMenuSelect)
		},
	}
	return d
}

// Open starts typing the given pages. Opening with no pages closes the box.
func (d *Dialog) Open(pages ...string) {
	d.pages = d.pages[:0]
	for _, p := range pages {
		d.pages = append(d.pages, []rune(p))
	}
	d.page = 0
	if len(d.pages) == 0 {
		d.a.ChangeState(nil)
		return
	}
	d.a.ChangeState(d.typing)
}

func (d *Dialog) Update(t tick.Time, in services.Input) {
	d.dt = t.Delta
	d.input = in
	d.a.Update()
}

// IsOpen reports whether the box is on screen.
func (d *Dialog) IsOpen() bool { return d.a.IsRunning() }

// Waiting reports whether the whole page is shown and confirm is expected.
func (d *Dialog) Waiting() bool { return d.a.IsProcessingState(d.waiting) }

// Visible returns the part of the current page typed so far.
func (d *Dialog) Visible() string {
	if !d.IsOpen() || d.page >= len(d.pages) {
		return ""
	}
	text := d.pages[d.page]
	return string(text[:min(d.revealed, len(text))])
}

// Page returns the index of the current page.
func (d *Dialog) Page() int { return d.page }
