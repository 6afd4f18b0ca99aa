package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
	"github.com/Sogni-AI/sogni-photobooth-sub003/config"
	"github.com/Sogni-AI/sogni-photobooth-sub003/estimate"
	"github.com/Sogni-AI/sogni-photobooth-sub003/planner"
	"github.com/Sogni-AI/sogni-photobooth-sub003/widget"
)

// Interactive angle picker: the rendering layer over the planner and
// projection core. On confirm the generation payload is printed to
// stdout, standing in for the external generation service.

type app struct {
	screen tcell.Screen
	cfg    config.Config

	plan *planner.Planner
	est  *estimate.Service
	orb  *widget.Orbital

	// selected slot index; -1 targets the single angle in same mode
	selected int

	confirmed []byte
}

func newApp(cfg config.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	w, h := screen.Size()

	a := &app{
		screen:   screen,
		cfg:      cfg,
		plan:     planner.New(cfg.ItemCount),
		est:      estimate.NewService(),
		selected: -1,
	}
	a.orb = widget.NewOrbital(0, 2, w, h-7)

	var client estimate.Client
	if cfg.EstimatorURL != "" {
		client = estimate.NewHTTPClient(cfg.EstimatorURL)
	} else {
		client = unavailableClient{}
	}
	if err := a.est.Init(client, cfg.OutputWidth, cfg.OutputHeight); err != nil {
		screen.Fini()
		return nil, err
	}
	if err := a.est.Start(); err != nil {
		screen.Fini()
		return nil, err
	}
	a.est.SetEnabled(cfg.EstimatorURL != "")
	a.est.Request(a.plan.TotalJobCount())

	return a, nil
}

// unavailableClient stands in when no estimator endpoint is configured
type unavailableClient struct{}

func (unavailableClient) EstimateCost(_ context.Context, _ estimate.Request) (estimate.Estimate, error) {
	return estimate.Estimate{}, fmt.Errorf("no estimator configured")
}

func (a *app) close() {
	a.est.Stop()
	a.screen.Fini()
}

// target returns the angle triple currently being edited
func (a *app) target() catalog.AngleSpec {
	slots := a.plan.Slots()
	if a.selected >= 0 && a.selected < len(slots) {
		return slots[a.selected].Angle()
	}
	return a.plan.Single()
}

// targetSlotID returns the edited slot's id, or "" for the single angle
func (a *app) targetSlotID() string {
	slots := a.plan.Slots()
	if a.selected >= 0 && a.selected < len(slots) {
		return slots[a.selected].ID
	}
	return ""
}

// clampSelection keeps the selected index valid after slot changes
func (a *app) clampSelection() {
	n := a.plan.SlotCount()
	if n == 0 {
		a.selected = -1
		return
	}
	if a.selected >= n {
		a.selected = n - 1
	}
	if a.selected < 0 && a.plan.Mode() != planner.ModeSame {
		a.selected = 0
	}
}

// apply routes an intent to the planner and refreshes the estimate
// whenever state actually changed
func (a *app) apply(intent planner.Intent) {
	if !a.plan.Apply(intent) {
		return
	}
	a.clampSelection()
	a.est.Request(a.plan.TotalJobCount())
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.cycleSelection(1)
		return true
	case tcell.KeyBacktab:
		a.cycleSelection(-1)
		return true
	case tcell.KeyEnter:
		a.confirm()
		return false
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	id := a.targetSlotID()
	switch ev.Rune() {
	case 'q':
		return false
	case 'h':
		a.apply(planner.Intent{Type: planner.IntentRotate, SlotID: id, Step: -1})
	case 'l':
		a.apply(planner.Intent{Type: planner.IntentRotate, SlotID: id, Step: 1})
	case 'k':
		a.apply(planner.Intent{Type: planner.IntentTilt, SlotID: id, Step: 1})
	case 'j':
		a.apply(planner.Intent{Type: planner.IntentTilt, SlotID: id, Step: -1})
	case 'd':
		a.apply(planner.Intent{Type: planner.IntentFrame, SlotID: id, Step: 1})
	case 'D':
		a.apply(planner.Intent{Type: planner.IntentFrame, SlotID: id, Step: -1})
	case 'm':
		a.apply(planner.Intent{Type: planner.IntentSameForAll, On: !a.plan.SameForAll()})
	case 'a':
		a.apply(planner.Intent{Type: planner.IntentAddSlot})
	case 'x':
		a.apply(planner.Intent{Type: planner.IntentRemoveSlot, SlotID: id})
	case 'o':
		a.apply(planner.Intent{Type: planner.IntentToggleOriginal, SlotID: id})
	case 'r':
		a.apply(planner.Intent{Type: planner.IntentReset})
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		i := int(ev.Rune() - '1')
		if i < len(catalog.Presets) {
			a.apply(planner.Intent{Type: planner.IntentPreset, Key: catalog.Presets[i].Key})
		}
	}
	return true
}

func (a *app) cycleSelection(step int) {
	n := a.plan.SlotCount()
	if n == 0 {
		a.selected = -1
		return
	}
	a.selected = ((a.selected+step)%n + n) % n
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	mx, my := ev.Position()
	if az, ok := a.orb.HitAzimuth(mx, my); ok {
		a.apply(planner.Intent{Type: planner.IntentPointAzimuth, SlotID: a.targetSlotID(), Angle: az.Degrees})
	}
}

// confirm emits the generation payload for the current mode
func (a *app) confirm() {
	var payload any
	if a.plan.Mode() == planner.ModeSame {
		payload = a.plan.ConfirmSingle()
	} else {
		payload = a.plan.ConfirmMulti()
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Printf("encoding confirmation payload: %v", err)
		return
	}
	a.confirmed = out
}

func (a *app) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	mode := a.plan.Mode()
	title := fmt.Sprintf("Camera Angle — %s mode, %d image(s)", mode, a.plan.ItemCount())
	widget.DrawText(a.screen, 1, 0, tcell.StyleDefault.Bold(true), title)

	spec := a.target()
	a.orb.Draw(a.screen, spec)
	widget.DrawAngleCaption(a.screen, 1, h-5, spec)

	widget.DrawSlotStrip(a.screen, 1, h-4, a.plan.Slots(), a.selected)
	widget.DrawPresetRow(a.screen, 1, h-3, a.plan.ActivePreset())
	widget.DrawEstimateLine(a.screen, 1, h-2, a.est.Current(), a.plan.TotalJobCount())

	help := "h/l orbit  j/k tilt  d frame  m same-for-all  a add  x remove  o original  1-4 preset  tab slot  enter confirm  q quit"
	if len(help) > w-2 {
		help = help[:w-2]
	}
	widget.DrawText(a.screen, 1, h-1, tcell.StyleDefault.Dim(true), help)

	a.screen.Show()
}

func (a *app) run() {
	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			w, h := a.screen.Size()
			a.orb = widget.NewOrbital(0, 2, w, h-7)
			a.screen.Sync()
		}
	}
}

func main() {
	cfg := config.Load()

	a, err := newApp(cfg)
	if err != nil {
		log.Fatalf("starting angle picker: %v", err)
	}

	a.run()
	a.close()

	if a.confirmed != nil {
		fmt.Fprintln(os.Stdout, string(a.confirmed))
	}
}
