package widget

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Sogni-AI/sogni-photobooth-sub003/catalog"
	"github.com/Sogni-AI/sogni-photobooth-sub003/estimate"
	"github.com/Sogni-AI/sogni-photobooth-sub003/planner"
)

var (
	labelStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	originalStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	faintStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// DrawText writes a string left to right with clipping left to tcell
func DrawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

var azimuthAbbrev = map[catalog.Azimuth]string{
	catalog.AzimuthFront:      "F",
	catalog.AzimuthFrontRight: "FR",
	catalog.AzimuthRight:      "R",
	catalog.AzimuthBackRight:  "BR",
	catalog.AzimuthBack:       "B",
	catalog.AzimuthBackLeft:   "BL",
	catalog.AzimuthLeft:       "L",
	catalog.AzimuthFrontLeft:  "FL",
}

var elevationAbbrev = map[catalog.Elevation]string{
	catalog.ElevationLowAngle:  "low",
	catalog.ElevationEyeLevel:  "eye",
	catalog.ElevationElevated:  "elev",
	catalog.ElevationHighAngle: "high",
}

var distanceAbbrev = map[catalog.Distance]string{
	catalog.DistanceCloseUp: "cu",
	catalog.DistanceMedium:  "med",
	catalog.DistanceWide:    "wide",
}

// slotToken renders one slot as a compact strip entry
func slotToken(i int, slot planner.Slot) string {
	if slot.UseOriginal {
		return fmt.Sprintf("%d:original", i+1)
	}
	return fmt.Sprintf("%d:%s·%s·%s",
		i+1,
		azimuthAbbrev[slot.Azimuth],
		elevationAbbrev[slot.Elevation],
		distanceAbbrev[slot.Distance])
}

// DrawSlotStrip renders the slot list on one row, highlighting the
// selected slot
func DrawSlotStrip(s tcell.Screen, x, y int, slots []planner.Slot, selected int) {
	if len(slots) == 0 {
		DrawText(s, x, y, faintStyle, "(no slots)")
		return
	}

	col := x
	for i, slot := range slots {
		token := slotToken(i, slot)
		style := labelStyle
		if slot.UseOriginal {
			style = originalStyle
		}
		if i == selected {
			style = selectedStyle
		}
		DrawText(s, col, y, style, token)
		col += len([]rune(token)) + 2
	}
}

// DrawPresetRow renders the preset choices, highlighting the active one
func DrawPresetRow(s tcell.Screen, x, y int, active string) {
	col := x
	for _, p := range catalog.Presets {
		token := fmt.Sprintf("%c %s", p.Icon, p.Label)
		style := labelStyle
		if p.Key == active {
			style = selectedStyle
		}
		DrawText(s, col, y, style, token)
		col += len([]rune(token)) + 3
	}
}

// DrawEstimateLine renders the derived job count and the estimator
// tri-state: loading, quoted, or unavailable
func DrawEstimateLine(s tcell.Screen, x, y int, snap estimate.Snapshot, jobCount int) {
	text := fmt.Sprintf("jobs: %d", jobCount)
	switch snap.Status {
	case estimate.StatusLoading:
		text += "  estimating…"
	case estimate.StatusReady:
		text += fmt.Sprintf("  cost: %.2f ($%.2f)", snap.Estimate.Cost, snap.Estimate.CostInUSD)
		if snap.JobCount != jobCount {
			text += " (updating)"
		}
	case estimate.StatusUnavailable:
		text += "  estimate unavailable"
	}
	DrawText(s, x, y, labelStyle, text)
}

// DrawAngleCaption renders the full labels for one angle triple
func DrawAngleCaption(s tcell.Screen, x, y int, spec catalog.AngleSpec) {
	azSpec, _ := catalog.AzimuthByKey(spec.Azimuth)
	elSpec, _ := catalog.ElevationByKey(spec.Elevation)
	distSpec, _ := catalog.DistanceByKey(spec.Distance)

	caption := fmt.Sprintf("%s / %s / %s", azSpec.Label, elSpec.Label, distSpec.Label)
	if spec.UseOriginal {
		caption = "Original image (no generation)"
	}
	DrawText(s, x, y, labelStyle, caption)
}
