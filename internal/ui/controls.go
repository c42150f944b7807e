package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"lifecanvas/internal/core"
)

const (
	panelPadding = 12
	rowHeight    = 32
	buttonSize   = 22
	buttonGap    = 6
	titleY       = panelPadding + 14
	statusY      = titleY + 18
	rowsTop      = statusY + 14
	infoLine     = 15
)

// controlRow is one adjustable integer on the panel with its +/- buttons.
type controlRow struct {
	ctrl  core.ParameterControl
	value int
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// layoutRows places one row per control, buttons flush with the right edge
// of a panel width pixels wide.
func layoutRows(controls []core.ParameterControl, width int) []controlRow {
	rows := make([]controlRow, len(controls))
	for i, ctrl := range controls {
		top := rowsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		right := width - panelPadding
		rows[i] = controlRow{
			ctrl:  ctrl,
			top:   top,
			plus:  image.Rect(right-buttonSize, y, right, y+buttonSize),
			minus: image.Rect(right-2*buttonSize-buttonGap, y, right-buttonSize-buttonGap, y+buttonSize),
		}
	}
	return rows
}

// syncRows reads each row's current value out of snap.
func syncRows(rows []controlRow, snap core.ParameterSnapshot) {
	for i := range rows {
		r := &rows[i]
		r.known = false
		p, ok := snap.Lookup(r.ctrl.Key)
		if !ok || r.ctrl.Type != core.ParamTypeInt {
			continue
		}
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			continue
		}
		r.value, r.known = v, true
	}
}

// label is the value text shown left of the buttons.
func (r controlRow) label() string {
	if !r.known {
		return "--"
	}
	return strconv.Itoa(r.value)
}

// hit returns the step direction of the button under (x, y), or 0.
func (r controlRow) hit(x, y int) int {
	switch {
	case !r.known:
		return 0
	case pointInRect(x, y, r.minus):
		return -1
	case pointInRect(x, y, r.plus):
		return 1
	}
	return 0
}

// clampTarget returns value moved one step in direction and kept inside
// the control's bounds.
func clampTarget(ctrl core.ParameterControl, value, direction int) int {
	if direction == 0 {
		return value
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// panelTitle capitalizes the sim name.
func panelTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

type statusProvider interface {
	Running() bool
	Generation() int
	Population() int
}

func statusLine(s statusProvider) string {
	state := "paused"
	if s.Running() {
		state = "running"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", s.Generation(), s.Population(), state)
}

// infoLines flattens the snapshot into indented "label: value" lines under
// each group name.
func infoLines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}
