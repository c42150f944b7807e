package life

import (
	"strconv"
	"time"

	"lifecanvas/internal/core"
)

// Parameters exposes the board layout and tunables for display.
func (g *Game) Parameters() core.ParameterSnapshot {
	geo := g.geo
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Board",
				Params: []core.Parameter{
					floatParam("w", "Width", geo.Width),
					floatParam("h", "Height", geo.Height),
					intParam("rows", "Rows", geo.Rows),
					intParam("columns", "Columns", geo.Columns),
					floatParam("cell_size", "Cell size", geo.CellSize),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					intParam("clusters", "Clusters", g.cfg.Clusters),
					intParam("interval_ms", "Interval (ms)", int(g.cfg.Interval/time.Millisecond)),
					int64Param("seed", "Seed", g.cfg.Seed),
				},
			},
		},
	}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "clusters", Label: "Clusters", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true, Max: 500, HasMax: true},
		{Key: "interval_ms", Label: "Interval (ms)", Type: core.ParamTypeInt, Step: 100, Min: 50, HasMin: true, Max: 5000, HasMax: true},
	}
}

// SetIntParameter updates an adjustable parameter. It reports whether key
// was recognised and value accepted.
func (g *Game) SetIntParameter(key string, value int) bool {
	switch key {
	case "clusters":
		if value < 0 {
			return false
		}
		g.cfg.Clusters = value
		return true
	case "interval_ms":
		if value <= 0 {
			return false
		}
		g.SetInterval(time.Duration(value) * time.Millisecond)
		return true
	default:
		return false
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}
