package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/loco/parameter"
	"github.com/lixenwraith/loco/sim"
	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/world"
)

const (
	hudRows    = 2
	footerRows = 2
	helpLine   = "space throw  d detonate  +/- force  h/l face  r reset  q quit"
)

var (
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor     = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleExplosive = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleArmed     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRadius    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// view draws a side-on projection of the scene, X across and Y up, camera following the player
type view struct {
	screen       tcell.Screen
	cellsPerUnit float64
	rowsPerUnit  float64
}

func newView(screen tcell.Screen) *view {
	return &view{
		screen:       screen,
		cellsPerUnit: parameter.CellsPerUnit,
		rowsPerUnit:  parameter.RowsPerUnit,
	}
}

// projection maps world coordinates to screen cells for one frame
type projection struct {
	originX  float64
	floor    float64
	centerX  int
	floorRow int
	cpu, rpu float64
}

func (p projection) col(x float64) int {
	return p.centerX + int(math.Round((x-p.originX)*p.cpu))
}

func (p projection) row(y float64) int {
	return p.floorRow - int(math.Round((y-p.floor)*p.rpu))
}

func (v *view) draw(s *sim.Scene) {
	v.screen.Clear()
	width, height := v.screen.Size()
	if width <= 0 || height <= hudRows+footerRows+1 {
		v.screen.Show()
		return
	}

	bounds := s.World().Bounds()
	p := projection{
		originX:  s.Player().Controller().Position()[0],
		floor:    bounds.Floor,
		centerX:  width / 2,
		floorRow: height - footerRows - 1,
		cpu:      v.cellsPerUnit,
		rpu:      v.rowsPerUnit,
	}

	v.drawFloor(p, bounds, width)
	v.drawEntities(p, s, width)
	v.drawHUD(s)
	drawText(v.screen, 0, height-1, helpLine, styleDim)

	v.screen.Show()
}

func (v *view) drawFloor(p projection, b world.Bounds, width int) {
	left, right := p.col(b.MinX), p.col(b.MaxX)
	for x := 0; x < width; x++ {
		if x < left || x > right {
			continue
		}
		v.screen.SetContent(x, p.floorRow, '=', nil, styleFloor)
	}
	for row := hudRows; row < p.floorRow; row++ {
		v.screen.SetContent(left, row, '|', nil, styleWall)
		v.screen.SetContent(right, row, '|', nil, styleWall)
	}
}

func (v *view) drawEntities(p projection, s *sim.Scene, width int) {
	units := s.Player().Inventory().Units()
	var armed *world.Entity

	for _, e := range s.World().Entities() {
		x, y := p.col(e.Position[0]), p.row(e.Position[1])
		if y < hudRows || y > p.floorRow || x < 0 || x >= width {
			continue
		}
		switch e.Kind {
		case world.KindPlayer:
			v.screen.SetContent(x, y, '@', nil, stylePlayer)
		case world.KindExplosive:
			style := styleExplosive
			if len(units) > 0 && units[len(units)-1].ID() == e.ID {
				style = styleArmed
				armed = &e
			}
			v.screen.SetContent(x, y, '*', nil, style)
		}
	}

	// Blast reach of the explosive the next detonation will use
	if armed != nil {
		r := units[len(units)-1].Radius()
		row := p.floorRow + 1
		v.screen.SetContent(p.col(armed.Position[0]-r), row, '[', nil, styleRadius)
		v.screen.SetContent(p.col(armed.Position[0]+r), row, ']', nil, styleRadius)
	}
}

func (v *view) drawHUD(s *sim.Scene) {
	pl := s.Player()
	c := pl.Controller()
	vel := c.Velocity()
	inv := pl.Inventory()

	capacity := "∞"
	if inv.Capacity() >= 0 {
		capacity = fmt.Sprint(inv.Capacity())
	}
	contact := "air"
	if c.Grounded() {
		contact = "ground"
	}

	line := fmt.Sprintf("%s  Live: %d/%s  Vel: (%+.2f, %+.2f, %+.2f)  %s  Facing: %s",
		pl.Display().Text(), inv.Len(), capacity, vel[0], vel[1], vel[2], contact, pl.Facing())
	drawText(v.screen, 0, 0, line, styleHUD)

	snap := s.Stats().Snapshot()
	counters := fmt.Sprintf("thrown %d  evicted %d  detonated %d  hits %d  rejected %d  dropped %d  ticks %d",
		int64(snap[status.ExplosiveSpawned]),
		int64(snap[status.ExplosiveEvicted]),
		int64(snap[status.ExplosiveDetonated]),
		int64(snap[status.ExplosiveHits]),
		int64(snap[status.ExplosiveRejected]),
		int64(snap[status.EventsDropped]),
		int64(snap[status.SceneTicks]))
	drawText(v.screen, 0, 1, counters, styleDim)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
