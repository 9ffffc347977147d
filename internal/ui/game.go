package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/rangeslider/core/slider"
	"github.com/ingyamilmolinar/rangeslider/internal/config"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

const (
	screenMargin = 20
	cellGap      = 12
	rowHeightMax = 60
)

// Game is the demo screen: a column of range sliders, each with a reset
// button, and two labels showing the values of whichever slider moved last.
type Game struct {
	sliders []*RangeSlider
	resets  []*Button

	leftLabel  *ValueLabel
	rightLabel *ValueLabel
	last       *RangeSlider

	logger     *game_log.Logger
	winW, winH int
}

// New builds the screen described by cfg. cfg must already be validated.
func New(cfg config.Config, logger *game_log.Logger) (*Game, error) {
	g := &Game{
		leftLabel:  NewValueLabel(ValueLabelStyle),
		rightLabel: NewValueLabel(ValueLabelStyle),
		logger:     logger,
	}
	for _, sc := range cfg.Sliders {
		s, err := newConfiguredSlider(sc, logger)
		if err != nil {
			return nil, err
		}
		s.SetDelegate(g)
		g.sliders = append(g.sliders, s)
		g.resets = append(g.resets, NewButton("reset", ResetButtonStyle, func() {
			s.SelectAll()
			g.showValues(s)
		}))
	}
	if len(g.sliders) > 0 {
		g.showValues(g.sliders[0])
	}
	return g, nil
}

func newConfiguredSlider(sc config.SliderConfig, logger *game_log.Logger) (*RangeSlider, error) {
	s := NewRangeSlider(sc.Name, logger)
	s.SetBounds(sc.Minimum, sc.Maximum)
	s.SelectAll()
	if sc.Right != nil {
		s.SetRightValue(*sc.Right)
	}
	if sc.Left != nil {
		s.SetLeftValue(*sc.Left)
	}
	s.SetTrackHeight(sc.TrackHeight)
	if sc.TrackColor != "" {
		c, err := config.ParseColor(sc.TrackColor)
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", sc.Name, err)
		}
		s.SetTrackColor(c)
	}
	if sc.HighlightColor != "" {
		c, err := config.ParseColor(sc.HighlightColor)
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", sc.Name, err)
		}
		s.SetTrackHighlightColor(c)
	}
	for _, side := range slider.Sides {
		s.ReplaceThumb(side, newThumbView(sc.Thumb, sc.ThumbSize))
	}
	logger.Debugf("[GAME] slider %q [%g,%g] selected [%g,%g]",
		sc.Name, s.MinimumValue(), s.MaximumValue(), s.LeftValue(), s.RightValue())
	return s, nil
}

func (g *Game) Sliders() []*RangeSlider { return g.sliders }

// LastUpdated is the slider whose values the labels currently show.
func (g *Game) LastUpdated() *RangeSlider { return g.last }

// Labels returns the current left and right read-outs.
func (g *Game) Labels() (string, string) { return g.leftLabel.Text, g.rightLabel.Text }

func (g *Game) OnDragBegin(s *RangeSlider) {
	g.logger.Debugf("[GAME] %s began", s.Name)
	g.leftLabel.Active = true
	g.rightLabel.Active = true
}

func (g *Game) OnDragUpdate(s *RangeSlider) {
	g.showValues(s)
}

func (g *Game) OnDragEnd(s *RangeSlider) {
	g.logger.Debugf("[GAME] %s ended at [%g,%g]", s.Name, s.LeftValue(), s.RightValue())
	g.leftLabel.Active = false
	g.rightLabel.Active = false
}

func (g *Game) showValues(s *RangeSlider) {
	g.last = s
	g.leftLabel.Text = formatValue(s.LeftValue())
	g.rightLabel.Text = formatValue(s.RightValue())
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}

// Layout implements ebiten.Game. A size change re-lays out every control;
// slider values are untouched.
func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.relayout()
	}
	return w, h
}

func (g *Game) relayout() {
	rows := make([]float64, len(g.sliders)+1)
	for i := range rows {
		rows[i] = 1
	}
	area := insetRect(image.Rect(0, 0, g.winW, g.winH), screenMargin)
	if maxH := len(rows) * rowHeightMax; area.Dy() > maxH {
		area.Max.Y = area.Min.Y + maxH
	}
	grid := NewGridLayout(area, cellGap, []float64{2, 2, 1}, rows)
	for i, s := range g.sliders {
		s.SetRect(grid.Span(0, 1, i))
		g.resets[i].SetRect(insetRect(grid.Cell(2, i), 8))
	}
	labels := len(g.sliders)
	g.leftLabel.SetRect(insetRect(grid.Cell(0, labels), 8))
	g.rightLabel.SetRect(insetRect(grid.Cell(1, labels), 8))
	g.logger.Debugf("[GAME] layout %dx%d", g.winW, g.winH)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dragging := false
	for _, s := range g.sliders {
		if s.Update() {
			dragging = true
		}
	}
	mx, my := cursorPosition()
	down := isMouseButtonPressed(ebiten.MouseButtonLeft) && !dragging
	for _, b := range g.resets {
		b.Handle(mx, my, down)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	drawRect(screen, image.Rect(0, 0, g.winW, g.winH), colBackground, true)
	for i, s := range g.sliders {
		s.Draw(screen)
		g.resets[i].Draw(screen)
	}
	g.leftLabel.Draw(screen)
	g.rightLabel.Draw(screen)
}
