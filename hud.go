package main

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudStrikeColor = color.NRGBA{R: 0xff, A: 0xff}
)

// HUD owns the score/strike readouts and the game-over overlay. It only
// ever reads simulation state; restarts go through the drop gate, not the
// UI.
type HUD struct {
	ui      *ebitenui.UI
	root    *widget.Container
	score   *widget.Text
	strikes *widget.Text
	overlay *widget.Container
	face    ebtext.Face

	clipboardOK bool
}

// NewHUD builds the in-round readouts using the built-in basic font, so no
// theme fonts need loading.
func NewHUD() *HUD {
	h := &HUD{}
	if err := clipboard.Init(); err != nil {
		log.Printf("hud: clipboard unavailable: %v", err)
	} else {
		h.clipboardOK = true
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	h.face = goFace

	h.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)))),
	)

	h.score = widget.NewText(
		widget.TextOpts.Text("0", &h.face, hudTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	h.root.AddChild(h.score)

	h.strikes = widget.NewText(
		widget.TextOpts.Text("4/4", &h.face, hudStrikeColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	h.root.AddChild(h.strikes)

	h.ui = &ebitenui.UI{Container: h.root}
	return h
}

// SetScore updates the eased score readout.
func (h *HUD) SetScore(score int) {
	h.score.Label = strconv.Itoa(score)
}

// SetStrikes updates the remaining-strikes readout.
func (h *HUD) SetStrikes(remaining, limit int) {
	h.strikes.Label = fmt.Sprintf("%d/%d", remaining, limit)
}

// ShowGameOver replaces any previous overlay with the final-score panel.
func (h *HUD) ShowGameOver(score int) {
	h.HideGameOver()

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 220})
	overlay := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(30)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)

	for _, line := range []string{"Game Over...", fmt.Sprintf("High score: %d", score), "Click anywhere to restart"} {
		overlay.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &h.face, hudTextColor),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		))
	}

	if h.clipboardOK {
		btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
		overlay.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text("Copy score", &h.face, &widget.ButtonTextColor{Idle: hudTextColor}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				clipboard.Write(clipboard.FmtText, []byte(strconv.Itoa(score)))
			}),
		))
	}

	h.overlay = overlay
	h.root.AddChild(overlay)
}

// HideGameOver removes the overlay, if shown.
func (h *HUD) HideGameOver() {
	if h.overlay != nil {
		h.root.RemoveChild(h.overlay)
		h.overlay = nil
	}
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
