package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Status line below the grid
)

var (
	headColor = rl.Color{R: 179, G: 179, B: 179, A: 255}
	bodyColor = rl.Color{R: 77, G: 77, B: 77, A: 255}
	foodColor = rl.Color{R: 255, G: 0, B: 255, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) layout(width, height int) {
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - statusHeight

	r.cellSize = min(availableWidth/int32(width), availableHeight/int32(height))
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.totalGridWidth = r.cellSize * int32(width)
	r.totalGridHeight = r.cellSize * int32(height)

	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding
}

// cell returns the top-left pixel of a grid cell. Grid y grows upward, screen y downward.
func (r *Renderer) cell(p types.Point, height int) (int32, int32) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(height-1-p.Y)*r.cellSize
	return x, y
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	r.layout(snap.Width, snap.Height)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	for x := 0; x < snap.Width; x++ {
		for y := 0; y < snap.Height; y++ {
			px, py := r.cell(types.Point{X: x, Y: y}, snap.Height)
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	if snap.HasFood {
		r.drawCell(snap.Food, snap.Height, 0.8, foodColor)
	}
	for _, p := range snap.Segments {
		r.drawCell(p, snap.Height, 0.65, bodyColor)
	}
	r.drawCell(snap.Head, snap.Height, 0.8, headColor)
	r.drawHeading(snap.Head, snap.Direction, snap.Height)

	r.drawStatus(snap)
	rl.EndDrawing()
}

// drawCell fills a centred square covering scale of the cell
func (r *Renderer) drawCell(p types.Point, height int, scale float32, color rl.Color) {
	px, py := r.cell(p, height)
	size := int32(float32(r.cellSize) * scale)
	inset := (r.cellSize - size) / 2
	rl.DrawRectangle(px+inset, py+inset, size, size, color)
}

func (r *Renderer) drawHeading(head types.Point, dir types.Direction, height int) {
	headX, headY := r.cell(head, height)
	halfCell := r.cellSize / 2
	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)}
		b = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)}
		c = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)}
	case types.Left:
		a = rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)}
		b = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)}
		c = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)}
	case types.Down:
		a = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)}
		b = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)}
		c = rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)}
	default:
		a = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)}
		b = rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)}
		c = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	fontSize := int32(20)
	y := r.offsetY + r.totalGridHeight + borderPadding

	text := fmt.Sprintf("tick %d  length %d", snap.Tick, snap.Length())
	color := rl.White
	if snap.State == types.GameOver {
		text = fmt.Sprintf("Game Over: %v (R to restart)", snap.Reason)
		color = rl.Red
	}
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-textWidth)/2, y, fontSize, color)
}
