package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/hollow/internal/application/scene"
	"github.com/younwookim/hollow/internal/domain/entity"
)

// Lighting, in tiles and radians
const (
	ambientRange  = 2.2
	torchRange    = 7.0
	torchHalfCone = 25 * math.Pi / 180
)

// Colors for rendering
var (
	colorBG     = color.RGBA{4, 3, 6, 255}
	colorWall   = color.RGBA{96, 88, 80, 255}
	colorFloor  = color.RGBA{34, 30, 28, 255}
	colorWin    = color.RGBA{70, 160, 90, 255}
	colorStatue = color.RGBA{150, 140, 120, 255}
	colorPlayer = color.RGBA{220, 220, 200, 255}
	colorTorch  = color.RGBA{255, 230, 160, 90}
	colorEnemy  = color.RGBA{190, 20, 20, 255}
	colorHUD    = color.RGBA{150, 150, 150, 255}
	colorStatic = color.RGBA{200, 200, 200, 255}
)

// Light returns how lit target is, in [0, 1], for a viewer at eye with the
// given view direction. Everything is dark except a small halo around the
// viewer and, with the torch on, a cone ahead.
func Light(eye, front, target entity.Vec3, torchOn bool) float64 {
	d := entity.Vec3{X: target.X - eye.X, Z: target.Z - eye.Z}
	dist := d.Len()
	level := entity.Clamp(1-dist/ambientRange, 0, 1) * 0.5

	if !torchOn || dist > torchRange {
		return level
	}
	if dist < 1e-9 {
		return 1
	}
	flat := entity.Vec3{X: front.X, Z: front.Z}
	if flat.Len() < 1e-9 {
		return level
	}
	cos := d.Normalize().Dot(flat.Normalize())
	if math.Acos(entity.Clamp(cos, -1, 1)) > torchHalfCone {
		return level
	}
	return math.Max(level, 1-0.7*dist/torchRange)
}

func shade(c color.RGBA, level float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * level),
		G: uint8(float64(c.G) * level),
		B: uint8(float64(c.B) * level),
		A: c.A,
	}
}

// camera returns the top-left world pixel shown on screen: the view follows
// the player and is clamped to the map, or centres a map smaller than the screen
func (p *Playing) camera() (float64, float64) {
	ts := float64(p.tileSize)
	pos := p.session.Player().Position
	axis := func(center, mapPx, screenPx float64) float64 {
		if mapPx <= screenPx {
			return (mapPx - screenPx) / 2
		}
		return entity.Clamp(center-screenPx/2, 0, mapPx-screenPx)
	}
	camX := axis((pos.X+0.5)*ts, float64(p.grid.Width)*ts, float64(p.screenW))
	camY := axis((pos.Z+0.5)*ts, float64(p.grid.Height)*ts, float64(p.screenH))
	return camX, camY
}

// toScreen maps a world position to the screen pixel at its tile-relative spot
func (p *Playing) toScreen(v entity.Vec3, camX, camY float64) (float32, float32) {
	ts := float64(p.tileSize)
	return float32((v.X+0.5)*ts - camX), float32((v.Z+0.5)*ts - camY)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if p.session == nil {
		return
	}

	camX, camY := p.camera()
	player := p.session.Player()
	front := player.Front()

	p.drawTiles(screen, camX, camY, player, front)
	p.drawEnemy(screen, camX, camY, player, front)
	p.drawPlayer(screen, camX, camY, player, front)
	p.drawStatic(screen, p.session.Distortion())

	if p.session.ScreamerActive() {
		p.drawScreamer(screen)
	}
	p.drawHUD(screen)
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64, player *entity.Player, front entity.Vec3) {
	ts := float32(p.tileSize)
	for r := 0; r < p.grid.Height; r++ {
		for c := 0; c < p.grid.Width; c++ {
			coord := entity.Coord{Row: r, Col: c}
			level := Light(player.Position, front, entity.Center(coord), player.TorchOn)
			if level <= 0 {
				continue
			}

			x, y := p.toScreen(entity.Center(coord), camX, camY)
			x, y = x-ts/2, y-ts/2

			switch p.grid.TileAt(coord) {
			case entity.TileWall:
				vector.FillRect(screen, x, y, ts, ts, shade(colorWall, level), false)
			case entity.TileWin:
				vector.FillRect(screen, x, y, ts, ts, shade(colorWin, level), false)
			case entity.TileStatueA, entity.TileStatueB, entity.TileStatueC, entity.TileStatueD:
				vector.FillRect(screen, x, y, ts, ts, shade(colorFloor, level), false)
				vector.FillCircle(screen, x+ts/2, y+ts/2, ts/4, shade(colorStatue, level), false)
			default:
				vector.FillRect(screen, x, y, ts, ts, shade(colorFloor, level), false)
			}
		}
	}
}

func (p *Playing) drawEnemy(screen *ebiten.Image, camX, camY float64, player *entity.Player, front entity.Vec3) {
	enemy := p.session.Enemy()
	level := Light(player.Position, front, enemy.Position, player.TorchOn)
	if p.session.ScreamerActive() {
		level = 1
	}
	if level <= 0 {
		return
	}

	x, y := p.toScreen(enemy.Position, camX, camY)
	r := float32(p.tileSize) / 3
	vector.FillCircle(screen, x, y, r, shade(colorEnemy, level), true)
	vector.StrokeLine(screen, x, y,
		x+float32(enemy.Front.X)*r*1.5, y+float32(enemy.Front.Z)*r*1.5,
		2, shade(colorEnemy, level), true)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64, player *entity.Player, front entity.Vec3) {
	x, y := p.toScreen(player.Position, camX, camY)
	ts := float32(p.tileSize)

	if player.TorchOn {
		flat := entity.Vec3{X: front.X, Z: front.Z}.Normalize()
		reach := float32(torchRange) * ts
		for _, a := range []float64{-torchHalfCone, torchHalfCone} {
			edge := flat.RotateY(a)
			vector.StrokeLine(screen, x, y, x+float32(edge.X)*reach, y+float32(edge.Z)*reach, 1, colorTorch, true)
		}
	}

	vector.FillCircle(screen, x, y, ts/4, colorPlayer, true)
	vector.StrokeLine(screen, x, y, x+float32(front.X)*ts/2, y+float32(front.Z)*ts/2, 2, colorPlayer, true)
}

// drawStatic sprinkles noise over the screen; amount is the session distortion in [0, 0.3]
func (p *Playing) drawStatic(screen *ebiten.Image, amount float64) {
	if amount <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	dots := int(amount * float64(w*h) / 400)
	for i := 0; i < dots; i++ {
		x := float32(p.static.Intn(w))
		y := float32(p.static.Intn(h))
		alpha := uint8(60 + p.static.Intn(120))
		c := colorStatic
		vector.FillRect(screen, x, y, 2, 2, color.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, false)
	}
}

// drawScreamer flashes the screen red
func (p *Playing) drawScreamer(screen *ebiten.Image) {
	pulse := 0.5 + 0.5*math.Sin(p.clock*30)
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, color.RGBA{R: uint8(120 * pulse), A: uint8(120 * pulse)}, false)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.session.Player()
	radio := p.session.Radio()

	torch := "off"
	if player.TorchOn {
		torch = "on"
	}
	radioText := "off"
	if radio.On {
		radioText = fmt.Sprintf("static: %s", radio.Band)
	}

	hud := fmt.Sprintf("torch %s   radio %s", torch, radioText)
	if p.replayer != nil {
		hud += fmt.Sprintf("   replay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	} else if p.recorder != nil {
		hud += "   REC"
	}
	scene.DrawText(screen, hud, 10, float64(p.screenH-2*scene.LineHeight), colorHUD)
}
