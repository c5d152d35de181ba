package systems

import (
	"image/color"
	"math"

	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/mathutil"
	"github.com/automoto/chainbound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips draw calls for entities that are off-screen.
// A small padding prevents shapes from popping in/out at the edges.
const cullPadding = 64.0

type viewport struct {
	offsetX, offsetY       float64
	minX, maxX, minY, maxY float64
}

func cameraViewport(e *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return viewport{
		offsetX: width/2 - camera.Position.X,
		offsetY: height/2 - camera.Position.Y,
		minX:    camera.Position.X - width/2 - cullPadding,
		maxX:    camera.Position.X + width/2 + cullPadding,
		minY:    camera.Position.Y - height/2 - cullPadding,
		maxY:    camera.Position.Y + height/2 + cullPadding,
	}, true
}

func (v viewport) culled(o *components.ObjectData) bool {
	return o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY
}

// DrawLevel renders all static and moving level geometry as flat rects.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraViewport(e, screen)
	if !ok {
		return
	}

	tags.Solid.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if v.culled(o) {
			return
		}
		solid := components.Solid.Get(entry)

		x, y := o.X+v.offsetX, o.Y+v.offsetY

		if entry.HasComponent(components.Breakable) {
			br := components.Breakable.Get(entry)
			if br.Broken {
				return
			}
			// Crumbling blocks wobble harder as the timer runs out
			if br.Crumble > 0 {
				x += math.Sin(br.Crumble*60) * 2 * (br.Crumble / cfg.Block.CrumbleTime)
			}
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), solidColor(solid), false)

		if solid.Kind == components.KindSpike {
			// Red warning strip along the top edge
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(o.W), 3, cfg.Red, false)
		}
	})

	tags.Ramp.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if v.culled(o) {
			return
		}
		drawRamp(screen, v, o, components.Solid.Get(entry))
	})

	tags.Mover.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if v.culled(o) {
			return
		}
		vector.DrawFilledRect(screen, float32(o.X+v.offsetX), float32(o.Y+v.offsetY), float32(o.W), float32(o.H), cfg.SpikeGrey, false)
	})

	tags.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if v.culled(o) {
			return
		}
		glow := components.Glow.Get(entry)
		c := cfg.Green
		if !components.Checkpoint.Get(entry).Activated {
			c = cfg.Yellow
		}
		vector.DrawFilledRect(screen, float32(o.X+v.offsetX), float32(o.Y+v.offsetY), float32(o.W), float32(o.H), withAlpha(c, glow.Alpha*0.5), false)
	})

	tags.Goal.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if v.culled(o) {
			return
		}
		glow := components.Glow.Get(entry)
		vector.DrawFilledRect(screen, float32(o.X+v.offsetX), float32(o.Y+v.offsetY), float32(o.W), float32(o.H), withAlpha(cfg.GoalGold, glow.Alpha*0.6), false)
	})
}

// drawRamp draws the triangle as vertical strips between the sloped
// surface and the base.
func drawRamp(screen *ebiten.Image, v viewport, o *components.ObjectData, solid *components.SolidData) {
	const strip = 4.0
	facingRight := solid.Kind == components.KindRampRight

	for sx := 0.0; sx < o.W; sx += strip {
		progress := (sx + strip/2) / o.W
		var surf float64
		if facingRight {
			surf = o.Y + o.H - progress*o.H
		} else {
			surf = o.Y + progress*o.H
		}
		w := math.Min(strip, o.W-sx)
		vector.DrawFilledRect(screen,
			float32(o.X+sx+v.offsetX), float32(surf+v.offsetY),
			float32(w), float32(o.Y+o.H-surf),
			cfg.StoneGrey, false)
	}
}

// DrawPlayers renders both bodies as tinted rects with a facing mark.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraViewport(e, screen)
	if !ok {
		return
	}

	for _, entry := range sortedPlayers(e) {
		o := components.Object.Get(entry)
		if v.culled(o) {
			continue
		}
		player := components.Player.Get(entry)

		c := cfg.PlayerColors[player.PlayerIndex%len(cfg.PlayerColors)]
		x, y := o.X+v.offsetX, o.Y+v.offsetY
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), c, false)

		// Eye mark on the facing side
		eyeX := x + o.W/2 + player.Facing*o.W/4
		vector.DrawFilledRect(screen, float32(eyeX-2), float32(y+12), 4, 4, cfg.White, false)
	}
}

// DrawChain renders the constraint as straight segments between the body
// centers, shading toward red as the chain approaches its limit.
func DrawChain(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraViewport(e, screen)
	if !ok {
		return
	}
	chainEntry, ok := components.Chain.First(e.World)
	if !ok {
		return
	}
	chain := components.Chain.Get(chainEntry)

	a, b, ok := playerPair(e)
	if !ok {
		return
	}
	objA := components.Object.Get(a)
	objB := components.Object.Get(b)

	ax := objA.X + objA.W/2 + v.offsetX
	ay := objA.Y + objA.H/2 + v.offsetY
	bx := objB.X + objB.W/2 + v.offsetX
	by := objB.Y + objB.H/2 + v.offsetY

	tension := mathutil.Clamp(chain.Length/chain.MaxLength, 0, 1)
	c := lerpColor(cfg.ChainSilver, cfg.Red, tension*tension)

	// Slack chain sags at the midpoints
	sag := (1 - tension) * 18
	segments := cfg.Chain.Segments
	prevX, prevY := ax, ay
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := mathutil.Lerp(ax, bx, t)
		y := mathutil.Lerp(ay, by, t) + math.Sin(t*math.Pi)*sag
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 2, c, false)
		prevX, prevY = x, y
	}
}

func solidColor(solid *components.SolidData) color.RGBA {
	switch solid.Kind {
	case components.KindOneWay:
		return cfg.Orange
	case components.KindIce:
		return cfg.IceBlue
	case components.KindBouncy:
		return cfg.Green
	case components.KindBreakable:
		return cfg.CrackBrown
	case components.KindSpike:
		return cfg.SpikeGrey
	default:
		if solid.Ground {
			return cfg.DirtBrown
		}
		return cfg.StoneGrey
	}
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := mathutil.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = mathutil.Clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(mathutil.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(mathutil.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(mathutil.Lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}
