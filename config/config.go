package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	JumpVelocity float64

	// Momentum carried off moving platforms
	MomentumDecay float64 // multiplicative decay per airborne step
	MomentumFloor float64 // snapped to zero below this magnitude

	// Dimensions
	Width  float64
	Height float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Global physics
	Gravity      float64 // px/s^2, y-down
	MaxFallSpeed float64

	// Horizontal stopping. On normal ground the stop is instant; on
	// low-friction surfaces deceleration is StopDeceleration scaled by the
	// surface friction multiplier.
	StopDeceleration float64
	IceFriction      float64

	// Fixed timestep
	TimeStep         float64 // seconds per physics step
	MaxStepsPerFrame int     // backlog beyond this is dropped
	MaxFrameDelta    float64 // clamp on a single rendered frame's delta
	SafetyNetMargin  float64 // px below the level before a respawn

	// Tolerances. JitterThreshold gates positional corrections during
	// collision resolution; ContactTolerance is the attachment band for
	// platform riders and the ramp snap band. They are separate concerns.
	JitterThreshold  float64
	ContactTolerance float64
	GroundProbe      float64 // re-assert grounded within this gap
	RampSnapDepth    float64 // how far inside a ramp surface feet still snap up
}

// ChainConfig contains the chain constraint configuration
type ChainConfig struct {
	MaxLength  float64
	Iterations int
	Segments   int // visual segments when drawing the chain
}

// BlockConfig contains per-kind solid block behavior
type BlockConfig struct {
	BounceVelocity float64 // upward launch speed off bouncy blocks
	CrumbleTime    float64 // seconds standing on a breakable before it breaks
	RespawnTime    float64 // seconds before a broken block restores
	TileSize       float64
}

// InputConfig timing windows, in physics steps
type InputTimingConfig struct {
	JumpBufferFrames      int
	CoyoteFrames          int
	JumpRepeatDelayFrames int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // how fast camera follows the pair midpoint (0.0-1.0)
	ShakeIntensity  float64 // px, on hazard respawn
	ShakeDuration   int     // frames
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// VictoryConfig contains the level-complete overlay configuration
type VictoryConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	HintY        float64
	Title        string
	ContinueHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // skip menu and go directly to game
	DrawSpace    bool // draw resolv space outlines
	TracePhysics bool // emit per-stage trace lines
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Chain ChainConfig
var Block BlockConfig
var Timing InputTimingConfig
var Camera CameraConfig
var Menu MenuConfig
var Victory VictoryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 220, G: 50, B: 47, A: 255}
	Green        = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	Blue         = color.RGBA{R: 70, G: 130, B: 230, A: 255}
	Orange       = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	Yellow       = color.RGBA{R: 250, G: 220, B: 60, A: 255}
	IceBlue      = color.RGBA{R: 160, G: 220, B: 255, A: 255}
	StoneGrey    = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	DirtBrown    = color.RGBA{R: 130, G: 95, B: 60, A: 255}
	SpikeGrey    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	CrackBrown   = color.RGBA{R: 170, G: 130, B: 80, A: 255}
	GoalGold     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	ChainSilver  = color.RGBA{R: 190, G: 190, B: 200, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Player tint per index
var PlayerColors = [2]color.RGBA{
	{R: 70, G: 130, B: 230, A: 255},
	{R: 220, G: 80, B: 80, A: 255},
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Chainbound",
	}

	Physics = PhysicsConfig{
		Gravity:      1200.0,
		MaxFallSpeed: 800.0,

		StopDeceleration: 1200.0,
		IceFriction:      0.3,

		TimeStep:         1.0 / 60.0,
		MaxStepsPerFrame: 3,
		MaxFrameDelta:    0.25,
		SafetyNetMargin:  100.0,

		JitterThreshold:  0.5,
		ContactTolerance: 5.0,
		GroundProbe:      1.0,
		RampSnapDepth:    15.0,
	}

	Player = PlayerConfig{
		MoveSpeed:    200.0,
		JumpVelocity: 650.0,

		MomentumDecay: 0.98,
		MomentumFloor: 10.0,

		Width:  32.0,
		Height: 64.0,
	}

	Chain = ChainConfig{
		MaxLength:  160.0,
		Iterations: 4,
		Segments:   8,
	}

	Block = BlockConfig{
		BounceVelocity: 900.0,
		CrumbleTime:    0.5,
		RespawnTime:    3.0,
		TileSize:       32.0,
	}

	Timing = InputTimingConfig{
		JumpBufferFrames:      15,
		CoyoteFrames:          8,
		JumpRepeatDelayFrames: 2,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakeIntensity:  6.0,
		ShakeDuration:   10,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		TitleY:            140,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       14,
	}

	Victory = VictoryConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   GoalGold,
		TextColor:    White,
		TitleY:       180,
		HintY:        320,
		Title:        "Level Complete!",
		ContinueHint: "Press ENTER to return to the menu",
	}

	Debug = DebugConfig{}
}

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
