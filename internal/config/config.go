// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	ViewHeight   = 1000.0 // world units visible vertically
	MaxDeltaTime = 0.06
	WindowTitle  = "Space Shooter"

	SpawnRadius          = 2000.0
	DoubleSpawnStep      = 0.05
	PredictiveIterations = 10

	TurretStandoff    = 200.0
	TurretStrafeAngle = math.Pi / 4 // τ/8

	// Player guns fire while some enemy is within this cone: |cos(angle) - 1| < tolerance.
	FiringConeTolerance = 0.25
	PlayerBulletSpeed   = 500.0
	HostileBulletSpeed  = 1000.0

	EmitterJitterMin = 20.0
	EmitterJitterMax = 40.0

	RamDamage = 1.0

	ParticleSize = 5.0

	WarningRadius  = 170.0
	WarningSize    = 32.0
	EnemyQuadSize  = 32.0
	PlayerQuadSize = 64.0

	PowerUpSize        = 16.0
	PowerUpRelocateMin = 2000.0
	PowerUpRelocateMax = 2500.0
	PowerUpMarkerRange = 210.0

	MainBodyPart = "Main Body"
)

// Burst describes a radial particle explosion.
type Burst struct {
	ForceMin, ForceMax float64
	Amount             int
	Lifetime           float64
	Start, End         [4]float64 // 0..255
}

var (
	DeathBurst = Burst{
		ForceMin: 0, ForceMax: 300, Amount: 500, Lifetime: 0.3,
		Start: [4]float64{200, 200, 50, 255},
		End:   [4]float64{255, 0, 0, 100},
	}
	RamBurst = Burst{
		ForceMin: 0, ForceMax: 300, Amount: 500, Lifetime: 1.0,
		Start: [4]float64{140, 255, 251, 255},
		End:   [4]float64{255, 0, 50, 0},
	}
	EnemyHitBurst = Burst{
		ForceMin: 0, ForceMax: 600, Amount: 50, Lifetime: 0.1,
		Start: [4]float64{255, 0, 0, 255},
		End:   [4]float64{255, 255, 50, 0},
	}
	PartHitBurst = Burst{
		ForceMin: 0, ForceMax: 600, Amount: 50, Lifetime: 0.1,
		Start: [4]float64{140, 255, 251, 255},
		End:   [4]float64{255, 0, 50, 0},
	}
)

var (
	BackgroundColor   = color.RGBA{255, 0, 255, 255}
	SpaceColor        = color.RGBA{8, 8, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	GameOverColor     = color.RGBA{220, 60, 60, 255}
	WaveColor         = color.RGBA{70, 130, 180, 255}
	BossWaveColor     = color.RGBA{220, 60, 60, 255}
	HealthGoodColor   = color.RGBA{50, 205, 50, 255}
	HealthLowColor    = color.RGBA{220, 60, 60, 255}

	FriendlyBulletColor = [4]float64{0, 1, 0, 1}
	HostileBulletColor  = [4]float64{1, 0, 0, 1}
)
