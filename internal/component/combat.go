// internal/component/combat.go
package component

// PartMod is a ship capability a damage rule can scale.
type PartMod int

const (
	ModTurnLeft PartMod = iota
	ModTurnRight
	ModSpeed
	ModParticle // particle emitter speed, selected by Damage.Index
	ModGun      // bullet emitter interval, selected by Damage.Index
)

func (m PartMod) String() string {
	switch m {
	case ModTurnLeft:
		return "TurnLeft"
	case ModTurnRight:
		return "TurnRight"
	case ModSpeed:
		return "Speed"
	case ModParticle:
		return "Particle"
	case ModGun:
		return "Gun"
	}
	return "Unknown"
}

// DamageOp selects how a health ratio is applied to a capability.
type DamageOp int

const (
	// OpMultiply shrinks the capability as parts lose health.
	OpMultiply DamageOp = iota
	// OpDivide grows a cost (e.g. reload time) as parts lose health.
	OpDivide
)

// Damage maps the health ratio of Sources onto a capability.
type Damage struct {
	Sources []int
	Target  PartMod
	Index   int
	Op      DamageOp
	Scale   float64
}
