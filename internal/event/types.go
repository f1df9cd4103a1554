// internal/event/types.go
package event

import (
	"space-shooter/internal/component"
	"space-shooter/internal/utils"
)

const (
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemySpawnedData
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Data: EnemyDestroyedData
	BulletFired      EventType = "BulletFired"      // Data: BulletFiredData
	PartDamaged      EventType = "PartDamaged"      // Data: PartDamagedData
	PowerUpCollected EventType = "PowerUpCollected" // Data: component.PowerUpKind
	PlayerDestroyed  EventType = "PlayerDestroyed"  // Data: nil
)

type EnemySpawnedData struct {
	Kind   component.Archetype
	Pos    utils.Vec2
	Amount int // batch size the enemy belongs to
}

type EnemyDestroyedData struct {
	Kind component.Archetype
	Pos  utils.Vec2
}

type BulletFiredData struct {
	Friendly bool
}

// PartDamagedData reports health lost by one part. Cause is "bullet" or "ram".
type PartDamagedData struct {
	Part   int
	Amount float64
	Cause  string
}
