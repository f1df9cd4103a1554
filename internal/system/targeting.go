// internal/system/targeting.go
package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/utils"
)

// PredictTarget estimates where the player will be when the enemy reaches
// it, refining the time to intercept a fixed number of times. A stationary
// enemy aims at the player's current position.
func PredictTarget(enemy *component.Enemy, player *component.Player) utils.Vec2 {
	speed := enemy.Vel.Len()
	lead := player.Dir.Scale(player.Vel.Len())
	t := 0.0
	target := player.Pos
	for i := 0; i < config.PredictiveIterations; i++ {
		target = player.Pos.Add(lead.Scale(t))
		if speed == 0 {
			break
		}
		t = target.Distance(enemy.Pos) / speed
	}
	return target
}

// ChooseTarget picks the point an enemy steers toward this frame.
func ChooseTarget(enemy *component.Enemy, player *component.Player) utils.Vec2 {
	if enemy.Predictive {
		return PredictTarget(enemy, player)
	}
	switch enemy.Kind {
	case component.ArchetypeBasic:
		return player.Pos
	case component.ArchetypeTurret:
		return strafePoint(enemy, player)
	}
	return enemy.Target
}

// strafePoint keeps a turret circling the player at a standoff distance,
// on whichever side of its facing the player currently is.
func strafePoint(enemy *component.Enemy, player *component.Player) utils.Vec2 {
	angle := config.TurretStrafeAngle
	if enemy.Right().Dot(player.Pos.Sub(enemy.Pos)) <= 0 {
		angle = -angle
	}
	away := enemy.Pos.Sub(player.Pos).Normalize()
	return player.Pos.Add(utils.Rotate(away, angle).Scale(config.TurretStandoff))
}
