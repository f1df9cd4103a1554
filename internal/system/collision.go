// internal/system/collision.go
package system

import "space-shooter/internal/utils"

// Overlaps reports whether two circles intersect. Touching circles do not.
func Overlaps(p1 utils.Vec2, r1 float64, p2 utils.Vec2, r2 float64) bool {
	return p1.Distance(p2) < r1+r2
}
