package neondash

// Collides reports whether the agent touches the obstacle.
// Both boxes are shrunk by padding on every side, except the bottom of a
// hazard, which stays on the floor. Edge contact is not a hit.
func Collides(a Agent, o Obstacle, padding float64) bool {
	agent := a.Bounds().Inset(padding, padding, padding, padding)

	box := o.Bounds()
	switch o.Kind {
	case KindHazard:
		box = box.Inset(padding, padding, padding, 0)
	default:
		box = box.Inset(padding, padding, padding, padding)
	}

	return agent.Intersects(box)
}
