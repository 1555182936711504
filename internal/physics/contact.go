package physics

import "github.com/rangeshot/rangeshot/internal/vmath"

// Contacts are perfectly inelastic: penetration is removed and the
// approaching normal velocity is cancelled.

func resolveSpherePlane(s, p *body) {
	n := p.normal()
	d := s.position.Sub(p.position).Dot(n) - s.shape.Radius
	if d >= 0 {
		return
	}
	s.position = s.position.Sub(n.Scale(d))
	cancelApproach(s, n)
}

func resolveSphereBox(s, box *body) {
	h := box.shape.HalfExtents
	closest := s.position.Clamp(box.position.Sub(h), box.position.Add(h))
	delta := s.position.Sub(closest)
	dist := delta.Len()
	if dist >= s.shape.Radius {
		return
	}
	var n vmath.Vec3
	if dist == 0 {
		// Centre inside the box: lift it out through the top face.
		n = vmath.Vec3{Y: 1}
		closest = vmath.Vec3{X: s.position.X, Y: box.position.Y + h.Y, Z: s.position.Z}
	} else {
		n = delta.Scale(1 / dist)
	}
	s.position = closest.Add(n.Scale(s.shape.Radius))
	cancelApproach(s, n)
}

func resolveSphereSphere(a, b *body) {
	delta := a.position.Sub(b.position)
	dist := delta.Len()
	minDist := a.shape.Radius + b.shape.Radius
	if dist >= minDist || dist == 0 {
		return
	}
	n := delta.Scale(1 / dist)
	invSum := a.invMass + b.invMass
	overlap := minDist - dist
	a.position = a.position.Add(n.Scale(overlap * a.invMass / invSum))
	b.position = b.position.Sub(n.Scale(overlap * b.invMass / invSum))

	vn := a.velocity.Sub(b.velocity).Dot(n)
	if vn >= 0 {
		return
	}
	j := -vn / invSum
	a.velocity = a.velocity.Add(n.Scale(j * a.invMass))
	b.velocity = b.velocity.Sub(n.Scale(j * b.invMass))
}

func cancelApproach(b *body, n vmath.Vec3) {
	if vn := b.velocity.Dot(n); vn < 0 {
		b.velocity = b.velocity.Sub(n.Scale(vn))
	}
}
