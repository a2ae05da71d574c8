package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeBarrier
	collisionTypeBall
)

// PhysicsSystem owns the Chipmunk space. Each tick it syncs entity bodies
// into the space, steps the simulation once, and mirrors body positions
// back into transforms. Its collision handlers feed the contact set that
// the merge resolver scans after the step.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	contacts      *Contacts

	entities      map[ecs.Entity]*bodyInfo
	shapeToEntity map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// NewPhysicsSystem creates the space with world gravity pointing down.
func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -common.Gravity})
	return &PhysicsSystem{
		space:         space,
		contacts:      NewContacts(),
		entities:      make(map[ecs.Entity]*bodyInfo),
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
	}
}

// Contacts returns the persistent contact set this system maintains.
func (ps *PhysicsSystem) Contacts() *Contacts {
	return ps.contacts
}

// Space returns the underlying Chipmunk space.
func (ps *PhysicsSystem) Space() *cp.Space {
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncRadii(w)
	ps.space.Step(common.TickDelta)
	ps.syncTransforms(w)
}

// ensureHandlers registers contact begin/separate callbacks for every pair
// kind involving a ball. The callbacks only mutate contact-set membership;
// all game consequences happen in the merge pass.
func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}
	track := func(a, b cp.CollisionType) {
		handler := ps.space.NewCollisionHandler(a, b)
		handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			sa, sb := arb.Shapes()
			ea, okA := ps.shapeToEntity[sa]
			eb, okB := ps.shapeToEntity[sb]
			if okA && okB {
				ps.contacts.Begin(ea, eb)
			}
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			sa, sb := arb.Shapes()
			ea, okA := ps.shapeToEntity[sa]
			eb, okB := ps.shapeToEntity[sb]
			if okA && okB {
				ps.contacts.End(ea, eb)
			}
		}
	}
	track(collisionTypeBall, collisionTypeBall)
	track(collisionTypeBall, collisionTypeWall)
	track(collisionTypeBall, collisionTypeBarrier)
	ps.handlersReady = true
}

// cleanupEntities removes bodies whose entities died or lost their physics
// component, and drops their contacts.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.Alive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapeToEntity, info.shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		ps.contacts.DropEntity(e)
	}
}

// syncEntities creates space bodies for entities that have a PhysicsBody
// component but no live body yet.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.ID(), component.TransformComponent.ID()) {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		info := ps.createBodyInfo(w, e, transform, bodyComp)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		ps.shapeToEntity[info.shape] = e

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		_ = ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp)
	}
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	if bodyComp.Static {
		var shape *cp.Shape
		if bodyComp.Radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, bodyComp.Radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{
				L: transform.X - bodyComp.Width/2,
				B: transform.Y - bodyComp.Height/2,
				R: transform.X + bodyComp.Width/2,
				T: transform.Y + bodyComp.Height/2,
			}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		if ecs.Has(w, e, component.BarrierTagComponent) {
			shape.SetCollisionType(collisionTypeBarrier)
		} else {
			shape.SetCollisionType(collisionTypeWall)
		}
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent); ok && gs.Scale != 1 {
		scale := gs.Scale
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(b, gravity.Mult(scale), damping, dt)
		})
	}

	shape := cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeBall)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// syncRadii swaps the collider of any growing ball whose component radius
// drifted from the live shape, so the physical footprint tracks the visual
// size. The swap happens before the step; contacts re-register during it.
func (ps *PhysicsSystem) syncRadii(w *ecs.World) {
	ecs.ForEach(w, component.PhysicsBodyComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody) {
		info, ok := ps.entities[e]
		if !ok || info.static || bodyComp.Radius <= 0 {
			return
		}
		circle, ok := info.shape.Class.(*cp.Circle)
		if !ok || circle.Radius() == bodyComp.Radius {
			return
		}

		ps.space.RemoveShape(info.shape)
		delete(ps.shapeToEntity, info.shape)

		shape := cp.NewCircle(info.body, bodyComp.Radius, cp.Vector{})
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeBall)
		ps.space.AddShape(shape)
		info.body.SetMoment(cp.MomentForCircle(bodyComp.Mass, 0, bodyComp.Radius, cp.Vector{}))

		info.shape = shape
		ps.shapeToEntity[shape] = e
		bodyComp.Shape = shape
	})
}

// syncTransforms mirrors dynamic body positions back into transforms.
func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		_ = ecs.Add(w, e, component.TransformComponent, transform)
	}
}
