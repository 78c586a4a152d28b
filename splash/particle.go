package splash

import (
	"slices"

	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
)

const (
	// ParticlesPerSpawn is the number of particles created per pointer position.
	ParticlesPerSpawn = 3

	// SpawnSpread is the full width of the area around the pointer particles spawn in.
	SpawnSpread = 20.0

	// VelocitySpread is the full width of the range velocity components are sampled from.
	VelocitySpread = 2.0

	Damping   = 0.99
	LifeDecay = 0.01

	// Radius of the disc drawn for each particle.
	Radius = 3.0
)

// Palette holds the colors a spawn can pick from.
var Palette = []color.Color{
	color.RGB(0.6, 0.4, 1.0),
	color.RGB(0.5, 0.3, 0.9),
	color.RGB(0.4, 0.2, 0.8),
	color.RGB(0.7, 0.5, 1.0),
}

type Particle struct {
	Position gm.Vec
	Velocity gm.Vec
	Color    color.Color

	// Life starts at 1 and decays by LifeDecay per tick.
	Life float64
}

// Advance moves the particle by one tick.
func (p *Particle) Advance() {
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = p.Velocity.Mul(Damping)
	p.Life -= LifeDecay
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Particles is the set of live particles, kept in spawn order.
type Particles struct {
	items []Particle
}

// Spawn adds ParticlesPerSpawn particles around the given position.
// All particles of one spawn share a color picked from the Palette.
func (ps *Particles) Spawn(src gm.Source, at gm.Vec) {
	particleColor := gm.Pick(src, Palette)

	for range ParticlesPerSpawn {
		ps.items = append(ps.items, Particle{
			Position: gm.RandomVecAround(src, at, SpawnSpread),
			Velocity: gm.RandomVecAround(src, gm.VecZero, VelocitySpread),
			Color:    particleColor,
			Life:     1.0,
		})
	}
}

// Advance moves every particle by one tick and drops the particles
// that ran out of life. Compaction happens in place.
func (ps *Particles) Advance() {
	for idx := range ps.items {
		ps.items[idx].Advance()
	}

	ps.items = slices.DeleteFunc(ps.items, func(p Particle) bool {
		return !p.Alive()
	})
}

func (ps *Particles) Len() int {
	return len(ps.items)
}

// All returns the live particles. The slice must not be retained across ticks.
func (ps *Particles) All() []Particle {
	return ps.items
}

func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
