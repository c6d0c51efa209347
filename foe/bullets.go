package foe

import "github.com/automoto/cryptcrawl/config"

// Bullet travels from the foe toward the player down one of three lanes.
type Bullet struct {
	Lane      int // -1, 0 or 1
	Closeness float64
	Spawn     Vec
	Target    Vec
	Pos       Vec
}

func (f *Foe) shoot(lane int) {
	b := Bullet{
		Lane:   lane,
		Spawn:  Vec{X: float64(lane) * f.Config.BulletSpawnSpread, Y: f.Config.BulletSpawnY},
		Target: Vec{X: float64(lane) * config.Dodge.LaneWidth, Y: f.Config.BulletTargetY},
	}
	b.Pos = b.Spawn
	f.Bullets = append(f.Bullets, b)
	f.audio.PlaySFX(config.SoundShoot)
}

// updateBullets moves every bullet closer and removes the ones that landed.
func (f *Foe) updateBullets(dt float64) {
	live := f.Bullets[:0]
	for _, b := range f.Bullets {
		b.Closeness += f.Config.BulletSpeed * dt
		if b.Closeness > 1 {
			b.Closeness = 1
		}
		b.Pos = lerp(b.Spawn, b.Target, b.Closeness)

		if b.Closeness >= 1 {
			f.landed = append(f.landed, b.Lane)
			continue
		}
		live = append(live, b)
	}
	f.Bullets = live
}

func lerp(a, b Vec, t float64) Vec {
	return Vec{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
