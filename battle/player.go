package battle

// Player holds the party's health across encounters.
type Player struct {
	Health    int
	MaxHealth int
}

func NewPlayer(maxHealth int) *Player {
	return &Player{Health: maxHealth, MaxHealth: maxHealth}
}

// Hurt lowers health, floored at zero.
func (p *Player) Hurt(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal raises health, capped at MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

func (p *Player) Alive() bool { return p.Health > 0 }
