package game

import "math"

// RewardID identifies a level-up reward
type RewardID string

const (
	RewardHeal          RewardID = "heal"
	RewardMoreBullets   RewardID = "moreBullets"
	RewardFasterAttack  RewardID = "fasterAttack"
	RewardMoreHealth    RewardID = "moreHealth"
	RewardBiggerPickup  RewardID = "biggerPickup"
	RewardMovementSpeed RewardID = "movementSpeed"
)

// Reward is one entry of the level-up catalog
type Reward struct {
	ID          RewardID
	Name        string
	Description string
	Icon        string

	apply func(p *Player, cfg *Config)
}

// rewardCatalog is the fixed set rewards are drawn from
var rewardCatalog = []Reward{
	{
		ID:          RewardHeal,
		Name:        "Heal",
		Description: "Restore 50 HP",
		Icon:        "+",
		apply: func(p *Player, _ *Config) {
			p.Health = min(p.MaxHealth, p.Health+50)
		},
	},
	{
		ID:          RewardMoreBullets,
		Name:        "More Bullets",
		Description: "+1 Bullet per attack",
		Icon:        "*",
		apply: func(p *Player, _ *Config) {
			p.BulletsPerShot++
		},
	},
	{
		ID:          RewardFasterAttack,
		Name:        "Faster Attack",
		Description: "25% faster attack speed",
		Icon:        ">",
		apply: func(p *Player, _ *Config) {
			p.AttackSpeedMultiplier += 0.25
		},
	},
	{
		ID:          RewardMoreHealth,
		Name:        "More Health",
		Description: "+25 Max HP and heal to full",
		Icon:        "#",
		apply: func(p *Player, _ *Config) {
			p.MaxHealth += 25
			p.Health = p.MaxHealth
		},
	},
	{
		ID:          RewardBiggerPickup,
		Name:        "Bigger Pickup Area",
		Description: "50% larger exp pickup range",
		Icon:        "o",
		apply: func(p *Player, _ *Config) {
			p.PickupRadius = math.Floor(p.PickupRadius * 1.5)
		},
	},
	{
		ID:          RewardMovementSpeed,
		Name:        "Movement Speed",
		Description: "+0.5 movement speed",
		Icon:        "^",
		apply: func(p *Player, cfg *Config) {
			p.Speed = clamp(p.Speed+0.5, cfg.Player.SpeedMin, cfg.Player.SpeedMax)
		},
	},
}

// LookupReward finds a catalog entry by ID
func LookupReward(id RewardID) (Reward, bool) {
	for _, r := range rewardCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}

// Apply mutates the player according to the reward
func (r Reward) Apply(p *Player, cfg *Config) {
	if r.apply != nil {
		r.apply(p, cfg)
	}
}
