package pomodoro

import (
	"math/rand"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

var (
	confettiColors = []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}
	snowColors     = []string{"#ffffff", "#e0e0e0", "#f0f0f0"}
)

// confettiBurst is the focus-complete variant.
func confettiBurst(count int, origin models.Origin) models.Burst {
	return models.Burst{
		ParticleCount: count,
		StartVelocity: 50,
		Spread:        360,
		Ticks:         100,
		ZIndex:        999,
		Colors:        confettiColors,
		Gravity:       1,
		Scalar:        1,
		Origin:        origin,
	}
}

// snowBurst is the break-complete variant: pale, round, slow falling.
func snowBurst(count int, origin models.Origin) models.Burst {
	return models.Burst{
		ParticleCount: count,
		StartVelocity: 30,
		Spread:        360,
		Ticks:         100,
		ZIndex:        999,
		Colors:        snowColors,
		Shapes:        []string{"circle"},
		Gravity:       0.5,
		Scalar:        1.2,
		Origin:        origin,
	}
}

// Celebration is the burst schedule that follows a completed interval: one
// opening burst, then decaying bursts every CelebrationCadence until
// CelebrationWindow has passed.
type Celebration struct {
	mode  models.Mode
	start time.Time
	end   time.Time
	rng   *rand.Rand
}

func NewCelebration(mode models.Mode, start time.Time, rng *rand.Rand) *Celebration {
	return &Celebration{
		mode:  mode,
		start: start,
		end:   start.Add(config.CelebrationWindow),
		rng:   rng,
	}
}

func (c *Celebration) Mode() models.Mode { return c.mode }

func (c *Celebration) End() time.Time { return c.end }

// Variant names the animation style.
func (c *Celebration) Variant() string {
	if c.mode == models.ModeBreak {
		return "snow"
	}
	return "confetti"
}

// Initial is the opening burst.
func (c *Celebration) Initial() []models.Burst {
	if c.mode == models.ModeBreak {
		return []models.Burst{snowBurst(100, models.Origin{X: 0.5, Y: 0.1})}
	}
	return []models.Burst{confettiBurst(100, models.Origin{X: 0.5, Y: 0.5})}
}

// Step returns the bursts due at now and whether the schedule continues.
func (c *Celebration) Step(now time.Time) ([]models.Burst, bool) {
	left := c.end.Sub(now)
	if left <= 0 {
		return nil, false
	}
	ratio := float64(left) / float64(config.CelebrationWindow)
	if c.mode == models.ModeBreak {
		x := randomInRange(c.rng, 0.1, 0.9)
		return []models.Burst{snowBurst(int(50*ratio), models.Origin{X: x, Y: 0.1})}, true
	}
	count := int(100 * ratio)
	return []models.Burst{
		confettiBurst(count, models.Origin{X: 0.1, Y: 0.5}),
		confettiBurst(count, models.Origin{X: 0.9, Y: 0.5}),
		confettiBurst(count/2, models.Origin{X: 0.5, Y: 0.5}),
	}, true
}

func randomInRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}
