package entity

// RadioBand is the static heard on the radio, chosen by distance to the goal
type RadioBand int

const (
	BandUltraNear RadioBand = iota
	BandBetween
	BandFar
)

// String returns the band name
func (b RadioBand) String() string {
	switch b {
	case BandUltraNear:
		return "UltraNear"
	case BandBetween:
		return "Between"
	case BandFar:
		return "Far"
	default:
		return "Unknown"
	}
}

// Radio is the side mini-game. Listening too long, or switching it on too
// often, kills the player.
type Radio struct {
	Activations      int
	MaxActivations   int
	ListeningTime    float64
	MaxListeningTime float64
	On               bool
	PlayerDead       bool
	Band             RadioBand
}

// NewRadio creates a switched-off radio
func NewRadio(maxListening float64, maxActivations int) *Radio {
	return &Radio{
		MaxListeningTime: maxListening,
		MaxActivations:   maxActivations,
	}
}

// Reset clears a session's progress and sets a fresh activation limit
func (r *Radio) Reset(maxActivations int) {
	r.Activations = 0
	r.MaxActivations = maxActivations
	r.ListeningTime = 0
	r.On = false
	r.PlayerDead = false
}

// Tick advances the radio clock by dt. It returns true when this tick ended the game.
func (r *Radio) Tick(dt float64) bool {
	if r.PlayerDead {
		return false
	}
	if r.Activations > r.MaxActivations {
		r.GameOver()
		return true
	}
	if r.On {
		r.ListeningTime += dt
		if r.ListeningTime > r.MaxListeningTime {
			r.GameOver()
			return true
		}
	}
	return false
}

// TurnOn switches to band and counts an activation
func (r *Radio) TurnOn(band RadioBand) {
	r.Band = band
	r.Activations++
	r.On = true
}

// TurnOff silences the radio and clears the listening clock
func (r *Radio) TurnOff() {
	r.ListeningTime = 0
	r.On = false
}

// GameOver marks the player dead and switches the radio off
func (r *Radio) GameOver() {
	r.PlayerDead = true
	r.TurnOff()
}

// BandFor picks the band for a distance to the goal
func BandFor(distance, nearRange, midRange float64) RadioBand {
	switch {
	case distance < nearRange:
		return BandUltraNear
	case distance <= midRange:
		return BandBetween
	default:
		return BandFar
	}
}
