package config

// Tuning is the root config for tuning.yaml / tuning.json
type Tuning struct {
	Display DisplayConfig `json:"display" yaml:"display"`
	Player  PlayerConfig  `json:"player" yaml:"player"`
	Enemy   EnemyConfig   `json:"enemy" yaml:"enemy"`
	Radio   RadioConfig   `json:"radio" yaml:"radio"`
	Scene   SceneConfig   `json:"scene" yaml:"scene"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	TileSize     int `json:"tileSize" yaml:"tileSize"` // Pixels per map tile in the top-down view
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type PlayerConfig struct {
	MovementSpeed    float64       `json:"movementSpeed" yaml:"movementSpeed"`       // Units per second
	MouseSensitivity float64       `json:"mouseSensitivity" yaml:"mouseSensitivity"` // Degrees per mouse pixel
	KeyTurnRate      float64       `json:"keyTurnRate" yaml:"keyTurnRate"`           // Degrees per second for arrow-key turning
	CollisionOffset  float64       `json:"collisionOffset" yaml:"collisionOffset"`
	WallHalfExtent   float64       `json:"wallHalfExtent" yaml:"wallHalfExtent"`
	WinHalfExtent    float64       `json:"winHalfExtent" yaml:"winHalfExtent"`
	Headbob          HeadbobConfig `json:"headbob" yaml:"headbob"`
}

type HeadbobConfig struct {
	Frequency     float64 `json:"frequency" yaml:"frequency"` // Seconds per bob
	Amount        float64 `json:"amount" yaml:"amount"`
	StepThreshold float64 `json:"stepThreshold" yaml:"stepThreshold"`
}

type EnemyConfig struct {
	BaseSpeed          float64       `json:"baseSpeed" yaml:"baseSpeed"`
	ScreamSpeed        float64       `json:"screamSpeed" yaml:"screamSpeed"`
	ArrivalTolerance   float64       `json:"arrivalTolerance" yaml:"arrivalTolerance"`
	DetectionRadius    float64       `json:"detectionRadius" yaml:"detectionRadius"`
	SightSteps         int           `json:"sightSteps" yaml:"sightSteps"`
	ScreamDistance     float64       `json:"screamDistance" yaml:"screamDistance"` // Spawn distance in front of the camera
	ScreamDrop         float64       `json:"screamDrop" yaml:"screamDrop"`
	ScreamStopDistance float64       `json:"screamStopDistance" yaml:"screamStopDistance"`
	LethalSighting     bool          `json:"lethalSighting" yaml:"lethalSighting"` // Sighting with the torch on kills; off by default
	Noise              FalloffConfig `json:"noise" yaml:"noise"`
}

// FalloffConfig maps a distance in [MinDistance, MaxDistance] onto [Max, 0]
type FalloffConfig struct {
	MinDistance float64 `json:"minDistance" yaml:"minDistance"`
	MaxDistance float64 `json:"maxDistance" yaml:"maxDistance"`
	Max         float64 `json:"max" yaml:"max"`
}

type RadioConfig struct {
	MaxListeningTime float64 `json:"maxListeningTime" yaml:"maxListeningTime"`
	MinActivations   int     `json:"minActivations" yaml:"minActivations"`
	MaxActivations   int     `json:"maxActivations" yaml:"maxActivations"`
	NearRange        float64 `json:"nearRange" yaml:"nearRange"`
	MidRange         float64 `json:"midRange" yaml:"midRange"`
}

type SceneConfig struct {
	ScreamerDuration float64       `json:"screamerDuration" yaml:"screamerDuration"`
	Distortion       FalloffConfig `json:"distortion" yaml:"distortion"`
}

// DefaultTuning returns the values the game ships with.
// Loaded files are decoded on top of these, so partial files are fine.
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 640,
			TileSize:     24,
			Framerate:    60,
		},
		Player: PlayerConfig{
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			KeyTurnRate:      120,
			CollisionOffset:  0.11,
			WallHalfExtent:   0.5,
			WinHalfExtent:    0.4,
			Headbob: HeadbobConfig{
				Frequency:     0.7,
				Amount:        0.03,
				StepThreshold: 0.005,
			},
		},
		Enemy: EnemyConfig{
			BaseSpeed:          0.3,
			ScreamSpeed:        4.0,
			ArrivalTolerance:   0.01,
			DetectionRadius:    9.0,
			SightSteps:         4,
			ScreamDistance:     3.0,
			ScreamDrop:         0.2,
			ScreamStopDistance: 0.3,
			LethalSighting:     false,
			Noise: FalloffConfig{
				MinDistance: 4,
				MaxDistance: 7,
				Max:         12,
			},
		},
		Radio: RadioConfig{
			MaxListeningTime: 7.0,
			MinActivations:   7,
			MaxActivations:   10,
			NearRange:        10,
			MidRange:         30,
		},
		Scene: SceneConfig{
			ScreamerDuration: 3.0,
			Distortion: FalloffConfig{
				MinDistance: 4,
				MaxDistance: 7,
				Max:         0.3,
			},
		},
	}
}
