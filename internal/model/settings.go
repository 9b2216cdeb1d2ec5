package model

// Goal is the fundraising goal shown by the overlay progress bar.
type Goal struct {
	Label  string  `json:"label"`
	Target float64 `json:"target"`
	Active bool    `json:"active"`
}

// Theme holds the overlay's visual configuration.
type Theme struct {
	Preset      string `json:"preset"`
	BarColor    string `json:"barColor"`
	BarBgColor  string `json:"barBgColor"`
	TextColor   string `json:"textColor"`
	AccentColor string `json:"accentColor"`
	FontFamily  string `json:"fontFamily"`
	AlertStyle  string `json:"alertStyle"`
	BarStyle    string `json:"barStyle"`
}

// AudioSettings controls the donation alert sound.
type AudioSettings struct {
	Enabled   bool    `json:"enabled"`
	Volume    float64 `json:"volume"`
	SoundFile string  `json:"soundFile"`
}

// SoundbiteConfig is one configured soundbite the admin can trigger.
type SoundbiteConfig struct {
	Filename string  `json:"filename"`
	Label    string  `json:"label"`
	Enabled  bool    `json:"enabled"`
	Volume   float64 `json:"volume"`
}

// SoundbiteTrigger is a one-shot play request; the overlay picks it up
// on its next poll and plays the file once.
type SoundbiteTrigger struct {
	ID        string  `json:"id"`
	Filename  string  `json:"filename"`
	Timestamp int64   `json:"timestamp"`
	Volume    float64 `json:"volume"`
}

type SoundbitesState struct {
	Configs        []SoundbiteConfig `json:"configs"`
	PendingTrigger *SoundbiteTrigger `json:"pendingTrigger"`
}

// RouletteState tracks the two-option vote. VoterTimestamps maps voter id
// to the unix-millisecond time of their last accepted vote.
type RouletteState struct {
	Active          bool             `json:"active"`
	RedVotes        int              `json:"redVotes"`
	BlackVotes      int              `json:"blackVotes"`
	SessionID       string           `json:"sessionId"`
	VoterTimestamps map[string]int64 `json:"voterTimestamps"`
}

func DefaultGoal() Goal {
	return Goal{}
}

func DefaultTheme() Theme {
	return Theme{
		Preset:      "neon",
		BarColor:    "#00ff88",
		BarBgColor:  "#1a1a2e",
		TextColor:   "#ffffff",
		AccentColor: "#ff6b6b",
		FontFamily:  "Inter",
		AlertStyle:  "slide-up",
		BarStyle:    "rounded",
	}
}

func DefaultAudioSettings() AudioSettings {
	return AudioSettings{
		Enabled:   true,
		Volume:    0.7,
		SoundFile: "donation-chime.mp3",
	}
}

func DefaultSoundbites() SoundbitesState {
	return SoundbitesState{Configs: []SoundbiteConfig{}}
}

func DefaultRoulette() RouletteState {
	return RouletteState{VoterTimestamps: map[string]int64{}}
}
