package models

import "time"

// GuidedMeditations is the bundled catalog shown by `tfive meditate list`.
var GuidedMeditations = []Meditation{
	{
		ID:          "med-1",
		Title:       "Conscious breathing",
		Description: "A simple practice of attending to the breath. Ideal for beginners.",
		Duration:    5,
		Category:    "breathing",
		Guide:       "Sit comfortably. Close your eyes. Bring your attention to the breath. Inhale... exhale... without forcing, just observe.",
	},
	{
		ID:          "med-2",
		Title:       "Wu-Wei: non-action",
		Description: "Inspired by Taoism. Stop resisting, flow with what is.",
		Duration:    10,
		Category:    "wuwei",
		Guide:       "Like water adapting without losing its essence, let your thoughts flow without holding on to them.",
	},
	{
		ID:          "med-3",
		Title:       "Body scan",
		Description: "Travel through your body with attention, releasing tension.",
		Duration:    15,
		Category:    "bodyscan",
		Guide:       "Start at the feet. Feel each part of your body. Notice sensations without judging them.",
	},
	{
		ID:          "med-4",
		Title:       "Full presence",
		Description: "Mindfulness: being here, now, nothing more.",
		Duration:    7,
		Category:    "mindfulness",
		Guide:       "This moment is the only one there is. Nothing to solve, nothing to achieve. Just being.",
	},
	{
		ID:          "med-5",
		Title:       "Loving kindness",
		Description: "Cultivate kindness toward yourself and others.",
		Duration:    12,
		Category:    "loving-kindness",
		Guide:       "May I be at peace. May I be calm. May I allow myself to rest. Extend these wishes to others.",
	},
}

// FindMeditation looks up a catalog entry by id.
func FindMeditation(id string) (Meditation, bool) {
	for _, m := range GuidedMeditations {
		if m.ID == id {
			return m, true
		}
	}
	return Meditation{}, false
}

// JournalPrompts rotate through `tfive journal add` when no prompt is given.
var JournalPrompts = []string{
	"What do you hold to be absolutely true about yourself?",
	"What does success mean to you, and what do you think you need to reach it?",
	"What phrase do you repeat about your abilities or limitations?",
	"What do you think about aging and death?",
	"What is happiness to you, and what do you consider necessary to be happy?",
	"Which emotion is hardest for you to accept or express?",
	"Which parts of your life feel under your control, and which escape it?",
	"What would you do if you knew nobody would judge you?",
	"What do you need to let go of to feel lighter?",
	"What does the idea of \"rest\" mean to you?",
}

// BoredomPrompt tags reflection notes saved after the conscious-boredom timer.
const BoredomPrompt = "Conscious boredom – reflections"

// seedTracks back the starter playlists. URLs are intentionally empty; these
// are placeholders until the user adds real tracks from a provider.
var seedTracks = []Track{
	{ID: "trk-1", Title: "Gentle rain", Artist: "Nature", Length: 600, Genre: "Ambient"},
	{ID: "trk-2", Title: "Ocean waves", Artist: "Nature", Length: 720, Genre: "Ambient"},
	{ID: "trk-3", Title: "Forest at dawn", Artist: "Nature", Length: 540, Genre: "Ambient"},
	{ID: "trk-4", Title: "Gymnopédie No. 1", Artist: "Erik Satie", Length: 210, Genre: "Classical"},
	{ID: "trk-5", Title: "Take Five", Artist: "Dave Brubeck", Length: 324, Genre: "Jazz"},
	{ID: "trk-6", Title: "An Ending (Ascent)", Artist: "Brian Eno", Length: 265, Genre: "Ambient"},
}

// DefaultPlaylists is the playlists slot default for a fresh store.
func DefaultPlaylists() []Playlist {
	now := time.Now().UTC()
	return []Playlist{
		{
			ID:          "pl-default-1",
			Name:        "Sound refuge",
			Description: "Your first space of calm",
			Tracks:      []Track{seedTracks[0], seedTracks[3], seedTracks[4]},
			CreatedAt:   now,
		},
		{
			ID:          "pl-default-2",
			Name:        "Nature",
			Description: "Sounds of the natural world",
			Tracks:      []Track{seedTracks[0], seedTracks[1], seedTracks[2]},
			CreatedAt:   now,
		},
	}
}
