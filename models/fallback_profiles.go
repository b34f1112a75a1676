package models

// FallbackProfiles is the fixed local candidate set served when the primary
// store is unreachable. Search runs the identical filter pipeline over it
// and flags the response as degraded.
var FallbackProfiles = []UserProfile{
	{
		UserID:     "fallback-1",
		Username:   "sarah_strings",
		EmailID:    "sarah@example.com",
		Location:   "Boston, MA",
		Latitude:   42.3601,
		Longitude:  -71.0589,
		Instrument: "Violin",
		Experience: "Professional (10+ years)",
		Genres:     []string{"Classical", "Jazz"},
		CreatedAt:  "2024-01-12T09:30:00Z",
	},
	{
		UserID:     "fallback-2",
		Username:   "mike_drums",
		EmailID:    "mike@example.com",
		Location:   "Cambridge, MA",
		Latitude:   42.3736,
		Longitude:  -71.1097,
		Instrument: "Drums",
		Experience: "Advanced (5-10 years)",
		Genres:     []string{"Rock", "Funk & Soul"},
		CreatedAt:  "2024-02-03T18:05:00Z",
	},
	{
		UserID:     "fallback-3",
		Username:   "jazzcat_ella",
		EmailID:    "ella@example.com",
		Location:   "New York, NY",
		Latitude:   40.7128,
		Longitude:  -74.0060,
		Instrument: "Lead Vocals",
		Experience: "Professional (10+ years)",
		Genres:     []string{"Jazz", "Blues"},
		CreatedAt:  "2024-02-21T14:45:00Z",
	},
	{
		UserID:     "fallback-4",
		Username:   "leo_keys",
		EmailID:    "leo@example.com",
		Location:   "Brooklyn, NY",
		Latitude:   40.6782,
		Longitude:  -73.9442,
		Instrument: "Piano",
		Experience: "Intermediate (2-5 years)",
		Genres:     []string{"Pop", "Jazz"},
		CreatedAt:  "2024-03-02T11:20:00Z",
	},
	{
		UserID:     "fallback-5",
		Username:   "ana_bass",
		EmailID:    "ana@example.com",
		Location:   "Somerville, MA",
		Latitude:   42.3876,
		Longitude:  -71.0995,
		Instrument: "Bass Guitar",
		Experience: "Advanced (5-10 years)",
		Genres:     []string{"Funk & Soul", "Rock"},
		CreatedAt:  "2024-03-15T08:10:00Z",
	},
	{
		UserID:     "fallback-6",
		Username:   "violin_vik",
		EmailID:    "vik@example.com",
		Instrument: "Violin",
		Experience: "Beginner (0-2 years)",
		Genres:     []string{"Jazz", "Folk"},
		CreatedAt:  "2024-04-01T16:55:00Z",
	},
	{
		UserID:     "fallback-7",
		Username:   "synthia",
		EmailID:    "synthia@example.com",
		Location:   "Austin, TX",
		Latitude:   30.2672,
		Longitude:  -97.7431,
		Instrument: "Synthesizer",
		Experience: "Intermediate (2-5 years)",
		Genres:     []string{"Electronic", "Pop"},
		CreatedAt:  "2024-04-18T21:40:00Z",
	},
	{
		UserID:     "fallback-8",
		Username:   "delta_dan",
		EmailID:    "dan@example.com",
		Location:   "Boston, MA",
		Latitude:   42.3554,
		Longitude:  -71.0640,
		Instrument: "Acoustic Guitar",
		Experience: "Professional (10+ years)",
		Genres:     []string{"Blues", "Folk"},
		CreatedAt:  "2024-05-06T13:25:00Z",
	},
}
