package models

// Instrument and genre catalogs backing profile validation and the search
// form. Kept flat so lookups stay simple.

type Instrument struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

var Instruments = []Instrument{
	{Name: "Acoustic Guitar", Category: "String"},
	{Name: "Electric Guitar", Category: "String"},
	{Name: "Bass Guitar", Category: "String"},
	{Name: "Violin", Category: "String"},
	{Name: "Viola", Category: "String"},
	{Name: "Cello", Category: "String"},
	{Name: "Double Bass", Category: "String"},
	{Name: "Ukulele", Category: "String"},
	{Name: "Banjo", Category: "String"},
	{Name: "Mandolin", Category: "String"},
	{Name: "Harp", Category: "String"},
	{Name: "Flute", Category: "Woodwind"},
	{Name: "Clarinet", Category: "Woodwind"},
	{Name: "Saxophone", Category: "Woodwind"},
	{Name: "Oboe", Category: "Woodwind"},
	{Name: "Bassoon", Category: "Woodwind"},
	{Name: "Recorder", Category: "Woodwind"},
	{Name: "Trumpet", Category: "Brass"},
	{Name: "Trombone", Category: "Brass"},
	{Name: "French Horn", Category: "Brass"},
	{Name: "Tuba", Category: "Brass"},
	{Name: "Euphonium", Category: "Brass"},
	{Name: "Drums", Category: "Percussion"},
	{Name: "Percussion", Category: "Percussion"},
	{Name: "Djembe", Category: "Percussion"},
	{Name: "Cajon", Category: "Percussion"},
	{Name: "Xylophone", Category: "Percussion"},
	{Name: "Marimba", Category: "Percussion"},
	{Name: "Timpani", Category: "Percussion"},
	{Name: "Congas", Category: "Percussion"},
	{Name: "Bongos", Category: "Percussion"},
	{Name: "Piano", Category: "Keyboard"},
	{Name: "Synthesizer", Category: "Keyboard"},
	{Name: "Organ", Category: "Keyboard"},
	{Name: "Accordion", Category: "Keyboard"},
	{Name: "Digital Piano", Category: "Keyboard"},
	{Name: "DJ/Turntables", Category: "Electronic"},
	{Name: "Electronic Production", Category: "Electronic"},
	{Name: "Drum Machine", Category: "Electronic"},
	{Name: "Sampler", Category: "Electronic"},
	{Name: "Lead Vocals", Category: "Vocal"},
	{Name: "Backing Vocals", Category: "Vocal"},
	{Name: "Rap/MC", Category: "Vocal"},
	{Name: "Beatbox", Category: "Vocal"},
	{Name: "Other", Category: "Other"},
}

type Genre struct {
	Name      string   `json:"name"`
	Subgenres []string `json:"subgenres"`
}

var Genres = []Genre{
	{Name: "Rock", Subgenres: []string{"Alternative Rock", "Classic Rock", "Hard Rock", "Indie Rock", "Progressive Rock", "Punk Rock", "Metal", "Grunge"}},
	{Name: "Jazz", Subgenres: []string{"Bebop", "Swing", "Fusion", "Cool Jazz", "Free Jazz", "Latin Jazz", "Modern Jazz"}},
	{Name: "Electronic", Subgenres: []string{"House", "Techno", "EDM", "Ambient", "Drum & Bass", "Dubstep", "Trance", "IDM"}},
	{Name: "Hip Hop", Subgenres: []string{"Old School", "Trap", "Alternative Hip Hop", "Rap", "Underground", "R&B/Hip Hop"}},
	{Name: "Pop", Subgenres: []string{"Indie Pop", "Synth Pop", "Pop Rock", "Contemporary Pop", "Art Pop", "K-Pop"}},
	{Name: "Folk", Subgenres: []string{"Traditional Folk", "Contemporary Folk", "Folk Rock", "Americana", "Celtic", "Bluegrass"}},
	{Name: "Classical", Subgenres: []string{"Baroque", "Classical Period", "Romantic", "Contemporary Classical", "Opera", "Chamber Music"}},
	{Name: "Blues", Subgenres: []string{"Chicago Blues", "Delta Blues", "Electric Blues", "Jump Blues", "Blues Rock"}},
	{Name: "World", Subgenres: []string{"Latin", "African", "Asian", "Caribbean", "Middle Eastern", "Reggae"}},
	{Name: "Funk & Soul", Subgenres: []string{"Funk", "Soul", "R&B", "Motown", "Neo-Soul", "Gospel"}},
}

// ExperienceLevels are the selectable experience tiers for a profile
var ExperienceLevels = []string{
	"Beginner (0-2 years)",
	"Intermediate (2-5 years)",
	"Advanced (5-10 years)",
	"Professional (10+ years)",
}

// AllInstrumentNames returns the flat instrument name list
func AllInstrumentNames() []string {
	names := make([]string, 0, len(Instruments))
	for _, i := range Instruments {
		names = append(names, i.Name)
	}
	return names
}

// AllGenreNames returns every top-level genre followed by its subgenres
func AllGenreNames() []string {
	var names []string
	for _, g := range Genres {
		names = append(names, g.Name)
		names = append(names, g.Subgenres...)
	}
	return names
}

// SubgenresOf returns the subgenres of a top-level genre, or nil
func SubgenresOf(genreName string) []string {
	for _, g := range Genres {
		if g.Name == genreName {
			return g.Subgenres
		}
	}
	return nil
}
