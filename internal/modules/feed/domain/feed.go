package domain

// Definition is a feed description file as read from disk. Dates, sizes and
// durations stay loosely typed here and are converted by the service.
type Definition struct {
	ID string `koanf:"-"`

	Title                string `koanf:"title"`
	Link                 string `koanf:"link"`
	Description          string `koanf:"description"`
	Language             string `koanf:"language"`
	Copyright            string `koanf:"copyright"`
	Docs                 string `koanf:"docs"`
	FeedURL              string `koanf:"feed_url"`
	Generator            string `koanf:"generator"`
	GeneratorExcludeSelf bool   `koanf:"generator_exclude_self"`

	// LastBuildDate is a timestamp, "omit" to leave it out, or empty for
	// the time of rendering.
	LastBuildDate string `koanf:"last_build_date"`
	PubDate       string `koanf:"pub_date"`

	Authors   []Person `koanf:"authors"`
	WebMaster *Person  `koanf:"web_master"`
	Cloud     *Cloud   `koanf:"cloud"`
	SkipHours []int    `koanf:"skip_hours"`
	SkipDays  []string `koanf:"skip_days"`

	Explicit    *bool   `koanf:"explicit"`
	Image       string  `koanf:"image"`
	Category    string  `koanf:"category"`
	Subcategory string  `koanf:"subcategory"`
	Complete    *bool   `koanf:"complete"`
	NewFeedURL  string  `koanf:"new_feed_url"`
	Owner       *Person `koanf:"owner"`
	Subtitle    string  `koanf:"subtitle"`
	Withhold    bool    `koanf:"withhold"`

	Episodes []Episode `koanf:"episodes"`
}

type Person struct {
	Name  string `koanf:"name"`
	Email string `koanf:"email"`
}

type Cloud struct {
	Domain            string `koanf:"domain"`
	Port              int    `koanf:"port"`
	Path              string `koanf:"path"`
	RegisterProcedure string `koanf:"register_procedure"`
	Protocol          string `koanf:"protocol"`
}

// Episode is one entry of a definition.
type Episode struct {
	GUID        string     `koanf:"guid"`
	Title       string     `koanf:"title"`
	Description string     `koanf:"description"`
	Content     string     `koanf:"content"`
	Link        string     `koanf:"link"`
	Comments    string     `koanf:"comments"`
	Published   string     `koanf:"published"`
	Authors     []Person   `koanf:"authors"`
	Categories  []Category `koanf:"categories"`
	Enclosure   *Enclosure `koanf:"enclosure"`
	Image       string     `koanf:"image"`
	// Duration is "H:MM:SS", "MM:SS", a Go duration like "45m" or seconds.
	Duration        string    `koanf:"duration"`
	Explicit        *bool     `koanf:"explicit"`
	ClosedCaptioned *bool     `koanf:"closed_captioned"`
	Subtitle        string    `koanf:"subtitle"`
	Withhold        bool      `koanf:"withhold"`
	Position        int       `koanf:"position"`
	Chapters        []Chapter `koanf:"chapters"`
}

// Chapter start uses the same forms as Episode.Duration, with optional
// milliseconds ("00:01:30.500").
type Chapter struct {
	Start string `koanf:"start"`
	Title string `koanf:"title"`
	Link  string `koanf:"link"`
	Image string `koanf:"image"`
}

type Category struct {
	Term   string `koanf:"term"`
	Scheme string `koanf:"scheme"`
	Label  string `koanf:"label"`
}

// Enclosure size is either a byte count or a human size like "12 MB".
type Enclosure struct {
	URL  string `koanf:"url"`
	Size string `koanf:"size"`
	Type string `koanf:"type"`
}
