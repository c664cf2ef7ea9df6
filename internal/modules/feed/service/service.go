package service

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/repository"
	"github.com/reshetovitsme/podcast-feed/podcast"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service turns feed definitions into rendered podcast feeds
type Service struct {
	repo repository.Repository
}

// New creates a new feed service
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// ListFeeds returns the ids of every known feed
func (s *Service) ListFeeds() ([]string, error) {
	ids, err := s.repo.ListFeeds()
	if err != nil {
		return nil, oops.With("context", "failed to list feeds").Wrap(err)
	}
	return ids, nil
}

// Render loads the definition and serializes it
func (s *Service) Render(feedID, baseURL string, opts podcast.RenderOptions) ([]byte, error) {
	p, err := s.GenerateFeed(feedID, baseURL)
	if err != nil {
		return nil, err
	}
	data, err := p.Bytes(opts)
	if err != nil {
		return nil, oops.With("feed_id", feedID, "context", "failed to render feed").Wrap(err)
	}
	return data, nil
}

// GenerateFeed builds the podcast for a feed definition. baseURL is used for
// the self link when the definition has no feed_url.
func (s *Service) GenerateFeed(feedID, baseURL string) (*podcast.Podcast, error) {
	def, err := s.repo.GetFeed(feedID)
	if err != nil {
		return nil, oops.With("feed_id", feedID, "context", "feed not found").Wrap(err)
	}

	p, err := Build(def, baseURL)
	if err != nil {
		return nil, oops.With("feed_id", feedID, "context", "invalid feed definition").Wrap(err)
	}
	slog.Debug("feed generated", "feed_id", feedID, "entries", len(p.Entries()))
	return p, nil
}

// Build maps a definition onto a podcast, validating every field.
func Build(def *domain.Definition, baseURL string) (*podcast.Podcast, error) {
	p := podcast.New()
	p.SetTitle(def.Title)
	p.SetLink(def.Link)
	p.SetDescription(def.Description)
	p.SetCopyright(def.Copyright)
	p.SetDocs(def.Docs)
	p.SetGenerator(def.Generator, def.GeneratorExcludeSelf)
	p.SetNewFeedURL(def.NewFeedURL)
	p.SetSubtitle(def.Subtitle)
	p.SetWithholdFromITunes(def.Withhold)

	if err := p.SetLanguage(def.Language); err != nil {
		return nil, err
	}

	feedURL := def.FeedURL
	if feedURL == "" && baseURL != "" {
		feedURL = strings.TrimSuffix(baseURL, "/") + "/rss/" + def.ID
	}
	if err := p.SetFeedURL(feedURL); err != nil {
		return nil, err
	}

	if err := p.SetAuthors(toPeople(def.Authors)...); err != nil {
		return nil, err
	}
	if def.WebMaster != nil {
		if err := p.SetWebMaster(toPerson(*def.WebMaster)); err != nil {
			return nil, err
		}
	}
	if def.Cloud != nil {
		if err := p.SetCloud(podcast.Cloud{
			Domain:            def.Cloud.Domain,
			Port:              def.Cloud.Port,
			Path:              def.Cloud.Path,
			RegisterProcedure: def.Cloud.RegisterProcedure,
			Protocol:          def.Cloud.Protocol,
		}); err != nil {
			return nil, err
		}
	}
	if err := p.SetSkipHours(def.SkipHours...); err != nil {
		return nil, err
	}
	if err := p.SetSkipDays(def.SkipDays...); err != nil {
		return nil, err
	}

	if err := applyDate(def.LastBuildDate, p.SetLastBuildDate, p.OmitLastBuildDate); err != nil {
		return nil, oops.With("field", "last_build_date").Wrap(err)
	}
	if err := applyDate(def.PubDate, p.SetPublicationDate, p.OmitPublicationDate); err != nil {
		return nil, oops.With("field", "pub_date").Wrap(err)
	}

	if def.Explicit != nil {
		p.SetExplicit(*def.Explicit)
	}
	if def.Complete != nil {
		p.SetComplete(*def.Complete)
	}
	if err := p.SetImage(def.Image); err != nil {
		return nil, err
	}
	if def.Category != "" {
		if err := p.SetITunesCategory(def.Category, def.Subcategory); err != nil {
			return nil, err
		}
	}
	if def.Owner != nil {
		if err := p.SetOwner(toPerson(*def.Owner)); err != nil {
			return nil, err
		}
	}

	for i, ep := range def.Episodes {
		e, err := buildEntry(def.ID, ep)
		if err != nil {
			return nil, oops.With("episode", i, "title", ep.Title).Wrap(err)
		}
		p.AddEntry(e)
	}
	return p, nil
}

func buildEntry(feedID string, ep domain.Episode) (*podcast.Entry, error) {
	e := podcast.NewEntry()
	e.SetTitle(ep.Title)
	e.SetDescription(ep.Description)
	e.SetContent(ep.Content)
	e.SetLink(ep.Link)
	e.SetComments(ep.Comments)
	e.SetSubtitle(ep.Subtitle)
	e.SetWithholdFromITunes(ep.Withhold)
	e.SetPosition(ep.Position)
	if ep.Explicit != nil {
		e.SetExplicit(*ep.Explicit)
	}
	if ep.ClosedCaptioned != nil {
		e.SetClosedCaptioned(*ep.ClosedCaptioned)
	}

	if err := e.SetAuthors(toPeople(ep.Authors)...); err != nil {
		return nil, err
	}
	if err := e.SetCategories(lo.Map(ep.Categories, func(c domain.Category, _ int) podcast.Category {
		return podcast.Category{Term: c.Term, Scheme: c.Scheme, Label: c.Label}
	})...); err != nil {
		return nil, err
	}
	if err := e.SetImage(ep.Image); err != nil {
		return nil, err
	}

	if ep.Published != "" {
		t, err := podcast.ParseTime(ep.Published)
		if err != nil {
			return nil, oops.With("published", ep.Published).Wrap(err)
		}
		if err := e.SetPublished(t); err != nil {
			return nil, err
		}
	}

	if ep.Enclosure != nil {
		size, err := podcast.ParseSize(ep.Enclosure.Size)
		if err != nil {
			return nil, err
		}
		if err := e.SetEnclosure(podcast.Enclosure{URL: ep.Enclosure.URL, Length: size, Type: ep.Enclosure.Type}); err != nil {
			return nil, err
		}
	}

	if ep.Duration != "" {
		d, err := ParseDuration(ep.Duration)
		if err != nil {
			return nil, err
		}
		e.SetDuration(d)
	}

	for i, c := range ep.Chapters {
		start, err := ParseDuration(c.Start)
		if err != nil {
			return nil, oops.With("chapter", i).Wrap(err)
		}
		chapter, err := podcast.NewChapter(start, c.Title, c.Link, c.Image)
		if err != nil {
			return nil, oops.With("chapter", i).Wrap(err)
		}
		if err := e.AddChapter(chapter); err != nil {
			return nil, err
		}
	}

	guid := ep.GUID
	if guid == "" && ep.Link == "" && ep.Enclosure == nil {
		guid = stableGUID(feedID, ep)
	}
	e.SetGUID(guid)
	return e, nil
}

// stableGUID derives an id that survives re-rendering as long as the
// episode keeps its title and date.
func stableGUID(feedID string, ep domain.Episode) string {
	name := feedID + "\x00" + ep.Title + "\x00" + ep.Published
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).URN()
}

// applyDate handles the "omit" and "now" keywords and timestamps.
func applyDate(raw string, set func(time.Time) error, omit func()) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if kw, err := domain.ParseDateKeyword(raw); err == nil {
		switch kw {
		case domain.DateKeywordOmit:
			omit()
		case domain.DateKeywordNow:
			return set(time.Now())
		}
		return nil
	}
	t, err := podcast.ParseTime(raw)
	if err != nil {
		return oops.With("value", raw).Wrap(err)
	}
	return set(t)
}

// ParseDuration accepts "H:MM:SS", "MM:SS", plain seconds and Go durations.
// The seconds field may carry a fraction ("1:02:03.250").
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		if len(parts) > 3 {
			return 0, oops.With("duration", raw).Errorf("too many fields in duration %q", raw)
		}
		var whole time.Duration
		for _, part := range parts[:len(parts)-1] {
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 {
				return 0, oops.With("duration", raw).Errorf("invalid duration %q", raw)
			}
			whole = whole*60 + time.Duration(n)
		}
		secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
		if err != nil || secs < 0 {
			return 0, oops.With("duration", raw).Errorf("invalid duration %q", raw)
		}
		return whole*60*time.Second + time.Duration(secs*float64(time.Second)).Round(time.Millisecond), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, oops.With("duration", raw).Wrap(err)
	}
	return d, nil
}

func toPerson(p domain.Person) podcast.Person {
	return podcast.Person{Name: strings.TrimSpace(p.Name), Email: strings.TrimSpace(p.Email)}
}

func toPeople(people []domain.Person) []podcast.Person {
	return lo.Map(people, func(p domain.Person, _ int) podcast.Person { return toPerson(p) })
}
