package repository

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/podcast-feed/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Extensions are tried in this order when several files share an id.
var definitionExtensions = []string{".yaml", ".yml", ".json", ".toml"}

var feedIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// FileStorage implements Repository on a directory of definition files
type FileStorage struct {
	basePath string
}

// NewFileStorage creates a new file-based feed repository
func NewFileStorage(basePath string) (Repository, error) {
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return nil, oops.With("feeds_path", basePath).Wrap(errors.ErrFeedsPathNotFound)
	}
	return &FileStorage{basePath: basePath}, nil
}

func (s *FileStorage) GetFeed(feedID string) (*domain.Definition, error) {
	if !feedIDPattern.MatchString(feedID) {
		return nil, oops.With("feed_id", feedID).Wrap(errors.ErrInvalidFeedID)
	}

	ext, found := lo.Find(definitionExtensions, func(ext string) bool {
		_, err := os.Stat(filepath.Join(s.basePath, feedID+ext))
		return err == nil
	})
	if !found {
		return nil, oops.With("feed_id", feedID).Wrap(errors.ErrFeedNotFound)
	}

	path := filepath.Join(s.basePath, feedID+ext)
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(ext)); err != nil {
		return nil, oops.With("feed_id", feedID, "path", path, "context", "failed to load definition").Wrap(err)
	}

	var def domain.Definition
	if err := k.Unmarshal("", &def); err != nil {
		return nil, oops.With("feed_id", feedID, "path", path, "context", "failed to unmarshal definition").Wrap(err)
	}
	def.ID = feedID

	slog.Debug("feed definition loaded", "feed_id", feedID, "path", path, "episodes", len(def.Episodes))
	return &def, nil
}

// ListFeeds returns the ids of all definitions, sorted.
func (s *FileStorage) ListFeeds() ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read feeds directory").Wrap(err)
	}

	ids := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || !lo.Contains(definitionExtensions, ext) {
			return "", false
		}
		id := strings.TrimSuffix(entry.Name(), ext)
		return id, feedIDPattern.MatchString(id)
	})
	ids = lo.Uniq(ids)
	slices.Sort(ids)
	return ids, nil
}

func parserFor(ext string) koanf.Parser {
	switch ext {
	case ".json":
		return json.Parser()
	case ".toml":
		return toml.Parser()
	default:
		return yaml.Parser()
	}
}
