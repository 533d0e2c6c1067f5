package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"
)

var templateExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Slugify turns a template filename stem into a theme id: lowercase with
// every run of non-alphanumeric characters collapsed to a single dash
func Slugify(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// titleize turns a filename stem into a display name: separators become
// spaces and each word is capitalized
func titleize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// DefaultThemeID is the slug of the fallback template
var DefaultThemeID = Slugify(strings.TrimSuffix(DefaultTemplateFile, filepath.Ext(DefaultTemplateFile)))

// Service discovers themes from the template directory with a short
// read-through cache so repeated listings do not rescan the disk
type Service struct {
	dir     string
	baseURL string
	ttl     time.Duration

	mu        sync.Mutex
	cached    []Theme
	fetchedAt time.Time
}

// NewService creates theme service. baseURL prefixes TemplateURL values,
// e.g. "/templates".
func NewService(dir, baseURL string, ttl time.Duration) *Service {
	return &Service{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), ttl: ttl}
}

// List returns all discovered themes. A scan failure or empty directory
// yields the single default theme so the frontend always has something to
// render.
func (s *Service) List() []Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.cached
	}

	themes, err := s.scan()
	if err != nil {
		log.Error().Err(err).Str("dir", s.dir).Msg("Template directory scan failed")
	}
	if len(themes) == 0 {
		themes = []Theme{s.defaultTheme()}
	}

	s.cached = themes
	s.fetchedAt = time.Now()
	return themes
}

// Get returns one theme by id
func (s *Service) Get(id string) (Theme, error) {
	for _, t := range s.List() {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, ErrNotFound
}

// Resolve returns the theme for an id along with a template image path that
// is guaranteed to exist. Unknown ids and missing template files both fall
// back to the default template.
func (s *Service) Resolve(id string) (Theme, string, error) {
	t, err := s.Get(id)
	if err != nil {
		t, err = s.Get(DefaultThemeID)
		if err != nil {
			return Theme{}, "", ErrNoTemplate
		}
	}

	path := filepath.Join(s.dir, t.TemplateFile)
	if _, statErr := os.Stat(path); statErr == nil {
		return t, path, nil
	}

	fallback := filepath.Join(s.dir, DefaultTemplateFile)
	if _, statErr := os.Stat(fallback); statErr != nil {
		return Theme{}, "", ErrNoTemplate
	}

	log.Warn().
		Str("theme", t.ID).
		Str("template", t.TemplateFile).
		Msg("Template image missing, using default")
	return t, fallback, nil
}

// scan walks the template directory once. Filenames are sorted so slug
// collisions resolve deterministically: the first file wins.
func (s *Service) scan() ([]Theme, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if templateExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	themes := make([]Theme, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		id := Slugify(stem)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		display := titleize(stem)
		themes = append(themes, Theme{
			ID:             id,
			Name:           display,
			Title:          display,
			Subtitle:       "Superhero Mom",
			Description:    "Transform her into " + display,
			TemplateFile:   name,
			TemplateURL:    s.baseURL + "/" + name,
			Color:          defaultColor,
			TemplateExists: true,
		})
	}

	return themes, nil
}

func (s *Service) defaultTheme() Theme {
	stem := strings.TrimSuffix(DefaultTemplateFile, filepath.Ext(DefaultTemplateFile))
	display := titleize(stem)
	_, err := os.Stat(filepath.Join(s.dir, DefaultTemplateFile))
	return Theme{
		ID:             DefaultThemeID,
		Name:           display,
		Title:          display,
		Subtitle:       "Superhero Mom",
		Description:    "Transform her into " + display,
		TemplateFile:   DefaultTemplateFile,
		TemplateURL:    s.baseURL + "/" + DefaultTemplateFile,
		Color:          defaultColor,
		TemplateExists: err == nil,
	}
}
