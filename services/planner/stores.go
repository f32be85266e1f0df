package planner

import (
	"fmt"
	"strings"

	"tripplanner/config"
	"tripplanner/models"
)

// StaticDestinations serves destination profiles from planner data. It is
// read-only after construction and safe for concurrent use.
type StaticDestinations struct {
	profiles map[string]models.DestinationProfile
	fallback models.DestinationProfile
}

func NewStaticDestinations(data config.PlannerData) *StaticDestinations {
	profiles := make(map[string]models.DestinationProfile, len(data.Destinations))
	for key, p := range data.Destinations {
		profiles[strings.ToLower(key)] = p
		if p.Name != "" {
			profiles[strings.ToLower(p.Name)] = p
		}
	}
	return &StaticDestinations{
		profiles: profiles,
		fallback: profiles[strings.ToLower(data.DefaultDestination)],
	}
}

// Lookup finds a profile by name, ignoring case and surrounding spaces.
func (s *StaticDestinations) Lookup(name string) (models.DestinationProfile, bool) {
	p, ok := s.profiles[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Default returns the profile used for unknown destinations.
func (s *StaticDestinations) Default() models.DestinationProfile {
	return s.fallback
}

// StaticLocales serves localized templates from planner data. Supported
// languages without their own template get the default language's texts.
type StaticLocales struct {
	supported map[string]string
	locales   map[string]models.Locale
	fallback  string
}

func NewStaticLocales(data config.PlannerData) *StaticLocales {
	supported := make(map[string]string, len(data.Languages))
	for _, l := range data.Languages {
		supported[strings.ToLower(l)] = l
	}
	locales := make(map[string]models.Locale, len(data.Locales))
	for key, l := range data.Locales {
		locales[strings.ToLower(key)] = l
	}
	return &StaticLocales{
		supported: supported,
		locales:   locales,
		fallback:  strings.ToLower(data.DefaultLanguage),
	}
}

// Normalize returns the canonical name of a supported language. An empty
// input selects the default language.
func (s *StaticLocales) Normalize(lang string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(lang))
	if key == "" {
		key = s.fallback
	}
	name, ok := s.supported[key]
	if !ok {
		return "", models.NewPlanError(models.CodeUnsupportedLanguage, fmt.Sprintf("language %q is not supported", lang))
	}
	return name, nil
}

// Templates returns the texts of a supported language.
func (s *StaticLocales) Templates(lang string) (models.Locale, error) {
	name, err := s.Normalize(lang)
	if err != nil {
		return models.Locale{}, err
	}
	if l, ok := s.locales[strings.ToLower(name)]; ok {
		return l, nil
	}
	return s.locales[s.fallback], nil
}
