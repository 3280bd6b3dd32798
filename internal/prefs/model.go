// Package prefs holds the user-tunable gesture preferences.
package prefs

import (
	"fmt"
	"strings"

	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/hook"
	"github.com/frudas24/flashgestures/internal/wininput"
)

// Prefs stores which gestures run and how plugin windows are found.
type Prefs struct {
	Gestures      []string `yaml:"gestures"`
	ForwardZoom   bool     `yaml:"forward_zoom"`
	ForwardKeys   bool     `yaml:"forward_keys"`
	SearchDepth   int      `yaml:"search_depth"`
	PluginClasses []string `yaml:"plugin_classes"`
	BrowserClass  string   `yaml:"browser_class"`
}

// Default returns preferences with every gesture and forwarder enabled.
func Default() Prefs {
	p := Prefs{
		ForwardZoom:   true,
		ForwardKeys:   true,
		SearchDepth:   hook.DefaultSearchDepth,
		PluginClasses: append([]string(nil), wininput.DefaultPluginClasses...),
		BrowserClass:  wininput.DefaultBrowserClass,
	}
	for _, k := range gesture.Priority {
		p.Gestures = append(p.Gestures, k.String())
	}
	return p
}

// Normalize lowercases gesture names, drops duplicates and blanks, and fills
// missing window settings with defaults.
func (p Prefs) Normalize() Prefs {
	seen := make(map[string]bool, len(p.Gestures))
	gestures := make([]string, 0, len(p.Gestures))
	for _, g := range p.Gestures {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		gestures = append(gestures, g)
	}
	p.Gestures = gestures
	if p.SearchDepth <= 0 {
		p.SearchDepth = hook.DefaultSearchDepth
	}
	if len(p.PluginClasses) == 0 {
		p.PluginClasses = append([]string(nil), wininput.DefaultPluginClasses...)
	}
	if strings.TrimSpace(p.BrowserClass) == "" {
		p.BrowserClass = wininput.DefaultBrowserClass
	}
	return p
}

// Kinds parses the gesture names. An empty list is valid and disables
// mouse gestures.
func (p Prefs) Kinds() ([]gesture.Kind, error) {
	kinds := make([]gesture.Kind, 0, len(p.Gestures))
	for _, name := range p.Gestures {
		k, err := gesture.ParseKind(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, fmt.Errorf("prefs gestures: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
