// Package feature resolves the user's feature selection into the staged
// fragment that the post-generation hook merges into a project.
package feature

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/opmodel/cookie/internal/errors"
)

// Feature is the single optional feature selected for a generated project.
type Feature string

const (
	// None selects no optional fragment.
	None Feature = "none"

	// HTTP adds the HTTP service stub.
	HTTP Feature = "http"

	// PubSub adds the Pub/Sub event handler stub.
	PubSub Feature = "pubsub"
)

// Fragment is the name of a staged fragment directory under the staging directory.
type Fragment string

// Info describes a selectable feature.
type Info struct {
	Feature     Feature  `json:"feature"`
	Fragment    Fragment `json:"fragment,omitempty"`
	Description string   `json:"description"`
}

// registry lists features in display order.
var registry = []Info{
	{
		Feature:     None,
		Description: "Project skeleton only",
	},
	{
		Feature:     HTTP,
		Fragment:    "ff_http",
		Description: "HTTP service with health checks and request logging",
	},
	{
		Feature:     PubSub,
		Fragment:    "ff_pubsub",
		Description: "Pub/Sub push handler with duplicate filtering",
	},
}

// ErrInvalidSelection indicates a feature outside the recognized set.
var ErrInvalidSelection = errors.New("invalid feature selection")

// InvalidSelectionError reports an unrecognized feature value.
type InvalidSelectionError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("unknown feature %q; valid features: %s", e.Value, strings.Join(Names(), ", "))
}

// Unwrap exposes both ErrInvalidSelection and the CLI validation sentinel.
func (e *InvalidSelectionError) Unwrap() []error {
	return []error{ErrInvalidSelection, oerrors.ErrValidation}
}

// Parse converts user input into a Feature.
// Matching is case-insensitive and ignores surrounding whitespace; the empty
// string selects None.
func Parse(s string) (Feature, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return None, nil
	}
	for _, info := range registry {
		if string(info.Feature) == normalized {
			return info.Feature, nil
		}
	}
	return "", &InvalidSelectionError{Value: s}
}

// Resolve maps a feature to the fragment it contributes.
// The boolean is false for None.
func Resolve(f Feature) (Fragment, bool, error) {
	info, ok := lookup(f)
	if !ok {
		return "", false, &InvalidSelectionError{Value: string(f)}
	}
	if info.Fragment == "" {
		return "", false, nil
	}
	return info.Fragment, true, nil
}

// All returns every known feature in display order.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Names returns all feature names in display order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, info := range registry {
		names = append(names, string(info.Feature))
	}
	return names
}

// Fragments returns the fragment names of all features that contribute one.
func Fragments() []Fragment {
	var out []Fragment
	for _, info := range registry {
		if info.Fragment != "" {
			out = append(out, info.Fragment)
		}
	}
	return out
}

func lookup(f Feature) (Info, bool) {
	for _, info := range registry {
		if info.Feature == f {
			return info, true
		}
	}
	return Info{}, false
}

// String returns the feature name.
func (f Feature) String() string {
	return string(f)
}

// String returns the fragment directory name.
func (f Fragment) String() string {
	return string(f)
}
