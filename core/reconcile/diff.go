package reconcile

import (
	"fmt"
	"sort"
	"time"
)

// Missing returns the names in templates that are not in existing.
// The result is sorted and free of duplicates; it is nil when nothing is missing.
func Missing(templates, existing []string) []string {
	have := NameSet(existing)

	var missing []string
	seen := make(map[string]struct{}, len(templates))
	for _, name := range templates {
		if _, ok := have[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}

	sort.Strings(missing)
	return missing
}

// NameSet builds a set from a list of names.
func NameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// FormatNames renders names for log messages, e.g. ["Gi1" "Gi2"].
func FormatNames(names []string) string {
	return fmt.Sprintf("%q", names)
}

// Report collects entries for a job run.
type Report struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Add appends an entry, stamping its time when unset.
func (r *Report) Add(e Entry) Entry {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}
	r.Entries = append(r.Entries, e)
	return e
}

// Count returns how many entries have the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, e := range r.Entries {
		if e.Severity == sev {
			n++
		}
	}
	return n
}

// Filter returns the entries with the given severity.
func (r *Report) Filter(sev Severity) []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}
