package settings

import "time"

// MergeBehavior selects what happens to unmatched entries when a catalog is
// updated from sources.
type MergeBehavior int

const (
	MergeNone MergeBehavior = iota
	MergeFuzzyMatch
	MergeUseTM
)

func (b MergeBehavior) String() string {
	switch b {
	case MergeFuzzyMatch:
		return "fuzzy"
	case MergeUseTM:
		return "use_tm"
	default:
		return "none"
	}
}

func mergeBehaviorFromString(s string) MergeBehavior {
	switch s {
	case "fuzzy":
		return MergeFuzzyMatch
	case "use_tm":
		return MergeUseTM
	default:
		return MergeNone
	}
}

// PretranslateSettings controls automatic provisional translation.
type PretranslateSettings struct {
	OnlyExact     bool
	ExactNotFuzzy bool
}

// App wraps a Store with the application-level settings surface. All
// accessors fall back to the documented defaults when a key was never
// written.
type App struct {
	store *Store
}

// NewApp returns the application settings facade over the given store.
func NewApp(store *Store) *App {
	return &App{store: store}
}

func (a *App) UseTM() bool             { return a.store.Bool("/use_tm", true) }
func (a *App) SetUseTM(v bool) error   { return a.store.SetBool("/use_tm", v) }
func (a *App) ShowWarnings() bool      { return a.store.Bool("/show_warnings", true) }
func (a *App) SetShowWarnings(v bool) error { return a.store.SetBool("/show_warnings", v) }

func (a *App) CheckForBetaUpdates() bool {
	return a.store.Bool("/check_for_beta_updates", false)
}

func (a *App) SetCheckForBetaUpdates(v bool) error {
	return a.store.SetBool("/check_for_beta_updates", v)
}

func (a *App) MergeBehavior() MergeBehavior {
	return mergeBehaviorFromString(a.store.String("/merge_behavior", "none"))
}

func (a *App) SetMergeBehavior(b MergeBehavior) error {
	return a.store.SetString("/merge_behavior", b.String())
}

func (a *App) PretranslateSettings() PretranslateSettings {
	return PretranslateSettings{
		OnlyExact:     a.store.Bool("/pretranslate/only_exact", false),
		ExactNotFuzzy: a.store.Bool("/pretranslate/exact_not_fuzzy", true),
	}
}

func (a *App) SetPretranslateSettings(s PretranslateSettings) error {
	if err := a.store.SetBool("/pretranslate/only_exact", s.OnlyExact); err != nil {
		return err
	}
	return a.store.SetBool("/pretranslate/exact_not_fuzzy", s.ExactNotFuzzy)
}

func (a *App) CloudLastProject() string {
	return a.store.String("/cloud_last_project", "")
}

func (a *App) SetCloudLastProject(project string) error {
	return a.store.SetString("/cloud_last_project", project)
}

func (a *App) OTALastCheck() time.Time {
	return a.store.Time("/ota/last_check", time.Time{})
}

func (a *App) SetOTALastCheck(when time.Time) error {
	return a.store.SetTime("/ota/last_check", when)
}

func (a *App) OTAEtag() string             { return a.store.String("/ota/etag", "") }
func (a *App) SetOTAEtag(etag string) error { return a.store.SetString("/ota/etag", etag) }
