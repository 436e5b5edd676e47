package models

import "strings"

// Provider identifies one external metadata source, or the special "custom"
// tag for values typed by the user rather than supplied by any provider.
type Provider string

const (
	ProviderAniList Provider = "anilist"
	ProviderOMDB    Provider = "omdb"
	ProviderTMDB    Provider = "tmdb"
	ProviderTVDB    Provider = "tvdb"
	ProviderTVMaze  Provider = "tvmaze"
	ProviderFanart  Provider = "fanart"
	ProviderCustom  Provider = "custom"
)

// Providers lists every real metadata source, in the order candidates are offered.
var Providers = []Provider{
	ProviderAniList,
	ProviderOMDB,
	ProviderTMDB,
	ProviderTVDB,
	ProviderTVMaze,
	ProviderFanart,
}

// ParseProvider converts a provider name to a Provider tag.
// The boolean is false when the name is not a known source tag.
func ParseProvider(name string) (Provider, bool) {
	switch Provider(strings.ToLower(name)) {
	case ProviderAniList:
		return ProviderAniList, true
	case ProviderOMDB:
		return ProviderOMDB, true
	case ProviderTMDB:
		return ProviderTMDB, true
	case ProviderTVDB:
		return ProviderTVDB, true
	case ProviderTVMaze:
		return ProviderTVMaze, true
	case ProviderFanart:
		return ProviderFanart, true
	case ProviderCustom:
		return ProviderCustom, true
	default:
		return "", false
	}
}

// String returns the provider tag as a plain string.
func (p Provider) String() string {
	return string(p)
}
