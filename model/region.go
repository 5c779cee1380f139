package model

import "strings"

// Region is a top-level administrative division of Pakistan. Place records
// arrive with region names typed by hand, so each region also carries the
// aliases and abbreviations it is commonly written as.
type Region struct {
	Name    string
	Aliases []string
}

var Regions = []Region{
	{Name: "Azad Kashmir", Aliases: []string{"AJK", "Azad Jammu and Kashmir", "Azad Jammu & Kashmir"}},
	{Name: "Balochistan", Aliases: []string{"Baluchistan"}},
	{Name: "Gilgit-Baltistan", Aliases: []string{"GB", "Gilgit Baltistan", "Northern Areas"}},
	{Name: "Islamabad", Aliases: []string{"ICT", "Islamabad Capital Territory"}},
	{Name: "Khyber Pakhtunkhwa", Aliases: []string{"KPK", "KP", "NWFP", "North-West Frontier Province"}},
	{Name: "Punjab", Aliases: []string{}},
	{Name: "Sindh", Aliases: []string{"Sind"}},
}

var regionLookup = map[string]Region{}

func init() {
	for _, r := range Regions {
		regionLookup[strings.ToLower(r.Name)] = r
		for _, al := range r.Aliases {
			regionLookup[strings.ToLower(al)] = r
		}
	}
}

// LookupRegion finds the region known by v, which may be an alias or differ
// in case from the canonical name.
func LookupRegion(v string) (Region, bool) {
	r, ok := regionLookup[strings.ToLower(strings.TrimSpace(v))]
	return r, ok
}

// NormalizeRegion maps v to its canonical region name. A name matching no
// known region is returned trimmed but otherwise unchanged, so places in
// districts or valleys keep the grouping they were given.
func NormalizeRegion(v string) string {
	if r, ok := LookupRegion(v); ok {
		return r.Name
	}
	return strings.TrimSpace(v)
}
