package model

// Place is a heritage site: a fort, tomb, mosque, temple, archaeological
// mound or other built heritage the site publishes articles about.
type Place struct {
	ID         string       // canonical identifier assigned by the content pipeline
	Slug       string       // url path segment, derived from the name when absent
	Name       string       // display name, such as "Rohtas Fort"
	LocalName  string       // name in local script, such as "قلعہ روہتاس"
	Region     string       // administrative region, such as "Punjab"
	Categories []string     // site categories such as "fort" or "unesco"
	Summary    string       // single-paragraph introduction
	Founded    *Date        // founding or construction date, often approximate
	Location   *GeoLocation // centre of the site, if surveyed
	Featured   bool         // featured places lead the region lists
	Unknown    bool         // true when an article references a place the bundle does not define
}

type GeoLocation struct {
	Latitude  float64 // decimal degrees, +ve is north of the equator
	Longitude float64 // decimal degrees, +ve is east of the meridian
}

func (p *Place) IsUnknown() bool {
	if p == nil {
		return true
	}
	return p.Unknown
}

func (p *Place) SameAs(other *Place) bool {
	if p == nil || other == nil {
		return false
	}
	return p == other || (p.ID != "" && p.ID == other.ID)
}

// Era returns the historical era the place's founding year falls in.
func (p *Place) Era() (Era, bool) {
	if p == nil || p.Founded == nil {
		return Era{}, false
	}
	y, ok := p.Founded.Year()
	if !ok {
		return Era{}, false
	}
	return EraOf(y)
}

func UnknownPlace() *Place {
	return &Place{
		Name:    "an unknown place",
		Slug:    "unknown",
		Unknown: true,
	}
}

type PlaceMatcher func(*Place) bool

func PlaceHasCategory(category string) PlaceMatcher {
	return func(p *Place) bool {
		for _, c := range p.Categories {
			if c == category {
				return true
			}
		}
		return false
	}
}

func PlaceInRegion(region string) PlaceMatcher {
	return func(p *Place) bool {
		return p != nil && p.Region == region
	}
}
