package model

import "fmt"

// RegionFilter restricts an analytics query to a single market.
type RegionFilter string

const (
	// RegionAll queries revenue across all regions.
	RegionAll RegionFilter = "ALL"
	// RegionUS restricts the query to the United States.
	RegionUS RegionFilter = "US"
)

// CountryCode returns the ISO country code for the filter, or "" when the
// query is unrestricted.
func (r RegionFilter) CountryCode() string {
	if r == RegionUS {
		return "US"
	}
	return ""
}

// Grouping is one pre-configured analytics channel group. Groupings are
// static configuration; they are never created or mutated at runtime.
type Grouping struct {
	// ID is the opaque group identifier from the analytics backend
	// (the <GROUP_ID> in studio.youtube.com/group/<GROUP_ID>/analytics).
	ID string
	// Name is used verbatim as the spreadsheet column header for the
	// all-regions figure. Must be unique within a run.
	Name string
	// Regions lists the variants to sync for this grouping, in order.
	Regions []RegionFilter
}

// Header returns the spreadsheet column header for one region variant of
// the grouping: the display name, with " US" appended for the US-only cut.
func (g Grouping) Header(region RegionFilter) string {
	if region == RegionUS {
		return g.Name + " US"
	}
	return g.Name
}

// Target is one (grouping, region) pair the sync run will query and write.
type Target struct {
	Grouping Grouping
	Region   RegionFilter
	Month    Month
}

// Header returns the column header this target writes under.
func (t Target) Header() string {
	return t.Grouping.Header(t.Region)
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s %s", t.Grouping.Name, t.Region, t.Month)
}
