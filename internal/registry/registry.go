// Package registry loads the ordered set of channel groupings a sync run
// processes. The registry is configuration, but it is load-bearing: it
// determines which queries are issued and which columns are written.
package registry

import (
	"fmt"
	"strings"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/spf13/viper"
)

// entry is the config-file shape of one grouping.
type entry struct {
	ID      string   `mapstructure:"id"`
	Name    string   `mapstructure:"name"`
	Regions []string `mapstructure:"regions"`
}

// Load reads the grouping registry from the `groups` config key. Each
// entry defaults to both region variants (all regions + US only), so a
// typical three-group registry expands to six sync targets per month.
func Load() ([]model.Grouping, error) {
	var entries []entry
	if err := viper.UnmarshalKey("groups", &entries); err != nil {
		return nil, fmt.Errorf("%w: groups: %v", common.ErrInvalidConfig, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no groups configured", common.ErrMissingConfig)
	}

	groupings := make([]model.Grouping, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: groups[%d]: id is required", common.ErrInvalidConfig, i)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: groups[%d]: name is required", common.ErrInvalidConfig, i)
		}

		regions, err := parseRegions(e.Regions)
		if err != nil {
			return nil, fmt.Errorf("%w: groups[%d] (%s): %v", common.ErrInvalidConfig, i, name, err)
		}

		g := model.Grouping{ID: id, Name: name, Regions: regions}

		// Display names are the join key into sheet columns, so every
		// header a grouping produces must be unique across the run.
		for _, region := range regions {
			header := g.Header(region)
			if seen[header] {
				return nil, fmt.Errorf("%w: duplicate column header %q", common.ErrInvalidConfig, header)
			}
			seen[header] = true
		}

		groupings = append(groupings, g)
	}

	return groupings, nil
}

// Headers returns every column header the registry will write, in run
// order, for pre-run sheet validation.
func Headers(groupings []model.Grouping) []string {
	var out []string
	for _, g := range groupings {
		for _, region := range g.Regions {
			out = append(out, g.Header(region))
		}
	}
	return out
}

func parseRegions(raw []string) ([]model.RegionFilter, error) {
	if len(raw) == 0 {
		return []model.RegionFilter{model.RegionAll, model.RegionUS}, nil
	}

	out := make([]model.RegionFilter, 0, len(raw))
	for _, r := range raw {
		switch strings.ToUpper(strings.TrimSpace(r)) {
		case string(model.RegionAll), "":
			out = append(out, model.RegionAll)
		case string(model.RegionUS), "US_ONLY":
			out = append(out, model.RegionUS)
		default:
			return nil, fmt.Errorf("unknown region %q (want ALL or US)", r)
		}
	}
	return out, nil
}
