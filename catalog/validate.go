package catalog

import "fmt"

// Validate checks the static catalog for authoring defects. It is called
// once at startup; a failure aborts boot since broken content is a
// release problem, not a runtime condition.
func Validate() error {
	if len(Services) == 0 {
		return fmt.Errorf("catalog: no services defined")
	}
	if len(Locations) == 0 {
		return fmt.Errorf("catalog: no locations defined")
	}

	seenServices := make(map[string]bool, len(Services))
	for _, svc := range Services {
		if svc.ID == "" || svc.Slug == "" || svc.Title == "" {
			return fmt.Errorf("catalog: service %q missing id, slug or title", svc.ID)
		}
		if seenServices[svc.ID] {
			return fmt.Errorf("catalog: duplicate service id %q", svc.ID)
		}
		seenServices[svc.ID] = true
		if len(svc.Variants) == 0 {
			return fmt.Errorf("catalog: service %q has no variants", svc.ID)
		}
		seenLabels := make(map[string]bool, len(svc.Variants))
		for _, v := range svc.Variants {
			if v.Label == "" {
				return fmt.Errorf("catalog: service %q has a variant without a label", svc.ID)
			}
			if seenLabels[v.Label] {
				return fmt.Errorf("catalog: service %q has duplicate variant label %q", svc.ID, v.Label)
			}
			seenLabels[v.Label] = true
			if !v.Inspection && v.Price <= 0 {
				return fmt.Errorf("catalog: service %q variant %q has no price", svc.ID, v.Label)
			}
		}
	}

	seenLocations := make(map[string]bool, len(Locations))
	for _, loc := range Locations {
		if loc.ID == "" || loc.Slug == "" || loc.Name == "" {
			return fmt.Errorf("catalog: location %q missing id, slug or name", loc.ID)
		}
		if seenLocations[loc.ID] {
			return fmt.Errorf("catalog: duplicate location id %q", loc.ID)
		}
		seenLocations[loc.ID] = true
		if c := loc.Coords; c != nil {
			if c.X < 0 || c.X > 100 || c.Y < 0 || c.Y > 100 {
				return fmt.Errorf("catalog: location %q coords out of range", loc.ID)
			}
		}
	}

	seenAddons := make(map[string]bool, len(Addons))
	for _, a := range Addons {
		if a.ID == "" || a.Label == "" {
			return fmt.Errorf("catalog: addon %q missing id or label", a.ID)
		}
		if seenAddons[a.ID] {
			return fmt.Errorf("catalog: duplicate addon id %q", a.ID)
		}
		seenAddons[a.ID] = true
		if a.Price < 0 {
			return fmt.Errorf("catalog: addon %q has negative price", a.ID)
		}
	}

	seenSlots := make(map[string]bool, len(TimeSlots))
	for _, s := range TimeSlots {
		if s.Time == "" {
			return fmt.Errorf("catalog: time slot without display time")
		}
		if seenSlots[s.Time] {
			return fmt.Errorf("catalog: duplicate time slot %q", s.Time)
		}
		seenSlots[s.Time] = true
		if s.Hour < 0 || s.Hour > 23 {
			return fmt.Errorf("catalog: time slot %q has invalid hour %d", s.Time, s.Hour)
		}
	}

	return nil
}
