package osmparser

import "github.com/paulmach/osm"

var (
	bikeableHighway = map[string]struct{}{
		"primary":        struct{}{},
		"primary_link":   struct{}{},
		"secondary":      struct{}{},
		"secondary_link": struct{}{},
		"tertiary":       struct{}{},
		"tertiary_link":  struct{}{},
		"unclassified":   struct{}{},
		"residential":    struct{}{},
		"living_street":  struct{}{},
		"service":        struct{}{},
		"path":           struct{}{},
		"track":          struct{}{},
		"cycleway":       struct{}{},
		"footway":        struct{}{},
		"pedestrian":     struct{}{},
	}

	rejectedBicycle = map[string]struct{}{
		"no":           struct{}{},
		"use_sidepath": struct{}{},
	}

	rejectedSmoothness = map[string]struct{}{
		"very_bad":      struct{}{},
		"horrible":      struct{}{},
		"very_horrible": struct{}{},
		"impassable":    struct{}{},
	}

	rejectedSurface = map[string]struct{}{
		"stepping_stones": struct{}{},
		"gravel":          struct{}{},
		"rock":            struct{}{},
		"pebblestone":     struct{}{},
		"mud":             struct{}{},
		"sand":            struct{}{},
		"woodclips":       struct{}{},
	}

	oneWayValues = map[string]struct{}{
		"yes":  struct{}{},
		"1":    struct{}{},
		"true": struct{}{},
	}
)

type WayClassifier interface {
	Classify(tags osm.Tags) (bikeable, oneway bool)
}

// BikeClassifier whitelists highway types and then blacklists tags that make a way unpleasant or illegal by bike.
type BikeClassifier struct{}

func NewBikeClassifier() *BikeClassifier {
	return &BikeClassifier{}
}

func (c *BikeClassifier) Classify(tags osm.Tags) (bool, bool) {
	return c.IsBikeable(tags), c.IsOneWay(tags)
}

func (c *BikeClassifier) IsBikeable(tags osm.Tags) bool {
	highway := tags.Find("highway")
	if highway == "" {
		// building outlines, landuse polygons, ...
		return false
	}
	if _, ok := bikeableHighway[highway]; !ok {
		return false
	}

	for _, tag := range tags {
		switch tag.Key {
		case "access":
			if tag.Value == "private" {
				return false
			}
		case "bicycle":
			if _, ok := rejectedBicycle[tag.Value]; ok {
				return false
			}
		case "motorroad":
			if tag.Value == "yes" {
				return false
			}
		case "tracktype":
			if tag.Value == "grade5" {
				return false
			}
		case "smoothness":
			if _, ok := rejectedSmoothness[tag.Value]; ok {
				return false
			}
		case "surface":
			if _, ok := rejectedSurface[tag.Value]; ok {
				return false
			}
		}
	}
	return true
}

func (c *BikeClassifier) IsOneWay(tags osm.Tags) bool {
	_, ok := oneWayValues[tags.Find("oneway")]
	return ok
}
