package scene

import "fmt"

// Builder constructs a named catalogue scene. seed is only consumed by
// entries that need deterministic randomness (random-scene); others ignore it.
type Builder func(seed int64) *Scene

var catalogue = map[string]Builder{
	"spheres":            buildSpheres,
	"checkered-spheres":  buildCheckeredSpheres,
	"quad-light":         buildQuadLight,
	"cornell":            buildCornell,
	"random-scene":       buildRandomScene,
}

// Build looks up name in the catalogue and constructs it. Unknown names
// return an error rather than panicking, since name typically comes from a
// config file or CLI flag.
func Build(name string, seed int64) (*Scene, error) {
	builder, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown catalogue entry %q", name)
	}
	return builder(seed), nil
}

// Names returns every registered catalogue entry name.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	return names
}
