package scaffold

import "fmt"

// DefaultSkeletonName is the skeleton used when --template is not specified.
const DefaultSkeletonName = "standard"

// Skeleton describes an available project skeleton.
type Skeleton struct {
	// Name is the skeleton identifier (standard, minimal).
	Name string

	// Description explains the skeleton's purpose.
	Description string

	// Default indicates if this is the skeleton used when --template is omitted.
	Default bool

	// ExtraDirs are directories created empty in addition to the parents of
	// rendered files (layer and database directories).
	ExtraDirs []string
}

// skeletons is the internal registry of available skeletons.
var skeletons = map[string]Skeleton{
	"standard": {
		Name:        "standard",
		Description: "HTTP service with postgres, migrations, and sqlc query generation",
		Default:     true,
		ExtraDirs: []string{
			"configs",
			"db/migrations",
			"db/queries",
			"internal/domain",
			"internal/repository",
			"internal/service",
		},
	},
	"minimal": {
		Name:        "minimal",
		Description: "HTTP service without a database",
		Default:     false,
		ExtraDirs: []string{
			"configs",
			"internal/domain",
			"internal/service",
		},
	},
}

// Get returns a skeleton by name.
// Returns an error if the skeleton is not found.
func Get(name string) (Skeleton, error) {
	s, ok := skeletons[name]
	if !ok {
		return Skeleton{}, fmt.Errorf("unknown template %q; valid templates: standard, minimal", name)
	}
	return s, nil
}

// List returns all available skeletons.
func List() []Skeleton {
	return []Skeleton{
		skeletons["standard"],
		skeletons["minimal"],
	}
}

// GetDefault returns the default skeleton.
func GetDefault() Skeleton {
	return skeletons[DefaultSkeletonName]
}

// Names returns all skeleton names.
func Names() []string {
	return []string{"standard", "minimal"}
}

// IsValidTemplate checks if a skeleton name is valid.
func IsValidTemplate(name string) bool {
	_, ok := skeletons[name]
	return ok
}
