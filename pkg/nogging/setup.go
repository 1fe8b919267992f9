package nogging

import (
	"github.com/my-go-utils/nogging/pkg/config"
	"github.com/my-go-utils/nogging/pkg/logging"
)

// Setup locates the nearest nogging.yaml above startPath and applies it to
// the process-wide registry. Intended to run once near process start. A
// missing or malformed config file leaves the registry untouched; only a
// handler construction error in a found document returns non-nil.
func Setup(startPath string) error {
	if startPath == "" {
		startPath = "."
	}
	doc := config.NewLocator().Resolve(startPath)
	return New(DefaultRegistry()).Apply(doc)
}

// DefaultRegistry returns the shared process-wide registry behind the
// Registry contract.
func DefaultRegistry() Registry {
	return registryAdapter{r: logging.DefaultRegistry()}
}

type registryAdapter struct {
	r *logging.Registry
}

func (a registryAdapter) GetOrCreate(name string) Logger {
	return a.r.GetOrCreate(name)
}
