// Package nogging applies a located logger configuration document to a
// process-wide logging registry: for each named logger it sets the severity
// threshold and, when the document says so, replaces the handler set.
package nogging

import (
	"github.com/my-go-utils/nogging/pkg/config"
	"github.com/my-go-utils/nogging/pkg/diag"
	"github.com/my-go-utils/nogging/pkg/errors"
	"github.com/my-go-utils/nogging/pkg/logging"
)

// Logger is the handle the configurator needs from the logging facility.
// *logging.Logger satisfies it; tests substitute fakes.
type Logger interface {
	Name() string
	SetLevel(logging.Level)
	Level() logging.Level
	AddHandler(*logging.Handler)
	RemoveHandler(*logging.Handler)
	Handlers() []*logging.Handler
}

// Registry is the logger-by-name table the configurator mutates.
type Registry interface {
	GetOrCreate(name string) Logger
}

// Configurator applies configuration documents to a registry.
type Configurator struct {
	registry Registry
	diag     *diag.Logger
}

// New creates a configurator for the given registry.
func New(registry Registry) *Configurator {
	return NewWithDiag(registry, diag.New("nogging"))
}

// NewWithDiag creates a configurator with an explicit diagnostic channel.
func NewWithDiag(registry Registry, d *diag.Logger) *Configurator {
	return &Configurator{registry: registry, diag: d}
}

// Apply configures every logger named in the document. Applying the same
// document again leaves the registry in the same final state: handler sets
// are fully cleared before repopulation. A handler construction error
// aborts the remaining entries.
func (c *Configurator) Apply(doc config.Document) error {
	for _, e := range doc {
		if err := c.ConfigureLogger(e.Name, e.Spec); err != nil {
			return err
		}
	}
	return nil
}

// ConfigureLogger applies one logger's settings. The level is applied
// first; a spec without a handlers key then leaves the existing handler
// set untouched, while a present handlers key (even an empty one) removes
// every attached handler before adding the new ones. Removed handlers
// release their destinations. Unknown handler types are skipped with a
// warning; the logger's remaining handlers and level change still apply.
func (c *Configurator) ConfigureLogger(name string, spec config.LoggerSpec) error {
	lg := c.registry.GetOrCreate(name)

	if spec.Level != nil {
		lvl, err := spec.Level.Resolve()
		if err != nil {
			return err
		}
		lg.SetLevel(lvl)
	}

	if spec.Handlers == nil {
		return nil
	}
	for _, h := range lg.Handlers() {
		lg.RemoveHandler(h)
	}
	for i, hs := range *spec.Handlers {
		h, err := c.buildHandler(name, i, hs)
		if err != nil {
			return err
		}
		if h == nil {
			continue
		}
		lg.AddHandler(h)
	}
	return nil
}

// buildHandler constructs one handler. A nil, nil return means the spec
// named an unknown type and was skipped.
func (c *Configurator) buildHandler(loggerName string, i int, hs config.HandlerSpec) (*logging.Handler, error) {
	var h *logging.Handler
	switch hs.Type {
	case logging.KindStream:
		h = logging.NewStreamHandler()
	case logging.KindFile:
		if hs.Filename == "" {
			return nil, errors.NewHandlerError(loggerName, i, hs.Type, "filename is required", nil)
		}
		var err error
		h, err = logging.NewFileHandler(hs.Filename)
		if err != nil {
			return nil, errors.NewHandlerError(loggerName, i, hs.Type, "cannot open log file", err)
		}
	default:
		c.diag.Warnf("invalid handler type %q!", hs.Type)
		return nil, nil
	}

	if hs.Format != nil {
		f, err := logging.NewFormatter(*hs.Format)
		if err != nil {
			h.Close()
			return nil, errors.NewHandlerError(loggerName, i, hs.Type, "invalid format pattern", err)
		}
		h.SetFormatter(f)
	}
	if hs.Level != nil {
		lvl, err := hs.Level.Resolve()
		if err != nil {
			h.Close()
			return nil, errors.NewHandlerError(loggerName, i, hs.Type, "invalid level", err)
		}
		h.SetLevel(lvl)
	}
	return h, nil
}
