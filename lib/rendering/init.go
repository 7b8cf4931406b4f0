package rendering

import (
	"fmt"
	"log/slog"

	"github.com/quadgl/quadgl/lib/platform"
)

// Init loads the GL entry points for the context current on this thread.
func Init(g platform.GL, procAddr platform.ProcAddrFunc) error {
	err := g.Load(procAddr)
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	slog.Info(fmt.Sprintf("OpenGL version '%s'", g.Version()), slog.String("module", "rendering"))

	return nil
}
