package cli

import (
	"io"
	"os"
	"time"

	"github.com/razmans/devlog/internal/service"
	"github.com/razmans/devlog/internal/storage"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Now    func() time.Time

	// Services
	Services *service.Services

	// Raw storage path (for direct access)
	StoragePath func() (string, error)
}

// DefaultDeps creates a new Deps with default values
func DefaultDeps() *Deps {
	services, _ := service.NewServices()

	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		Now:         time.Now,
		Services:    services,
		StoragePath: storage.GetStoragePath,
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		Now:         time.Now,
		Services:    services,
		StoragePath: storage.GetStoragePath,
	}
}
