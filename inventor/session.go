// Package inventor wraps the host CAD application's COM automation object
// model: application session, part and assembly documents, occurrence
// placement, camera orientation and view export. Every operation is a
// blocking round-trip into the host process; all geometry, rendering and
// file I/O happen there.
package inventor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

const progID = "Inventor.Application"

// Session holds a live connection to the host application. Acquire with
// Connect, release with Release. A session is not safe for concurrent use;
// the host is a single exclusive COM server.
type Session struct {
	app      *ole.IDispatch
	log      *slog.Logger
	launched bool
}

// Connect attaches to a running host instance, or launches a new visible
// one if none is running. A nil logger uses slog.Default.
func Connect(logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := coInit(); err != nil {
		return nil, err
	}

	launched := false
	unknown, err := oleutil.GetActiveObject(progID)
	if err != nil {
		unknown, err = oleutil.CreateObject(progID)
		if err != nil {
			ole.CoUninitialize()
			return nil, fmt.Errorf("inventor: launch %s: %w", progID, err)
		}
		launched = true
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("inventor: query IDispatch: %w", err)
	}

	s := &Session{app: app, log: logger, launched: launched}
	if launched {
		if err := put(app, "Visible", true); err != nil {
			logger.Warn("could not make application visible", "error", err)
		}
		logger.Info("launched host application", "progid", progID)
	} else {
		logger.Debug("attached to running host application", "progid", progID)
	}
	return s, nil
}

// Launched reports whether Connect started a new host instance rather than
// attaching to a running one.
func (s *Session) Launched() bool { return s.launched }

// Release drops the application reference and uninitializes COM. The host
// application itself keeps running.
func (s *Session) Release() {
	if s.app != nil {
		s.app.Release()
		s.app = nil
	}
	ole.CoUninitialize()
}

// CloseAll closes every open document in the host application.
func (s *Session) CloseAll() error {
	docs, err := s.documents()
	if err != nil {
		return err
	}
	defer docs.Release()
	return call(docs, "CloseAll")
}

// SetSilentOperation toggles the host's dialog suppression. Not all host
// versions expose it; failures are logged and ignored.
func (s *Session) SetSilentOperation(on bool) {
	if err := put(s.app, "SilentOperation", on); err != nil {
		s.log.Debug("SilentOperation not available", "error", err)
	}
}

func (s *Session) documents() (*ole.IDispatch, error) {
	return getDisp(s.app, "Documents")
}

func (s *Session) transientGeometry() (*ole.IDispatch, error) {
	return getDisp(s.app, "TransientGeometry")
}

func (s *Session) activeView() (*ole.IDispatch, error) {
	return getDisp(s.app, "ActiveView")
}

// removeIfExists deletes an existing save target so a fresh document can
// take its place. All documents are closed first: the host refuses to
// delete files it holds open.
func (s *Session) removeIfExists(dir, name string) error {
	full := filepath.Join(dir, name)
	if _, err := os.Stat(full); err != nil {
		return nil
	}
	if err := s.CloseAll(); err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("inventor: overwrite %s: %w", full, err)
	}
	return nil
}
