package gwasplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Display is an interactive surface figures are shown on.
type Display interface {
	// Show puts fig on the display under name and returns a handle
	// through which the shown figure can be refreshed later.
	Show(name string, fig *Figure) (Handle, error)
}

// Handle refers to a shown figure.
type Handle interface {
	// Push redraws the figure, picking up changes made to it since it
	// was shown.
	Push() error
}

// FileDisplay shows figures by rendering them to Dir/<name>.<Format>,
// for front-ends that watch a directory. Showing a second figure under
// the same name replaces the first.
type FileDisplay struct {
	Dir    string
	Format string // default "png"

	mu    sync.Mutex
	shown map[string]*fileHandle
}

var _ Display = (*FileDisplay)(nil)

func (d *FileDisplay) Show(name string, fig *Figure) (Handle, error) {
	if name == "" || strings.ContainsRune(name, filepath.Separator) {
		return nil, fmt.Errorf("bad figure name %q", name)
	}
	format := d.Format
	if format == "" {
		format = "png"
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return nil, err
	}

	h := &fileHandle{
		path: filepath.Join(d.Dir, name+"."+format),
		fig:  fig,
	}
	if err := h.Push(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shown == nil {
		d.shown = make(map[string]*fileHandle)
	}
	d.shown[name] = h
	return h, nil
}

// Path returns the file the figure called name is rendered to.
func (d *FileDisplay) Path(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.shown[name]
	if !ok {
		return "", false
	}
	return h.path, true
}

type fileHandle struct {
	mu   sync.Mutex
	path string
	fig  *Figure
}

// Push renders to a temporary file which is then renamed into place.
func (h *fileHandle) Push() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	tmp := filepath.Join(filepath.Dir(h.path), ".tmp-"+filepath.Base(h.path))
	if err := h.fig.Export(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, h.path)
}
