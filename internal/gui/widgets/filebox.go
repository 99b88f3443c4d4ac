package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"gwen/internal/layout"
)

// ErrUnsupportedFileType is returned when a file box is asked to filter on an
// extension it has no filter for.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// FileMode selects which dialog a file box opens.
type FileMode int

const (
	ModeOpen FileMode = iota
	ModeSave
	ModeFolder
)

func (m FileMode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeSave:
		return "save"
	case ModeFolder:
		return "folder"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

var fileFilters = map[string][]string{
	"*.txt":  {".txt"},
	"*.csv":  {".csv"},
	"*.xlsx": {".xlsx"},
	"*.png":  {".png", ".xpm", ".jpg"},
	"*.jpg":  {".png", ".xpm", ".jpg"},
}

// FilterExtensions resolves glob-style file types ("*.csv") to the
// extensions the dialog accepts.
func FilterExtensions(filetypes []string) ([]string, error) {
	seen := make(map[string]bool)
	var exts []string
	for _, ft := range filetypes {
		mapped, ok := fileFilters[strings.ToLower(strings.TrimSpace(ft))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ft)
		}
		for _, ext := range mapped {
			if !seen[ext] {
				seen[ext] = true
				exts = append(exts, ext)
			}
		}
	}
	sort.Strings(exts)
	return exts, nil
}

// FileBox is a button that opens a file or folder dialog. Its value is the
// last chosen path.
type FileBox struct {
	base
	window fyne.Window
	exts   []string
	dir    string
	button *widget.Button

	mu   sync.Mutex
	last string

	// Mode is the dialog the button opens.
	Mode FileMode
	// OnChosen runs with the chosen path after a successful selection.
	OnChosen func(path string)
}

func NewFileBox(window fyne.Window, id string, filetypes []string, dir string, span layout.Span) (*FileBox, error) {
	exts, err := FilterExtensions(filetypes)
	if err != nil {
		return nil, err
	}
	f := &FileBox{
		base:   newBase(id, span),
		window: window,
		exts:   exts,
		dir:    dir,
	}
	f.button = widget.NewButton(id, func() { f.Open(f.Mode, f.OnChosen) })
	return f, nil
}

// Extensions returns the accepted extensions, empty for any file.
func (f *FileBox) Extensions() []string {
	return append([]string(nil), f.exts...)
}

// Open shows the dialog for mode. done, if set, receives the chosen path;
// a cancelled dialog does not call it.
func (f *FileBox) Open(mode FileMode, done func(path string)) {
	chosen := func(path string) {
		f.mu.Lock()
		f.last = path
		f.mu.Unlock()
		if done != nil {
			done(path)
		}
	}

	var d interface {
		Show()
	}
	switch mode {
	case ModeFolder:
		fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				dialog.ShowError(err, f.window)
				return
			}
			if uri != nil {
				chosen(uri.Path())
			}
		}, f.window)
		f.locate(fd)
		d = fd
	case ModeSave:
		fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, f.window)
				return
			}
			if w != nil {
				path := w.URI().Path()
				w.Close()
				chosen(path)
			}
		}, f.window)
		f.filter(fd)
		f.locate(fd)
		d = fd
	default:
		fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, f.window)
				return
			}
			if r != nil {
				path := r.URI().Path()
				r.Close()
				chosen(path)
			}
		}, f.window)
		f.filter(fd)
		f.locate(fd)
		d = fd
	}
	d.Show()
}

func (f *FileBox) filter(fd *dialog.FileDialog) {
	if len(f.exts) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(f.exts))
	}
}

func (f *FileBox) locate(fd *dialog.FileDialog) {
	if f.dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(f.dir))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

func (f *FileBox) Value() (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, nil
}

func (f *FileBox) CanvasObject() fyne.CanvasObject { return f.button }
