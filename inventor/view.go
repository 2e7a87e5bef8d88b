package inventor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goinvent/imageio"
	"goinvent/internal/naming"
	"goinvent/viewstyle"
)

// SetViewOrientation points the active camera at one of the named standard
// perspectives and fits the model in view.
func (d *document) SetViewOrientation(v viewstyle.View) error {
	orientation, err := v.Orientation()
	if err != nil {
		return err
	}
	view, err := d.ses.activeView()
	if err != nil {
		return err
	}
	defer view.Release()
	cam, err := getDisp(view, "Camera")
	if err != nil {
		return err
	}
	defer cam.Release()

	if err := put(cam, "ViewOrientationType", orientation); err != nil {
		return fmt.Errorf("inventor: set view %s: %w", string(v), err)
	}
	if err := call(cam, "Apply"); err != nil {
		return fmt.Errorf("inventor: set view %s: %w", string(v), err)
	}
	return call(view, "Fit")
}

// SetVisualStyle forwards the style toggles to the active view.
func (d *document) SetVisualStyle(st viewstyle.Style) error {
	view, err := d.ses.activeView()
	if err != nil {
		return err
	}
	defer view.Release()
	return put(view, "DisplayMode", st.DisplayMode())
}

// ExportImage renders the active view to dir/fileName at the given pixel
// size. Host-native formats are written directly; the rest go through a
// BMP intermediate and are transcoded.
func (d *document) ExportImage(dir, fileName string, format viewstyle.Format, width, height int) (string, error) {
	if dir == "" {
		if dir = d.dir; dir == "" {
			dir, _ = os.Getwd()
		}
	}
	if err := naming.EnsureDir(dir); err != nil {
		return "", err
	}
	if !strings.HasSuffix(strings.ToLower(fileName), format.Ext()) {
		fileName += format.Ext()
	}
	full := filepath.Join(dir, fileName)

	view, err := d.ses.activeView()
	if err != nil {
		return "", err
	}
	defer view.Release()

	if format.HostNative() {
		if err := call(view, "SaveImage", full, width, height); err != nil {
			return "", fmt.Errorf("inventor: export image %s: %w", full, err)
		}
		return full, nil
	}

	tmp := full + ".export.bmp"
	if err := call(view, "SaveImage", tmp, width, height); err != nil {
		return "", fmt.Errorf("inventor: export image %s: %w", tmp, err)
	}
	defer os.Remove(tmp)
	if err := imageio.Convert(tmp, full, format); err != nil {
		return "", err
	}
	return full, nil
}

// PerspectiveOptions configures a multi-view export run.
type PerspectiveOptions struct {
	BaseName string           // defaults to the document name without extension
	OutDir   string           // defaults to the document directory
	Views    []viewstyle.View // defaults to the six standard perspectives
	Format   viewstyle.Format // defaults to PNG
	Width    int              // defaults to 1920
	Height   int              // defaults to 1080
	Style    viewstyle.Style  // zero value means shaded with edges
}

func (o *PerspectiveOptions) setDefaults(docName string) {
	if o.BaseName == "" {
		o.BaseName = strings.TrimSuffix(docName, filepath.Ext(docName))
		if o.BaseName == "" {
			o.BaseName = "assembly"
		}
	}
	if len(o.Views) == 0 {
		o.Views = viewstyle.StandardViews()
	}
	if o.Format == "" {
		o.Format = viewstyle.PNG
	}
	if o.Width <= 0 {
		o.Width = 1920
	}
	if o.Height <= 0 {
		o.Height = 1080
	}
	if o.Style == (viewstyle.Style{}) {
		o.Style = viewstyle.DefaultStyle()
	}
}

// ViewExport records the outcome of one perspective export.
type ViewExport struct {
	View viewstyle.View
	Path string
	Err  error
}

// PerspectiveImages exports the document from each requested perspective,
// continuing past per-view failures. Images are named
// "<base>_<view>.<format>".
func (d *document) PerspectiveImages(opts PerspectiveOptions) []ViewExport {
	opts.setDefaults(d.name)

	if err := d.SetVisualStyle(opts.Style); err != nil {
		d.ses.log.Warn("could not set visual style", "error", err)
	}

	exports := make([]ViewExport, 0, len(opts.Views))
	for _, v := range opts.Views {
		exp := ViewExport{View: v}
		if err := d.SetViewOrientation(v); err != nil {
			exp.Err = err
			d.ses.log.Warn("view export failed", "view", string(v), "error", err)
			exports = append(exports, exp)
			continue
		}
		name := fmt.Sprintf("%s_%s", opts.BaseName, string(v))
		path, err := d.ExportImage(opts.OutDir, name, opts.Format, opts.Width, opts.Height)
		if err != nil {
			exp.Err = err
			d.ses.log.Warn("view export failed", "view", string(v), "error", err)
		} else {
			exp.Path = path
			d.ses.log.Debug("exported view", "view", string(v), "path", path)
		}
		exports = append(exports, exp)
	}
	return exports
}
