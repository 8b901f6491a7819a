package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/pick"
	"github.com/gogpu/pick/integration/ggpick"
	"github.com/gogpu/pick/mesh"
)

type app struct {
	path          string
	width, height int
	scale         float64
	dump          string

	scene    *mesh.Scene
	renderer *ggpick.Renderer
	picker   *pick.Picker[*mesh.FaceGroup, *mesh.Object]
}

// load reads the scene file, renders its pick buffer and replaces the
// current scene. On error the previous scene stays in use.
func (a *app) load() error {
	s, cam, err := mesh.LoadFile(a.path)
	if err != nil {
		return err
	}
	if a.renderer == nil {
		a.renderer = ggpick.New(a.width, a.height)
	}
	buf, err := a.renderer.Render(s, cam)
	if err != nil {
		return fmt.Errorf("render %s: %w", a.path, err)
	}
	if a.dump != "" {
		if err := writePNG(a.dump, buf); err != nil {
			return err
		}
	}
	a.scene = s
	a.picker = s.Picker(buf, pick.WithScale(a.scale))
	pick.Logger().Info("scene loaded",
		"path", a.path, "objects", len(s.Objects()), "groups", s.Picks().Len())
	return nil
}

func writePNG(path string, buf *pick.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// query answers one input line.
func (a *app) query(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", fmt.Errorf("want \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", fmt.Errorf("y: %w", err)
	}
	hit, ok, err := a.picker.Pick(x, y)
	if err != nil {
		return "", err
	}
	if !ok {
		return "none", nil
	}
	return fmt.Sprintf("%v %v %v", hit.Component, hit.Code, hit.Code.RGB()), nil
}

// run loads the scene and serves queries from in until it is exhausted or
// ctx is done. Queries and reloads are handled on the calling goroutine.
func (a *app) run(ctx context.Context, in io.Reader, out io.Writer, watch bool) error {
	if err := a.load(); err != nil {
		return err
	}
	defer func() {
		if a.renderer != nil {
			_ = a.renderer.Close()
		}
	}()

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watch {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer w.Close()
		// Editors often replace the file, so watch its directory.
		if err := w.Add(filepath.Dir(a.path)); err != nil {
			return fmt.Errorf("watch %s: %w", a.path, err)
		}
		events, watchErrs = w.Events, w.Errors
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
		close(lines)
	}()

	target := filepath.Clean(a.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			answer, err := a.query(line)
			if err != nil {
				answer = "error: " + err.Error()
			}
			if _, err := fmt.Fprintln(out, answer); err != nil {
				return err
			}
		case ev := <-events:
			if filepath.Clean(ev.Name) != target || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := a.load(); err != nil {
				pick.Logger().Warn("reload failed, keeping previous scene", "path", a.path, "err", err)
			}
		case err := <-watchErrs:
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				pick.Logger().Warn("watch events dropped, reloading", "err", err)
				if err := a.load(); err != nil {
					pick.Logger().Warn("reload failed, keeping previous scene", "path", a.path, "err", err)
				}
				continue
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}
