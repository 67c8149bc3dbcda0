// Package main is a terminal demo for the motive motion engine: it opens a
// file read-only and drives a session with vim motion keys.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/motive/internal/config"
	"github.com/dshills/motive/internal/engine/buffer"
	"github.com/dshills/motive/internal/motion"
	"github.com/dshills/motive/internal/plugin/lua"
	"github.com/dshills/motive/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var scriptPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "Path to a Lua motion script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Motive - vim motion engine demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: motive [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: vim motions to move, q to quit\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("Motive %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	km := config.NewKeymap()
	if cfg.KeymapPath != "" {
		km, err = config.LoadKeymap(cfg.KeymapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	var custom []motion.Motion
	if scriptPath != "" {
		host, err := lua.NewHost()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer host.Close()
		if err := host.LoadFile(scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading script: %v\n", err)
			return 1
		}
		custom = host.Motions()
	}

	buf := buffer.New()
	if args := flag.Args(); len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		buf = buffer.FromString(string(data))
	}

	sess := session.New(buf,
		session.WithConfig(cfg),
		session.WithKeymap(km),
		session.WithCustomMotions(custom),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ui := &ui{screen: screen, sess: sess}
	ui.loop()
	return 0
}

// ui drives the screen from session state.
type ui struct {
	screen tcell.Screen
	sess   *session.Session
	top    int // first visible buffer line
}

func (u *ui) loop() {
	for {
		u.draw()
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey translates a tcell key event and reports whether to quit.
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	r, ok := translateKey(ev)
	if !ok {
		return false
	}
	if r == 'q' && u.sess.Mode() == motion.Normal &&
		u.sess.Pending() == "" && !u.sess.Count().Active {
		return true
	}
	u.sess.HandleKey(r)
	return false
}

// translateKey maps a tcell event to the rune the session dispatcher expects.
func translateKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyEscape:
		return 0x1b, true
	case tcell.KeyEnter:
		return '\r', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 0x7f, true
	default:
		return 0, false
	}
}

func (u *ui) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()
	if height < 2 {
		u.screen.Show()
		return
	}
	viewRows := height - 1

	cur := u.sess.Cursor()
	u.scrollTo(cur.Line, viewRows)

	buf := u.sess.Buffer()
	style := tcell.StyleDefault
	for row := 0; row < viewRows; row++ {
		line := u.top + row
		text, ok := buf.Line(line)
		if !ok {
			u.screen.SetContent(0, row, '~', nil, style.Foreground(tcell.ColorGray))
			continue
		}
		col := 0
		for _, r := range text {
			if col >= width {
				break
			}
			u.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}

	u.drawStatus(width, height-1)
	u.screen.ShowCursor(cur.Col, cur.Line-u.top)
	u.screen.Show()
}

// scrollTo keeps the cursor line inside the viewport.
func (u *ui) scrollTo(line, viewRows int) {
	if line < u.top {
		u.top = line
	}
	if line >= u.top+viewRows {
		u.top = line - viewRows + 1
	}
	if u.top < 0 {
		u.top = 0
	}
}

func (u *ui) drawStatus(width, row int) {
	cur := u.sess.Cursor()
	var status string
	if u.sess.Mode() == motion.SearchInput {
		status = "/" + u.sess.SearchPattern()
	} else {
		status = fmt.Sprintf("-- %s --  %d:%d", u.sess.Mode(), cur.Line+1, cur.Col+1)
		if c := u.sess.Count(); c.Active {
			status += fmt.Sprintf("  %d", c.Value)
		}
		if p := u.sess.Pending(); p != "" {
			status += "  " + p
		}
	}

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		u.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		u.screen.SetContent(col, row, ' ', nil, style)
	}
}
