// Command sdfexplore is an interactive shell for inspecting a font's face
// list and codepoint coverage before committing to a full sdfrange run.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	findfont "github.com/flopp/go-findfont"
	"github.com/pterm/pterm"

	"github.com/gogpu/sdfglyph/fontstack"
)

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ! ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// shell holds the currently loaded font and its enumerated faces.
type shell struct {
	repl  *readline.Instance
	name  string
	faces []fontstack.FaceInfo
}

func main() {
	initDisplay()

	fontArg := flag.String("font", "", "font file path or system font name to load at startup")
	flag.Parse()

	repl, err := readline.New("sdf> ")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	defer repl.Close()

	sh := &shell{repl: repl}
	pterm.Info.Println("sdfexplore: inspect font faces and codepoint coverage")
	pterm.Info.Println("type 'help' for commands, <ctrl>D to quit")

	if *fontArg != "" {
		if err := sh.load(*fontArg); err != nil {
			pterm.Error.Println(err)
		}
	}

	sh.run()
}

func (sh *shell) run() {
	for {
		line, err := sh.repl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			pterm.Error.Println(err)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sh.dispatch(line) {
			break
		}
	}
	pterm.Info.Println("goodbye")
}

// dispatch executes one command line and reports whether the shell should
// stop.
func (sh *shell) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		sh.help()
	case "load":
		if len(args) != 1 {
			pterm.Error.Println("usage: load <path-or-font-name>")
			return false
		}
		if err := sh.load(args[0]); err != nil {
			pterm.Error.Println(err)
		}
	case "faces":
		sh.printFaces()
	case "points":
		if len(args) != 1 {
			pterm.Error.Println("usage: points <face-index>")
			return false
		}
		sh.printPoints(args[0])
	default:
		pterm.Error.Printf("unknown command: %s (try 'help')\n", cmd)
	}
	return false
}

func (sh *shell) help() {
	pterm.Println(`commands:
  load <path-or-name>   load a font file, or resolve a system font by name
  faces                  list the loaded font's faces
  points <index>         list codepoints covered by face <index>
  quit                   leave the shell`)
}

// load resolves arg as a file path first, falling back to a system font
// lookup by name (the same fallback order resources.ResolveTypeCase uses
// for packaged fonts versus system fonts).
func (sh *shell) load(arg string) error {
	blob, err := os.ReadFile(arg)
	path := arg
	if err != nil {
		path, err = findfont.Find(arg)
		if err != nil {
			return fmt.Errorf("sdfexplore: %q is not a file and not a known system font: %w", arg, err)
		}
		blob, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("sdfexplore: failed to read resolved font %s: %w", path, err)
		}
	}

	faces, err := fontstack.Load(blob)
	if err != nil {
		return fmt.Errorf("sdfexplore: %w", err)
	}

	sh.name = path
	sh.faces = faces
	pterm.Info.Printf("loaded %s (%d face(s))\n", path, len(faces))
	return nil
}

func (sh *shell) printFaces() {
	if sh.faces == nil {
		pterm.Error.Println("no font loaded, try 'load <path>'")
		return
	}
	data := [][]string{{"Index", "Family", "Style", "Codepoints"}}
	for i, f := range sh.faces {
		data = append(data, []string{
			strconv.Itoa(i),
			f.FamilyName,
			f.StyleName,
			strconv.Itoa(len(f.Points)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (sh *shell) printPoints(arg string) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 0 || idx >= len(sh.faces) {
		pterm.Error.Printf("invalid face index: %s\n", arg)
		return
	}
	points := sh.faces[idx].Points
	if len(points) == 0 {
		pterm.Info.Println("face covers no codepoints")
		return
	}

	const perLine = 12
	var sb strings.Builder
	for i, p := range points {
		fmt.Fprintf(&sb, "U+%04X ", p)
		if (i+1)%perLine == 0 {
			sb.WriteByte('\n')
		}
	}
	pterm.Println(sb.String())
	pterm.Info.Printf("%d codepoint(s) total\n", len(points))
}
