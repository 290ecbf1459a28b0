package main

import (
	"image"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/fontregistry"
	"github.com/npillmayer/macfont/core/macroman"
	"github.com/pterm/pterm"
)

// Op codes of REPL commands.
const (
	NOOP int = iota
	QUIT
	HELP
	LIST
	FONT
	INFO
	GLYPH
	MEASURE
	RENDER
	WRAP
	CHARSET
	SHOW
	CLEAR
	PNG
)

var opNames = map[string]int{
	"quit":    QUIT,
	"exit":    QUIT,
	"help":    HELP,
	"list":    LIST,
	"font":    FONT,
	"info":    INFO,
	"glyph":   GLYPH,
	"measure": MEASURE,
	"render":  RENDER,
	"wrap":    WRAP,
	"charset": CHARSET,
	"show":    SHOW,
	"clear":   CLEAR,
	"png":     PNG,
}

// Command is a parsed REPL line. Args are the blank separated words after
// the command name, Text is everything after the command name.
type Command struct {
	code int
	name string
	args []string
	text string
}

func (cmd Command) arg(inx int) string {
	if len(cmd.args) > inx {
		return cmd.args[inx]
	}
	return ""
}

func parseCommand(line string) Command {
	line = strings.TrimSpace(line)
	name, text, _ := strings.Cut(line, " ")
	cmd := Command{
		name: strings.ToLower(name),
		text: strings.TrimLeft(text, " "),
		args: strings.Fields(text),
	}
	var ok bool
	if cmd.code, ok = opNames[cmd.name]; !ok {
		cmd.code = HELP
	}
	tracer().Debugf("parse command = %+v", cmd)
	return cmd
}

var errNoFont = core.Error(core.EMISSING, "no font loaded, use 'font <id>'")

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LIST:
		listFonts()
	case FONT:
		if cmd.arg(0) == "" {
			return false, core.Error(core.EINVALID, "usage: font <resource id>")
		}
		return false, intp.loadFont(cmd.arg(0))
	case CLEAR:
		intp.canvas.Clear()
	case SHOW:
		pterm.Print(intp.canvas.String())
	case PNG:
		return false, intp.writePNG(cmd)
	default:
		if intp.font == nil {
			return false, errNoFont
		}
		return false, intp.executeWithFont(cmd)
	}
	return false, nil
}

func (intp *Intp) executeWithFont(cmd Command) error {
	switch cmd.code {
	case INFO:
		intp.info()
	case GLYPH:
		code, err := characterCode(cmd.arg(0))
		if err != nil {
			return err
		}
		g := intp.font.ImageForCharacter(int(code))
		pterm.Printfln("char %d present=%v width=%d offset=%d size=%v",
			code, intp.font.CharacterIsPresent(int(code)), g.Width(), g.Offset(), g.Size())
		pterm.Print(g.DebugString())
	case MEASURE:
		pterm.Printfln("width = %d", intp.canvas.MeasureWidth(macroman.FromString(cmd.text)))
	case RENDER:
		intp.canvas.RenderAt(macroman.FromString(cmd.text), image.Pt(0, intp.font.Ascent()))
		pterm.Print(intp.canvas.String())
	case WRAP:
		w, errw := strconv.Atoi(cmd.arg(0))
		h, errh := strconv.Atoi(cmd.arg(1))
		if errw != nil || errh != nil {
			return core.Error(core.EINVALID, "usage: wrap <width> <height> <text>")
		}
		text := strings.Join(cmd.args[2:], " ")
		intp.canvas.RenderInRect(macroman.FromString(text), image.Rect(0, 0, w, h))
		pterm.Print(intp.canvas.String())
	case CHARSET:
		intp.canvas.RenderCharSet(image.Rectangle{Max: intp.canvas.Size()})
		pterm.Print(intp.canvas.String())
	}
	return nil
}

// characterCode interprets a glyph argument, either a single character or
// a '#' followed by a decimal code.
func characterCode(arg string) (byte, error) {
	if strings.HasPrefix(arg, "#") && len(arg) > 1 {
		n, err := strconv.Atoi(arg[1:])
		if err != nil || n < 0 || n > 255 {
			return 0, core.Error(core.EINVALID, "character code must be in 0…255: %s", arg)
		}
		return byte(n), nil
	}
	if utf8.RuneCountInString(arg) != 1 {
		return 0, core.Error(core.EINVALID, "usage: glyph <char> | glyph #<code>")
	}
	r, _ := utf8.DecodeRuneInString(arg)
	code, ok := macroman.Code(r)
	if !ok {
		return 0, core.Error(core.EINVALID, "%q has no Mac OS Roman code", r)
	}
	return code, nil
}

func (intp *Intp) writePNG(cmd Command) error {
	path := cmd.arg(0)
	if path == "" {
		return core.Error(core.EINVALID, "usage: png <file> [scale] [grid]")
	}
	scale := 4
	if s := cmd.arg(1); s != "" {
		var err error
		if scale, err = strconv.Atoi(s); err != nil {
			return core.WrapError(err, core.EINVALID, "scale must be a number: %s", s)
		}
	}
	grid := cmd.arg(2) == "grid"
	file, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", path)
	}
	err = intp.canvas.EncodePNG(file, scale, grid)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "writing %s failed", path)
	}
	pterm.Info.Printfln("canvas written to %s", path)
	return nil
}

func (intp *Intp) info() {
	f := intp.font
	data := pterm.TableData{
		{"Property", "Value"},
		{"Resource ID", strconv.Itoa(f.ResourceID())},
		{"Name", f.Name()},
		{"Point size", strconv.Itoa(f.PointSize())},
		{"Font type", "0x" + strconv.FormatUint(uint64(f.FontType()), 16)},
		{"Characters", strconv.Itoa(f.FirstChar()) + "…" + strconv.Itoa(f.LastChar())},
		{"Present", strconv.Itoa(f.CountOfPresentCharacters())},
		{"Proportional", strconv.FormatBool(f.IsProportional())},
		{"Max width", strconv.Itoa(f.WidMax())},
		{"Kern max", strconv.Itoa(f.KernMax())},
		{"Font rect", strconv.Itoa(f.FRectWidth()) + "x" + strconv.Itoa(f.FRectHeight())},
		{"Ascent", strconv.Itoa(f.Ascent())},
		{"Descent", strconv.Itoa(f.Descent())},
		{"Leading", strconv.Itoa(f.Leading())},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func listFonts() {
	fonts := fontregistry.GlobalRegistry().Fonts()
	if len(fonts) == 0 {
		pterm.Println("no fonts loaded")
		return
	}
	data := pterm.TableData{{"ID", "Name", "Size", "Chars"}}
	for _, f := range fonts {
		data = append(data, []string{
			strconv.Itoa(f.ResourceID()),
			f.Name(),
			strconv.Itoa(f.PointSize()),
			strconv.Itoa(f.CountOfPresentCharacters()),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	list                      list loaded fonts
	font <id>                 use font with resource ID, e.g. 'font 396' for Geneva 12
	info                      show header of current font
	glyph <char>|#<code>      show a glyph image
	measure <text>            measure width of text
	render <text>             render text at top left of canvas
	wrap <w> <h> <text>       render text wrapped into a w×h rectangle
	charset                   render all present characters
	show                      show canvas
	clear                     clear canvas
	png <file> [scale] [grid] write canvas as PNG
	quit                      leave
	`)
}
