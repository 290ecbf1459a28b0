package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/macfont/core"
	"github.com/npillmayer/macfont/core/font/fontregistry"
	"github.com/npillmayer/macfont/core/font/nfnt"
	"github.com/npillmayer/macfont/core/locate/resources"
	"github.com/npillmayer/macfont/engine/render"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'macfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("macfont.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.macfont.fonts":     "Info",
		"trace.macfont.render":    "Info",
		"trace.macfont.resources": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	suitcase := flag.String("suitcase", "", "Suitcase (resource fork or .dfont) to load fonts from")
	fontpath := flag.String("fontpath", "", "Directory to search for font resources")
	fontID := flag.String("font", "", "Resource ID of font to use")
	width := flag.Int("width", 240, "Canvas width in pixels")
	height := flag.Int("height", 64, "Canvas height in pixels")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the bitmap font CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	conf[resources.FontPathKey] = *fontpath
	conf[resources.FontSuitcaseKey] = *suitcase
	//
	// set up REPL
	repl, err := readline.New("nfnt > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:   repl,
		conf:   conf,
		canvas: render.NewCanvas(image.Pt(*width, *height)),
	}
	//
	// load fonts to use
	if *suitcase != "" {
		fonts, err := resources.LoadSuitcase(*suitcase)
		if err != nil {
			core.UserError(err)
		}
		if len(fonts) == 0 {
			os.Exit(4)
		}
		pterm.Info.Printfln("loaded %d fonts from %s", len(fonts), *suitcase)
		if *fontID == "" {
			intp.setFont(fonts[0])
		}
	}
	if *fontID != "" {
		if err := intp.loadFont(*fontID); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().SetTraceLevel(traceLevel(*tlevel))
	intp.REPL() // go into interactive mode
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	conf   testconfig.Conf
	font   *nfnt.Font
	canvas *render.Canvas
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			tracer().Debugf(err.Error())
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) loadFont(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f, err := resources.ResolveFont(intp.conf, id).FontContext(ctx)
	if err != nil {
		return err
	}
	intp.setFont(f)
	return nil
}

func (intp *Intp) setFont(f *nfnt.Font) {
	intp.font = f
	intp.canvas.SetFont(f)
	fontregistry.GlobalRegistry().StoreFont(f)
	pterm.Printfln("using font %s", f)
}
