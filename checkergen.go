// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/exporter"
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/modalflag"
	"github.com/jetsetilly/checkergen/options"
	"github.com/jetsetilly/checkergen/project"
	"github.com/jetsetilly/checkergen/runstate"
	"github.com/jetsetilly/checkergen/sequencer"
	"github.com/jetsetilly/checkergen/statsview"
	"github.com/jetsetilly/checkergen/version"
	"github.com/jetsetilly/checkergen/window"
)

// SDL requires that the window is created and serviced on the main thread.
func init() {
	runtime.LockOSThread()
}

// communication between main() and launch(). functions sent on the mainthread
// channel are run by main() on the main thread.
type mainSync struct {
	quit       chan int
	mainthread chan func()
}

// #mainthread
func main() {
	sync := &mainSync{
		quit:       make(chan int),
		mainthread: make(chan func()),
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	exitVal := 0

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
		case f := <-sync.mainthread:
			f()
		case exitVal = <-sync.quit:
			done = true
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DISPLAY", "EXPORT", "ORDERS", "INFO", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- 10
		return
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	var srv *statsview.Server
	if *stats {
		srv = statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "DISPLAY":
		err = display(md, sync)
	case "EXPORT":
		err = export(md)
	case "ORDERS":
		err = orders(md)
	case "INFO":
		err = info(md)
	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if srv != nil {
		srv.Stop()
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.quit <- 20
		return
	}

	sync.quit <- 0
}

// the display options given on the command line. applied once the project
// has been loaded and the saved options for the project attached.
type optionFlags struct {
	keys   []string
	values []string
}

// addOptions adds a flag for every display option.
func (of *optionFlags) addOptions(md *modalflag.Modes) {
	// validation of the flag values uses a scratch set of options
	scratch := options.NewDisplay()

	for _, k := range scratch.Keys() {
		key := k
		v, _ := scratch.Get(key)
		isBool := v == "true" || v == "false"
		md.AddOption(key, v, isBool, fmt.Sprintf("display option: %s", key), func(s string) error {
			if err := scratch.Set(key, s); err != nil {
				return err
			}
			of.keys = append(of.keys, key)
			of.values = append(of.values, s)
			return nil
		})
	}
}

// apply the flags to the options.
func (of *optionFlags) apply(opts *options.Display) error {
	for i := range of.keys {
		if err := opts.Set(of.keys[i], of.values[i]); err != nil {
			return err
		}
	}
	return nil
}

// loadProject from the single remaining argument.
func loadProject(md *modalflag.Modes) (*project.Project, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("project file required for %s mode", md)
	case 1:
		return project.Load(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// prepareOptions attaches the saved options of the project and applies the
// option flags on top.
func prepareOptions(prj *project.Project, of *optionFlags, save bool) (*options.Display, error) {
	opts := options.NewDisplay()
	if err := opts.AttachDisk(prj.Name()); err != nil {
		return nil, err
	}
	if err := of.apply(opts); err != nil {
		return nil, err
	}
	if save {
		if err := opts.Save(); err != nil {
			return nil, err
		}
		fmt.Printf("! options saved for %s\n", prj.Name())
	}
	logger.Logf(logger.Allow, "options", "%s", opts)
	return opts, nil
}

func explicitOrder(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	return project.ParseOrder(s)
}

func summary(res runstate.Result) {
	var fail int
	for _, p := range res.Played {
		if !p.Pass {
			fail++
		}
	}
	fmt.Printf("order %v: %d groups played, %d failed fixation\n", res.Order, len(res.Played), fail)
}

func display(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	of := &optionFlags{}
	of.addOptions(md)
	order := md.AddString("order", "", "order of group ids (-1 for a wait screen)")
	save := md.AddBool("save", false, "save display options as project defaults")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prj, err := loadProject(md)
	if err != nil {
		return err
	}

	explicit, err := explicitOrder(*order)
	if err != nil {
		return err
	}

	opts, err := prepareOptions(prj, of, *save)
	if err != nil {
		return err
	}

	var res runstate.Result

	// the run takes place entirely on the main thread
	done := make(chan error)
	sync.mainthread <- func() {
		win, err := window.NewWindow(fmt.Sprintf("%s - %s", version.ApplicationName, prj.Name()), prj.Res(), opts.Fullscreen.Bool())
		if err != nil {
			done <- err
			return
		}

		res, err = sequencer.Display(prj, explicit, opts, runstate.Devices{
			Output:  win,
			Pointer: win,
		})
		done <- err
	}

	err = <-done
	if len(res.Order) > 0 {
		summary(res)
	}

	return err
}

func export(md *modalflag.Modes) error {
	md.NewMode()

	of := &optionFlags{}
	of.addOptions(md)
	order := md.AddString("order", "", "order of group ids")
	dir := md.AddString("dir", ".", "directory to export to")
	duration := md.AddFloat64("duration", math.Inf(1), "maximum duration to export in seconds")
	folder := md.AddBool("folder", false, "export to a new folder named after the project")
	force := md.AddBool("force", false, fmt.Sprintf("allow more than %d frames", exporter.MaxExportFrames))
	track := md.AddBool("track", false, "write the trigger track as a WAV file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prj, err := loadProject(md)
	if err != nil {
		return err
	}

	explicit, err := explicitOrder(*order)
	if err != nil {
		return err
	}

	opts, err := prepareOptions(prj, of, false)
	if err != nil {
		return err
	}

	res, err := sequencer.Export(prj, explicit, opts, sequencer.ExportParams{
		Dir:      *dir,
		Duration: *duration,
		Folder:   *folder,
		Force:    *force,
		Track:    *track,
	})
	if err != nil {
		if curated.Is(err, exporter.FrameOverflow) {
			return fmt.Errorf("%v: use -force to export anyway", err)
		}
		return err
	}

	fmt.Printf("! %d frames exported\n", len(res.Triggers))

	return nil
}

func orders(md *modalflag.Modes) error {
	md.NewMode()

	generate := md.AddBool("generate", false, "replace the orders with every cyclic permutation of the groups")
	add := md.AddString("add", "", "add an order of group ids")
	clr := md.AddBool("clear", false, "remove all orders")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prj, err := loadProject(md)
	if err != nil {
		return err
	}

	if *clr {
		if err := prj.SetOrders(nil); err != nil {
			return err
		}
	}

	if *generate {
		prj.GenerateOrders()
	}

	if *add != "" {
		o, err := project.ParseOrder(*add)
		if err != nil {
			return err
		}
		if err := prj.SetOrders(append(prj.Orders(), o)); err != nil {
			return err
		}
	}

	for i, o := range prj.Orders() {
		fmt.Printf("%d: %v (%.2fs)\n", i, o, prj.Duration(o))
	}

	if prj.Dirty() {
		if err := prj.Save(md.GetArg(0)); err != nil {
			return err
		}
		fmt.Printf("! orders saved to %s\n", md.GetArg(0))
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	dot := md.AddString("memviz", "", "write the structure of the project to a graphviz file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prj, err := loadProject(md)
	if err != nil {
		return err
	}

	fmt.Println(prj)
	pre, post := prj.Blank()
	fmt.Printf("blank: %gs before, %gs after\n", pre, post)
	for i, g := range prj.Groups() {
		fmt.Printf("group %d: %s\n", i, g)
		for j, s := range g.Shapes() {
			fmt.Printf("  shape %d: %s\n", j, s)
		}
	}
	for i, o := range prj.Orders() {
		fmt.Printf("order %d: %s\n", i, strings.Trim(fmt.Sprint(o), "[]"))
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		memviz.Map(f, prj)
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("! project structure written to %s\n", *dot)
	}

	return nil
}
