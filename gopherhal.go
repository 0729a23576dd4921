// This file is part of GopherHAL.
//
// GopherHAL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherHAL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherHAL.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherhal/archivefs"
	"github.com/jetsetilly/gopherhal/hardware"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/keypad"
	"github.com/jetsetilly/gopherhal/host"
	"github.com/jetsetilly/gopherhal/host/preferences"
	"github.com/jetsetilly/gopherhal/host/terminal"
	"github.com/jetsetilly/gopherhal/host/wavcapture"
	"github.com/jetsetilly/gopherhal/logger"
	"github.com/jetsetilly/gopherhal/modalflag"
	"github.com/jetsetilly/gopherhal/prefs"
	"github.com/jetsetilly/gopherhal/resources"
	"github.com/jetsetilly/gopherhal/script"
	"github.com/jetsetilly/gopherhal/statsview"
	"github.com/jetsetilly/gopherhal/version"
)

// the sample rate used for WAV capture if the FIFO rate preference is zero.
const defaultFIFORate = 32768

// exit values.
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

// the application currently running. the signal handler uses it to end the
// application at the next VBlank
type running struct {
	crit sync.Mutex
	host *host.Host
}

func (r *running) set(h *host.Host) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.host = h
}

// quit returns false if there is no application to quit.
func (r *running) quit() bool {
	r.crit.Lock()
	defer r.crit.Unlock()
	if r.host == nil {
		return false
	}
	r.host.Quit()
	return true
}

func main() {
	run := &running{}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan int)
	go launch(run, done)

	for {
		select {
		case <-intChan:
			// the first interrupt asks the application to end. a second
			// interrupt, or one with no application running, ends immediately
			if !run.quit() {
				fmt.Print("\r")
				os.Exit(exitOK)
			}
			run.set(nil)
		case v := <-done:
			os.Exit(v)
		}
	}
}

// launch is called from main() as a goroutine. the exit value is sent on the
// done channel.
func launch(run *running, done chan int) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("SCRIPT", "KEYPAD", "VERSION")

	prefsFile := md.AddString("prefs", "", "preferences file (default in resources directory)")
	override := md.AddString("override", "", "preferences for this session. \"key::value; key::value\"")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		done <- exitOK
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		done <- exitArguments
		return
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats && statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	switch md.Mode() {
	case "SCRIPT":
		err = scriptMode(md, run, *prefsFile)
	case "KEYPAD":
		err = keypadMode(md, run, *prefsFile)
	case "VERSION":
		err = versionMode(md)
	}

	if *override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherhal", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		done <- exitMode
		return
	}

	done <- exitOK
}

// options common to the modes that run an application.
type options struct {
	prefsFile string
	sramFile  *string
	romFile   *string
	wavFile   *string
	memvizOut *string
	fps       *float64
}

func addOptions(md *modalflag.Modes, prefsFile string) *options {
	return &options{
		prefsFile: prefsFile,
		sramFile:  md.AddString("sram", "", "save file (default from preferences)"),
		romFile:   md.AddString("rom", "", "cartridge ROM image (may be in a zip archive)"),
		wavFile:   md.AddString("wav", "", "capture sound FIFOs to wav files"),
		memvizOut: md.AddString("memviz", "", "write graph of console to file on exit"),
		fps:       md.AddFloat64("fps", 0, "frame rate limit. a negative value disables the limit"),
	}
}

// session is a console and the host services for it.
type session struct {
	con  *hardware.Console
	host *host.Host
	wav  *wavcapture.Capture
	opts *options
}

func newSession(opts *options) (*session, error) {
	var prf *preferences.Preferences
	var err error
	if opts.prefsFile == "" {
		prf, err = preferences.NewPreferences()
	} else {
		prf, err = preferences.NewPreferencesFromPath(opts.prefsFile)
	}
	if err != nil {
		return nil, err
	}

	if *opts.fps < 0 {
		_ = prf.FrameLimit.Set(false)
	} else if *opts.fps > 0 {
		_ = prf.FPS.Set(*opts.fps)
	}

	s := &session{
		con:  hardware.NewConsole(),
		opts: opts,
	}

	if *opts.romFile != "" {
		d, err := archivefs.ReadFile(*opts.romFile)
		if err != nil {
			return nil, err
		}
		if err := s.con.Mem.LoadROM(d); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "gopherhal", "loaded %s (%d bytes)", *opts.romFile, len(d))
	}

	if *opts.wavFile != "" {
		rate := prf.FIFORate.Get().(int)
		if rate <= 0 {
			rate = defaultFIFORate
			_ = prf.FIFORate.Set(rate)
		}
		s.wav, err = wavcapture.NewCapture(*opts.wavFile, rate)
		if err != nil {
			return nil, err
		}
		s.con.IO.SetFIFOSink(s.wav)
	}

	savePath := *opts.sramFile
	if savePath == "" {
		savePath, err = resources.JoinPath(prf.SaveFile.String())
		if err != nil {
			return nil, err
		}
	}

	s.host, err = host.NewHost(s.con, prf, savePath)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// run the application and release the resources of the session.
func (s *session) run(run *running, app host.Application) error {
	run.set(s.host)
	defer run.set(nil)

	err := s.host.Run(app)

	if s.wav != nil {
		if werr := s.wav.Close(); werr != nil && err == nil {
			err = werr
		}
	}

	if *s.opts.memvizOut != "" {
		f, ferr := os.Create(*s.opts.memvizOut)
		if ferr != nil {
			if err == nil {
				err = ferr
			}
		} else {
			memviz.Map(f, s.con)
			f.Close()
		}
	}

	return err
}

func scriptMode(md *modalflag.Modes, run *running, prefsFile string) error {
	md.NewMode()
	opts := addOptions(md, prefsFile)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(opts)
	if err != nil {
		return err
	}

	filename := md.GetArg(0)
	return s.run(run, func(con *hardware.Console) error {
		scr := script.NewScript(con, os.Stdout)
		defer scr.Close()
		return scr.RunFile(filename)
	})
}

func keypadMode(md *modalflag.Modes, run *running, prefsFile string) error {
	md.NewMode()
	opts := addOptions(md, prefsFile)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	term, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if err := term.CBreakMode(); err != nil {
		return err
	}
	defer term.CleanUp()

	s, err := newSession(opts)
	if err != nil {
		return err
	}

	keys := make(chan terminal.Key)
	go term.ReadKeys(terminal.NewDecoder(nil), keys)
	go func() {
		for k := range keys {
			if k.Quit {
				s.host.Quit()
				return
			}
			s.host.Press(k.Buttons)
		}
	}()

	term.Print("keypad monitor. press q to quit\n")

	return s.run(run, func(con *hardware.Console) error {
		var irqs int

		con.IRQ.Init()
		if err := con.IRQ.SetHandler(irq.Keypad, func() { irqs++ }); err != nil {
			return err
		}
		if err := con.IRQ.Enable(irq.VBlank); err != nil {
			return err
		}
		if err := con.IRQ.Enable(irq.Keypad); err != nil {
			return err
		}
		con.Keypad.IRQEnableAll(keypad.Start | keypad.Select)

		width := term.Width() - 1
		for {
			con.WaitVBlank()
			con.Keypad.Update()
			if con.Keypad.Pressed() == keypad.None && con.Keypad.Released() == keypad.None {
				continue
			}
			line := fmt.Sprintf("held: %-40s start+select: %d", con.Keypad.Held(), irqs)
			if len(line) > width {
				line = line[:width]
			}
			term.Print("\r%-*s", width, line)
		}
	})
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s (library %s)\n", version.ApplicationName, v, version.Triple())
	if *revision {
		fmt.Println(r)
	}

	return nil
}
