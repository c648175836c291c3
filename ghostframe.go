// This file is part of Ghostframe.
//
// Ghostframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ghostframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ghostframe.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/logger"
	"github.com/jetsetilly/ghostframe/modalflag"
	"github.com/jetsetilly/ghostframe/version"
)

// SDL requires that window events are handled on the main thread. the
// refresh loop, and therefore the engine, runs on the main thread too
func init() {
	runtime.LockOSThread()
}

// TooManyArguments is the pattern for an error when a mode is given more
// than one filename.
const TooManyArguments = "too many arguments for %s mode"

// list of decoders accepted by the -decoder flag
var decoders = []string{"auto", "ffmpeg", "gstreamer", "gif", "pattern"}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "HEADLESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "HEADLESS":
		err = headless(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to both modes
type commonFlags struct {
	decoder *string
	log     *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		decoder: md.AddChoice("decoder", "auto", decoders, "frame source"),
		log:     md.AddBool("log", false, "echo log to stdout"),
	}
}

// set debugging log echo
func (c commonFlags) apply() {
	if *c.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

// returns the filename argument. an empty string means the built-in pattern
func filenameArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf(TooManyArguments, md)
}
