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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/ghostframe/modalflag"
	"github.com/jetsetilly/ghostframe/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)

	expected := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"headless", "-frames", "10", "video.mp4"})
	md.AddSubModes("PLAY", "HEADLESS")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "HEADLESS")

	md.NewMode()
	frames := md.AddInt("frames", 100, "number of frames")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, md.GetArg(0), "video.mp4")
	test.ExpectEquality(t, md.Path(), "HEADLESS")
}

func TestDefaultMode(t *testing.T) {
	// a filename is not a mode
	md := modalflag.Modes{}
	md.NewArgs([]string{"video.mp4"})
	md.AddSubModes("PLAY", "HEADLESS")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "video.mp4")

	// a flag not known at the mode selection stage selects the default mode
	// and is kept for the next stage
	md.NewArgs([]string{"-log", "video.mp4"})
	md.AddSubModes("PLAY", "HEADLESS")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	md.NewMode()
	log := md.AddBool("log", false, "echo log")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.GetArg(0), "video.mp4")
}

func TestChoice(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-decoder", "GIF"})
	dec := md.AddChoice("decoder", "auto", []string{"auto", "gif", "pattern"}, "frame source")
	test.ExpectEquality(t, *dec, "auto")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *dec, "gif")

	md.NewArgs([]string{"-decoder", "mpeg"})
	md.AddChoice("decoder", "auto", []string{"auto", "gif", "pattern"}, "frame source")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "not a valid value for -decoder"))
}
