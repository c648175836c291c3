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

package gstreamer

import (
	"image"
	"sync"
	"time"

	"github.com/jetsetilly/ghostframe/curated"
	"github.com/jetsetilly/ghostframe/framesource"
	"github.com/jetsetilly/ghostframe/logger"
	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"
)

// list of error patterns returned by the gstreamer package.
const (
	PipelineError = "gstreamer: pipeline: %v"
	StreamError   = "gstreamer: %v"
)

// the caps forced on the output of videoconvert
const rgbaCaps = "video/x-raw,format=RGBA"

// how long the bus monitor waits for a message before checking for shutdown
const busPoll = 50 * time.Millisecond

var initOnce sync.Once

// Decoder implements the framesource.Source interface.
type Decoder struct {
	framesource.Playback

	filename string

	pipeline *gst.Pipeline
	convert  *gst.Element
	sink     *app.Sink

	// stopping the bus monitor
	done chan struct{}
	wg   sync.WaitGroup
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The pipeline is created in the NULL state and nothing is read from the
// file until Start() is called.
func NewDecoder(filename string) (*Decoder, error) {
	initOnce.Do(func() {
		gst.Init(nil)
	})

	dec := &Decoder{
		filename: filename,
		done:     make(chan struct{}),
	}

	err := dec.build()
	if err != nil {
		return nil, curated.Errorf(PipelineError, err)
	}

	dec.sink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: dec.newSample,
	})

	dec.wg.Add(1)
	go dec.monitor()

	logger.Logf(logger.Allow, "gstreamer", "pipeline created for %s", filename)

	return dec, nil
}

func (dec *Decoder) build() error {
	var err error

	dec.pipeline, err = gst.NewPipeline("")
	if err != nil {
		return err
	}

	src, err := gst.NewElement("filesrc")
	if err != nil {
		return err
	}
	src.SetProperty("location", dec.filename)

	decode, err := gst.NewElement("decodebin")
	if err != nil {
		return err
	}

	dec.convert, err = gst.NewElement("videoconvert")
	if err != nil {
		return err
	}

	filter, err := gst.NewElement("capsfilter")
	if err != nil {
		return err
	}
	filter.SetProperty("caps", gst.NewCapsFromString(rgbaCaps))

	dec.sink, err = app.NewAppSink()
	if err != nil {
		return err
	}

	// the pipeline clock paces playback so that the latest frame is the one
	// that should be shown now
	dec.sink.SetProperty("sync", true)
	dec.sink.SetProperty("max-buffers", 1)
	dec.sink.SetProperty("drop", true)

	err = dec.pipeline.AddMany(src, decode, dec.convert, filter, dec.sink.Element)
	if err != nil {
		return err
	}

	err = src.Link(decode)
	if err != nil {
		return err
	}

	err = gst.ElementLinkMany(dec.convert, filter, dec.sink.Element)
	if err != nil {
		return err
	}

	// decodebin pads are created once the stream type is known
	decode.Connect("pad-added", func(self *gst.Element, srcPad *gst.Pad) {
		dec.padAdded(srcPad)
	})

	return nil
}

func (dec *Decoder) padAdded(srcPad *gst.Pad) {
	sinkPad := dec.convert.GetStaticPad("sink")
	if sinkPad == nil || sinkPad.IsLinked() {
		// the second and subsequent pads are audio or other streams
		return
	}

	if ret := srcPad.Link(sinkPad); ret != gst.PadLinkOK {
		logger.Logf(logger.Allow, "gstreamer", "pad %s not linked: %v", srcPad.GetName(), ret)
		return
	}

	logger.Logf(logger.Allow, "gstreamer", "pad %s linked to videoconvert", srcPad.GetName())
}

// Start implements the framesource.Source interface.
func (dec *Decoder) Start() *framesource.Completion {
	ended := dec.Ended()

	c, begin := dec.Begin()
	if !begin {
		return c
	}

	if ended {
		if err := dec.pipeline.SetState(gst.StateNull); err != nil {
			dec.Fail(err)
			return c
		}
		logger.Log(logger.Allow, "gstreamer", "rewound")
	}

	if err := dec.pipeline.SetState(gst.StatePlaying); err != nil {
		dec.Fail(err)
	}

	return c
}

// Stop implements the framesource.Source interface.
func (dec *Decoder) Stop() {
	if !dec.Ended() {
		if err := dec.pipeline.SetState(gst.StatePaused); err != nil {
			logger.Log(logger.Allow, "gstreamer", err)
		}
	}
	dec.Halt()
}

// Close releases the pipeline. The Decoder cannot be used after Close() has
// been called.
func (dec *Decoder) Close() {
	close(dec.done)
	dec.wg.Wait()
	if err := dec.pipeline.SetState(gst.StateNull); err != nil {
		logger.Log(logger.Allow, "gstreamer", err)
	}
}

func (dec *Decoder) newSample(sink *app.Sink) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		return gst.FlowOK
	}

	w, h, ok := dimensions(sample.GetCaps())
	if !ok {
		logger.Log(logger.Allow, "gstreamer", "sample without dimensions")
		return gst.FlowOK
	}

	buffer := sample.GetBuffer()
	if buffer == nil {
		return gst.FlowOK
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	mapInfo := buffer.Map(gst.MapRead)
	data := mapInfo.Bytes()
	if len(data) < len(img.Pix) {
		buffer.Unmap()
		logger.Logf(logger.Allow, "gstreamer", "short buffer (%d bytes for %dx%d)", len(data), w, h)
		return gst.FlowOK
	}
	copy(img.Pix, data)
	buffer.Unmap()

	dec.Deliver(img)

	return gst.FlowOK
}

// dimensions of the video described by the caps
func dimensions(caps *gst.Caps) (int, int, bool) {
	if caps == nil || caps.GetSize() == 0 {
		return 0, 0, false
	}

	st := caps.GetStructureAt(0)
	w, err := st.GetValue("width")
	if err != nil {
		return 0, 0, false
	}
	h, err := st.GetValue("height")
	if err != nil {
		return 0, 0, false
	}

	wi, ok := toInt(w)
	if !ok {
		return 0, 0, false
	}
	hi, ok := toInt(h)
	if !ok {
		return 0, 0, false
	}

	return wi, hi, wi > 0 && hi > 0
}

func toInt(v interface{}) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint32:
		return int(v), true
	}
	return 0, false
}

// monitor the pipeline bus until Close() is called
func (dec *Decoder) monitor() {
	defer dec.wg.Done()

	bus := dec.pipeline.GetPipelineBus()

	for {
		select {
		case <-dec.done:
			return
		default:
		}

		msg := bus.TimedPop(busPoll)
		if msg == nil {
			continue
		}

		switch msg.Type() {
		case gst.MessageEOS:
			logger.Log(logger.Allow, "gstreamer", "end of stream")
			dec.End()

		case gst.MessageError:
			gerr := msg.ParseError()
			logger.Logf(logger.Allow, "gstreamer", "%s (%s)", gerr.Error(), gerr.DebugString())
			if err := dec.pipeline.SetState(gst.StateNull); err != nil {
				logger.Log(logger.Allow, "gstreamer", err)
			}
			dec.Fail(curated.Errorf(StreamError, gerr))
		}
	}
}
