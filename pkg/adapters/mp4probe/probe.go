// Package mp4probe reads video track metadata from MP4 files.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/h5tomp4/pkg/ports"
)

// ErrNoVideoTrack is returned when the file has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Prober implements ports.VideoProber using mp4ff.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe reads the first video track of the file at path.
func (p *Prober) Probe(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return p.ProbeReader(f)
}

// ProbeReader reads the first video track from an io.ReadSeeker.
func (p *Prober) ProbeReader(reader io.ReadSeeker) (ports.VideoInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.IsFragmented() {
		return probeFragmented(mp4File)
	}
	return probeProgressive(mp4File)
}

func probeProgressive(mp4File *mp4.File) (ports.VideoInfo, error) {
	if mp4File.Moov == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	trak := findVideoTrack(mp4File.Moov)
	if trak == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	info := trackInfo(trak)
	if stbl := trak.Mdia.Minf.Stbl; stbl != nil && stbl.Stsz != nil {
		info.FrameCount = int(stbl.Stsz.SampleNumber)
	}
	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.DurationMs = int(mdhd.Duration * 1000 / uint64(mdhd.Timescale))
	}

	return info, nil
}

func probeFragmented(mp4File *mp4.File) (ports.VideoInfo, error) {
	if mp4File.Init == nil || mp4File.Init.Moov == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	moov := mp4File.Init.Moov
	trak := findVideoTrack(moov)
	if trak == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	info := trackInfo(trak)
	info.Fragmented = true

	trackID := trak.Tkhd.TrackID
	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	var totalDur uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			samples, err := frag.GetFullSamples(trex)
			if err != nil {
				return ports.VideoInfo{}, fmt.Errorf("get samples: %w", err)
			}
			for _, sample := range samples {
				totalDur += uint64(sample.Dur)
			}
			info.FrameCount += len(samples)
		}
	}

	if info.Timescale > 0 {
		info.DurationMs = int(totalDur * 1000 / uint64(info.Timescale))
	}

	return info, nil
}

func findVideoTrack(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

func trackInfo(trak *mp4.TrakBox) ports.VideoInfo {
	info := ports.VideoInfo{}

	if trak.Tkhd != nil {
		// tkhd dimensions are 16.16 fixed point
		info.Width = int(uint32(trak.Tkhd.Width) >> 16)
		info.Height = int(uint32(trak.Tkhd.Height) >> 16)
	}
	if trak.Mdia.Mdhd != nil {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}
	if minf := trak.Mdia.Minf; minf != nil && minf.Stbl != nil && minf.Stbl.Stsd != nil {
		for _, child := range minf.Stbl.Stsd.Children {
			info.Codec = child.Type()
			break
		}
	}

	return info
}

// Ensure Prober implements ports.VideoProber
var _ ports.VideoProber = (*Prober)(nil)
