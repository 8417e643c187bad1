package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// readInput decodes path by extension into interleaved integer PCM.
func readInput(path string) (*audio.IntBuffer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return readWAV(path)
	case ".flac":
		return readFLAC(path)
	case ".mp3":
		return readMP3(path)
	case ".ogg":
		return readOGG(path)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}
}

func readFLAC(path string) (*audio.IntBuffer, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: decoding FLAC: %w", path, err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bps := int(info.BitsPerSample)
	depth := widenedDepth(bps)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: int(info.SampleRate)},
		Data:           make([]int, 0, int(info.NSamples)*channels),
		SourceBitDepth: depth,
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: decoding FLAC frame: %w", path, err)
		}

		n := int(frame.Subframes[0].NSamples)
		for i := range n {
			for ch := range channels {
				sample := int(frame.Subframes[ch].Samples[i])
				buf.Data = append(buf.Data, sample<<(depth-bps))
			}
		}
	}

	return buf, nil
}

// widenedDepth returns the smallest supported WAV bit depth holding bps bits.
func widenedDepth(bps int) int {
	switch {
	case bps <= 16:
		return 16
	case bps <= 24:
		return 24
	default:
		return 32
	}
}

// readMP3 decodes to 16-bit stereo, the only output layout go-mp3 provides.
func readMP3(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%s: decoding MP3: %w", path, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%s: reading MP3 frames: %w", path, err)
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: dec.SampleRate()},
		Data:           int16LE(raw),
		SourceBitDepth: 16,
	}, nil
}

// int16LE converts little-endian 16-bit PCM bytes to samples.
// A trailing odd byte is ignored.
func int16LE(raw []byte) []int {
	out := make([]int, len(raw)/2)
	for i := range out {
		out[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}
	return out
}

// readOGG decodes Vorbis float samples and quantizes them to 16 bit.
func readOGG(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: decoding OGG: %w", path, err)
	}

	channels := reader.Channels()
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: reader.SampleRate()},
		SourceBitDepth: 16,
	}

	chunk := make([]float32, 4096*channels)
	for {
		n, err := reader.Read(chunk)
		for _, v := range chunk[:n] {
			buf.Data = append(buf.Data, quantize(float64(v), 1<<15))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: reading OGG samples: %w", path, err)
		}
	}

	return buf, nil
}
