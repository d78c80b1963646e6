package main

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
)

// ICO container layout: a 6-byte ICONDIR header, one 16-byte ICONDIRENTRY per
// frame, then the frame payloads in entry order. Frames are stored
// PNG-compressed; PNG-in-ICO is supported since Vista.
const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

// encodeICO writes frames as one multi-resolution ICO container.
func encodeICO(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return fmt.Errorf("ico: no frames")
	}

	payloads := make([][]byte, len(frames))
	for i, frame := range frames {
		data, err := encodePNG(frame)
		if err != nil {
			return fmt.Errorf("ico frame %d: %w", i, err)
		}
		payloads[i] = data
	}

	header := make([]byte, icoHeaderSize+icoEntrySize*len(frames))

	// ICONDIR
	binary.LittleEndian.PutUint16(header[0:], 0) // reserved
	binary.LittleEndian.PutUint16(header[2:], 1) // type: ICO
	binary.LittleEndian.PutUint16(header[4:], uint16(len(frames)))

	offset := uint32(len(header))
	for i, frame := range frames {
		b := frame.Bounds()

		// ICO dimensions: 0 means 256 (or larger).
		bw, bh := byte(b.Dx()), byte(b.Dy())
		if b.Dx() >= 256 {
			bw = 0
		}
		if b.Dy() >= 256 {
			bh = 0
		}

		// ICONDIRENTRY
		entry := header[icoHeaderSize+icoEntrySize*i:]
		entry[0] = bw // width
		entry[1] = bh // height
		entry[2] = 0  // color count (0 for truecolor)
		entry[3] = 0  // reserved
		binary.LittleEndian.PutUint16(entry[4:], 1)                        // planes
		binary.LittleEndian.PutUint16(entry[6:], 32)                       // bits per pixel
		binary.LittleEndian.PutUint32(entry[8:], uint32(len(payloads[i]))) // data size
		binary.LittleEndian.PutUint32(entry[12:], offset)                  // data offset
		offset += uint32(len(payloads[i]))
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("ico header: %w", err)
	}
	for i, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return fmt.Errorf("ico frame %d: %w", i, err)
		}
	}
	return nil
}
