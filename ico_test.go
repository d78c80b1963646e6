package main

import (
	"bytes"
	"encoding/binary"
	"image"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func icoFrames(sizes ...int) []image.Image {
	frames := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		frames = append(frames, opaqueNRGBA(s, s))
	}
	return frames
}

func TestEncodeICO_HeaderMagicAndCount(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeICO(&buf, icoFrames(16, 32, 48)); err != nil {
		t.Fatalf("encodeICO error: %v", err)
	}
	data := buf.Bytes()
	// ICO magic: reserved=0x0000, type=0x0001
	if len(data) < 6 || data[0] != 0 || data[1] != 0 || data[2] != 1 || data[3] != 0 {
		t.Error("encodeICO did not produce valid ICO data")
	}
	if count := binary.LittleEndian.Uint16(data[4:]); count != 3 {
		t.Errorf("frame count = %d, want 3", count)
	}
}

func TestEncodeICO_EntryDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeICO(&buf, icoFrames(48)); err != nil {
		t.Fatalf("encodeICO error: %v", err)
	}
	data := buf.Bytes()
	if data[6] != 48 || data[7] != 48 {
		t.Errorf("entry dimensions = %dx%d, want 48x48", data[6], data[7])
	}
}

func TestEncodeICO_256MapsToZero(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeICO(&buf, icoFrames(256)); err != nil {
		t.Fatalf("encodeICO error: %v", err)
	}
	data := buf.Bytes()
	// 256 maps to 0 in ICO format
	if data[6] != 0 || data[7] != 0 {
		t.Errorf("entry dimensions = %d,%d, want 0,0 for 256x256", data[6], data[7])
	}
}

func TestEncodeICO_PayloadsStartAfterEntries(t *testing.T) {
	frames := icoFrames(16, 32)
	var buf bytes.Buffer
	if err := encodeICO(&buf, frames); err != nil {
		t.Fatalf("encodeICO error: %v", err)
	}
	data := buf.Bytes()

	first := binary.LittleEndian.Uint32(data[6+12:])
	if want := uint32(6 + 16*len(frames)); first != want {
		t.Errorf("first frame offset = %d, want %d", first, want)
	}
	// Each frame payload must begin with the PNG signature.
	for i := 0; i < len(frames); i++ {
		entry := data[6+16*i:]
		off := binary.LittleEndian.Uint32(entry[12:])
		size := binary.LittleEndian.Uint32(entry[8:])
		if off+size > uint32(len(data)) {
			t.Fatalf("frame %d extends past container end", i)
		}
		if data[off] != 0x89 || data[off+1] != 'P' || data[off+2] != 'N' || data[off+3] != 'G' {
			t.Errorf("frame %d payload is not PNG", i)
		}
	}
}

func TestEncodeICO_DecodesToFrameSizes(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeICO(&buf, icoFrames(16, 32, 48, 256)); err != nil {
		t.Fatalf("encodeICO error: %v", err)
	}

	imgs, err := ico.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll error: %v", err)
	}
	if len(imgs) != 4 {
		t.Fatalf("decoded %d frames, want 4", len(imgs))
	}
	want := map[int]bool{16: false, 32: false, 48: false, 256: false}
	for _, img := range imgs {
		b := img.Bounds()
		if b.Dx() != b.Dy() {
			t.Errorf("frame not square: %dx%d", b.Dx(), b.Dy())
			continue
		}
		seen, ok := want[b.Dx()]
		if !ok {
			t.Errorf("unexpected frame size %d", b.Dx())
			continue
		}
		if seen {
			t.Errorf("duplicate frame size %d", b.Dx())
		}
		want[b.Dx()] = true
	}
	for size, seen := range want {
		if !seen {
			t.Errorf("missing frame size %d", size)
		}
	}
}

func TestEncodeICO_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeICO(&buf, nil); err == nil {
		t.Error("encodeICO(nil) = nil error, want error")
	}
}
