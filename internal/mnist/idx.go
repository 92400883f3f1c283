// Package mnist reads MNIST image and label files in the IDX binary format.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
//
// Records are exposed one at a time, in file order; neither reader can seek
// or restart.
package mnist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	imageMagic = 2051
	labelMagic = 2049
)

// ImageReader yields image pixel records sequentially from an IDX image file.
type ImageReader struct {
	f          *os.File
	r          *bufio.Reader
	count      int
	rows, cols int
	read       int
}

// OpenImages opens an IDX image file and reads its header.
func OpenImages(path string) (*ImageReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := bufio.NewReader(f)

	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		f.Close()
		return nil, fmt.Errorf("read image magic: %w", err)
	}
	if magic != imageMagic {
		f.Close()
		return nil, fmt.Errorf("invalid image magic number: got %d, want %d", magic, imageMagic)
	}

	var count, rows, cols uint32
	for _, dim := range []*uint32{&count, &rows, &cols} {
		if err := binary.Read(r, binary.BigEndian, dim); err != nil {
			f.Close()
			return nil, fmt.Errorf("read image header: %w", err)
		}
	}

	return &ImageReader{
		f:     f,
		r:     r,
		count: int(count),
		rows:  int(rows),
		cols:  int(cols),
	}, nil
}

// Count returns the number of images the header declares.
func (ir *ImageReader) Count() int { return ir.count }

// Dims returns the row and column counts of each image.
func (ir *ImageReader) Dims() (rows, cols int) { return ir.rows, ir.cols }

// PixelsPerImage returns rows × cols.
func (ir *ImageReader) PixelsPerImage() int { return ir.rows * ir.cols }

// Next returns the next image's pixel bytes, or io.EOF past the last record.
func (ir *ImageReader) Next() ([]byte, error) {
	if ir.read >= ir.count {
		return nil, io.EOF
	}
	pixels := make([]byte, ir.rows*ir.cols)
	if _, err := io.ReadFull(ir.r, pixels); err != nil {
		return nil, fmt.Errorf("read image %d: %w", ir.read, err)
	}
	ir.read++
	return pixels, nil
}

// Close closes the underlying file.
func (ir *ImageReader) Close() error { return ir.f.Close() }

// LabelReader yields class labels sequentially from an IDX label file.
type LabelReader struct {
	f     *os.File
	r     *bufio.Reader
	count int
	read  int
}

// OpenLabels opens an IDX label file and reads its header.
func OpenLabels(path string) (*LabelReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := bufio.NewReader(f)

	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		f.Close()
		return nil, fmt.Errorf("read label magic: %w", err)
	}
	if magic != labelMagic {
		f.Close()
		return nil, fmt.Errorf("invalid label magic number: got %d, want %d", magic, labelMagic)
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		f.Close()
		return nil, fmt.Errorf("read label header: %w", err)
	}

	return &LabelReader{f: f, r: r, count: int(count)}, nil
}

// Count returns the number of labels the header declares.
func (lr *LabelReader) Count() int { return lr.count }

// Next returns the next label byte, or io.EOF past the last record.
func (lr *LabelReader) Next() (byte, error) {
	if lr.read >= lr.count {
		return 0, io.EOF
	}
	b, err := lr.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("read label %d: %w", lr.read, err)
	}
	lr.read++
	return b, nil
}

// Close closes the underlying file.
func (lr *LabelReader) Close() error { return lr.f.Close() }

// Source pairs an image file with its label file and advances both in
// lock-step, one (image, label) record per call.
type Source struct {
	images *ImageReader
	labels *LabelReader
}

// Open opens an image/label file pair. The two headers must declare the same
// record count; a mismatch indicates a corrupt or mispaired dataset and fails
// immediately.
func Open(imagePath, labelPath string) (*Source, error) {
	images, err := OpenImages(imagePath)
	if err != nil {
		return nil, err
	}
	labels, err := OpenLabels(labelPath)
	if err != nil {
		images.Close()
		return nil, err
	}
	if images.Count() != labels.Count() {
		images.Close()
		labels.Close()
		return nil, fmt.Errorf("image count (%d) != label count (%d)", images.Count(), labels.Count())
	}
	return &Source{images: images, labels: labels}, nil
}

// Count returns the number of (image, label) pairs in the source.
func (s *Source) Count() int { return s.images.Count() }

// PixelsPerImage returns the pixel count of each image record.
func (s *Source) PixelsPerImage() int { return s.images.PixelsPerImage() }

// Next returns the next (image, label) pair, or io.EOF past the last record.
func (s *Source) Next() ([]byte, byte, error) {
	pixels, err := s.images.Next()
	if err != nil {
		return nil, 0, err
	}
	label, err := s.labels.Next()
	if err != nil {
		return nil, 0, err
	}
	return pixels, label, nil
}

// Close closes both underlying files.
func (s *Source) Close() error {
	return errors.Join(s.images.Close(), s.labels.Close())
}
