package gds

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Reader reads the records of a GDSII stream file.
type Reader struct {
	r   io.Reader
	hdr [4]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next record. It returns io.EOF at the end of the input.
func (r *Reader) Next() (Record, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Record{}, fmt.Errorf("truncated record header: %w", err)
		}
		return Record{}, err
	}
	n := int(binary.BigEndian.Uint16(r.hdr[:2]))
	if n < 4 {
		return Record{}, fmt.Errorf("invalid record length %d", n)
	}
	rec := Record{
		Type: RecordType(binary.BigEndian.Uint16(r.hdr[2:])),
		Data: make([]byte, n-4),
	}
	if _, err := io.ReadFull(r.r, rec.Data); err != nil {
		return Record{}, fmt.Errorf("truncated %s record: %w", rec.Type, err)
	}
	return rec, nil
}

// ReadAll reads records up to and including ENDLIB.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, fmt.Errorf("missing ENDLIB: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
		if rec.Type == EndLib {
			return out, nil
		}
	}
}
