package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/born-ml/texpr/internal/logging"
)

// Format constants.
const (
	MagicBytes    = "TXPR"
	FormatVersion = 1
	ChecksumSize  = sha256.Size
	MaxHeaderSize = 1 << 20
	MaxPayload    = 1 << 34
)

// flagCompressionMask holds the Compression in the low flag bits.
const flagCompressionMask uint32 = 0xff

// Header is the JSON header of a container.
type Header struct {
	FormatVersion int               `json:"format_version"`
	Class         string            `json:"class"`
	Complex       bool              `json:"complex"`
	Dims          []int             `json:"dims"`
	RealSize      int64             `json:"real_size"`
	ImagSize      int64             `json:"imag_size"`
	PayloadSize   int64             `json:"payload_size"` // stored (possibly compressed) bytes
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type codecOptions struct {
	logger   *logging.Logger
	metadata map[string]string
}

// Option configures Encode and Decode.
type Option func(*codecOptions)

// WithLogger logs container sizes at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(o *codecOptions) { o.logger = l }
}

// WithMetadata stores key/value pairs in the header.
func WithMetadata(md map[string]string) Option {
	return func(o *codecOptions) { o.metadata = md }
}

func buildCodecOptions(opts []Option) codecOptions {
	var o codecOptions
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNoop(o.logger)
	return o
}

// Encode writes a to w as a container, compressing the payload with c.
func Encode(w io.Writer, a *Array, c Compression, opts ...Option) error {
	o := buildCodecOptions(opts)

	payload := make([]byte, 0, len(a.Real)+len(a.Imag))
	payload = append(payload, a.Real...)
	payload = append(payload, a.Imag...)
	sum := sha256.Sum256(payload)

	stored, used, err := compress(payload, c)
	if err != nil {
		return fmt.Errorf("failed to compress payload: %w", err)
	}

	header := Header{
		FormatVersion: FormatVersion,
		Class:         a.Class.String(),
		Complex:       a.Complex,
		Dims:          a.Dims,
		RealSize:      int64(len(a.Real)),
		ImagSize:      int64(len(a.Imag)),
		PayloadSize:   int64(len(stored)),
		Metadata:      o.metadata,
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(FormatVersion))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(used))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON)))
	buf.Write(headerJSON)
	buf.Write(sum[:])
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	o.logger.WithOp("encode").Debug("container written",
		"class", header.Class,
		"dims", a.Dims,
		"compression", used.String(),
		"payload_bytes", len(payload),
		"stored_bytes", len(stored),
	)
	return nil
}

// Decode reads a container written by Encode.
func Decode(r io.Reader, opts ...Option) (*Array, Header, error) {
	o := buildCodecOptions(opts)

	var fixed [4 + 4 + 4 + 8]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, Header{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if string(fixed[:4]) != MagicBytes {
		return nil, Header{}, fmt.Errorf("%w: got %q", ErrInvalidMagic, fixed[:4])
	}
	version := binary.LittleEndian.Uint32(fixed[4:])
	if version != FormatVersion {
		return nil, Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	c := Compression(binary.LittleEndian.Uint32(fixed[8:]) & flagCompressionMask)
	headerSize := binary.LittleEndian.Uint64(fixed[12:])
	if headerSize > MaxHeaderSize {
		return nil, Header{}, fmt.Errorf("%w: header size %d exceeds %d", ErrCorrupt, headerSize, MaxHeaderSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, Header{}, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, Header{}, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	if err := validateHeader(header); err != nil {
		return nil, Header{}, err
	}
	class, err := ParseClass(header.Class)
	if err != nil {
		return nil, Header{}, err
	}

	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, Header{}, fmt.Errorf("%w: checksum: %w", ErrCorrupt, err)
	}
	data, err := io.ReadAll(io.LimitReader(r, header.PayloadSize))
	if err != nil {
		return nil, Header{}, fmt.Errorf("%w: payload: %w", ErrCorrupt, err)
	}
	if int64(len(data)) != header.PayloadSize {
		return nil, Header{}, fmt.Errorf("%w: payload: got %d of %d bytes", ErrCorrupt, len(data), header.PayloadSize)
	}

	size := int(header.RealSize + header.ImagSize)
	payload, err := decompress(data, c, size)
	if err != nil {
		return nil, Header{}, err
	}
	if len(payload) != size {
		return nil, Header{}, fmt.Errorf("%w: payload is %d bytes, want %d", ErrCorrupt, len(payload), size)
	}
	if sha256.Sum256(payload) != stored {
		return nil, Header{}, ErrChecksumMismatch
	}

	a := &Array{
		Class:   class,
		Complex: header.Complex,
		Dims:    header.Dims,
		Real:    payload[:header.RealSize:header.RealSize],
	}
	if header.Complex {
		a.Imag = payload[header.RealSize:]
	}
	if a.Dims == nil {
		a.Dims = []int{}
	}

	o.logger.WithOp("decode").Debug("container read",
		"class", header.Class,
		"dims", a.Dims,
		"compression", c.String(),
		"payload_bytes", size,
	)
	return a, header, nil
}

func validateHeader(h Header) error {
	var errs []error
	if h.RealSize < 0 || h.ImagSize < 0 || h.PayloadSize < 0 {
		errs = append(errs, errors.New("negative size"))
	}
	if h.PayloadSize > MaxPayload || h.RealSize+h.ImagSize > MaxPayload {
		errs = append(errs, fmt.Errorf("payload exceeds %d bytes", int64(MaxPayload)))
	}
	if !h.Complex && h.ImagSize != 0 {
		errs = append(errs, errors.New("imaginary data in a real array"))
	}
	if h.Complex && h.ImagSize != h.RealSize {
		errs = append(errs, errors.New("real and imaginary sizes differ"))
	}
	n := int64(1)
	for _, d := range h.Dims {
		if d < 0 {
			errs = append(errs, fmt.Errorf("negative dimension %d", d))
			n = 0
			break
		}
		n *= int64(d)
		if n > MaxPayload {
			break
		}
	}
	if class, err := ParseClass(h.Class); err == nil && len(errs) == 0 && n*int64(class.Size()) != h.RealSize {
		errs = append(errs, fmt.Errorf("real size %d does not match dims %v of %s", h.RealSize, h.Dims, class))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrCorrupt, errors.Join(errs...))
	}
	return nil
}
