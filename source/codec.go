package source

import "fmt"

// Compressor compresses a buffer. Only test fixtures in this package
// exercise it; the scanner only ever decompresses.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a buffer produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Kind identifies a compression container.
type Kind uint8

const (
	KindNone Kind = iota
	KindGzip
	KindZstd
	KindS2
	KindLZ4
)

func (k Kind) String() string {
	switch k {
	case KindGzip:
		return "gzip"
	case KindZstd:
		return "zstd"
	case KindS2:
		return "s2"
	case KindLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// ParseKind maps a CLI-facing codec name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", "auto", "none":
		return KindNone, nil
	case "gzip":
		return KindGzip, nil
	case "zstd":
		return KindZstd, nil
	case "s2":
		return KindS2, nil
	case "lz4":
		return KindLZ4, nil
	default:
		return 0, fmt.Errorf("unknown codec %q", name)
	}
}

// CodecFor returns the Codec implementation for kind.
func CodecFor(kind Kind) (Codec, error) {
	switch kind {
	case KindNone:
		return NoOpCodec{}, nil
	case KindGzip:
		return GzipCodec{}, nil
	case KindZstd:
		return ZstdCodec{}, nil
	case KindS2:
		return S2Codec{}, nil
	case KindLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("unsupported codec kind %v", kind)
	}
}
