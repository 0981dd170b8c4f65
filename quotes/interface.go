package quotes

import "io"

// Encoder can be written to binary stream
type Encoder interface {
	Encode(w io.Writer) error
}

// Decoder can be read from binary stream
type Decoder interface {
	Decode(r io.Reader) error
}

// EncodeDecoder can be both written and read
type EncodeDecoder interface {
	Encoder
	Decoder
}
