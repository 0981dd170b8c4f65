package stores

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nzai/bio"
	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"go.uber.org/zap"
)

// Store define ticker record cache store
type Store interface {
	// Load load record, constants.ErrRecordNotFound if absent or expired
	Load(symbol string) (*quotes.Record, error)
	// Save save record for ttl, zero ttl never expires
	Save(symbol string, record *quotes.Record, ttl time.Duration) error
	// Remove remove record
	Remove(symbol string) error
	// Close release store resources
	Close() error
}

// Parse parse store argument like fs:/data/cache
func Parse(arg string) (Store, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		zap.L().Error("store arg invalid", zap.String("arg", arg))
		return nil, fmt.Errorf("store arg invalid: %s", arg)
	}

	switch parts[0] {
	case "fs":
		return NewFileSystem(parts[1]), nil
	case "leveldb":
		return NewLevelDB(parts[1])
	case "redis":
		return NewRedis(parts[1], ""), nil
	default:
		zap.L().Error("store type invalid", zap.String("type", parts[0]))
		return nil, fmt.Errorf("store type invalid: %s", parts[0])
	}
}

// entry define stored record with its expiry
type entry struct {
	ExpiresAt uint64 // unix seconds, 0 never expires
	Record    *quotes.Record
}

func newEntry(record *quotes.Record, ttl time.Duration) *entry {
	e := &entry{Record: record}
	if ttl > 0 {
		e.ExpiresAt = uint64(time.Now().Add(ttl).Unix())
	}

	return e
}

// Expired check entry expired at now
func (e entry) Expired(now time.Time) bool {
	return e.ExpiresAt != 0 && uint64(now.Unix()) >= e.ExpiresAt
}

// Encode encode entry to io.Writer
func (e entry) Encode(w io.Writer) error {
	bw := bio.NewBinaryWriter(w)

	_, err := bw.UInt64(e.ExpiresAt)
	if err != nil {
		zap.L().Error("encode entry expiry failed", zap.Error(err))
		return err
	}

	return e.Record.Encode(bw)
}

// Decode decode entry from io.Reader
func (e *entry) Decode(r io.Reader) error {
	br := bio.NewBinaryReader(r)

	expiresAt, err := br.UInt64()
	if err != nil {
		zap.L().Error("decode entry expiry failed", zap.Error(err))
		return err
	}

	record := new(quotes.Record)
	err = record.Decode(br)
	if err != nil {
		return err
	}

	e.ExpiresAt = expiresAt
	e.Record = record

	return nil
}

func marshalEntry(record *quotes.Record, ttl time.Duration) ([]byte, error) {
	buffer := new(bytes.Buffer)
	err := newEntry(record, ttl).Encode(buffer)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func unmarshalRecord(buffer []byte) (*quotes.Record, error) {
	e := new(entry)
	err := e.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, err
	}

	if e.Expired(time.Now()) {
		return nil, constants.ErrRecordNotFound
	}

	return e.Record, nil
}

var (
	_ quotes.EncodeDecoder = (*entry)(nil)
)
