package stores

import (
	"errors"
	"time"

	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"github.com/syndtr/goleveldb/leveldb"
	"go.uber.org/zap"
)

// record key: record:{symbol}	value: {expiresAt}{record}

// LevelDB level db store
type LevelDB struct {
	db *leveldb.DB
}

// NewLevelDB create level db store
func NewLevelDB(root string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(root, nil)
	if err != nil {
		zap.L().Error("open db failed", zap.Error(err), zap.String("root", root))
		return nil, err
	}

	return &LevelDB{db}, nil
}

func (s LevelDB) key(symbol string) []byte {
	return []byte("record:" + symbol)
}

// Close close level db store
func (s LevelDB) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Save save record
func (s LevelDB) Save(symbol string, record *quotes.Record, ttl time.Duration) error {
	buffer, err := marshalEntry(record, ttl)
	if err != nil {
		return err
	}

	err = s.db.Put(s.key(symbol), buffer, nil)
	if err != nil {
		zap.L().Error("save record failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	return nil
}

// Load load record
func (s LevelDB) Load(symbol string) (*quotes.Record, error) {
	buffer, err := s.db.Get(s.key(symbol), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, constants.ErrRecordNotFound
		}

		zap.L().Error("load record failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	record, err := unmarshalRecord(buffer)
	if errors.Is(err, constants.ErrRecordNotFound) {
		// drop expired record
		_ = s.Remove(symbol)
	}

	return record, err
}

// Remove remove record
func (s LevelDB) Remove(symbol string) error {
	err := s.db.Delete(s.key(symbol), nil)
	if err != nil {
		zap.L().Error("remove record failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	return nil
}
