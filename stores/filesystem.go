package stores

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"go.uber.org/zap"
)

// FileSystem define file system store
type FileSystem struct {
	root string
}

// NewFileSystem create file system store
func NewFileSystem(root string) *FileSystem {
	return &FileSystem{root: root}
}

// storePath return store path
func (s FileSystem) storePath(symbol string) string {
	return filepath.Join(s.root, url.PathEscape(symbol)+".gz")
}

// Save save record to store path
func (s FileSystem) Save(symbol string, record *quotes.Record, ttl time.Duration) error {
	// ensure store path
	filePath := s.storePath(symbol)
	err := os.MkdirAll(filepath.Dir(filePath), 0755)
	if err != nil {
		zap.L().Error("ensure save path failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("path", filePath))
		return err
	}

	// init gzip writer
	buffer := new(bytes.Buffer)
	gw, err := gzip.NewWriterLevel(buffer, gzip.BestCompression)
	if err != nil {
		zap.L().Error("create gzip writer failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	// encode to gzip writer
	err = newEntry(record, ttl).Encode(gw)
	if err != nil {
		zap.L().Error("encode record failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	err = gw.Close()
	if err != nil {
		zap.L().Error("close gzip writer failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	// every writer gets its own temp file, rename replaces the record atomically
	temp, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+".*.tmp")
	if err != nil {
		zap.L().Error("create temp file failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}
	tempPath := temp.Name()

	_, err = temp.Write(buffer.Bytes())
	if err == nil {
		err = temp.Chmod(0660)
	}
	if closeErr := temp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		zap.L().Error("save record failed", zap.Error(err), zap.String("symbol", symbol), zap.String("path", tempPath))
		return err
	}

	err = os.Rename(tempPath, filePath)
	if err != nil {
		os.Remove(tempPath)
		zap.L().Error("rename record file failed", zap.Error(err), zap.String("symbol", symbol), zap.String("path", filePath))
		return err
	}

	return nil
}

// Load load record from store path
func (s FileSystem) Load(symbol string) (*quotes.Record, error) {
	// open file
	filePath := s.storePath(symbol)
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, constants.ErrRecordNotFound
		}

		zap.L().Error("load record failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}
	defer file.Close()

	// init gzip reader
	gr, err := gzip.NewReader(file)
	if err != nil {
		zap.L().Error("create gzip reader failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}
	defer gr.Close()

	// read unzip bytes
	buffer, err := io.ReadAll(gr)
	if err != nil {
		zap.L().Error("read gzip failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	return unmarshalRecord(buffer)
}

// Remove remove record file
func (s FileSystem) Remove(symbol string) error {
	filePath := s.storePath(symbol)
	err := os.Remove(filePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Error("remove record file failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("path", filePath))
		return err
	}

	return nil
}

// Close file system store holds no resources
func (s FileSystem) Close() error {
	return nil
}
