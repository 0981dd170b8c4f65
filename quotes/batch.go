package quotes

import (
	"github.com/bytedance/sonic"
)

// Entry define batch item, either a record or an error message
type Entry struct {
	Record *Record
	Error  string
}

type entryError struct {
	Error string `json:"error"`
}

// MarshalJSON render record or error object
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Record == nil {
		return sonic.Marshal(entryError{Error: e.Error})
	}

	return sonic.Marshal(e.Record)
}

// UnmarshalJSON parse record or error object
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	err := sonic.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if message, found := raw["error"]; found {
		e.Record = nil
		e.Error, _ = message.(string)
		return nil
	}

	record := new(Record)
	err = sonic.Unmarshal(data, record)
	if err != nil {
		return err
	}

	e.Record = record
	e.Error = ""

	return nil
}

// Failed check entry holds an error
func (e Entry) Failed() bool {
	return e.Record == nil
}

// Batch define multiple ticker response keyed by symbol
type Batch map[string]Entry
