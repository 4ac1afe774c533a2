package cryptofolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrNoSavedPortfolio is returned when loading a portfolio file that does
// not exist. It wraps fs.ErrNotExist and is informational.
var ErrNoSavedPortfolio = fmt.Errorf("no saved portfolio found: %w", fs.ErrNotExist)

// EncodePortfolio writes the portfolio as a single JSON object mapping asset
// identifiers to quantities.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	if err := json.NewEncoder(w).Encode(p.holdings); err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	return nil
}

// DecodePortfolio reads a portfolio written by EncodePortfolio.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	holdings := make(map[string]Quantity)
	if err := json.NewDecoder(r).Decode(&holdings); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	for id, q := range holdings {
		if q.IsNegative() {
			return nil, fmt.Errorf("format error: negative quantity %s for %q", q, id)
		}
	}
	return &Portfolio{holdings: holdings}, nil
}

// SavePortfolio writes the whole portfolio into filename, replacing it.
func SavePortfolio(filename string, p *Portfolio) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", filename, err)
	}
	if err := EncodePortfolio(f, p); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	return f.Close()
}

// LoadPortfolio reads the portfolio saved in filename.
// If the file does not exist it returns ErrNoSavedPortfolio.
func LoadPortfolio(filename string) (*Portfolio, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSavedPortfolio
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return p, nil
}
