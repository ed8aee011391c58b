// file: internals/helpers/isoduration/isoduration.go
//
// Durasi event disimpan apa adanya sebagai teks ISO-8601 (mis. "PT2H",
// "P1DT2H30M"). Teks yang masuk harus keluar lagi persis sama, jadi tipe ini
// menyimpan bentuk aslinya dan hanya memvalidasi grammar-nya — tidak pernah
// dikonversi ke time.Duration (lossy untuk P1M dsb).
package isoduration

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty   = errors.New("duration is empty")
	ErrInvalid = errors.New("invalid ISO-8601 duration")
)

// Duration adalah nilai durasi ISO-8601 yang opaque.
type Duration struct {
	raw string
}

// Parse memvalidasi grammar P[nY][nM][nW][nD][T[nH][nM][nS]] dan menyimpan
// teks aslinya. Minimal satu komponen harus ada.
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, ErrEmpty
	}
	if err := validate(s); err != nil {
		return Duration{}, err
	}
	return Duration{raw: s}, nil
}

// MustParse hanya untuk test/seed.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Duration) String() string { return d.raw }
func (d Duration) IsZero() bool   { return d.raw == "" }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value / Scan: kolom varchar di tabel events.
func (d Duration) Value() (driver.Value, error) {
	return d.raw, nil
}

func (d *Duration) Scan(v any) error {
	switch s := v.(type) {
	case string:
		return d.scanString(s)
	case []byte:
		return d.scanString(string(s))
	case nil:
		*d = Duration{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into isoduration.Duration", v)
	}
}

func (d *Duration) scanString(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("stored duration %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// validate memeriksa grammar tanpa mengubah teks.
func validate(s string) error {
	if s[0] != 'P' {
		return ErrInvalid
	}
	rest := s[1:]
	if rest == "" {
		return ErrInvalid
	}

	datePart := rest
	timePart := ""
	if i := strings.IndexByte(rest, 'T'); i >= 0 {
		datePart, timePart = rest[:i], rest[i+1:]
		if timePart == "" {
			return ErrInvalid // "P1DT" tanpa komponen waktu
		}
	}

	nDate, err := consumeComponents(datePart, "YMWD")
	if err != nil {
		return err
	}
	nTime, err := consumeComponents(timePart, "HMS")
	if err != nil {
		return err
	}
	if nDate+nTime == 0 {
		return ErrInvalid
	}
	return nil
}

// consumeComponents memastikan part berbentuk rangkaian <angka><designator>
// dengan urutan designator sesuai order. Mengembalikan jumlah komponen.
func consumeComponents(part, order string) (int, error) {
	count := 0
	orderIdx := 0
	i := 0
	for i < len(part) {
		start := i
		for i < len(part) && (isDigit(part[i]) || part[i] == '.' || part[i] == ',') {
			i++
		}
		if i == start || i == len(part) {
			return 0, ErrInvalid // tanpa angka, atau angka tanpa designator
		}
		if strings.Count(part[start:i], ".")+strings.Count(part[start:i], ",") > 1 {
			return 0, ErrInvalid
		}
		des := part[i]
		pos := strings.IndexByte(order[orderIdx:], des)
		if pos < 0 {
			return 0, ErrInvalid // designator tak dikenal / urutan salah
		}
		orderIdx += pos + 1
		count++
		i++
	}
	return count, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
