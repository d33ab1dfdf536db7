package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// PoundsToPence converts a 2-decimal pound amount to integer pence, rounding
// half away from zero. All money past the HTTP boundary is pence.
func PoundsToPence(pounds float64) int64 {
	return int64(math.Round(pounds * 100))
}

// PenceToPounds is the inverse, for responses.
func PenceToPounds(pence int64) float64 {
	return float64(pence) / 100
}

// CalendarDate is a scan target for DATE columns. lib/pq hands those back
// as time.Time, and letting database/sql convert that to a plain string
// yields RFC3339 rather than the YYYY-MM-DD form the rest of the code
// deals in.
type CalendarDate string

func (d *CalendarDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = CalendarDate(v.Format(time.DateOnly))
	case []byte:
		*d = CalendarDate(v)
	case string:
		*d = CalendarDate(v)
	case nil:
		*d = ""
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", src)
	}
	return nil
}
