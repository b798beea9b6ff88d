package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"peilbuis/pkg/contracts/domain"
)

// SurveyHeader is the header line written by the survey controller
var SurveyHeader = []string{"FID", "VID", "X", "Y", "Z", "Nauwkeurigheid", "putnummer"}

// SurveyLine formats a reading as one ";" separated survey line
func SurveyLine(r domain.Reading) string {
	return strings.Join([]string{
		r.ID,
		r.VehicleID,
		strconv.FormatFloat(r.X, 'f', -1, 64),
		strconv.FormatFloat(r.Y, 'f', -1, 64),
		strconv.FormatFloat(r.Z, 'f', -1, 64),
		strconv.FormatFloat(r.Accuracy, 'f', -1, 64),
		r.WellID,
	}, ";")
}

// WriteSurveyFile writes readings as a UTF-16 survey export in dir and
// returns its path
func WriteSurveyFile(t *testing.T, dir, name string, readings []domain.Reading) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(SurveyHeader, ";"))
	b.WriteString("\r\n")
	for _, r := range readings {
		b.WriteString(SurveyLine(r))
		b.WriteString("\r\n")
	}

	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(b.String())
	if err != nil {
		t.Fatalf("failed to encode survey file: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("failed to write survey file: %v", err)
	}
	return path
}
