package classify

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// dateComponents builds the Year/MM-Month/timestamp_name layout shared by
// the photo and video flows.
func dateComponents(ts time.Time, sourcePath string) []string {
	ext := filepath.Ext(sourcePath)
	stem := strings.TrimSuffix(filepath.Base(sourcePath), ext)

	year := ts.Format("2006")
	month := fmt.Sprintf("%02d-%s", int(ts.Month()), ts.Month().String())
	filename := fmt.Sprintf("%s_%s%s", ts.Format("20060102_150405"), stem, ext)

	return []string{year, month, filename}
}
