// Package display works out the device pixel scale: how many surface pixels
// make up one logical pixel.
package display

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
)

// BaseDPI is the resolution at which the scale is 1.
const BaseDPI = 96

// Scale returns the device pixel scale. TROID_SCALE overrides detection;
// otherwise the platform is queried and 1 is the fallback.
func Scale() float64 {
	if v := strings.TrimSpace(os.Getenv("TROID_SCALE")); v != "" {
		if s, err := strconv.ParseFloat(v, 64); err == nil && s > 0 && !math.IsInf(s, 0) {
			return s
		}
	}
	if s, err := detect(); err == nil && s > 0 {
		return s
	}
	return 1
}

// xftDPI extracts Xft.dpi from an X resource database string.
func xftDPI(resources string) (float64, bool) {
	sc := bufio.NewScanner(strings.NewReader(resources))
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || dpi <= 0 {
			return 0, false
		}
		return dpi, true
	}
	return 0, false
}

// physicalDPI derives a resolution from a screen's pixel and millimetre width.
func physicalDPI(px, mm uint16) (float64, bool) {
	if px == 0 || mm == 0 {
		return 0, false
	}
	return float64(px) * 25.4 / float64(mm), true
}

// fromDPI converts dpi to a scale rounded to the nearest quarter.
func fromDPI(dpi float64) float64 {
	s := math.Round(dpi/BaseDPI*4) / 4
	if s < 1 {
		return 1
	}
	return s
}
