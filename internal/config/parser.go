package config

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/troid/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	var currentGuide *Guide

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil
			currentGuide = nil

			switch {
			case strings.HasPrefix(currentSection, "theme."):
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			case strings.HasPrefix(currentSection, "guide."):
				name := strings.TrimPrefix(currentSection, "guide.")
				if name == "" {
					return nil, fmt.Errorf("guide section needs a name")
				}
				currentGuide = cfg.guide(name)
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch {
		case currentTheme != nil:
			if err := theme.Set(currentTheme, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		case currentGuide != nil:
			if err := setGuideField(currentGuide, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "brush_size":
		v, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		if v <= 0 {
			return fmt.Errorf("brush_size must be positive, got %v", v)
		}
		cfg.BrushSize = v
	case "device_scale":
		v, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("device_scale must not be negative, got %v", v)
		}
		cfg.DeviceScale = v
	case "multiply":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		cfg.Multiply = b
	case "ink":
		col, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		cfg.Ink = col
	case "default_pressure":
		v, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		if v <= 0 || v > 1 {
			return fmt.Errorf("default_pressure must be in (0, 1], got %v", v)
		}
		cfg.DefaultPressure = v
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func setGuideField(g *Guide, key, value string) error {
	switch strings.ToLower(key) {
	case "x", "y":
		v, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		if strings.EqualFold(key, "x") {
			g.X = v
		} else {
			g.Y = v
		}
	case "color", "colour":
		col, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		g.Color = col
	}
	return nil
}

// parseFloat accepts plain numbers and simple fractions such as -1/3.
func parseFloat(key, value string) (float64, error) {
	var v float64
	if num, den, ok := strings.Cut(value, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for key %s: %w", key, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for key %s: %w", key, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("invalid number for key %s: division by zero", key)
		}
		v = n / d
	} else {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for key %s: %w", key, err)
		}
		v = f
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number for key %s: %s", key, value)
	}
	return v, nil
}
