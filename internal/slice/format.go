package slice

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

var AllowedMultiFormats = []string{"comma", "newline", "space", "json"}

func checkMultiFormat(formats []string, flag string) error {
	for _, format := range formats {
		if !slices.Contains(AllowedMultiFormats, format) {
			return fmt.Errorf("invalid format %s for --%s, allowed formats are: %v", format, flag, AllowedMultiFormats)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return fmt.Errorf("format 'json' for --%s cannot be combined with other formats", flag)
	}
	return nil
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep) // 自动丢弃空片段
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseMultiValues splits every raw value according to formats.
// With no formats the raw values are returned as they are. "json" accepts
// either a JSON array of strings or a single JSON string per raw value.
func ParseMultiValues(formats []string, rawValues []string) ([]string, error) {
	if len(formats) == 0 || len(rawValues) == 0 {
		return rawValues, nil
	}
	if slices.Contains(formats, "json") {
		var result []string
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			// 尝试解析为 JSON 数组
			var arr []string
			if err := json.Unmarshal([]byte(raw), &arr); err == nil {
				result = append(result, arr...)
				continue
			}
			// 尝试解析为单个 JSON 字符串
			var s string
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, fmt.Errorf("invalid json value %s: %w", raw, err)
			}
			result = append(result, s)
		}
		return result, nil
	}

	var seps strings.Builder
	for _, format := range formats {
		switch format {
		case "comma":
			seps.WriteString(",")
		case "newline":
			seps.WriteString("\r\n")
		case "space":
			seps.WriteString(" \t")
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
	}
	var result []string
	for _, raw := range rawValues {
		result = append(result, splitAndTrim(raw, seps.String())...)
	}
	return result, nil
}

// OutputMultiValues joins values for output. "json" renders a JSON array;
// otherwise the first of comma, newline, space in formats picks the separator.
func OutputMultiValues(formats []string, values []string) (string, error) {
	if slices.Contains(formats, "json") {
		if len(formats) > 1 {
			return "", fmt.Errorf("format 'json' cannot be combined with other formats")
		}
		if values == nil {
			values = []string{}
		}
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal values to json: %w", err)
		}
		return string(data), nil
	}
	if len(formats) == 0 {
		return strings.Join(values, ","), nil
	}
	var sep string
	switch {
	case slices.Contains(formats, "comma"):
		sep = ","
	case slices.Contains(formats, "newline"):
		sep = "\n"
	case slices.Contains(formats, "space"):
		sep = " "
	default:
		return "", fmt.Errorf("unsupported formats: %v", formats)
	}
	return strings.Join(values, sep), nil
}

// MaxItemSize is the longest stdin line readItems accepts.
const MaxItemSize = 16 << 20

// readItems reads r line by line. A trailing newline does not produce an empty item.
func readItems(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxItemSize)
	for scanner.Scan() {
		items = append(items, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}
