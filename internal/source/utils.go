package source

import (
	"fmt"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineRanges splits text on '\n'. The final entry covers whatever follows
// the last newline, so the result is never empty.
func buildLineRanges(text string) []LineRange {
	lines := make([]LineRange, 0, 16)
	var start uint32
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		end, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			panic(fmt.Errorf("line offset overflow: %w", err))
		}
		lines = append(lines, LineRange{Start: start, End: end})
		start = end
	}
	total, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return append(lines, LineRange{Start: start, End: total})
}

// Canonicalize resolves path to an absolute, symlink-free form.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.Clean(resolved), nil
}
