package source

import (
	"bytes"
)

// joinLines пересобирает буфер построчно: каждая строка (включая последнюю
// без терминатора) получает '\n', CRLF схлопывается в '\n'.
func joinLines(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	lines := bytes.Split(raw, []byte{'\n'})
	// завершающий '\n' даёт пустой последний фрагмент — он не строка
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	out := make([]byte, 0, len(raw)+1)
	for _, line := range lines {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
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

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Если LineIdx пустой, то весь буфер - одна строка
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: находим наибольший lineIdx[i] <= off... точнее < off,
	// т.к. сам '\n' принадлежит своей строке
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // индекс последнего '\n' строго перед off (0-based)

	if line < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	startOff := lineIdx[line] + 1
	return LineCol{Line: uint32(line + 2), Col: off - startOff + 1}
}
