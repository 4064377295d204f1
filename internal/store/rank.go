package store

import (
	"errors"
	"strconv"
	"strings"
)

// Ranks order siblings lexicographically. They are lowercase base36 strings
// and a new rank can always be made between two existing ones unless one is
// the other plus trailing zeros.
const rankAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var errNoRankSpace = errors.New("no space between ranks")

func rankDigit(c byte) (int, bool) {
	i := strings.IndexByte(rankAlphabet, c)
	return i, i >= 0
}

// RankBetween returns a rank strictly between a and b. Either bound may be
// empty to mean unbounded.
func RankBetween(a, b string) (string, error) {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a != "" && b != "" && a >= b {
		return "", errors.New("RankBetween requires a < b")
	}

	var prefix []byte
	for i := 0; i < 256; i++ {
		lo, hi := 0, len(rankAlphabet)-1
		if i < len(a) {
			d, ok := rankDigit(a[i])
			if !ok {
				return "", errors.New("invalid rank character in a")
			}
			lo = d
		}
		if i < len(b) {
			d, ok := rankDigit(b[i])
			if !ok {
				return "", errors.New("invalid rank character in b")
			}
			hi = d
		}
		switch {
		case lo == hi:
			prefix = append(prefix, rankAlphabet[lo])
		case hi-lo > 1:
			r := string(append(prefix, rankAlphabet[lo+(hi-lo)/2]))
			if !rankInside(r, a, b) {
				return "", errNoRankSpace
			}
			return r, nil
		default:
			// Adjacent digits: any extension of a still sorts before b.
			r := a + "0"
			if !rankInside(r, a, b) {
				return "", errNoRankSpace
			}
			return r, nil
		}
	}
	return "", errors.New("unable to compute rank between")
}

func rankInside(r, a, b string) bool {
	return r != "" && (a == "" || a < r) && (b == "" || r < b)
}

func RankAfter(a string) (string, error) { return RankBetween(a, "") }
func RankInitial() (string, error)       { return RankBetween("", "") }

// sequentialRanks returns n evenly spaced increasing ranks of equal width,
// leaving room for later inserts between any two of them.
func sequentialRanks(n int) []string {
	width, space := 1, int64(len(rankAlphabet))
	for space <= int64(n)*4 {
		width++
		space *= int64(len(rankAlphabet))
	}
	step := space / int64(n+1)
	out := make([]string, n)
	for i := range out {
		r := strconv.FormatInt(int64(i+1)*step, len(rankAlphabet))
		out[i] = strings.Repeat("0", width-len(r)) + r
	}
	return out
}
