package dashboard

import (
	"strconv"
	"strings"

	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// ParseSize parses a "WxH" string such as "6x4" into a size. Both
// dimensions must be positive integers.
func ParseSize(s string) (placement.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return placement.Size{}, errors.New(errors.ErrCodeInvalidSize, "size must be WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 1 {
		return placement.Size{}, errors.New(errors.ErrCodeInvalidSize, "invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 1 {
		return placement.Size{}, errors.New(errors.ErrCodeInvalidSize, "invalid height in %q", s)
	}
	return placement.Size{W: w, H: h}, nil
}
