// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/audmix/formats/internal/pcmint"
)

var (
	// ErrNotAiffFile indicates the input has no FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates samples narrower or wider than 16..32 bits.
	ErrUnsupportedBitDepth = pcmint.ErrUnsupportedBitDepth

	// ErrUnsupportedAiffLayout indicates a COMM chunk without a usable format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
