// SPDX-License-Identifier: GPL-3.0-only

package wiki

import "errors"

var (
	// ErrEmptyContent is returned when the content container has no child nodes.
	ErrEmptyContent = errors.New("wiki: empty content")

	// ErrMissingAttribute is returned when a link element carries no href.
	ErrMissingAttribute = errors.New("wiki: link without href attribute")
)
