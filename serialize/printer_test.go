// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintProducesOneAlignedLinePerObject(t *testing.T) {
	tab := simpleTable(t)
	var buf strings.Builder
	require.NoError(t, Print(&buf, tab))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ObjectID")
	assert.Contains(t, lines[0], "Size.Size")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[2], "2")
}

func TestTabJoinSeparatesFieldsWithTabs(t *testing.T) {
	assert.Equal(t, "a\tb\tc", tabJoin([]string{"a", "b", "c"}))
}
