// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/ndimage/feature"
	"github.com/emer/ndimage/imgtype"
)

func simpleTable(t *testing.T) *feature.Table {
	tab := feature.NewTable()
	require.NoError(t, tab.AddObject(1))
	require.NoError(t, tab.AddObject(2))
	um := imgtype.Micrometers()
	size := feature.DeriveUnits([]feature.ValueInfo{{Name: "Size", UnitPower: 2}}, um)
	center := feature.DeriveUnits([]feature.ValueInfo{{Name: "X", UnitPower: 1}, {Name: "Y", UnitPower: 1}}, um)
	require.NoError(t, tab.AddFeature("Size", size))
	require.NoError(t, tab.AddFeature("Center", center))
	require.NoError(t, tab.Forge())
	r1, _ := tab.RowOf(1)
	require.NoError(t, tab.Set("Size", r1, 0, 4))
	require.NoError(t, tab.Set("Center", r1, 0, 0.5))
	require.NoError(t, tab.Set("Center", r1, 1, 1.5))
	r2, _ := tab.RowOf(2)
	require.NoError(t, tab.Set("Size", r2, 0, 9))
	require.NoError(t, tab.Set("Center", r2, 0, 2))
	require.NoError(t, tab.Set("Center", r2, 1, 3))
	return tab
}

func TestWriteCSVThreeRowHeaderAndRows(t *testing.T) {
	tab := simpleTable(t)
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, tab, CSVOptions{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "ObjectID,Size,Center,Center", lines[0])
	assert.Equal(t, ",Size,X,Y", lines[1])
	assert.Equal(t, ",pm^2,um,um", lines[2])
	assert.Equal(t, "1,4,0.5,1.5", lines[3])
	assert.Equal(t, "2,9,2,3", lines[4])
}

func TestWriteCSVSimpleModeCombinesHeaderIntoOneLine(t *testing.T) {
	tab := simpleTable(t)
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, tab, CSVOptions{Simple: true}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ObjectID,Size.Size,Center.X,Center.Y", lines[0])
	assert.Equal(t, "1,4,0.5,1.5", lines[1])
	assert.Equal(t, "2,9,2,3", lines[2])
}

func TestWriteCSVHonorsCustomDelimiter(t *testing.T) {
	tab := simpleTable(t)
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, tab, CSVOptions{Delim: ';'}))
	assert.Contains(t, strings.Split(buf.String(), "\n")[0], ";")
}
